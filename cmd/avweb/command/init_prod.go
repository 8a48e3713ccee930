// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/aerovista/avweb/pkg/adapter/db/postgres/schema"
	"github.com/spf13/cobra"
)

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data.
The database connection information are read from the configuration
file. The aircraft and inquiries tables will be created and left
empty, so the inventory can be filled through the admin REST APIs or
the db import sub-command.
The tables must be non-existent, otherwise, they will not be modified
and an error will be reported.`,
	RunE: initProd,
	Args: cobra.NoArgs,
}

func initProd(_ *cobra.Command, _ []string) error {
	err := initSchema(func(
		ctx context.Context, init *schema.Initializer,
	) error {
		return init.InitProdSchema(ctx)
	})
	if err != nil {
		return fmt.Errorf("initializing DB with prod data: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initProdCmd)
}
