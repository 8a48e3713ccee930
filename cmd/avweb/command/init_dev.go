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

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data.
The database connection information are read from the configuration
file. The aircraft and inquiries tables will be created and the
aircraft table will be seeded with a small sample inventory, so the
site can be browsed locally right away.
The tables must be non-existent, otherwise, they will not be modified
and an error will be reported.`,
	RunE: initDev,
	Args: cobra.NoArgs,
}

func initDev(_ *cobra.Command, _ []string) error {
	err := initSchema(func(
		ctx context.Context, init *schema.Initializer,
	) error {
		return init.InitDevSchema(ctx)
	})
	if err != nil {
		return fmt.Errorf("initializing DB with dev data: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initDevCmd)
}
