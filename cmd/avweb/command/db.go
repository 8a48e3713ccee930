// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/aerovista/avweb/pkg/adapter/config"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/schema"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used and for bulk-loading of an
inventory snapshot into an initialized database, the import may be
used.`,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}

// initSchema loads the configuration file, connects to the configured
// database, and runs the given handler with a schema Initializer in a
// single transaction, so a failed initialization leaves the database
// untouched.
func initSchema(
	handler func(context.Context, *schema.Initializer) error,
) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	return p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return conn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return handler(ctx, schema.New(tx))
		})
	})
}
