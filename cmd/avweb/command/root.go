// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the avweb
// project. Commands are organized using the cobra library.
// The root command starts the web server itself, the "db" sub-command
// groups the database management actions, and the "admin" sub-command
// groups the administration helper actions.
//
//	./avweb [-c /path/of/main/config.yaml]           # start web server
//	./avweb db init-dev [-c /path/of/main/config.yaml]
//	./avweb db init-prod [-c /path/of/main/config.yaml]
//	./avweb db import /path/of/listings.json
//	    [-c /path/of/main/config.yaml]
//	./avweb admin hash-token TOKEN [--iters N]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/aerovista/avweb/pkg/adapter/config"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin/routes"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "avweb",
	Short: "The aircraft sales brokerage web backend",
	Long: `The aircraft sales brokerage web backend which serves the
public marketing site REST APIs, including the paginated and filtered
inventory listing, the per-listing similarity recommendations, and the
customer inquiry submission with its fixed-window rate limiting, in
addition to the bearer-token guarded admin REST APIs for the inventory
and inquiries management.
The core use cases and models layers are kept independent of the
third-party dependent adapters layer while interacting with them
through a series of interfaces. GORM and Pgx are used for the database
interactions and the Gin Gonic web framework for the REST API
implementation, with database repositories tested using temporary
PostgreSQL DBMS servers (created as podman containers).`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
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
	var e *gin.Engine = c.NewEngine()
	if err = routes.Register(e, p, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	if err = e.Run(); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// By the way, default value is not necessarily a single path and may
// check several paths sequentially and take the highest priority one
// among the existing paths. For example, a user-specific path may take
// precedence over a file in /etc which is selected over a file in /usr.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
