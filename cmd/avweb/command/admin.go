// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/aerovista/avweb/pkg/adapter/hash/scram"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration helper actions",
}

var hashIters int

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token TOKEN",
	Short: "Compute the scram hash string of an admin API token",
	Long: `Compute the scram hash string of an admin API token, so it
can be stored as the admin.token-hash configuration setting. The token
itself is never written to the configuration file. A random salt is
generated for each invocation.`,
	RunE: hashToken,
	Args: cobra.ExactArgs(1),
}

func hashToken(_ *cobra.Command, args []string) error {
	h, err := scram.SHA256().Hash(args[0], "", hashIters)
	if err != nil {
		return fmt.Errorf("hashing token: %w", err)
	}
	fmt.Println(h)
	return nil
}

func init() {
	hashTokenCmd.Flags().IntVar(
		&hashIters, "iters", 15000, "PBKDF2 iterations count",
	)
	adminCmd.AddCommand(hashTokenCmd)
	rootCmd.AddCommand(adminCmd)
}
