// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wiltondb/pgdump-toc-edit/cmd/flags"
)

// Version is the pgdump-toc-edit version.
var Version = "development"

func init() {
	viper.SetEnvPrefix("PGDUMPTOCEDIT")
	viper.AutomaticEnv()

	flags.TOCFlag(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:          "pgdump-toc-edit",
	Short:        "Edit the table of contents of a PostgreSQL directory-format dump",
	SilenceUsage: true,
	Version:      Version,
}

// Execute executes the root command.
func Execute() error {
	rootCmd.AddCommand(printCmd())
	rootCmd.AddCommand(toJSONCmd())
	rootCmd.AddCommand(fromJSONCmd())
	rootCmd.AddCommand(rewriteCmd())

	return rootCmd.Execute()
}
