// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// TOCPath returns the path to the toc.dat file under operation, bound from
// the --toc persistent flag.
func TOCPath() string {
	return viper.GetString("TOC")
}

// DestDBName returns the destination database name for a rename,bound from
// the rewrite command's --dest-db flag.
func DestDBName() string {
	return viper.GetString("DEST_DB")
}

// DryRun reports whether --dry-run was set.
func DryRun() bool {
	return viper.GetBool("DRY_RUN")
}

// TOCFlag registers --toc on cmd and binds it into viper.
func TOCFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("toc", "", "Path to the toc.dat file to operate on")
	viper.BindPFlag("TOC", cmd.PersistentFlags().Lookup("toc"))
}

// RenameFlags registers --dest-db and --dry-run on cmd and binds them into
// viper.
func RenameFlags(cmd *cobra.Command) {
	cmd.Flags().String("dest-db", "", "Destination database name for the rename")
	cmd.Flags().Bool("dry-run", false, "Plan the rename without writing to disk")

	viper.BindPFlag("DEST_DB", cmd.Flags().Lookup("dest-db"))
	viper.BindPFlag("DRY_RUN", cmd.Flags().Lookup("dry-run"))
}
