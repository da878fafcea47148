// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/wiltondb/pgdump-toc-edit/cmd/flags"
	"github.com/wiltondb/pgdump-toc-edit/pkg/dumpedit"
)

func rewriteCmd() *cobra.Command {
	rewriteCmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rename the Babelfish logical database described by a toc.dat file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tocPath := flags.TOCPath()
			if tocPath == "" {
				return errTOCPathRequired
			}
			destDB := flags.DestDBName()
			if destDB == "" {
				return errDestDBRequired
			}

			var opts []dumpedit.RenameOption
			if flags.DryRun() {
				opts = append(opts, dumpedit.WithDryRun())
			}

			sp, _ := pterm.DefaultSpinner.WithText(fmt.Sprintf("Renaming database to %q...", destDB)).Start()
			if err := dumpedit.Rename(tocPath, destDB, opts...); err != nil {
				sp.Fail(fmt.Sprintf("Failed to rename: %s", err))
				return err
			}
			sp.Success(fmt.Sprintf("Renamed database to %q", destDB))
			return nil
		},
	}

	flags.RenameFlags(rewriteCmd)

	return rewriteCmd
}
