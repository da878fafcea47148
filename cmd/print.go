// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wiltondb/pgdump-toc-edit/cmd/flags"
	"github.com/wiltondb/pgdump-toc-edit/pkg/dumpedit"
)

func printCmd() *cobra.Command {
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the header and entries of a toc.dat file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tocPath := flags.TOCPath()
			if tocPath == "" {
				return errTOCPathRequired
			}
			return dumpedit.Print(os.Stdout, tocPath)
		},
	}

	return printCmd
}
