// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiltondb/pgdump-toc-edit/cmd/flags"
	"github.com/wiltondb/pgdump-toc-edit/pkg/dumpedit"
)

func toJSONCmd() *cobra.Command {
	toJSONCmd := &cobra.Command{
		Use:   "to-json",
		Short: "Project a toc.dat file to its JSON document form on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			tocPath := flags.TOCPath()
			if tocPath == "" {
				return errTOCPathRequired
			}
			j, err := dumpedit.ToJSON(tocPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), j)
			return nil
		},
	}

	return toJSONCmd
}
