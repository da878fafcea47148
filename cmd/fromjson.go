// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wiltondb/pgdump-toc-edit/cmd/flags"
	"github.com/wiltondb/pgdump-toc-edit/pkg/dumpedit"
)

func fromJSONCmd() *cobra.Command {
	fromJSONCmd := &cobra.Command{
		Use:       "from-json <path to JSON document, or - for stdin>",
		Short:     "Write a toc.dat file from its JSON document form",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"json-file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tocPath := flags.TOCPath()
			if tocPath == "" {
				return errTOCPathRequired
			}

			j, err := readJSONSource(args[0])
			if err != nil {
				return fmt.Errorf("read json: %w", err)
			}

			return dumpedit.FromJSON(tocPath, j)
		},
	}

	return fromJSONCmd
}

func readJSONSource(arg string) (string, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
