// SPDX-License-Identifier: Apache-2.0

// Package dumpedit is the library-level facade the CLI calls into: print,
// JSON read/write, and rename, each a thin composition of pkg/toc,
// pkg/tocjson, and pkg/babelfish.
package dumpedit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wiltondb/pgdump-toc-edit/pkg/babelfish"
	"github.com/wiltondb/pgdump-toc-edit/pkg/renamelog"
	"github.com/wiltondb/pgdump-toc-edit/pkg/sqltoken"
	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
	"github.com/wiltondb/pgdump-toc-edit/pkg/tocjson"
)

func readTOC(tocPath string) (toc.Header, []toc.Entry, error) {
	f, err := os.Open(tocPath)
	if err != nil {
		return toc.Header{}, nil, fmt.Errorf("open %s: %w", tocPath, err)
	}
	defer f.Close()

	r := toc.NewReader(f)
	header, err := r.ReadHeader()
	if err != nil {
		return toc.Header{}, nil, fmt.Errorf("read header: %w", err)
	}
	entries := make([]toc.Entry, header.TocCount)
	for i := range entries {
		e, err := r.ReadEntry()
		if err != nil {
			return toc.Header{}, nil, fmt.Errorf("read entry %d: %w", i, err)
		}
		entries[i] = e
	}
	return header, entries, nil
}

// writeTOCAtomically writes header/entries to a temporary file in the same
// directory as tocPath, then renames it into place, so a process crash
// mid-write never leaves a truncated toc.dat behind.
func writeTOCAtomically(tocPath string, header toc.Header, entries []toc.Entry) error {
	dir := filepath.Dir(tocPath)
	tmpPath := filepath.Join(dir, filepath.Base(tocPath)+".tmp")

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmpPath, err)
	}
	w := toc.NewWriter(f)
	if err := w.WriteHeader(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		if err := w.WriteEntry(e); err != nil {
			f.Close()
			return fmt.Errorf("write entry %d: %w", i, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, tocPath); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpPath, tocPath, err)
	}
	return nil
}

// Print writes a human-readable rendering of tocPath's header and entries
// to w, one field per line.
func Print(w io.Writer, tocPath string) error {
	header, entries, err := readTOC(tocPath)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, header.String()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		if _, err := io.WriteString(w, e.String()); err != nil {
			return fmt.Errorf("write entry: %w", err)
		}
	}
	return nil
}

// ToJSON reads tocPath and projects it to its JSON document form.
func ToJSON(tocPath string) (string, error) {
	header, entries, err := readTOC(tocPath)
	if err != nil {
		return "", err
	}
	data, err := tocjson.Marshal(header, entries)
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	return string(data), nil
}

// FromJSON parses json as a TOC document and writes it to tocPath,
// replacing whatever is there.
func FromJSON(tocPath, json string) error {
	header, entries, err := tocjson.Unmarshal([]byte(json))
	if err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return writeTOCAtomically(tocPath, header, entries)
}

// renameOptions holds the configuration RenameOption functions mutate.
type renameOptions struct {
	dryRun    bool
	tokenizer sqltoken.Tokenizer
	logger    renamelog.Logger
}

// RenameOption configures a Rename call.
type RenameOption func(*renameOptions)

// WithDryRun plans the rename in memory without touching disk.
func WithDryRun() RenameOption {
	return func(o *renameOptions) { o.dryRun = true }
}

// WithTokenizer overrides the SQL tokenizer, used by tests to substitute a
// fake implementation.
func WithTokenizer(tz sqltoken.Tokenizer) RenameOption {
	return func(o *renameOptions) { o.tokenizer = tz }
}

// WithLogger overrides the rename logger.
func WithLogger(logger renamelog.Logger) RenameOption {
	return func(o *renameOptions) { o.logger = logger }
}

// Rename renames the Babelfish logical database described by tocPath to
// destDBName, rewriting the TOC and its associated catalog data files in
// place. With WithDryRun, it instead walks the TOC in memory and returns
// without writing anything.
func Rename(tocPath, destDBName string, opts ...RenameOption) error {
	o := renameOptions{
		tokenizer: sqltoken.NewPgQueryTokenizer(),
		logger:    renamelog.NewLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.dryRun {
		header, entries, err := readTOC(tocPath)
		if err != nil {
			return err
		}
		plan, err := babelfish.PlanRename(header, entries, destDBName, o.tokenizer, o.logger)
		if err != nil {
			return err
		}
		o.logger.Info(fmt.Sprintf("dry run: %d entries, %d catalog files would be rewritten", len(plan.Entries), len(plan.CatalogFilesToEdit)))
		return nil
	}

	return babelfish.Rename(tocPath, destDBName, o.tokenizer, o.logger)
}
