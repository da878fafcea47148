// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wiltondb/pgdump-toc-edit/pkg/renamelog"
	"github.com/wiltondb/pgdump-toc-edit/pkg/sqltoken"
	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

// RenamePlan is the in-memory result of walking a TOC without touching
// disk: the reordered, mutated entries, and the set of files PlanRename
// determined it would rewrite had it run for real.
type RenamePlan struct {
	Header            toc.Header
	Entries           []toc.Entry
	CatalogFilesToEdit map[string]string
}

// PlanRename performs discovery, reordering, and mutation entirely in
// memory and returns the resulting plan without writing anything to disk,
// supporting a --dry-run CLI mode.
func PlanRename(header toc.Header, entries []toc.Entry, destDBName string, tz sqltoken.Tokenizer, logger renamelog.Logger) (*RenamePlan, error) {
	if err := Validate(destDBName); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = renamelog.NewNoopLogger()
	}

	mutated := make([]toc.Entry, len(entries))
	copy(mutated, entries)

	if err := ReorderCatalogEntries(mutated); err != nil {
		return nil, err
	}

	ctx := NewRenameContext(destDBName, tz, logger)
	for i, e := range mutated {
		m, err := ctx.MutateEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		mutated[i] = m
	}

	// babelfish_view_def is recorded for reordering only; Rename never
	// rewrites its data file.
	toEdit := map[string]string{}
	for tag, filename := range ctx.CatalogFiles {
		if tag != TagViewDef {
			toEdit[tag] = filename
		}
	}

	return &RenamePlan{
		Header:             header,
		Entries:            mutated,
		CatalogFilesToEdit: toEdit,
	}, nil
}

// Rename executes the full on-disk rename pipeline described in spec.md
// §4.7: read tocPath, reorder and mutate its entries, write a temporary
// TOC, rewrite the five catalog files, then atomically swap both the TOC
// and each catalog file into place.
func Rename(tocPath, destDBName string, tz sqltoken.Tokenizer, logger renamelog.Logger) error {
	if err := Validate(destDBName); err != nil {
		return err
	}
	if logger == nil {
		logger = renamelog.NewNoopLogger()
	}

	dir := filepath.Dir(tocPath)

	f, err := os.Open(tocPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", tocPath, err)
	}
	r := toc.NewReader(f)
	header, err := r.ReadHeader()
	if err != nil {
		f.Close()
		return fmt.Errorf("read header: %w", err)
	}
	entries := make([]toc.Entry, header.TocCount)
	for i := range entries {
		e, err := r.ReadEntry()
		if err != nil {
			f.Close()
			return fmt.Errorf("read entry %d: %w", i, err)
		}
		entries[i] = e
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tocPath, err)
	}

	logger.LogRenameStart(header.PostgresDBName.TextLossy(), destDBName)

	if err := ReorderCatalogEntries(entries); err != nil {
		return err
	}

	ctx := NewRenameContext(destDBName, tz, logger)
	for i, e := range entries {
		m, err := ctx.MutateEntry(e)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		entries[i] = m
	}

	rewrittenPath := filepath.Join(dir, "toc_rewritten.dat")
	out, err := os.Create(rewrittenPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", rewrittenPath, err)
	}
	w := toc.NewWriter(out)
	if err := w.WriteHeader(header); err != nil {
		out.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		if err := w.WriteEntry(e); err != nil {
			out.Close()
			return fmt.Errorf("write entry %d: %w", i, err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", rewrittenPath, err)
	}

	if err := ctx.RewriteCatalogFiles(dir, header.Compression); err != nil {
		return err
	}

	origPath := tocPath + ".orig"
	if err := os.Rename(tocPath, origPath); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tocPath, origPath, err)
	}
	if err := os.Rename(rewrittenPath, tocPath); err != nil {
		return fmt.Errorf("rename %s to %s: %w", rewrittenPath, tocPath, err)
	}

	logger.LogRenameComplete(destDBName)
	return nil
}
