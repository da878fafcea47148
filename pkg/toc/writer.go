// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"fmt"
	"io"
)

// Writer emits a Header and a sequence of Entry values in the identical
// binary format Reader consumes.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for TOC encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (tw *Writer) writeInt(v int32) error {
	return WriteInt32(tw.w, v)
}

func (tw *Writer) writeString(s String) error {
	return WriteString(tw.w, s)
}

func (tw *Writer) writeTimestamp(d DateTime) error {
	for _, v := range []int32{d.Second, d.Minute, d.Hour, d.Day, d.Month, d.YearSince1900, d.IsDST} {
		if err := tw.writeInt(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteHeader emits h byte-for-byte symmetric with Reader.ReadHeader.
func (tw *Writer) WriteHeader(h Header) error {
	if _, err := tw.w.Write(h.Magic[:]); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if _, err := tw.w.Write(h.Version[:]); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if _, err := tw.w.Write(h.Flags[:]); err != nil {
		return fmt.Errorf("write flags: %w", err)
	}
	if err := tw.writeInt(h.Compression); err != nil {
		return fmt.Errorf("write compression: %w", err)
	}
	if err := tw.writeTimestamp(h.Timestamp); err != nil {
		return fmt.Errorf("write timestamp: %w", err)
	}
	if err := tw.writeString(h.PostgresDBName); err != nil {
		return fmt.Errorf("write postgres_dbname: %w", err)
	}
	if err := tw.writeString(h.VersionServer); err != nil {
		return fmt.Errorf("write version_server: %w", err)
	}
	if err := tw.writeString(h.VersionPgdump); err != nil {
		return fmt.Errorf("write version_pgdump: %w", err)
	}
	if err := tw.writeInt(h.TocCount); err != nil {
		return fmt.Errorf("write toc_count: %w", err)
	}
	return nil
}

// WriteEntry emits e, terminating the dependency list with the absent
// string sentinel before filename, mirroring Reader.ReadEntry's sentinel
// loop.
func (tw *Writer) WriteEntry(e Entry) error {
	if err := tw.writeInt(e.DumpID); err != nil {
		return fmt.Errorf("write dump_id: %w", err)
	}
	if err := tw.writeInt(e.HadDumper); err != nil {
		return fmt.Errorf("write had_dumper: %w", err)
	}
	for _, s := range []String{e.TableOID, e.CatalogOID, e.Tag, e.Description} {
		if err := tw.writeString(s); err != nil {
			return fmt.Errorf("write string field: %w", err)
		}
	}
	if err := tw.writeInt(e.Section); err != nil {
		return fmt.Errorf("write section: %w", err)
	}
	for _, s := range []String{
		e.CreateStmt, e.DropStmt, e.CopyStmt,
		e.Namespace, e.Tablespace, e.Tableam, e.Owner, e.TableWithOIDs,
	} {
		if err := tw.writeString(s); err != nil {
			return fmt.Errorf("write string field: %w", err)
		}
	}
	for _, dep := range e.Deps {
		if err := tw.writeString(dep); err != nil {
			return fmt.Errorf("write dep: %w", err)
		}
	}
	if err := tw.writeString(NoneString()); err != nil {
		return fmt.Errorf("write dep sentinel: %w", err)
	}
	if err := tw.writeString(e.Filename); err != nil {
		return fmt.Errorf("write filename: %w", err)
	}
	return nil
}
