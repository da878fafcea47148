// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"fmt"
	"io"
)

// Reader pulls a Header and a sequence of Entry values from an octet
// stream in toc.dat's binary format.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for TOC decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (tr *Reader) readFixed(n int) ([]byte, error) {
	buf := zeroBuf(n)
	if err := readFull(tr.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (tr *Reader) readInt() (int32, error) {
	return ReadInt32(tr.r)
}

func (tr *Reader) readString() (String, error) {
	return ReadString(tr.r)
}

func (tr *Reader) readTimestamp() (DateTime, error) {
	sec, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	min, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	hour, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	day, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	month, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	year, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	isDST, err := tr.readInt()
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		Second: sec, Minute: min, Hour: hour,
		Day: day, Month: month, YearSince1900: year,
		IsDST: isDST,
	}, nil
}

// ReadHeader reads the fixed-shape preamble, validating magic, version,
// and flags. A mismatch on any of the three is a fatal parse failure.
func (tr *Reader) ReadHeader() (Header, error) {
	magicBuf, err := tr.readFixed(5)
	if err != nil {
		return Header{}, fmt.Errorf("read magic: %w", err)
	}
	var h Header
	copy(h.Magic[:], magicBuf)

	versionBuf, err := tr.readFixed(3)
	if err != nil {
		return Header{}, fmt.Errorf("read version: %w", err)
	}
	copy(h.Version[:], versionBuf)

	flagsBuf, err := tr.readFixed(3)
	if err != nil {
		return Header{}, fmt.Errorf("read flags: %w", err)
	}
	copy(h.Flags[:], flagsBuf)

	if err := h.ValidateFixed(); err != nil {
		return Header{}, err
	}

	if h.Compression, err = tr.readInt(); err != nil {
		return Header{}, fmt.Errorf("read compression: %w", err)
	}
	if h.Timestamp, err = tr.readTimestamp(); err != nil {
		return Header{}, fmt.Errorf("read timestamp: %w", err)
	}
	if h.PostgresDBName, err = tr.readString(); err != nil {
		return Header{}, fmt.Errorf("read postgres_dbname: %w", err)
	}
	if h.VersionServer, err = tr.readString(); err != nil {
		return Header{}, fmt.Errorf("read version_server: %w", err)
	}
	if h.VersionPgdump, err = tr.readString(); err != nil {
		return Header{}, fmt.Errorf("read version_pgdump: %w", err)
	}
	if h.TocCount, err = tr.readInt(); err != nil {
		return Header{}, fmt.Errorf("read toc_count: %w", err)
	}
	return h, nil
}

// ReadEntry reads one TOC entry. The dependency list has no length
// prefix: it is read as optional strings until an absent string is
// encountered, which is the structural sentinel, followed by one more
// optional string that is the filename.
func (tr *Reader) ReadEntry() (Entry, error) {
	var e Entry
	var err error

	if e.DumpID, err = tr.readInt(); err != nil {
		return Entry{}, fmt.Errorf("read dump_id: %w", err)
	}
	if e.HadDumper, err = tr.readInt(); err != nil {
		return Entry{}, fmt.Errorf("read had_dumper: %w", err)
	}
	if e.TableOID, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read table_oid: %w", err)
	}
	if e.CatalogOID, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read catalog_oid: %w", err)
	}
	if e.Tag, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read tag: %w", err)
	}
	if e.Description, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read description: %w", err)
	}
	if e.Section, err = tr.readInt(); err != nil {
		return Entry{}, fmt.Errorf("read section: %w", err)
	}
	if e.CreateStmt, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read create_stmt: %w", err)
	}
	if e.DropStmt, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read drop_stmt: %w", err)
	}
	if e.CopyStmt, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read copy_stmt: %w", err)
	}
	if e.Namespace, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read namespace: %w", err)
	}
	if e.Tablespace, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read tablespace: %w", err)
	}
	if e.Tableam, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read tableam: %w", err)
	}
	if e.Owner, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read owner: %w", err)
	}
	if e.TableWithOIDs, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read table_with_oids: %w", err)
	}

	for {
		s, err := tr.readString()
		if err != nil {
			return Entry{}, fmt.Errorf("read dep: %w", err)
		}
		if s.IsAbsent() {
			break
		}
		e.Deps = append(e.Deps, s)
	}

	if e.Filename, err = tr.readString(); err != nil {
		return Entry{}, fmt.Errorf("read filename: %w", err)
	}
	return e, nil
}
