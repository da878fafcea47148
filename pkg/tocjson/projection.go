// SPDX-License-Identifier: Apache-2.0

package tocjson

import (
	"fmt"

	"github.com/oapi-codegen/nullable"
	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

func hexEncodeArray(b []byte) []string {
	out := make([]string, len(b))
	for i, v := range b {
		out[i] = fmt.Sprintf("%02x", v)
	}
	return out
}

func hexDecodeArray(in []string, want int) ([]byte, error) {
	if len(in) != want {
		return nil, fmt.Errorf("expected %d hex bytes, got %d", want, len(in))
	}
	out := make([]byte, want)
	for i, s := range in {
		var v int
		if _, err := fmt.Sscanf(s, "%02x", &v); err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", s, err)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// formatTimestamp renders the seven broken-down fields directly, without
// going through time.Time, so an invalid date (out-of-range month/day)
// still round-trips through the JSON projection.
func formatTimestamp(d toc.DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.YearSince1900+1900, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

func parseTimestamp(s string, isDST bool) (toc.DateTime, error) {
	var year, month, day, hour, minute, second int32
	n, err := fmt.Sscanf(s, "%04d-%02d-%02d %02d:%02d:%02d",
		&year, &month, &day, &hour, &minute, &second)
	if err != nil || n != 6 {
		return toc.DateTime{}, fmt.Errorf("invalid timestamp %q", s)
	}
	dst := int32(0)
	if isDST {
		dst = 1
	}
	return toc.DateTime{
		Second:        second,
		Minute:        minute,
		Hour:          hour,
		Day:           day,
		Month:         month,
		YearSince1900: year - 1900,
		IsDST:         dst,
	}, nil
}

func stringToNullable(s toc.String) (nullable.Nullable[string], error) {
	return s.ToNullable()
}

func nullableToString(n nullable.Nullable[string]) (toc.String, error) {
	return toc.StringFromNullable(n)
}

// ToDocument projects a decoded toc.Header/toc.Entry list into the JSON
// document shape. Fails fatally if any string field is not valid UTF-8.
func ToDocument(h toc.Header, entries []toc.Entry) (Document, error) {
	header, err := headerToJSON(h)
	if err != nil {
		return Document{}, fmt.Errorf("project header: %w", err)
	}

	jsonEntries := make([]Entry, len(entries))
	for i, e := range entries {
		je, err := entryToJSON(e)
		if err != nil {
			return Document{}, fmt.Errorf("project entry %d: %w", i, err)
		}
		jsonEntries[i] = je
	}

	return Document{Header: header, Entries: jsonEntries}, nil
}

// FromDocument reconstructs a toc.Header/toc.Entry list from a JSON
// document, the inverse of ToDocument.
func FromDocument(doc Document) (toc.Header, []toc.Entry, error) {
	h, err := headerFromJSON(doc.Header)
	if err != nil {
		return toc.Header{}, nil, fmt.Errorf("reconstruct header: %w", err)
	}

	entries := make([]toc.Entry, len(doc.Entries))
	for i, je := range doc.Entries {
		e, err := entryFromJSON(je)
		if err != nil {
			return toc.Header{}, nil, fmt.Errorf("reconstruct entry %d: %w", i, err)
		}
		entries[i] = e
	}

	return h, entries, nil
}

func headerToJSON(h toc.Header) (Header, error) {
	dbname, err := stringToNullable(h.PostgresDBName)
	if err != nil {
		return Header{}, fmt.Errorf("postgres_dbname: %w", err)
	}
	versionServer, err := stringToNullable(h.VersionServer)
	if err != nil {
		return Header{}, fmt.Errorf("version_server: %w", err)
	}
	versionPgdump, err := stringToNullable(h.VersionPgdump)
	if err != nil {
		return Header{}, fmt.Errorf("version_pgdump: %w", err)
	}

	return Header{
		Magic:          hexEncodeArray(h.Magic[:]),
		Version:        hexEncodeArray(h.Version[:]),
		Flags:          hexEncodeArray(h.Flags[:]),
		Compression:    h.Compression,
		Timestamp:      formatTimestamp(h.Timestamp),
		IsDST:          h.Timestamp.IsDST != 0,
		PostgresDBName: dbname,
		VersionServer:  versionServer,
		VersionPgdump:  versionPgdump,
		TocCount:       h.TocCount,
	}, nil
}

func headerFromJSON(j Header) (toc.Header, error) {
	magic, err := hexDecodeArray(j.Magic, 5)
	if err != nil {
		return toc.Header{}, fmt.Errorf("magic: %w", err)
	}
	version, err := hexDecodeArray(j.Version, 3)
	if err != nil {
		return toc.Header{}, fmt.Errorf("version: %w", err)
	}
	flags, err := hexDecodeArray(j.Flags, 3)
	if err != nil {
		return toc.Header{}, fmt.Errorf("flags: %w", err)
	}
	ts, err := parseTimestamp(j.Timestamp, j.IsDST)
	if err != nil {
		return toc.Header{}, err
	}
	dbname, err := nullableToString(j.PostgresDBName)
	if err != nil {
		return toc.Header{}, fmt.Errorf("postgres_dbname: %w", err)
	}
	versionServer, err := nullableToString(j.VersionServer)
	if err != nil {
		return toc.Header{}, fmt.Errorf("version_server: %w", err)
	}
	versionPgdump, err := nullableToString(j.VersionPgdump)
	if err != nil {
		return toc.Header{}, fmt.Errorf("version_pgdump: %w", err)
	}

	var h toc.Header
	copy(h.Magic[:], magic)
	copy(h.Version[:], version)
	copy(h.Flags[:], flags)
	h.Compression = j.Compression
	h.Timestamp = ts
	h.PostgresDBName = dbname
	h.VersionServer = versionServer
	h.VersionPgdump = versionPgdump
	h.TocCount = j.TocCount
	return h, nil
}

func entryToJSON(e toc.Entry) (Entry, error) {
	var out Entry
	fields := []struct {
		name string
		src  toc.String
		dst  *nullable.Nullable[string]
	}{
		{"table_oid", e.TableOID, &out.TableOID},
		{"catalog_oid", e.CatalogOID, &out.CatalogOID},
		{"tag", e.Tag, &out.Tag},
		{"description", e.Description, &out.Description},
		{"create_stmt", e.CreateStmt, &out.CreateStmt},
		{"drop_stmt", e.DropStmt, &out.DropStmt},
		{"copy_stmt", e.CopyStmt, &out.CopyStmt},
		{"namespace", e.Namespace, &out.Namespace},
		{"tablespace", e.Tablespace, &out.Tablespace},
		{"tableam", e.Tableam, &out.Tableam},
		{"owner", e.Owner, &out.Owner},
		{"table_with_oids", e.TableWithOIDs, &out.TableWithOIDs},
		{"filename", e.Filename, &out.Filename},
	}
	for _, f := range fields {
		n, err := stringToNullable(f.src)
		if err != nil {
			return Entry{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}

	deps := make([]nullable.Nullable[string], len(e.Deps))
	for i, d := range e.Deps {
		n, err := stringToNullable(d)
		if err != nil {
			return Entry{}, fmt.Errorf("deps[%d]: %w", i, err)
		}
		deps[i] = n
	}

	out.DumpID = e.DumpID
	out.HadDumper = e.HadDumper
	out.Section = e.Section
	out.Deps = deps
	return out, nil
}

func entryFromJSON(j Entry) (toc.Entry, error) {
	var e toc.Entry
	fields := []struct {
		name string
		src  nullable.Nullable[string]
		dst  *toc.String
	}{
		{"table_oid", j.TableOID, &e.TableOID},
		{"catalog_oid", j.CatalogOID, &e.CatalogOID},
		{"tag", j.Tag, &e.Tag},
		{"description", j.Description, &e.Description},
		{"create_stmt", j.CreateStmt, &e.CreateStmt},
		{"drop_stmt", j.DropStmt, &e.DropStmt},
		{"copy_stmt", j.CopyStmt, &e.CopyStmt},
		{"namespace", j.Namespace, &e.Namespace},
		{"tablespace", j.Tablespace, &e.Tablespace},
		{"tableam", j.Tableam, &e.Tableam},
		{"owner", j.Owner, &e.Owner},
		{"table_with_oids", j.TableWithOIDs, &e.TableWithOIDs},
		{"filename", j.Filename, &e.Filename},
	}
	for _, f := range fields {
		s, err := nullableToString(f.src)
		if err != nil {
			return toc.Entry{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = s
	}

	deps := make([]toc.String, len(j.Deps))
	for i, d := range j.Deps {
		s, err := nullableToString(d)
		if err != nil {
			return toc.Entry{}, fmt.Errorf("deps[%d]: %w", i, err)
		}
		deps[i] = s
	}

	e.DumpID = j.DumpID
	e.HadDumper = j.HadDumper
	e.Section = j.Section
	e.Deps = deps
	return e, nil
}
