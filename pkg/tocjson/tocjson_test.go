// SPDX-License-Identifier: Apache-2.0

package tocjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

func sampleHeader() toc.Header {
	return toc.Header{
		Magic:          toc.Magic,
		Version:        [3]byte{1, 14, 0},
		Flags:          toc.SupportedFlags,
		Compression:    6,
		Timestamp:      toc.DateTime{Second: 1, Minute: 2, Hour: 3, Day: 4, Month: 5, YearSince1900: 120, IsDST: 0},
		PostgresDBName: toc.StringFromText("test1"),
		VersionServer:  toc.StringFromText("150003"),
		VersionPgdump:  toc.StringFromText("150003"),
		TocCount:       1,
	}
}

func sampleEntries() []toc.Entry {
	return []toc.Entry{
		{
			DumpID:        41,
			HadDumper:     0,
			TableOID:      toc.NoneString(),
			CatalogOID:    toc.EmptyString(),
			Tag:           toc.StringFromText("test1_dbo"),
			Description:   toc.StringFromText("SCHEMA"),
			Section:       1,
			CreateStmt:    toc.StringFromText("CREATE SCHEMA test1_dbo;"),
			DropStmt:      toc.StringFromText("DROP SCHEMA test1_dbo;"),
			CopyStmt:      toc.NoneString(),
			Namespace:     toc.StringFromText("test1_dbo"),
			Tablespace:    toc.NoneString(),
			Tableam:       toc.NoneString(),
			Owner:         toc.StringFromText("test1_dbo"),
			TableWithOIDs: toc.NoneString(),
			Deps:          []toc.String{toc.StringFromText("1"), toc.StringFromText("2")},
			Filename:      toc.NoneString(),
		},
	}
}

func TestMarshalUnmarshal_ByteIdenticalRoundTrip(t *testing.T) {
	h := sampleHeader()
	entries := sampleEntries()

	data, err := Marshal(h, entries)
	require.NoError(t, err)

	gotH, gotEntries, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, h, gotH)
	assert.Equal(t, entries, gotEntries)
}

func TestMarshal_AbsentEmptyPresentDistinguishedInJSON(t *testing.T) {
	h := sampleHeader()
	entries := sampleEntries()

	data, err := Marshal(h, entries)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"table_oid": null`)
	assert.Contains(t, s, `"catalog_oid": ""`)
	assert.Contains(t, s, `"tag": "test1_dbo"`)
}

func TestToDocument_InvalidUTF8FieldIsFatalOnExport(t *testing.T) {
	h := sampleHeader()
	entries := sampleEntries()
	entries[0].Tag = toc.NewString([]byte{0xFF, 0xFE})

	_, err := ToDocument(h, entries)
	require.Error(t, err)
}

func TestUnmarshal_RejectsDocumentFailingSchema(t *testing.T) {
	_, _, err := Unmarshal([]byte(`{"header": {}, "entries": "not-an-array"}`))
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUnmarshal_TimestampPreservesInvalidDate(t *testing.T) {
	h := sampleHeader()
	h.Timestamp.Month = 0
	entries := sampleEntries()

	data, err := Marshal(h, entries)
	require.NoError(t, err)

	gotH, _, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, int32(0), gotH.Timestamp.Month)
}
