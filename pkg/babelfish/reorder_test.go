// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

func tableDataEntry(tag string) toc.Entry {
	return toc.Entry{
		Tag:         toc.StringFromText(tag),
		Description: toc.StringFromText("TABLE DATA"),
	}
}

func TestReorderCatalogEntries_SysDatabasesMovesAheadOfTrackedFour(t *testing.T) {
	entries := []toc.Entry{
		tableDataEntry(TagViewDef),
		tableDataEntry(TagExtendedProperties),
		tableDataEntry(TagFunctionExt),
		tableDataEntry(TagNamespaceExt),
		tableDataEntry(TagSysDatabases),
		tableDataEntry("some_other_table"),
	}
	before := len(entries)

	require.NoError(t, ReorderCatalogEntries(entries))

	assert.Len(t, entries, before)

	positions := findPositions(entries)
	sysPos := positions[TagSysDatabases]
	for _, tag := range trackedCatalogTags {
		if pos, ok := positions[tag]; ok {
			assert.Greater(t, pos, sysPos, "expected %s to follow sysdatabases", tag)
		}
	}
}

func TestReorderCatalogEntries_MissingSysDatabasesIsFatal(t *testing.T) {
	entries := []toc.Entry{
		tableDataEntry(TagViewDef),
	}
	err := ReorderCatalogEntries(entries)
	require.Error(t, err)
}

func TestReorderCatalogEntries_NoSwapNeededIsNoop(t *testing.T) {
	entries := []toc.Entry{
		tableDataEntry(TagSysDatabases),
		tableDataEntry(TagViewDef),
		tableDataEntry(TagExtendedProperties),
	}
	require.NoError(t, ReorderCatalogEntries(entries))
	assert.Equal(t, TagSysDatabases, entries[0].TagText())
}
