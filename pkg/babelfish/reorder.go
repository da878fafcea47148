// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"fmt"

	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

// trackedCatalogTags are the four catalogs reordering ensures come after
// babelfish_sysdatabases; order among them is not constrained.
var trackedCatalogTags = []string{
	TagExtendedProperties,
	TagFunctionExt,
	TagNamespaceExt,
	TagViewDef,
}

// ReorderCatalogEntries scans entries for TABLE DATA records of the five
// recognized Babelfish catalogs and repeatedly swaps entries so that
// babelfish_sysdatabases precedes each of the other four, in place. No
// entry is added, removed, or duplicated.
func ReorderCatalogEntries(entries []toc.Entry) error {
	positions := findPositions(entries)

	sysPos, ok := positions[TagSysDatabases]
	if !ok || sysPos == 0 {
		return fmt.Errorf("required catalog %q not found in TOC", TagSysDatabases)
	}

	for {
		swapped := false
		for _, tag := range trackedCatalogTags {
			pos, ok := positions[tag]
			if !ok || pos == 0 {
				continue
			}
			if pos < sysPos {
				entries[pos-1], entries[sysPos-1] = entries[sysPos-1], entries[pos-1]
				positions[tag] = sysPos
				positions[TagSysDatabases] = pos
				sysPos = pos
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return nil
}

// findPositions records the 1-based position of each recognized catalog's
// TABLE DATA entry; 0 (absent from the map) means not present.
func findPositions(entries []toc.Entry) map[string]int {
	positions := map[string]int{}
	for i, e := range entries {
		if e.DescriptionText() != "TABLE DATA" {
			continue
		}
		tag := e.TagText()
		switch tag {
		case TagSysDatabases, TagExtendedProperties, TagFunctionExt, TagNamespaceExt, TagViewDef:
			positions[tag] = i + 1
		}
	}
	return positions
}
