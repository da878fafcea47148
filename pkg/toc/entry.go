// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"fmt"
	"strings"
)

// Entry is one record in the table of contents, describing a single
// dumped object.
type Entry struct {
	DumpID    int32
	HadDumper int32

	TableOID   String
	CatalogOID String
	Tag        String
	// Description is the object category: SCHEMA, ACL, TABLE, TABLE DATA,
	// FUNCTION, PROCEDURE, DOMAIN, and so on.
	Description String

	Section int32

	CreateStmt String
	DropStmt   String
	CopyStmt   String

	Namespace     String
	Tablespace    String
	Tableam       String
	Owner         String
	TableWithOIDs String

	// Deps is the ordered list of textual dump-id references. The wire
	// format terminates this list with an absent string sentinel, which
	// the reader consumes and the writer re-emits; it is not a count.
	Deps []String

	Filename String
}

// String renders the entry for the print operation.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dump_id: %d\n", e.DumpID)
	fmt.Fprintf(&b, "had_dumper: %d\n", e.HadDumper)
	fmt.Fprintf(&b, "table_oid: %s\n", e.TableOID.TextLossy())
	fmt.Fprintf(&b, "catalog_oid: %s\n", e.CatalogOID.TextLossy())
	fmt.Fprintf(&b, "tag: %s\n", e.Tag.TextLossy())
	fmt.Fprintf(&b, "description: %s\n", e.Description.TextLossy())
	fmt.Fprintf(&b, "section: %d\n", e.Section)
	fmt.Fprintf(&b, "create_stmt: %s\n", e.CreateStmt.TextLossy())
	fmt.Fprintf(&b, "drop_stmt: %s\n", e.DropStmt.TextLossy())
	fmt.Fprintf(&b, "copy_stmt: %s\n", e.CopyStmt.TextLossy())
	fmt.Fprintf(&b, "namespace: %s\n", e.Namespace.TextLossy())
	fmt.Fprintf(&b, "tablespace: %s\n", e.Tablespace.TextLossy())
	fmt.Fprintf(&b, "tableam: %s\n", e.Tableam.TextLossy())
	fmt.Fprintf(&b, "owner: %s\n", e.Owner.TextLossy())
	fmt.Fprintf(&b, "table_with_oids: %s\n", e.TableWithOIDs.TextLossy())
	for i, dep := range e.Deps {
		fmt.Fprintf(&b, "dep %d: %s\n", i+1, dep.TextLossy())
	}
	fmt.Fprintf(&b, "filename: %s\n", e.Filename.TextLossy())
	return b.String()
}

// TagText is a convenience wrapper returning the lossy text of Tag, used
// pervasively by the rename orchestrator for tag-shape matching.
func (e Entry) TagText() string {
	return e.Tag.TextLossy()
}

// DescriptionText is TagText for Description.
func (e Entry) DescriptionText() string {
	return e.Description.TextLossy()
}

// NamespaceText is TagText for Namespace.
func (e Entry) NamespaceText() string {
	return e.Namespace.TextLossy()
}

// OwnerText is TagText for Owner.
func (e Entry) OwnerText() string {
	return e.Owner.TextLossy()
}

// FilenameText is TagText for Filename.
func (e Entry) FilenameText() string {
	return e.Filename.TextLossy()
}
