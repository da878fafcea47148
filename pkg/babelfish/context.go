// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"github.com/wiltondb/pgdump-toc-edit/pkg/renamelog"
	"github.com/wiltondb/pgdump-toc-edit/pkg/sqltoken"
)

// The Babelfish catalog tags the rename orchestrator knows about: one
// required (sysdatabases), four reordered relative to it, and
// authid_user_ext, whose data file is rewritten but which is not reordered.
const (
	TagSysDatabases       = "babelfish_sysdatabases"
	TagExtendedProperties = "babelfish_extended_properties"
	TagFunctionExt        = "babelfish_function_ext"
	TagNamespaceExt       = "babelfish_namespace_ext"
	TagViewDef            = "babelfish_view_def"
	TagAuthidUserExt      = "babelfish_authid_user_ext"
)

// RenameContext accumulates the state discovered and produced while
// walking a single TOC: the original and destination database names, the
// schema and owner rename rules discovered along the way, and the catalog
// data filenames found for the recognized Babelfish catalogs. It is
// owned by a single Rename/PlanRename call and never shared.
type RenameContext struct {
	OrigDBName string
	DestDBName string

	// Schemas maps an original schema name to its destination name.
	Schemas map[string]string
	// Owners maps an original owner role name to its destination name.
	Owners map[string]string
	// CatalogFiles maps a recognized Babelfish catalog tag to the on-disk
	// filename recorded for its TABLE DATA entry.
	CatalogFiles map[string]string

	Tokenizer sqltoken.Tokenizer
	Logger    renamelog.Logger

	origDBNameKnown bool
	catalogDir      string
}

// NewRenameContext constructs an empty context for destDBName, ready to be
// fed entries in TOC order.
func NewRenameContext(destDBName string, tz sqltoken.Tokenizer, logger renamelog.Logger) *RenameContext {
	if logger == nil {
		logger = renamelog.NewNoopLogger()
	}
	return &RenameContext{
		DestDBName:   destDBName,
		Schemas:      map[string]string{},
		Owners:       map[string]string{},
		CatalogFiles: map[string]string{},
		Tokenizer:    tz,
		Logger:       logger,
	}
}
