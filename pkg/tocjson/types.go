// SPDX-License-Identifier: Apache-2.0

// Package tocjson projects pkg/toc's Header and Entry types to and from a
// textual JSON form suitable for hand editing.
package tocjson

import "github.com/oapi-codegen/nullable"

// Document is the top-level JSON shape: a header and its entries, in their
// original order.
type Document struct {
	Header  Header  `json:"header"`
	Entries []Entry `json:"entries"`
}

// Header mirrors toc.Header with hex-encoded byte arrays and a
// nullable-string projection of TocString fields.
type Header struct {
	Magic          []string             `json:"magic"`
	Version        []string             `json:"version"`
	Flags          []string             `json:"flags"`
	Compression    int32                `json:"compression"`
	Timestamp      string               `json:"timestamp"`
	IsDST          bool                 `json:"is_dst"`
	PostgresDBName nullable.Nullable[string] `json:"postgres_dbname"`
	VersionServer  nullable.Nullable[string] `json:"version_server"`
	VersionPgdump  nullable.Nullable[string] `json:"version_pgdump"`
	TocCount       int32                `json:"toc_count"`
}

// Entry mirrors toc.Entry with a nullable-string projection of every
// TocString field.
type Entry struct {
	DumpID        int32                       `json:"dump_id"`
	HadDumper     int32                       `json:"had_dumper"`
	TableOID      nullable.Nullable[string]   `json:"table_oid"`
	CatalogOID    nullable.Nullable[string]   `json:"catalog_oid"`
	Tag           nullable.Nullable[string]   `json:"tag"`
	Description   nullable.Nullable[string]   `json:"description"`
	Section       int32                       `json:"section"`
	CreateStmt    nullable.Nullable[string]   `json:"create_stmt"`
	DropStmt      nullable.Nullable[string]   `json:"drop_stmt"`
	CopyStmt      nullable.Nullable[string]   `json:"copy_stmt"`
	Namespace     nullable.Nullable[string]   `json:"namespace"`
	Tablespace    nullable.Nullable[string]   `json:"tablespace"`
	Tableam       nullable.Nullable[string]   `json:"tableam"`
	Owner         nullable.Nullable[string]   `json:"owner"`
	TableWithOIDs nullable.Nullable[string]   `json:"table_with_oids"`
	Deps          []nullable.Nullable[string] `json:"deps"`
	Filename      nullable.Nullable[string]   `json:"filename"`
}
