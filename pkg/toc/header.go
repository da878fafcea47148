// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Header is the fixed-shape preamble of toc.dat.
type Header struct {
	Magic       [5]byte
	Version     [3]byte
	Flags       [3]byte
	Compression int32
	Timestamp   DateTime

	PostgresDBName String
	VersionServer  String
	VersionPgdump  String

	TocCount int32
}

// String renders the header for the print operation, one field per line,
// matching the layout of the original CLI's text dump.
func (h Header) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Magic: %s\n", string(h.Magic[:]))
	fmt.Fprintf(&b, "Dump format version: %d.%d.%d\n", h.Version[0], h.Version[1], h.Version[2])
	fmt.Fprintf(&b, "Size of int: %d\n", h.Flags[0])
	fmt.Fprintf(&b, "Compression level: %d\n", h.Compression)
	fmt.Fprintf(&b, "Timestamp: %s\n", h.Timestamp.String())
	fmt.Fprintf(&b, "DST: %t\n", h.Timestamp.IsDST != 0)
	fmt.Fprintf(&b, "Postgres DB: %s\n", h.PostgresDBName.TextLossy())
	fmt.Fprintf(&b, "Server version: %s\n", h.DisplayVersionServer())
	fmt.Fprintf(&b, "pg_dump version: %s\n", h.DisplayVersionPgdump())
	fmt.Fprintf(&b, "TOC entries: %d\n", h.TocCount)
	return b.String()
}

// DisplayVersionServer canonicalizes the stored Postgres server version
// with golang.org/x/mod/semver when it parses as one (pg_dump embeds
// version strings like "150003"/"v15.3", not consistently semver-shaped),
// falling back to the raw lossy text otherwise. Display only: the stored
// bytes are what gets written back to disk.
func (h Header) DisplayVersionServer() string {
	return displaySemver(h.VersionServer.TextLossy())
}

// DisplayVersionPgdump is DisplayVersionServer for the pg_dump version field.
func (h Header) DisplayVersionPgdump() string {
	return displaySemver(h.VersionPgdump.TextLossy())
}

func displaySemver(raw string) string {
	candidate := raw
	if !strings.HasPrefix(candidate, "v") {
		candidate = "v" + candidate
	}
	if semver.IsValid(candidate) {
		return semver.Canonical(candidate)
	}
	return raw
}

// ValidateFixed checks the magic, version, and flags fields against the
// single recognized dump format, per spec.md §3 and OQ-1: both version
// bytes must match (the AND-combined reading), not just one.
func (h Header) ValidateFixed() error {
	if h.Magic != Magic {
		return fmt.Errorf("magic check failure")
	}
	if h.Version[0] != SupportedVersion[0] || h.Version[1] != SupportedVersion[1] {
		return fmt.Errorf("version check failure")
	}
	if h.Flags != SupportedFlags {
		return fmt.Errorf("flags check failure")
	}
	return nil
}
