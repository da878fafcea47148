// SPDX-License-Identifier: Apache-2.0

// Package babelfish implements the rename orchestrator: discovering a
// Babelfish logical database's schemas and owners from its TOC, reordering
// dependency-sensitive catalog entries, and rewriting both the TOC and the
// on-disk catalog data files to reflect a new database name.
package babelfish

import (
	"errors"
	"strings"

	pgq "github.com/pganalyze/pg_query_go/v6"
)

// ErrInvalidDBName is returned, with no partial acceptance, for any
// violation of the destination database name's identifier rules.
var ErrInvalidDBName = errors.New("Invalid db name")

// Validate accepts name iff it is non-empty, equal to its own
// whitespace-trimmed form, starts with a lowercase ASCII letter or
// underscore, consists entirely of lowercase ASCII letters, digits, and
// underscores, and is not a PostgreSQL reserved keyword.
func Validate(name string) error {
	if name == "" {
		return ErrInvalidDBName
	}
	if strings.TrimSpace(name) != name {
		return ErrInvalidDBName
	}
	first := name[0]
	if !(first == '_' || (first >= 'a' && first <= 'z')) {
		return ErrInvalidDBName
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			return ErrInvalidDBName
		}
	}
	if isReservedKeyword(name) {
		return ErrInvalidDBName
	}
	return nil
}

func isReservedKeyword(name string) bool {
	result, err := pgq.Scan(name)
	if err != nil {
		return false
	}
	tokens := result.GetTokens()
	if len(tokens) != 1 {
		return false
	}
	return tokens[0].GetKeywordKind() == pgq.KeywordKind_RESERVED_KEYWORD
}
