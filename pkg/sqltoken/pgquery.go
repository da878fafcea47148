// SPDX-License-Identifier: Apache-2.0

package sqltoken

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pgq "github.com/pganalyze/pg_query_go/v6"
)

// PgQueryTokenizer implements Tokenizer on top of pg_query_go's raw scanner,
// the same parser dependency the rest of this codebase's SQL handling
// builds on.
type PgQueryTokenizer struct{}

// NewPgQueryTokenizer constructs the concrete tokenizer pkg/dumpedit wires
// into the rewriter by default.
func NewPgQueryTokenizer() *PgQueryTokenizer {
	return &PgQueryTokenizer{}
}

// Tokenize scans sql and classifies each returned token per Kind, computing
// 1-based (line, column) start positions by code-point count so that
// non-ASCII text does not desynchronize later index arithmetic.
func (t *PgQueryTokenizer) Tokenize(sql string) ([]Token, error) {
	result, err := pgq.Scan(sql)
	if err != nil {
		return nil, fmt.Errorf("tokenizer error: %w, sql: %s", err, sql)
	}

	lineStarts := computeLineStarts(sql)

	tokens := make([]Token, 0, len(result.GetTokens()))
	for _, raw := range result.GetTokens() {
		start := int(raw.GetStart())
		end := int(raw.GetEnd())
		if start < 0 || end > len(sql) || start > end {
			continue
		}
		line, col := byteOffsetToLineCol(sql, lineStarts, start)

		kind := Other
		quoted := false
		value := sql[start:end]

		switch raw.GetToken() {
		case pgq.Token_IDENT:
			kind = Word
			if isDoubleQuoted(value) {
				quoted = true
				value = strings.ReplaceAll(value[1:len(value)-1], `""`, `"`)
			}
		case pgq.Token_SCONST:
			kind = SingleQuotedString
			quoted = true
			if isSingleQuoted(value) {
				value = strings.ReplaceAll(value[1:len(value)-1], `''`, `'`)
			}
		case pgq.Token_ASCII_46:
			kind = Period
		}

		tokens = append(tokens, Token{
			Kind:   kind,
			Value:  value,
			Line:   line,
			Column: col,
			Quoted: quoted,
		})
	}

	return tokens, nil
}

func isDoubleQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

func isSingleQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`)
}

func computeLineStarts(s string) []int {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func byteOffsetToLineCol(s string, lineStarts []int, offset int) (line, col int) {
	idx := 0
	for i, ls := range lineStarts {
		if ls <= offset {
			idx = i
		} else {
			break
		}
	}
	col = utf8.RuneCountInString(s[lineStarts[idx]:offset]) + 1
	return idx + 1, col
}
