// SPDX-License-Identifier: Apache-2.0

package sqltoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgQueryTokenizer_ClassifiesWordsAndPeriods(t *testing.T) {
	tz := NewPgQueryTokenizer()
	tokens, err := tz.Tokenize("SELECT * FROM test1_dbo.t")
	require.NoError(t, err)

	var sawWord, sawPeriod bool
	for _, tok := range tokens {
		if tok.Kind == Word && tok.Value == "test1_dbo" {
			sawWord = true
		}
		if tok.Kind == Period {
			sawPeriod = true
		}
	}
	assert.True(t, sawWord, "expected a Word token for test1_dbo")
	assert.True(t, sawPeriod, "expected a Period token")
}

func TestPgQueryTokenizer_StripsSingleQuoteDelimiters(t *testing.T) {
	tz := NewPgQueryTokenizer()
	tokens, err := tz.Tokenize("SELECT pg_catalog.setval('foo1.foobar', 1, true)")
	require.NoError(t, err)

	var found bool
	for _, tok := range tokens {
		if tok.Kind == SingleQuotedString {
			assert.Equal(t, "foo1.foobar", tok.Value)
			assert.True(t, tok.Quoted)
			found = true
		}
	}
	assert.True(t, found, "expected a SingleQuotedString token")
}

func TestPgQueryTokenizer_LineColumnAccountsForNonASCII(t *testing.T) {
	tz := NewPgQueryTokenizer()
	tokens, err := tz.Tokenize("select '¥¥' as foobar\nfrom foo1.foobaz")
	require.NoError(t, err)

	for _, tok := range tokens {
		if tok.Kind == Word && tok.Value == "foo1" {
			assert.Equal(t, 2, tok.Line)
			assert.Equal(t, 6, tok.Column)
		}
	}
}
