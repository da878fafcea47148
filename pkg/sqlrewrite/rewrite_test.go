// SPDX-License-Identifier: Apache-2.0

package sqlrewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wiltondb/pgdump-toc-edit/pkg/sqltoken"
)

func TestRewrite_Identity(t *testing.T) {
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "test1_dbo", Line: 1, Column: 1},
	}}
	sql := "test1_dbo"
	got, err := Rewrite(tz, map[string]string{}, sql, Unqualified)
	require.NoError(t, err)
	assert.Equal(t, sql, got)
}

func TestRewrite_Preservation(t *testing.T) {
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "other_schema", Line: 1, Column: 1},
	}}
	sql := "other_schema"
	got, err := Rewrite(tz, map[string]string{"test1_dbo": "foobar_dbo"}, sql, Unqualified)
	require.NoError(t, err)
	assert.Equal(t, sql, got)
}

// S3 — qualified rewrite.
func TestRewrite_QualifiedReplacesSchemaDotObjectOnly(t *testing.T) {
	sql := "SELECT * FROM test1_dbo.t JOIN test1_dbo.u ON 1=1;"
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "SELECT", Line: 1, Column: 1},
		{Kind: sqltoken.Other, Value: "*", Line: 1, Column: 8},
		{Kind: sqltoken.Word, Value: "FROM", Line: 1, Column: 10},
		{Kind: sqltoken.Word, Value: "test1_dbo", Line: 1, Column: 15},
		{Kind: sqltoken.Period, Value: ".", Line: 1, Column: 24},
		{Kind: sqltoken.Word, Value: "t", Line: 1, Column: 25},
		{Kind: sqltoken.Word, Value: "JOIN", Line: 1, Column: 27},
		{Kind: sqltoken.Word, Value: "test1_dbo", Line: 1, Column: 32},
		{Kind: sqltoken.Period, Value: ".", Line: 1, Column: 41},
		{Kind: sqltoken.Word, Value: "u", Line: 1, Column: 42},
	}}
	got, err := Rewrite(tz, map[string]string{"test1_dbo": "foobar_dbo"}, sql, Qualified)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM foobar_dbo.t JOIN foobar_dbo.u ON 1=1;", got)
}

func TestRewrite_QualifiedSkipsWordWithoutFollowingPeriod(t *testing.T) {
	sql := "SELECT test1_dbo;"
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "SELECT", Line: 1, Column: 1},
		{Kind: sqltoken.Word, Value: "test1_dbo", Line: 1, Column: 8},
		{Kind: sqltoken.Other, Value: ";", Line: 1, Column: 17},
	}}
	got, err := Rewrite(tz, map[string]string{"test1_dbo": "foobar_dbo"}, sql, Qualified)
	require.NoError(t, err)
	assert.Equal(t, sql, got)
}

// S4 — unqualified rewrite must skip string literals.
func TestRewrite_UnqualifiedSkipsLiterals(t *testing.T) {
	sql := "select '¥¥' as foobar\nfrom foo1.foobaz"
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "select", Line: 1, Column: 1},
		{Kind: sqltoken.SingleQuotedString, Value: "¥¥", Line: 1, Column: 8, Quoted: true},
		{Kind: sqltoken.Word, Value: "as", Line: 1, Column: 13},
		{Kind: sqltoken.Word, Value: "foobar", Line: 1, Column: 16},
		{Kind: sqltoken.Word, Value: "from", Line: 2, Column: 1},
		{Kind: sqltoken.Word, Value: "foo1", Line: 2, Column: 6},
		{Kind: sqltoken.Period, Value: ".", Line: 2, Column: 10},
		{Kind: sqltoken.Word, Value: "foobaz", Line: 2, Column: 11},
	}}
	got, err := Rewrite(tz, map[string]string{"foo1": "bar42"}, sql, Unqualified)
	require.NoError(t, err)
	assert.Equal(t, "select '¥¥' as foobar\nfrom bar42.foobaz", got)
}

// S6 — QualifiedSingleQuoted.
func TestRewrite_QualifiedSingleQuoted(t *testing.T) {
	sql := "SELECT pg_catalog.setval('foo1.foobar', 1, true);"
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "SELECT", Line: 1, Column: 1},
		{Kind: sqltoken.Word, Value: "pg_catalog", Line: 1, Column: 8},
		{Kind: sqltoken.Period, Value: ".", Line: 1, Column: 18},
		{Kind: sqltoken.Word, Value: "setval", Line: 1, Column: 19},
		{Kind: sqltoken.SingleQuotedString, Value: "foo1.foobar", Line: 1, Column: 26, Quoted: true},
	}}
	got, err := Rewrite(tz, map[string]string{"foo1": "bar42"}, sql, QualifiedSingleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "SELECT pg_catalog.setval('bar42.foobar', 1, true);", got)
}

func TestRewrite_PostPositioningMismatchIsFatal(t *testing.T) {
	tz := &sqltoken.Fake{Tokens: []sqltoken.Token{
		{Kind: sqltoken.Word, Value: "test1_dbo", Line: 1, Column: 99},
	}}
	_, err := Rewrite(tz, map[string]string{"test1_dbo": "foobar_dbo"}, "short", Unqualified)
	require.Error(t, err)
}

func TestRewrite_TokenizerErrorPropagates(t *testing.T) {
	tz := &sqltoken.Fake{Err: assert.AnError}
	_, err := Rewrite(tz, map[string]string{}, "anything", Unqualified)
	require.Error(t, err)
}
