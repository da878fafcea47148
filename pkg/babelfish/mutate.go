// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"fmt"
	"strings"

	"github.com/wiltondb/pgdump-toc-edit/pkg/sqlrewrite"
	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

// MutateEntry dispatches by description, rewriting e's fields in place
// according to spec.md §4.7's per-entry mutation rules, and returns the
// mutated copy.
func (c *RenameContext) MutateEntry(e toc.Entry) (toc.Entry, error) {
	c.Logger.LogEntryRewrite(e.DescriptionText(), e.TagText())

	switch {
	case e.DescriptionText() == "SCHEMA":
		return c.mutateSchema(e)
	case e.DescriptionText() == "ACL" && strings.HasPrefix(e.TagText(), "SCHEMA "):
		return c.mutateSchemaACL(e)
	default:
		return c.mutateOther(e)
	}
}

func (c *RenameContext) mutateSchema(e toc.Entry) (toc.Entry, error) {
	if err := c.discoverSchema(e.TagText(), e.OwnerText()); err != nil {
		return toc.Entry{}, err
	}

	var err error
	if e.Tag, err = c.rewriteUnqualified(e.Tag); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite tag: %w", err)
	}
	if e.CreateStmt, err = c.rewriteUnqualified(e.CreateStmt); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite create_stmt: %w", err)
	}
	if e.DropStmt, err = c.rewriteUnqualified(e.DropStmt); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite drop_stmt: %w", err)
	}
	e.Owner = c.substituteOwner(e.Owner)
	return e, nil
}

func (c *RenameContext) mutateSchemaACL(e toc.Entry) (toc.Entry, error) {
	var err error
	if e.Tag, err = c.rewriteUnqualified(e.Tag); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite tag: %w", err)
	}
	if e.CreateStmt, err = c.rewriteUnqualified(e.CreateStmt); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite create_stmt: %w", err)
	}
	e.Owner = c.substituteOwner(e.Owner)
	return e, nil
}

func (c *RenameContext) mutateOther(e toc.Entry) (toc.Entry, error) {
	if e.DescriptionText() == "TABLE DATA" {
		switch e.TagText() {
		case TagSysDatabases, TagExtendedProperties, TagFunctionExt, TagNamespaceExt, TagViewDef, TagAuthidUserExt:
			c.CatalogFiles[e.TagText()] = e.FilenameText()
		}
	}

	var err error
	if e.Tag, err = c.rewriteQualified(e.Tag); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite tag: %w", err)
	}
	if e.CreateStmt, err = c.rewriteQualified(e.CreateStmt); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite create_stmt: %w", err)
	}
	if e.DropStmt, err = c.rewriteQualified(e.DropStmt); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite drop_stmt: %w", err)
	}
	if e.CopyStmt, err = c.rewriteQualified(e.CopyStmt); err != nil {
		return toc.Entry{}, fmt.Errorf("rewrite copy_stmt: %w", err)
	}
	e.Namespace = c.substituteSchema(e.Namespace)
	e.Owner = c.substituteOwner(e.Owner)
	return e, nil
}

func (c *RenameContext) rewriteUnqualified(s toc.String) (toc.String, error) {
	return c.rewriteMode(s, sqlrewrite.Unqualified)
}

func (c *RenameContext) rewriteQualified(s toc.String) (toc.String, error) {
	return c.rewriteMode(s, sqlrewrite.Qualified)
}

func (c *RenameContext) rewriteMode(s toc.String, mode sqlrewrite.Mode) (toc.String, error) {
	if s.IsAbsent() {
		return s, nil
	}
	text, err := s.Text()
	if err != nil {
		return toc.String{}, err
	}
	if text == "" {
		return s, nil
	}
	rewritten, err := sqlrewrite.Rewrite(c.Tokenizer, c.Schemas, text, mode)
	if err != nil {
		return toc.String{}, err
	}
	return toc.StringFromText(rewritten), nil
}

func (c *RenameContext) substituteSchema(s toc.String) toc.String {
	return substituteFromMap(s, c.Schemas)
}

func (c *RenameContext) substituteOwner(s toc.String) toc.String {
	return substituteFromMap(s, c.Owners)
}

func substituteFromMap(s toc.String, rules map[string]string) toc.String {
	if s.IsAbsent() {
		return s
	}
	text := s.TextLossy()
	if dest, ok := rules[text]; ok {
		return toc.StringFromText(dest)
	}
	return s
}
