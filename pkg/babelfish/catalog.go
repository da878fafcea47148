// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"fmt"

	"github.com/wiltondb/pgdump-toc-edit/pkg/catalogfile"
	"github.com/wiltondb/pgdump-toc-edit/pkg/sqlrewrite"
)

// RewriteCatalogFiles rewrites the five Babelfish catalog data files in
// dir, one per recognized tag recorded in c.CatalogFiles, using the
// header's compression level. A catalog referenced by this step but not
// discovered in the TOC is a structural error.
func (c *RenameContext) RewriteCatalogFiles(dir string, compression int32) error {
	c.catalogDir = dir
	ops := []struct {
		tag string
		fn  func(filename string, compression int32) error
	}{
		{TagAuthidUserExt, c.rewriteAuthidUserExt},
		{TagExtendedProperties, c.rewriteExtendedProperties},
		{TagFunctionExt, c.rewriteFunctionExt},
		{TagNamespaceExt, c.rewriteNamespaceExt},
		{TagSysDatabases, c.rewriteSysDatabases},
	}

	for _, op := range ops {
		filename, ok := c.CatalogFiles[op.tag]
		if !ok {
			return fmt.Errorf("catalog %q referenced by rewrite step but not discovered in TOC", op.tag)
		}
		c.Logger.LogCatalogFileRewrite(op.tag, filename)
		if err := op.fn(filename, compression); err != nil {
			return fmt.Errorf("rewrite catalog %q: %w", op.tag, err)
		}
	}
	return nil
}

func (c *RenameContext) rewriteAuthidUserExt(filename string, compression int32) error {
	return catalogfile.Rewrite(c.catalogDir, filename, compression, func(fields []string) ([]string, error) {
		if len(fields) == 0 {
			return fields, nil
		}
		if dest, ok := c.Owners[fields[0]]; ok {
			fields[0] = dest
		}
		return fields, nil
	})
}

func (c *RenameContext) rewriteExtendedProperties(filename string, compression int32) error {
	return catalogfile.RewriteWholeText(c.catalogDir, filename, compression, func(text string) (string, error) {
		return sqlrewrite.Rewrite(c.Tokenizer, c.Schemas, text, sqlrewrite.QualifiedSingleQuoted)
	})
}

func (c *RenameContext) rewriteFunctionExt(filename string, compression int32) error {
	return catalogfile.Rewrite(c.catalogDir, filename, compression, func(fields []string) ([]string, error) {
		if len(fields) > 0 {
			if dest, ok := c.Schemas[fields[0]]; ok {
				fields[0] = dest
			}
		}
		if len(fields) > 3 {
			rewritten, err := sqlrewrite.Rewrite(c.Tokenizer, c.Schemas, fields[3], sqlrewrite.Qualified)
			if err != nil {
				return nil, err
			}
			fields[3] = rewritten
		}
		return fields, nil
	})
}

func (c *RenameContext) rewriteNamespaceExt(filename string, compression int32) error {
	return catalogfile.Rewrite(c.catalogDir, filename, compression, func(fields []string) ([]string, error) {
		if len(fields) > 0 {
			if dest, ok := c.Schemas[fields[0]]; ok {
				fields[0] = dest
			}
		}
		return fields, nil
	})
}

func (c *RenameContext) rewriteSysDatabases(filename string, compression int32) error {
	return catalogfile.Rewrite(c.catalogDir, filename, compression, func(fields []string) ([]string, error) {
		if len(fields) > 4 && fields[4] == c.OrigDBName {
			fields[4] = c.DestDBName
		}
		return fields, nil
	})
}
