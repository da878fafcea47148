// SPDX-License-Identifier: Apache-2.0

package catalogfile

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlain(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeGzip(t *testing.T, dir, name, content string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name+".gz"))
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func TestRewrite_PlainPerRecord(t *testing.T) {
	dir := t.TempDir()
	writePlain(t, dir, "babelfish_authid_user_ext.dat", "test1_dbo\tuser1\n\\.\n")

	err := Rewrite(dir, "babelfish_authid_user_ext.dat", 0, func(fields []string) ([]string, error) {
		if fields[0] == "test1_dbo" {
			fields[0] = "foobar_dbo"
		}
		return fields, nil
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "babelfish_authid_user_ext.dat"))
	require.NoError(t, err)
	assert.Equal(t, "foobar_dbo\tuser1\n\\.\n", string(got))

	_, err = os.Stat(filepath.Join(dir, "babelfish_authid_user_ext.dat.orig"))
	require.NoError(t, err)
}

func TestRewrite_GzipPerRecord(t *testing.T) {
	dir := t.TempDir()
	writeGzip(t, dir, "babelfish_namespace_ext.dat", "test1_dbo\t1\n")

	err := Rewrite(dir, "babelfish_namespace_ext.dat", 6, func(fields []string) ([]string, error) {
		if fields[0] == "test1_dbo" {
			fields[0] = "foobar_dbo"
		}
		return fields, nil
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "babelfish_namespace_ext.dat.gz"))
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "foobar_dbo\t1\n", string(data))

	_, err = os.Stat(filepath.Join(dir, "babelfish_namespace_ext.dat.orig.gz"))
	require.NoError(t, err)
}

func TestRewriteWholeText_Plain(t *testing.T) {
	dir := t.TempDir()
	writePlain(t, dir, "babelfish_extended_properties.dat", "SELECT pg_catalog.setval('foo1.foobar', 1, true);\n")

	err := RewriteWholeText(dir, "babelfish_extended_properties.dat", 0, func(text string) (string, error) {
		return text + "-- appended", nil
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "babelfish_extended_properties.dat"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "-- appended")
}

func TestRewrite_PassesThroughBlankAndCopyEndMarker(t *testing.T) {
	dir := t.TempDir()
	writePlain(t, dir, "f.dat", "a\tb\n\n\\.\n")

	var seen [][]string
	err := Rewrite(dir, "f.dat", 0, func(fields []string) ([]string, error) {
		seen = append(seen, fields)
		return fields, nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 1)
	assert.Equal(t, []string{"a", "b"}, seen[0])
}
