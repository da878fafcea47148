// SPDX-License-Identifier: Apache-2.0

// Package catalogfile rewrites the TSV catalog data files pg_dump emits
// alongside toc.dat, optionally gzip-compressed, applying a caller-supplied
// per-record or whole-text transform and then swapping the rewritten file
// into place.
package catalogfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// copyEndMarker is the PostgreSQL COPY end-of-data sentinel line, passed
// through unchanged by both rewrite modes.
const copyEndMarker = `\.`

// RecordFunc transforms one tab-split record. Blank lines and the COPY
// end-of-data marker are never passed to it.
type RecordFunc func(fields []string) ([]string, error)

// TextFunc transforms the entire file content as a single string.
type TextFunc func(text string) (string, error)

func paths(dir, filename string, compressed bool) (src, dest, orig string) {
	src = filepath.Join(dir, filename)
	dest = filepath.Join(dir, filename+".rewritten")
	orig = filepath.Join(dir, filename+".orig")
	if compressed {
		src += ".gz"
		dest += ".gz"
		orig += ".gz"
	}
	return src, dest, orig
}

func openReader(path string, compressed bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !compressed {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip reader for %s: %w", path, err)
	}
	return &gzipReadCloser{gz: gz, underlying: f}, nil
}

type gzipReadCloser struct {
	gz         *gzip.Reader
	underlying *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	gerr := g.gz.Close()
	ferr := g.underlying.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

func openWriter(path string, compressed bool, compressionLevel int) (io.WriteCloser, *os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	if !compressed {
		return f, f, nil
	}
	gz, err := gzip.NewWriterLevel(f, compressionLevel)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("open gzip writer for %s: %w", path, err)
	}
	return gz, f, nil
}

// Rewrite applies fn to each record (tab-split fields) of filename in dir,
// one line at a time, and swaps the result into place. compression is the
// dump header's compression level: positive means the file is gzipped.
func Rewrite(dir, filename string, compression int32, fn RecordFunc) error {
	return rewriteInternal(dir, filename, compression, func(lines []string) ([]string, error) {
		out := make([]string, len(lines))
		for i, line := range lines {
			rewritten, err := rewriteLine(line, fn)
			if err != nil {
				return nil, err
			}
			out[i] = rewritten
		}
		return out, nil
	}, true)
}

// RewriteWholeText decompresses filename in dir, hands its entire content
// to fn as one string, and writes the returned string verbatim before
// swapping the result into place.
func RewriteWholeText(dir, filename string, compression int32, fn TextFunc) error {
	return rewriteInternal(dir, filename, compression, func(lines []string) ([]string, error) {
		text := strings.Join(lines, "\n")
		rewritten, err := fn(text)
		if err != nil {
			return nil, err
		}
		return []string{rewritten}, nil
	}, false)
}

func rewriteLine(line string, fn RecordFunc) (string, error) {
	if line == copyEndMarker || line == "" {
		return line, nil
	}
	fields := strings.Split(line, "\t")
	rewritten, err := fn(fields)
	if err != nil {
		return "", err
	}
	return strings.Join(rewritten, "\t"), nil
}

func rewriteInternal(dir, filename string, compression int32, fn func([]string) ([]string, error), lineByLine bool) error {
	compressed := compression > 0
	src, dest, orig := paths(dir, filename, compressed)

	reader, err := openReader(src, compressed)
	if err != nil {
		return err
	}
	defer reader.Close()

	writer, underlying, err := openWriter(dest, compressed, int(compression))
	if err != nil {
		return err
	}

	if lineByLine {
		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			rewritten, err := fn([]string{scanner.Text()})
			if err != nil {
				writer.Close()
				underlying.Close()
				return err
			}
			if _, err := io.WriteString(writer, rewritten[0]+"\n"); err != nil {
				writer.Close()
				underlying.Close()
				return fmt.Errorf("write %s: %w", dest, err)
			}
		}
		if err := scanner.Err(); err != nil {
			writer.Close()
			underlying.Close()
			return fmt.Errorf("read %s: %w", src, err)
		}
	} else {
		data, err := io.ReadAll(reader)
		if err != nil {
			writer.Close()
			underlying.Close()
			return fmt.Errorf("read %s: %w", src, err)
		}
		rewritten, err := fn([]string{string(data)})
		if err != nil {
			writer.Close()
			underlying.Close()
			return err
		}
		if _, err := io.WriteString(writer, rewritten[0]); err != nil {
			writer.Close()
			underlying.Close()
			return fmt.Errorf("write %s: %w", dest, err)
		}
	}

	if err := writer.Close(); err != nil {
		underlying.Close()
		return fmt.Errorf("close %s: %w", dest, err)
	}
	if underlying != writer {
		if err := underlying.Close(); err != nil {
			return fmt.Errorf("close %s: %w", dest, err)
		}
	}

	if err := os.Rename(src, orig); err != nil {
		return fmt.Errorf("rename %s to %s: %w", src, orig, err)
	}
	if err := os.Rename(dest, src); err != nil {
		return fmt.Errorf("rename %s to %s: %w", dest, src, err)
	}
	return nil
}
