// SPDX-License-Identifier: Apache-2.0

// Package toc implements a bit-exact codec for the table-of-contents file
// (toc.dat) of a PostgreSQL directory-format dump.
package toc

import (
	"fmt"
	"io"
)

// Magic is the five-byte signature at the start of every toc.dat.
var Magic = [5]byte{'P', 'G', 'D', 'M', 'P'}

// SupportedVersion is the dump format major/minor this codec understands.
// Both bytes must match exactly (see spec.md OQ-1); the revision byte is
// opaque and round-tripped verbatim.
var SupportedVersion = [2]byte{1, 14}

// SupportedFlags are the three flag bytes this codec accepts: integer
// size (4), file-offset size (8), and format tag (3 = directory format).
var SupportedFlags = [3]byte{4, 8, 3}

// zeroBuf returns a zero-filled buffer of the given length, used as the
// read target for fixed-width fields so a short read always leaves
// predictable bytes behind for diagnostics.
func zeroBuf(n int) []byte {
	return make([]byte, n)
}

// readFull reads exactly len(buf) bytes from r, turning a short read into
// a fatal parse error.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("short read: %w", err)
	}
	return nil
}

// ReadInt32 decodes a signed 32-bit integer in the dump's 5-byte
// sign-and-magnitude little-endian encoding: one sign byte (0 = non
// negative, nonzero = negative) followed by the magnitude as 4
// little-endian bytes.
func ReadInt32(r io.Reader) (int32, error) {
	buf := zeroBuf(5)
	if err := readFull(r, buf); err != nil {
		return 0, err
	}
	var mag uint32
	for i := 1; i < len(buf); i++ {
		b := uint32(buf[i])
		if b != 0 {
			mag |= b << (8 * uint(i-1))
		}
	}
	val := int32(mag)
	if buf[0] != 0 {
		val = -val
	}
	return val, nil
}

// WriteInt32 encodes v using the dump's 5-byte sign-and-magnitude
// little-endian encoding. A value of -0 is never produced: the upstream
// pg_dump source never emits it, and callers hold only canonical int32
// values that negate to a distinct nonzero magnitude.
func WriteInt32(w io.Writer, v int32) error {
	buf := make([]byte, 5)
	var mag uint32
	if v >= 0 {
		buf[0] = 0
		mag = uint32(v)
	} else {
		buf[0] = 1
		mag = uint32(-v)
	}
	buf[1] = byte(mag)
	buf[2] = byte(mag >> 8)
	buf[3] = byte(mag >> 16)
	buf[4] = byte(mag >> 24)
	_, err := w.Write(buf)
	return err
}
