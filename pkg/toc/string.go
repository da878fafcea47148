// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/oapi-codegen/nullable"
)

// String is a three-state value: absent, empty, or present with arbitrary
// bytes. The three states are not interchangeable on the wire (absent is
// length -1, empty is length 0), so this is a sum type rather than a bare
// []byte with a presence flag bolted on top of the zero value.
type String struct {
	present bool
	data    []byte
}

// NoneString is the absent state (wire length -1).
func NoneString() String {
	return String{present: false}
}

// EmptyString is the present-but-empty state (wire length 0).
func EmptyString() String {
	return String{present: true, data: []byte{}}
}

// NewString wraps raw, possibly non-UTF-8, bytes as a present value.
func NewString(raw []byte) String {
	data := make([]byte, len(raw))
	copy(data, raw)
	return String{present: true, data: data}
}

// StringFromText wraps a Go string as a present value.
func StringFromText(s string) String {
	return NewString([]byte(s))
}

// IsAbsent reports whether the value is the absent state.
func (s String) IsAbsent() bool {
	return !s.present
}

// Bytes returns the underlying bytes, or nil for the absent state.
func (s String) Bytes() []byte {
	return s.data
}

// Text decodes the value as UTF-8, returning an error if the bytes are not
// valid UTF-8. The absent state decodes to the empty string, matching the
// textual display behavior used by the print operation.
func (s String) Text() (string, error) {
	if !s.present {
		return "", nil
	}
	if !utf8.Valid(s.data) {
		return "", fmt.Errorf("value is not valid UTF-8")
	}
	return string(s.data), nil
}

// TextLossy decodes the value as UTF-8, substituting the replacement
// character for invalid sequences. Used for display only.
func (s String) TextLossy() string {
	if !s.present {
		return ""
	}
	return strings_ToValidUTF8(s.data)
}

func strings_ToValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		out = append(out, r)
		i += size
	}
	return string(out)
}

// ReadString reads a single length-prefixed string field from r per §4.1: a
// length of -1 means absent, 0 means empty, and any positive length reads
// exactly that many raw bytes with no trailing terminator.
func ReadString(r io.Reader) (String, error) {
	n, err := ReadInt32(r)
	if err != nil {
		return String{}, err
	}
	switch {
	case n < 0:
		return NoneString(), nil
	case n == 0:
		return EmptyString(), nil
	}
	buf := zeroBuf(int(n))
	if err := readFull(r, buf); err != nil {
		return String{}, err
	}
	return String{present: true, data: buf}, nil
}

// WriteString emits s using the same length-prefix encoding ReadString
// consumes.
func WriteString(w io.Writer, s String) error {
	if !s.present {
		return WriteInt32(w, -1)
	}
	if err := WriteInt32(w, int32(len(s.data))); err != nil {
		return err
	}
	_, err := w.Write(s.data)
	return err
}

// ToNullable projects s for JSON: absent becomes a null value, and both
// the empty and present states become a set value (possibly "") —
// matching the wire's three states onto nullable.Nullable's two states
// plus the guaranteed-present empty string.
func (s String) ToNullable() (nullable.Nullable[string], error) {
	if !s.present {
		return nullable.NewNullNullable[string](), nil
	}
	text, err := s.Text()
	if err != nil {
		return nullable.Nullable[string]{}, err
	}
	return nullable.NewNullableWithValue(text), nil
}

// StringFromNullable is the inverse of ToNullable.
func StringFromNullable(n nullable.Nullable[string]) (String, error) {
	if n.IsNull() || !n.IsSpecified() {
		return NoneString(), nil
	}
	v, err := n.Get()
	if err != nil {
		return String{}, err
	}
	return StringFromText(v), nil
}
