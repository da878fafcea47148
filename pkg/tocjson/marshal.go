// SPDX-License-Identifier: Apache-2.0

package tocjson

import (
	"encoding/json"
	"fmt"

	"github.com/wiltondb/pgdump-toc-edit/pkg/toc"
)

// Marshal projects header/entries to their JSON document form and encodes
// it with two-space indentation for hand editing.
func Marshal(h toc.Header, entries []toc.Entry) ([]byte, error) {
	doc, err := ToDocument(h, entries)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal decodes a JSON document, validates it against the embedded TOC
// schema, and reconstructs a header and entry list from it. Schema
// violations are returned as a *ValidationError, distinct from decode
// failures.
func Unmarshal(data []byte) (toc.Header, []toc.Entry, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return toc.Header{}, nil, fmt.Errorf("decode json: %w", err)
	}
	if err := validateAgainstSchema(raw); err != nil {
		return toc.Header{}, nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return toc.Header{}, nil, fmt.Errorf("decode json into document: %w", err)
	}

	return FromDocument(doc)
}
