// SPDX-License-Identifier: Apache-2.0

package tocjson

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/toc.schema.json
var schemaBytes []byte

const schemaResourceName = "toc.schema.json"

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("decode embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaResourceName, doc); err != nil {
		return nil, fmt.Errorf("add embedded schema resource: %w", err)
	}

	sch, err := c.Compile(schemaResourceName)
	if err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}
	return sch, nil
}

// ValidationError distinguishes a JSON Schema violation from a decode or
// UTF-8 failure, per SPEC_FULL's error-class separation for pkg/tocjson.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document does not match the TOC schema: %s", e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func validateAgainstSchema(v any) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(v); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}
