// SPDX-License-Identifier: Apache-2.0

package babelfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// S8 — identifier validation.
func TestValidate_Scenarios(t *testing.T) {
	accept := []string{"foo", "_bar", "a1_b"}
	for _, name := range accept {
		t.Run("accept/"+name, func(t *testing.T) {
			assert.NoError(t, Validate(name))
		})
	}

	reject := []string{"", " x", "1abc", "Abc", "ab-c", "select"}
	for _, name := range reject {
		t.Run("reject/"+name, func(t *testing.T) {
			assert.Error(t, Validate(name))
		})
	}
}
