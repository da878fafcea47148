// SPDX-License-Identifier: Apache-2.0

package tocjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

const testDataDir = "testdata"

// TestValidateAgainstSchema_Fixtures runs every txtar fixture under
// testdata/ — each bundles a candidate JSON document and the boolean
// verdict it should produce — against the embedded TOC schema.
func TestValidateAgainstSchema_Fixtures(t *testing.T) {
	files, err := os.ReadDir(testDataDir)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file.Name(), func(t *testing.T) {
			ac, err := txtar.ParseFile(filepath.Join(testDataDir, file.Name()))
			require.NoError(t, err)
			require.Len(t, ac.Files, 2)

			var v any
			require.NoError(t, json.Unmarshal(ac.Files[0].Data, &v))

			shouldValidate, err := strconv.ParseBool(strings.TrimSpace(string(ac.Files[1].Data)))
			require.NoError(t, err)

			err = validateAgainstSchema(v)
			if shouldValidate {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
