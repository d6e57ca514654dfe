package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/styleguide-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateRulesFile(t *testing.T) {
	input := writeTempFile(t, "candidates.json", `[
		{"category":"Emojis","title":"One at most","description":"d","examples":{"good":"g","bad":"b"}},
		{"category":"emojis","title":"Duplicate","description":"d","examples":{"good":"g","bad":"b"}},
		{"category":"Numbers","title":"Spell out","description":"d","examples":{"good":"g","bad":"b"}}
	]`)
	output := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, validateRulesFile(input, output, "", false))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var result types.ValidationResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Len(t, result.Valid, 2)
	assert.Len(t, result.Invalid, 1)
}

func TestValidateRulesFile_BadPayloadShape(t *testing.T) {
	input := writeTempFile(t, "candidates.json", `{"not":"an array"}`)
	err := validateRulesFile(input, filepath.Join(t.TempDir(), "out.json"), "", false)
	assert.Error(t, err)
}

func TestValidateRulesFile_MissingInput(t *testing.T) {
	err := validateRulesFile(filepath.Join(t.TempDir(), "nope.json"), "", "", false)
	assert.Error(t, err)
}

func TestValidateRulesFile_CustomSchema(t *testing.T) {
	schema := writeTempFile(t, "strict.schema.json", `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["category", "title"]
		}
	}`)

	input := writeTempFile(t, "candidates.json", `[
		{"category":"Emojis","title":"One at most","description":"d","examples":{"good":"g","bad":"b"}}
	]`)
	output := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, validateRulesFile(input, output, schema, false))

	var result types.ValidationResult
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Len(t, result.Valid, 1)
}

func TestValidateRulesFile_CustomSchemaRejects(t *testing.T) {
	schema := writeTempFile(t, "strict.schema.json", `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["category", "title"]
		}
	}`)

	// Missing title fails the strict gate even though the built-in gate
	// would let the validator partition it
	input := writeTempFile(t, "candidates.json", `[{"category":"Emojis"}]`)
	err := validateRulesFile(input, filepath.Join(t.TempDir(), "out.json"), schema, false)
	assert.Error(t, err)
}
