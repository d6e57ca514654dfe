package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(simpleSchema, `{"name": "ok"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(simpleSchema, `{}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(simpleSchema, `{"name": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": ]`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	jsonPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(simpleSchema), 0644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": "ok"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0644))
	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(simpleSchema), 0644))

	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(dir, "missing.json")))
	assert.Error(t, ValidateJSON(filepath.Join(dir, "missing-schema.json"), schemaPath))
}

func TestResolveSchemaPath(t *testing.T) {
	// The style rules schema lives two levels up from this package
	resolved := ResolveSchemaPath(StyleRulesSchemaFile)
	assert.NotEmpty(t, resolved, "style rules schema should resolve from the package directory")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
