package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/styleguide-studio/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRulesSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "style_rules.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestStyleRulesSchema_UsableAsJSONSchema(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "style_rules.schema.json"))
	require.NoError(t, err)

	// A schema that loads and validates a trivial document is well-formed
	err = schemas.ValidateJSONString(string(data), `[]`)
	assert.NoError(t, err)
}
