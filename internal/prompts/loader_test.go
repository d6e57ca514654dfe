package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ClearCache()

	prompt, err := Get("guide.json", "generate_rules")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Brief}}")
	assert.Contains(t, prompt, "{{.Categories}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("guide.json", "no_such_prompt")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "generate_rules")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("guide.json", "no_such_prompt")
	})
}

func TestFormat(t *testing.T) {
	template := "Brand: {{.Brief}}; categories: {{.Categories}}"
	result := Format(template, map[string]string{
		"Brief":      "warm and direct",
		"Categories": "Emojis, Numbers",
	})
	assert.Equal(t, "Brand: warm and direct; categories: Emojis, Numbers", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("hello {{.Missing}}", map[string]string{"Other": "x"})
	assert.Equal(t, "hello {{.Missing}}", result)
}

func TestKeys(t *testing.T) {
	keys, err := Keys("guide.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "generate_rules")
	assert.Contains(t, keys, "generate_section")
	assert.Contains(t, keys, "guide_template")
}

func TestGuideTemplate_SectionLayout(t *testing.T) {
	template, err := Get("guide.json", "guide_template")
	require.NoError(t, err)

	// The template fixes the guide's section order
	assert.Contains(t, template, "## Brand Voice")
	assert.Contains(t, template, "## Style Rules")
	assert.Contains(t, template, "## Before & After")
	assert.Contains(t, template, "## Word List")
}
