package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Bare JSON untouched", `{"a": 1}`, `{"a": 1}`},
		{"JSON fence stripped", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Generic fence stripped", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"Fence with language id", "```javascript\n[1, 2]\n```", "[1, 2]"},
		{"Surrounding whitespace trimmed", "  {\"a\": 1}  ", `{"a": 1}`},
		{"Array payload", "```json\n[{\"category\": \"Emojis\"}]\n```", `[{"category": "Emojis"}]`},
		{"Empty string", "", ""},
		{"Fence on first line with brace", "```{\"a\": 1}```", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
