package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRuleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Clean text untouched", "Keep sentences short and friendly.", "Keep sentences short and friendly."},
		{"Replacement character stripped", "Say hi� to users", "Say hi to users"},
		{"Zero-width space stripped", "zero​width", "zerowidth"},
		{"Zero-width joiner stripped", "join‍er", "joiner"},
		{"Word joiner stripped", "word⁠joiner", "wordjoiner"},
		{"Variation selector stripped", "emoji️ tail", "emoji tail"},
		{"Glued quote healed", `Click"Create" to continue`, `Click "Create" to continue`},
		{"Glued curly quote healed", "Tap“Save” now", "Tap “Save” now"},
		{"Quote before slash healed", `type"/help to start`, `type "/help to start`},
		{"Closing quote untouched", `Click "Create" to continue`, `Click "Create" to continue`},
		{"Broken time repaired", "Open at 10: 00 AM", "Open at 10:00 AM"},
		{"Single-digit hour repaired", "Doors at 9: 30 sharp", "Doors at 9:30 sharp"},
		{"Time split by newline repaired", "Open at 10:\n00 AM", "Open at 10:00 AM"},
		{"Chained broken times repaired", "From 1: 23: 45 on", "From 1:23:45 on"},
		{"Newlines collapsed", "First line\nsecond line", "First line second line"},
		{"Newline runs collapse to one space", "a\n\n\nb", "a b"},
		{"CRLF collapsed", "a\r\nb", "a b"},
		{"Whitespace trimmed", "  padded  ", "padded"},
		{"Zero-width then glued quote", "Click​\"Create now", "Click \"Create now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeRuleText(tt.input))
		})
	}
}

func TestSanitizeRuleText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`Click"Create" to continue`,
		`a"b"c`, // adjacent glued quotes overlap
		"Open at 10: 00 AM",
		"Open at 10:\n00 AM", // newline splits the time pattern
		"From 1: 23: 45 on",  // chained time matches overlap
		"multi\nline\ntext",
		"mixed​ artifacts� at 7: 45\nsharp",
		"  already  sanitized text  ",
	}

	for _, input := range inputs {
		once := SanitizeRuleText(input)
		twice := SanitizeRuleText(once)
		assert.Equal(t, once, twice, "sanitize must be idempotent for %q", input)
	}
}

func TestSanitizeRuleText_ApostropheUntouched(t *testing.T) {
	// Apostrophes sit between alphanumerics but are not quote collisions
	assert.Equal(t, "don't overthink it", SanitizeRuleText("don't overthink it"))
	assert.Equal(t, "we’re here", SanitizeRuleText("we’re here"))
}
