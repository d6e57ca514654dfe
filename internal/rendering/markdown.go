package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/styleguide-studio/internal/types"
)

const (
	// goodGlyph prefixes the correct-usage example line
	goodGlyph = "✅"
	// badGlyph prefixes the incorrect-usage example line
	badGlyph = "❌"
)

// RenderRulesMarkdown serializes validated rules into canonical markdown.
// Each rule becomes a four-line block: a heading numbered by output position,
// the sanitized description, then the good and bad example lines. Blocks are
// joined with a blank line. Empty input yields the empty string.
//
// The renderer exclusively owns this format: callers may concatenate blocks
// but never reformat them. Output is byte-identical across runs for the same
// input, and numbering always reflects the post-validation order.
func RenderRulesMarkdown(rules []types.StyleRule) string {
	if len(rules) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(rules))
	for i, rule := range rules {
		lines := []string{
			fmt.Sprintf("### %d. %s", i+1, SanitizeRuleText(rule.Title)),
			SanitizeRuleText(rule.Description),
			goodGlyph + " " + SanitizeRuleText(rule.Examples.Good),
			badGlyph + " " + SanitizeRuleText(rule.Examples.Bad),
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}
