package rules

import (
	"strings"

	"github.com/jonathan/styleguide-studio/internal/types"
)

// IsValidRule reports whether a candidate rule satisfies the shape contract:
// category, title and description present, both examples present, and the
// category recognized by the taxonomy. Pure predicate, no side effects.
func IsValidRule(rule types.StyleRule) bool {
	if strings.TrimSpace(rule.Category) == "" {
		return false
	}
	if strings.TrimSpace(rule.Title) == "" {
		return false
	}
	if strings.TrimSpace(rule.Description) == "" {
		return false
	}
	if strings.TrimSpace(rule.Examples.Good) == "" {
		return false
	}
	if strings.TrimSpace(rule.Examples.Bad) == "" {
		return false
	}
	return IsValidRuleCategory(rule.Category)
}
