package rules

import (
	"testing"

	"github.com/jonathan/styleguide-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruleFor builds a well-formed rule for the given category
func ruleFor(category string) types.StyleRule {
	return types.StyleRule{
		Category:    category,
		Title:       category + " guidance",
		Description: "How the brand handles " + category + ".",
		Examples: types.RuleExamples{
			Good: "A correct example.",
			Bad:  "An incorrect example.",
		},
	}
}

func TestValidateRules_CaseInsensitiveDuplicate(t *testing.T) {
	// Second "emojis" is structurally valid but duplicates the first
	candidates := []types.StyleRule{
		ruleFor("Emojis"),
		ruleFor("emojis"),
		ruleFor("Numbers"),
	}

	result := ValidateRules(candidates)

	require.Len(t, result.Valid, 2)
	require.Len(t, result.Invalid, 1)
	assert.Equal(t, "Emojis", result.Valid[0].Category, "first occurrence wins")
	assert.Equal(t, "Numbers", result.Valid[1].Category)
	assert.Equal(t, "emojis", result.Invalid[0].Category)
}

func TestValidateRules_MalformedRoutedToInvalid(t *testing.T) {
	malformed := types.StyleRule{Category: "Numbers"} // no title/description/examples
	candidates := []types.StyleRule{
		ruleFor("Contractions"),
		malformed,
		ruleFor("Jargon"),
	}

	result := ValidateRules(candidates)

	require.Len(t, result.Valid, 2)
	require.Len(t, result.Invalid, 1)
	assert.Equal(t, malformed, result.Invalid[0])
}

func TestValidateRules_PartitionIsTotal(t *testing.T) {
	candidates := []types.StyleRule{
		ruleFor("Emojis"),
		ruleFor("Not A Category"),
		ruleFor("Emojis"),
		{},
		ruleFor("Links"),
	}

	result := ValidateRules(candidates)

	assert.Equal(t, len(candidates), len(result.Valid)+len(result.Invalid),
		"every candidate lands in exactly one partition")
}

func TestValidateRules_PreservesInputOrder(t *testing.T) {
	candidates := []types.StyleRule{
		ruleFor("Pronouns"),
		ruleFor("Currency"),
		ruleFor("pronouns"), // duplicate
		ruleFor("Headings"),
		ruleFor("Bogus"), // invalid category
		ruleFor("Links"),
	}

	result := ValidateRules(candidates)

	validCategories := make([]string, 0, len(result.Valid))
	for _, rule := range result.Valid {
		validCategories = append(validCategories, rule.Category)
	}
	assert.Equal(t, []string{"Pronouns", "Currency", "Headings", "Links"}, validCategories)

	invalidCategories := make([]string, 0, len(result.Invalid))
	for _, rule := range result.Invalid {
		invalidCategories = append(invalidCategories, rule.Category)
	}
	assert.Equal(t, []string{"pronouns", "Bogus"}, invalidCategories)
}

func TestValidateRules_AtMostOneRulePerCategory(t *testing.T) {
	candidates := make([]types.StyleRule, 0)
	for i := 0; i < 3; i++ {
		for _, category := range Categories {
			candidates = append(candidates, ruleFor(category))
		}
	}

	result := ValidateRules(candidates)

	require.Len(t, result.Valid, len(Categories))
	seen := make(map[string]bool)
	for _, rule := range result.Valid {
		key := NormalizeCategory(rule.Category)
		assert.False(t, seen[key], "duplicate category in valid set: %s", rule.Category)
		seen[key] = true
	}
}

func TestValidateRules_EmptyInput(t *testing.T) {
	result := ValidateRules(nil)
	assert.Empty(t, result.Valid)
	assert.Empty(t, result.Invalid)
}

func TestMissingCategories(t *testing.T) {
	validated := []types.StyleRule{
		ruleFor("Contractions"),
		ruleFor("emojis"), // coverage check is case-insensitive
	}

	missing := MissingCategories(validated)

	assert.Len(t, missing, len(Categories)-2)
	assert.NotContains(t, missing, "Contractions")
	assert.NotContains(t, missing, "Emojis")
	// Taxonomy order preserved
	assert.Equal(t, "Serial Comma", missing[0])
}

func TestMissingCategories_FullCoverage(t *testing.T) {
	validated := make([]types.StyleRule, 0, len(Categories))
	for _, category := range Categories {
		validated = append(validated, ruleFor(category))
	}
	assert.Empty(t, MissingCategories(validated))
}
