// Package rules defines the closed style-rule taxonomy and turns untrusted
// candidate rule lists into validated, deduplicated rule sets.
package rules

import "strings"

// TaxonomyVersion identifies the current revision of the category list.
// Any change to the list is a breaking change for previously rendered guides
// and requires a migration note for stored category values.
const TaxonomyVersion = 1

// Categories is the fixed, ordered taxonomy of recognized rule categories.
// The order drives prompt and display layout only; validation is pure
// membership. A rule set covers the taxonomy: at most one rule per category.
var Categories = []string{
	"Contractions",
	"Serial Comma",
	"Emojis",
	"Numbers",
	"Dates & Times",
	"Capitalization",
	"Abbreviations & Acronyms",
	"Punctuation",
	"Exclamation Points",
	"Active vs. Passive Voice",
	"Sentence Length",
	"Jargon",
	"Inclusive Language",
	"Pronouns",
	"Currency",
	"Percentages",
	"Units of Measurement",
	"Hyphenation",
	"Quotation Marks",
	"Lists & Bullets",
	"Links",
	"Buttons & CTAs",
	"Error Messages",
	"Headings",
	"Product Names",
}

// categorySet maps normalized category keys to the canonical category name
var categorySet = buildCategorySet()

func buildCategorySet() map[string]string {
	set := make(map[string]string, len(Categories))
	for _, category := range Categories {
		set[NormalizeCategory(category)] = category
	}
	return set
}

// NormalizeCategory returns the comparison key for a category: trimmed and
// lowercased. Deduplication and membership both use this key.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// IsValidRuleCategory reports whether category is a member of the taxonomy.
// Matching is case-insensitive and ignores surrounding whitespace.
func IsValidRuleCategory(category string) bool {
	_, ok := categorySet[NormalizeCategory(category)]
	return ok
}

// CanonicalCategory returns the canonical spelling for a recognized category,
// or the empty string when the category is not in the taxonomy.
func CanonicalCategory(category string) string {
	return categorySet[NormalizeCategory(category)]
}
