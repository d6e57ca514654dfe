// Package types provides type definitions for structured data used throughout the styleguide-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StyleRule represents one atomic piece of brand-writing guidance.
// Rules arrive from the generation step as untrusted candidates; a rule that
// has passed validation is treated as immutable.
type StyleRule struct {
	Category    string       `json:"category"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Examples    RuleExamples `json:"examples"`
}

// RuleExamples holds a matched pair of usage examples for a rule
type RuleExamples struct {
	Good string `json:"good"`
	Bad  string `json:"bad"`
}

// ValidationResult partitions a candidate rule list into accepted and
// rejected rules. Every candidate lands in exactly one of the two slices,
// and each slice preserves the candidates' relative input order.
type ValidationResult struct {
	Valid   []StyleRule `json:"valid"`
	Invalid []StyleRule `json:"invalid"`
}
