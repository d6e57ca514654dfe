package rules

import "github.com/jonathan/styleguide-studio/internal/types"

// ValidateRules partitions an untrusted candidate list into valid and invalid
// rules. A candidate is rejected if it fails IsValidRule, or if an earlier
// candidate already claimed its category (case-insensitive, trimmed) —
// first occurrence wins. Both partitions preserve relative input order, and
// every candidate lands in exactly one of them.
//
// Malformed candidates are data, not errors: ValidateRules never fails, and
// whether an under-populated valid set should trigger regeneration is the
// caller's policy.
func ValidateRules(candidates []types.StyleRule) types.ValidationResult {
	result := types.ValidationResult{
		Valid:   make([]types.StyleRule, 0, len(candidates)),
		Invalid: make([]types.StyleRule, 0),
	}

	// Local to this call so concurrent validations never share state
	seenCategories := make(map[string]bool, len(candidates))

	for _, candidate := range candidates {
		if !IsValidRule(candidate) {
			result.Invalid = append(result.Invalid, candidate)
			continue
		}

		key := NormalizeCategory(candidate.Category)
		if seenCategories[key] {
			// Structurally valid but a duplicate category; later
			// occurrences are always discarded
			result.Invalid = append(result.Invalid, candidate)
			continue
		}

		seenCategories[key] = true
		result.Valid = append(result.Valid, candidate)
	}

	return result
}

// MissingCategories returns the canonical names of taxonomy categories not
// covered by the validated rules, in taxonomy order. Callers use this to
// decide whether to request regeneration for the gaps.
func MissingCategories(validated []types.StyleRule) []string {
	covered := make(map[string]bool, len(validated))
	for _, rule := range validated {
		covered[NormalizeCategory(rule.Category)] = true
	}

	missing := make([]string, 0)
	for _, category := range Categories {
		if !covered[NormalizeCategory(category)] {
			missing = append(missing, category)
		}
	}
	return missing
}
