package schemas

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/styleguide-studio/internal/types"
)

// ValidateCandidatePayload checks that a raw generation payload has the
// top-level shape the style_rules schema requires (an array of objects).
// Field-level problems inside individual rules are deliberately not schema
// errors: one malformed rule must degrade to a shorter rule set, not reject
// the whole batch, so those checks belong to the rule validator.
func ValidateCandidatePayload(jsonContent string) error {
	schemaPath := ResolveSchemaPath(StyleRulesSchemaFile)
	if schemaPath == "" {
		return &SchemaLoadError{
			Path:    StyleRulesSchemaFile,
			Message: "schema file not found in any candidate location",
		}
	}

	return validateStringAgainstSchemaFile(schemaPath, jsonContent)
}

// DecodeCandidates decodes a schema-checked payload into candidate rules.
// Individual rules that fail to decode (wrong field types) are kept as
// whatever partially decoded — the validator will route them to the invalid
// partition. Only a payload that is not a JSON array at all is an error.
func DecodeCandidates(jsonContent string) ([]types.StyleRule, error) {
	var rawRules []json.RawMessage
	if err := json.Unmarshal([]byte(jsonContent), &rawRules); err != nil {
		return nil, fmt.Errorf("candidate payload is not a JSON array: %w", err)
	}

	candidates := make([]types.StyleRule, 0, len(rawRules))
	for _, raw := range rawRules {
		var rule types.StyleRule
		// Ignore per-rule decode errors: a wrong-typed field leaves the
		// rule partially populated and IsValidRule rejects it downstream
		_ = json.Unmarshal(raw, &rule)
		candidates = append(candidates, rule)
	}

	return candidates, nil
}
