// Package llm - generator.go adapts the client to the guide pipeline's collaborators.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/styleguide-studio/internal/prompts"
	"github.com/jonathan/styleguide-studio/internal/schemas"
	"github.com/jonathan/styleguide-studio/internal/types"
)

// GuideGenerator produces candidate style rules and prose guide sections from
// a brand brief. Everything it returns is untrusted model output: candidate
// rules must go through the rule validator, and section bodies through the
// section parser, before anything is shown to a user.
type GuideGenerator struct {
	client Client
}

// NewGuideGenerator creates a generator backed by the given client
func NewGuideGenerator(client Client) *GuideGenerator {
	return &GuideGenerator{client: client}
}

// GenerateRules asks the model for one candidate rule per requested category.
func (g *GuideGenerator) GenerateRules(ctx context.Context, brandBrief string, categories []string) ([]types.StyleRule, error) {
	template, err := prompts.Get("guide.json", "generate_rules")
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(template, map[string]string{
		"Brief":      brandBrief,
		"Categories": strings.Join(categories, ", "),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("rule generation failed: %w", err)
	}

	candidates, err := schemas.DecodeCandidates(CleanJSONBlock(raw))
	if err != nil {
		return nil, fmt.Errorf("rule generation returned a malformed payload: %w", err)
	}
	return candidates, nil
}

// GenerateSection produces the prose body for one guide section. Satisfies
// the assembler's SectionGenerator contract.
func (g *GuideGenerator) GenerateSection(ctx context.Context, sectionTitle, brandBrief string) (string, error) {
	template, err := prompts.Get("guide.json", "generate_section")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Section": sectionTitle,
		"Brief":   brandBrief,
	})

	body, err := g.client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("section generation failed: %w", err)
	}
	return strings.TrimSpace(body), nil
}
