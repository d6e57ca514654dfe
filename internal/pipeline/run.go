// Package pipeline provides the high-level orchestration for building a
// tone-of-voice style guide from a brand brief.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/styleguide-studio/internal/guide"
	"github.com/jonathan/styleguide-studio/internal/prompts"
	"github.com/jonathan/styleguide-studio/internal/rendering"
	"github.com/jonathan/styleguide-studio/internal/rules"
	"github.com/jonathan/styleguide-studio/internal/types"
)

const (
	// defaultRegenAttempts bounds how often missing categories are re-requested
	defaultRegenAttempts = 2
	// defaultMaxParallel bounds concurrent prose section generation
	defaultMaxParallel = 3
)

// proseSections maps template placeholders to the section titles the
// generation collaborator writes. Style Rules is filled from the renderer,
// not generated prose.
var proseSections = map[string]string{
	"BrandVoice":  "Brand Voice",
	"BeforeAfter": "Before & After",
	"WordList":    "Word List",
}

// RuleGenerator is the collaborator that produces candidate rules for a set
// of categories. Its output is untrusted and always re-validated.
type RuleGenerator interface {
	GenerateRules(ctx context.Context, brandBrief string, categories []string) ([]types.StyleRule, error)
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// BuildOptions holds configuration for one guide build
type BuildOptions struct {
	// BrandBrief is the brand description everything is generated from
	BrandBrief string
	// Tier is the access tier the assembled guide is gated for
	Tier types.AccessTier
	// Gating maps section ids to minimum tiers (caller-owned policy)
	Gating map[string]types.AccessTier
	// Sentinel is the locked-content sentinel text
	Sentinel string
	// Rules generates candidate rules; required
	Rules RuleGenerator
	// Sections generates prose section bodies; nil leaves those sections
	// as placeholders
	Sections guide.SectionGenerator
	// RegenAttempts bounds re-requests for missing categories (default 2)
	RegenAttempts int
	// MaxParallel bounds concurrent section generation (default 3)
	MaxParallel int
	// OnProgress receives step updates; nil disables them
	OnProgress ProgressCallback
}

// BuildResult is the outcome of one guide build
type BuildResult struct {
	RunID        string                    `json:"run_id"`
	Document     string                    `json:"document"`
	Sections     []types.StyleGuideSection `json:"sections"`
	Rules        []types.StyleRule         `json:"rules"`
	Rejected     []types.StyleRule         `json:"rejected"`
	OpenSections []string                  `json:"open_sections"`
}

// BuildGuide runs the full content pipeline: generate candidate rules,
// validate and deduplicate them, re-request missing categories up to the
// configured attempts, render the rules, compose the guide from the brand
// content template, generate the prose sections, then parse and tier-gate
// the result. Under-coverage after the regeneration budget degrades to a
// shorter rule set, never to an error.
func BuildGuide(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if opts.Rules == nil {
		return nil, fmt.Errorf("rule generator is required")
	}

	runID := uuid.New().String()
	progress := func(step, message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
		}
	}

	// Generate and validate the rule set
	progress("generate-rules", fmt.Sprintf("requesting %d categories", len(rules.Categories)))
	candidates, err := opts.Rules.GenerateRules(ctx, opts.BrandBrief, rules.Categories)
	if err != nil {
		return nil, fmt.Errorf("rule generation failed: %w", err)
	}

	validation := rules.ValidateRules(candidates)
	accepted := validation.Valid
	rejected := validation.Invalid
	progress("validate-rules", fmt.Sprintf("accepted %d, rejected %d", len(accepted), len(rejected)))

	// Regeneration policy: re-request only the uncovered categories, then
	// re-validate the combined set so regenerated duplicates are discarded
	attempts := opts.RegenAttempts
	if attempts <= 0 {
		attempts = defaultRegenAttempts
	}
	for attempt := 0; attempt < attempts; attempt++ {
		missing := rules.MissingCategories(accepted)
		if len(missing) == 0 {
			break
		}

		progress("regenerate-rules", fmt.Sprintf("attempt %d: %d categories missing", attempt+1, len(missing)))
		refill, err := opts.Rules.GenerateRules(ctx, opts.BrandBrief, missing)
		if err != nil {
			return nil, fmt.Errorf("rule regeneration failed: %w", err)
		}

		revalidation := rules.ValidateRules(append(accepted, refill...))
		accepted = revalidation.Valid
		rejected = append(rejected, revalidation.Invalid...)
	}

	// Render rules and compose the guide from the brand content template
	progress("render-rules", fmt.Sprintf("rendering %d rules", len(accepted)))
	rulesMarkdown := rendering.RenderRulesMarkdown(accepted)

	template, err := prompts.Get("guide.json", "guide_template")
	if err != nil {
		return nil, fmt.Errorf("failed to load guide template: %w", err)
	}

	bodies, err := generateProseSections(ctx, opts, runID)
	if err != nil {
		return nil, err
	}
	bodies["StyleRules"] = rulesMarkdown

	progress("compose", "assembling guide document")
	document := prompts.Format(template, bodies)

	// Parse back into sections and apply tier gating
	sections := guide.ParseWithOptions(document, guide.ParseOptions{Sentinel: opts.Sentinel})
	if len(sections) == 0 {
		return nil, &guide.UnparsableDocumentError{Message: "composed guide has no sections"}
	}

	policy := guide.GatePolicy{MinTiers: opts.Gating}
	for i := range sections {
		if policy.Visibility(sections[i].ID, opts.Tier) == guide.VisibilityPlaceholder {
			sections[i].Content = opts.Sentinel
			sections[i].Placeholder = true
		}
	}
	progress("gate", fmt.Sprintf("gated for tier %s", opts.Tier))

	return &BuildResult{
		RunID:        runID,
		Document:     guide.Render(sections),
		Sections:     sections,
		Rules:        accepted,
		Rejected:     rejected,
		OpenSections: guide.DefaultOpenSections(sections),
	}, nil
}

// generateProseSections fills the template's prose placeholders, in parallel
// when a section generator is available. Without one, prose sections get the
// sentinel so downstream parsing flags them as placeholders.
func generateProseSections(ctx context.Context, opts BuildOptions, runID string) (map[string]string, error) {
	bodies := make(map[string]string, len(proseSections)+1)

	if opts.Sections == nil {
		for placeholder := range proseSections {
			bodies[placeholder] = opts.Sentinel
		}
		return bodies, nil
	}

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	results := make([]string, len(proseSections))
	placeholders := make([]string, 0, len(proseSections))
	for placeholder := range proseSections {
		placeholders = append(placeholders, placeholder)
	}

	for i, placeholder := range placeholders {
		i := i
		title := proseSections[placeholder]
		group.Go(func() error {
			if opts.OnProgress != nil {
				opts.OnProgress(ProgressEvent{Step: "generate-section", Message: title, RunID: runID})
			}
			body, err := opts.Sections.GenerateSection(groupCtx, title, opts.BrandBrief)
			if err != nil {
				return &guide.GenerationError{SectionID: guide.Slug(title), Cause: err}
			}
			results[i] = body
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, placeholder := range placeholders {
		bodies[placeholder] = results[i]
	}
	return bodies, nil
}
