package guide

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/styleguide-studio/internal/types"
)

// defaultMaxParallel bounds concurrent section generation calls
const defaultMaxParallel = 4

// SectionGenerator is the collaborator that produces prose for one guide
// section. Implementations call out to the generative model; the assembler
// only cares about the returned body text.
type SectionGenerator interface {
	GenerateSection(ctx context.Context, sectionTitle, brandBrief string) (string, error)
}

// Assembler combines parsed sections, a gating policy and a generation
// collaborator into a tier-appropriate guide document.
type Assembler struct {
	// Policy decides which sections a tier may see verbatim
	Policy GatePolicy
	// Sentinel is the locked-content text substituted for gated sections.
	// The exact wording is a contract shared with the UI layer.
	Sentinel string
	// Generator fills placeholder sections the tier is entitled to see.
	// Nil disables regeneration; entitled placeholders stay placeholders.
	Generator SectionGenerator
	// MaxParallel bounds concurrent generation calls (default 4)
	MaxParallel int
}

// AssembleResult is the assembled document plus its section view
type AssembleResult struct {
	Document string
	Sections []types.StyleGuideSection
}

// Assemble parses the document, applies tier gating, regenerates placeholder
// sections the tier is entitled to see, and reassembles the document with the
// original heading structure. Sections below the tier are replaced with the
// sentinel and flagged as placeholders out-of-band.
func (a *Assembler) Assemble(ctx context.Context, document, brandBrief string, tier types.AccessTier) (AssembleResult, error) {
	sections := ParseWithOptions(document, ParseOptions{Sentinel: a.Sentinel})
	if len(sections) == 0 {
		return AssembleResult{}, &UnparsableDocumentError{Message: "no section headings found"}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	maxParallel := a.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	group.SetLimit(maxParallel)

	for i := range sections {
		switch a.Policy.Visibility(sections[i].ID, tier) {
		case VisibilityPlaceholder:
			sections[i].Content = a.Sentinel
			sections[i].Placeholder = true
		case VisibilityFull:
			if !sections[i].Placeholder || a.Generator == nil {
				continue
			}
			section := &sections[i]
			group.Go(func() error {
				body, err := a.Generator.GenerateSection(groupCtx, section.Title, brandBrief)
				if err != nil {
					return &GenerationError{SectionID: section.ID, Cause: err}
				}
				section.Content = strings.TrimSpace(body)
				section.Placeholder = false
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return AssembleResult{}, err
	}

	return AssembleResult{
		Document: Render(sections),
		Sections: sections,
	}, nil
}
