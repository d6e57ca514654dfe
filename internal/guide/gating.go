package guide

import "github.com/jonathan/styleguide-studio/internal/types"

// Visibility is the gating outcome for one section at one tier
type Visibility string

// Gating outcomes
const (
	// VisibilityFull means the section content is shown verbatim
	VisibilityFull Visibility = "full"
	// VisibilityPlaceholder means the section content is withheld and a
	// locked-content placeholder is shown instead
	VisibilityPlaceholder Visibility = "placeholder"
)

// GatePolicy maps section ids to the minimum tier required to see their
// content. The mapping is configuration owned by the caller; sections absent
// from the map are visible at every tier.
type GatePolicy struct {
	MinTiers map[string]types.AccessTier
}

// Visibility reports whether a section is shown verbatim or as a placeholder
// for the given tier. Pure function: gating is monotone in tier rank, so a
// higher tier always sees at least what a lower tier sees.
func (p GatePolicy) Visibility(sectionID string, tier types.AccessTier) Visibility {
	minTier, gated := p.MinTiers[sectionID]
	if !gated {
		return VisibilityFull
	}
	if tier.AtLeast(minTier) {
		return VisibilityFull
	}
	return VisibilityPlaceholder
}
