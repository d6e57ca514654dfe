package types

import "strings"

// StyleGuideSection is a parsed, addressable view over one heading-delimited
// span of a guide document.
type StyleGuideSection struct {
	// ID is derived deterministically from the heading text; the same
	// heading always yields the same ID across re-parses.
	ID string `json:"id"`
	// Title is the heading text as written in the document.
	Title string `json:"title"`
	// Level is the heading depth (1 for "#", 2 for "##", ...).
	Level int `json:"level"`
	// Content is the body between this heading and the next heading at the
	// same or shallower level, without the heading line itself.
	Content string `json:"content"`
	// Position is the zero-based ordinal of the section in document order.
	Position int `json:"position"`
	// Placeholder reports that the section body is a locked-content sentinel
	// rather than real content. It is set out-of-band (at parse time against
	// the configured sentinel, or directly by the assembler when it locks a
	// section) so callers never re-derive lock state from copy text.
	Placeholder bool `json:"placeholder"`
}

// AccessTier is the subscription level controlling which guide sections are
// fully visible versus placeholder-locked.
type AccessTier string

// Recognized access tiers, in ascending rank order
const (
	TierStarter AccessTier = "starter"
	TierPro     AccessTier = "pro"
	TierAgency  AccessTier = "agency"
)

// tierRanks orders tiers for gating comparisons
var tierRanks = map[AccessTier]int{
	TierStarter: 0,
	TierPro:     1,
	TierAgency:  2,
}

// NormalizeTier maps a raw tier string to a canonical AccessTier.
// The legacy alias "free" maps to starter. Unrecognized values also
// normalize to starter so an unknown tier can never widen access.
func NormalizeTier(raw string) AccessTier {
	switch AccessTier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierPro:
		return TierPro
	case TierAgency:
		return TierAgency
	case TierStarter, AccessTier("free"):
		return TierStarter
	default:
		return TierStarter
	}
}

// Rank returns the ordering rank of a tier (starter < pro < agency).
// Unknown tiers rank as starter.
func (t AccessTier) Rank() int {
	if rank, ok := tierRanks[t]; ok {
		return rank
	}
	return tierRanks[TierStarter]
}

// AtLeast reports whether tier t grants at least the access of tier other
func (t AccessTier) AtLeast(other AccessTier) bool {
	return t.Rank() >= other.Rank()
}
