package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected AccessTier
	}{
		{"Starter", "starter", TierStarter},
		{"Pro", "pro", TierPro},
		{"Agency", "agency", TierAgency},
		{"Legacy free alias", "free", TierStarter},
		{"Mixed case", "Pro", TierPro},
		{"Surrounding whitespace", "  agency  ", TierAgency},
		{"Unknown tier falls back to starter", "enterprise", TierStarter},
		{"Empty string", "", TierStarter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTier(tt.raw))
		})
	}
}

func TestAccessTierRank(t *testing.T) {
	assert.Less(t, TierStarter.Rank(), TierPro.Rank())
	assert.Less(t, TierPro.Rank(), TierAgency.Rank())

	// Unknown tiers must never outrank known ones
	assert.Equal(t, TierStarter.Rank(), AccessTier("unknown").Rank())
}

func TestAccessTierAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		tier     AccessTier
		other    AccessTier
		expected bool
	}{
		{"Agency covers pro", TierAgency, TierPro, true},
		{"Agency covers starter", TierAgency, TierStarter, true},
		{"Pro covers starter", TierPro, TierStarter, true},
		{"Pro covers itself", TierPro, TierPro, true},
		{"Starter does not cover pro", TierStarter, TierPro, false},
		{"Starter does not cover agency", TierStarter, TierAgency, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tier.AtLeast(tt.other))
		})
	}
}
