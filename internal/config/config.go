// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/styleguide-studio/internal/types"
)

// DefaultSentinel is the locked-content sentinel substituted for gated
// sections. The exact wording is a contract shared with the UI layer: it is
// stored and displayed verbatim, never derived.
const DefaultSentinel = "Upgrade your plan to unlock this section."

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// APIKey is the Gemini API key; the GEMINI_API_KEY env var takes over
	// when empty
	APIKey string `json:"api_key,omitempty"`
	// Tier is the access tier to assemble guides for
	Tier string `json:"tier,omitempty" validate:"omitempty,oneof=free starter pro agency"`
	// Sentinel overrides the locked-content sentinel text
	Sentinel string `json:"sentinel,omitempty"`
	// Gating maps section ids to the minimum tier that sees their content
	Gating map[string]string `json:"gating,omitempty" validate:"omitempty,dive,oneof=free starter pro agency"`
	// Models overrides the model name per tier (lite/standard/advanced)
	Models map[string]string `json:"models,omitempty" validate:"omitempty,dive,required"`
	// MaxParallel bounds concurrent section generation calls
	MaxParallel int `json:"max_parallel,omitempty" validate:"omitempty,min=1,max=32"`
	// Verbose prints detailed pipeline information
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values using the
// struct-tag rules.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the configured API key, falling back to the
// GEMINI_API_KEY environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// SentinelText returns the configured sentinel, or the default.
func (c *Config) SentinelText() string {
	if c.Sentinel != "" {
		return c.Sentinel
	}
	return DefaultSentinel
}

// AccessTier returns the normalized configured tier (starter when unset).
func (c *Config) AccessTier() types.AccessTier {
	return types.NormalizeTier(c.Tier)
}

// MinTiers converts the gating map to normalized tiers for the gate policy.
func (c *Config) MinTiers() map[string]types.AccessTier {
	if len(c.Gating) == 0 {
		return nil
	}
	minTiers := make(map[string]types.AccessTier, len(c.Gating))
	for sectionID, tier := range c.Gating {
		minTiers[sectionID] = types.NormalizeTier(tier)
	}
	return minTiers
}
