package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/styleguide-studio/internal/config"
	"github.com/jonathan/styleguide-studio/internal/guide"
	"github.com/jonathan/styleguide-studio/internal/llm"
	"github.com/jonathan/styleguide-studio/internal/observability"
	"github.com/jonathan/styleguide-studio/internal/pipeline"
	"github.com/jonathan/styleguide-studio/internal/types"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Build or re-gate a tier-appropriate style guide",
	Long: "With --brief, run the full pipeline: generate candidate rules, validate them, render markdown, and assemble a tier-gated guide. " +
		"With --doc, re-gate an existing guide document for a tier, regenerating unlocked placeholder sections when an API key is available.",
	RunE: runAssemble,
}

var (
	assembleBriefFile  string
	assembleDocFile    string
	assembleOutputFile string
	assembleConfigFile string
	assembleTier       string
	assembleAPIKey     string
	assembleVerbose    bool
)

func init() {
	assembleCmd.Flags().StringVar(&assembleBriefFile, "brief", "", "Path to brand description text file (full build mode)")
	assembleCmd.Flags().StringVar(&assembleDocFile, "doc", "", "Path to an existing guide document (re-gate mode)")
	assembleCmd.Flags().StringVarP(&assembleOutputFile, "out", "o", "", "Path to output markdown file (defaults to stdout)")
	assembleCmd.Flags().StringVarP(&assembleConfigFile, "config", "c", "", "Path to JSON config file")
	assembleCmd.Flags().StringVar(&assembleTier, "tier", "", "Access tier: starter, pro, or agency (overrides config)")
	assembleCmd.Flags().StringVar(&assembleAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	assembleCmd.Flags().BoolVarP(&assembleVerbose, "verbose", "v", false, "Print pipeline progress")

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(_ *cobra.Command, _ []string) error {
	if assembleBriefFile == "" && assembleDocFile == "" {
		return fmt.Errorf("must provide either --brief or --doc")
	}
	if assembleBriefFile != "" && assembleDocFile != "" {
		return fmt.Errorf("cannot use --brief with --doc")
	}

	cfg := &config.Config{}
	if assembleConfigFile != "" {
		loaded, err := config.LoadConfig(assembleConfigFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	tier := cfg.AccessTier()
	if assembleTier != "" {
		tier = types.NormalizeTier(assembleTier)
	}

	apiKey := assembleAPIKey
	if apiKey == "" {
		apiKey = cfg.ResolveAPIKey()
	}

	ctx := context.Background()

	if assembleDocFile != "" {
		return regateDocument(ctx, cfg, tier, apiKey)
	}
	return buildFromBrief(ctx, cfg, tier, apiKey)
}

// buildFromBrief runs the full content pipeline off a brand description
func buildFromBrief(ctx context.Context, cfg *config.Config, tier types.AccessTier, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or use --api-key)")
	}

	brief, err := os.ReadFile(assembleBriefFile)
	if err != nil {
		return fmt.Errorf("failed to read brief file: %w", err)
	}

	client, err := llm.NewClient(ctx, modelConfig(cfg), apiKey)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck // nothing to do on close failure

	generator := llm.NewGuideGenerator(client)
	printer := observability.NewPrinter(os.Stderr)

	opts := pipeline.BuildOptions{
		BrandBrief:  string(brief),
		Tier:        tier,
		Gating:      cfg.MinTiers(),
		Sentinel:    cfg.SentinelText(),
		Rules:       generator,
		Sections:    generator,
		MaxParallel: cfg.MaxParallel,
	}
	if assembleVerbose || cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			printer.PrintStep(event.Step, event.Message)
		}
	}

	result, err := pipeline.BuildGuide(ctx, opts)
	if err != nil {
		return err
	}

	if assembleVerbose || cfg.Verbose {
		printer.PrintSections(result.Sections)
	}

	return writeAssembleOutput(result.Document, result)
}

// regateDocument re-gates an existing guide for a tier, regenerating
// entitled placeholder sections when a client is available
func regateDocument(ctx context.Context, cfg *config.Config, tier types.AccessTier, apiKey string) error {
	document, err := os.ReadFile(assembleDocFile)
	if err != nil {
		return fmt.Errorf("failed to read guide document: %w", err)
	}

	assembler := &guide.Assembler{
		Policy:      guide.GatePolicy{MinTiers: cfg.MinTiers()},
		Sentinel:    cfg.SentinelText(),
		MaxParallel: cfg.MaxParallel,
	}

	if apiKey != "" {
		client, err := llm.NewClient(ctx, modelConfig(cfg), apiKey)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck // nothing to do on close failure
		assembler.Generator = llm.NewGuideGenerator(client)
	}

	brief := "" // re-gate mode has no brand brief; generators receive the section title only
	result, err := assembler.Assemble(ctx, string(document), brief, tier)
	if err != nil {
		return err
	}

	if assembleVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSections(result.Sections)
	}

	return writeAssembleOutput(result.Document, nil)
}

// modelConfig applies config model overrides onto the default LLM config
func modelConfig(cfg *config.Config) *llm.Config {
	modelCfg := llm.DefaultConfig()
	for tier, model := range cfg.Models {
		modelCfg = modelCfg.WithModel(llm.ModelTier(tier), model)
	}
	return modelCfg
}

// writeAssembleOutput writes the assembled document, plus the build result
// as JSON alongside it when requested via a .json output path
func writeAssembleOutput(document string, result *pipeline.BuildResult) error {
	if assembleOutputFile == "" {
		fmt.Println(document)
		return nil
	}

	if result != nil && jsonOutput(assembleOutputFile) {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal build result: %w", err)
		}
		return os.WriteFile(assembleOutputFile, jsonBytes, 0644)
	}

	if err := os.WriteFile(assembleOutputFile, []byte(document+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// jsonOutput reports whether the output path asks for the JSON build result
// instead of the markdown document. A bare ".json" name is a dotfile, not an
// extension.
func jsonOutput(path string) bool {
	return path != ".json" && strings.HasSuffix(path, ".json")
}
