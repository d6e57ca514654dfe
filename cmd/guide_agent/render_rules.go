package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/styleguide-studio/internal/rendering"
	"github.com/jonathan/styleguide-studio/internal/rules"
	"github.com/jonathan/styleguide-studio/internal/types"
)

var renderRulesCmd = &cobra.Command{
	Use:   "render-rules",
	Short: "Render validated rules into canonical markdown",
	Long:  "Render a validated rule list JSON file into the canonical markdown rule blocks. Input is re-validated, so duplicates or malformed rules are silently dropped.",
	RunE:  runRenderRules,
}

var (
	renderInputFile  string
	renderOutputFile string
)

func init() {
	renderRulesCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to validated rules JSON file (required)")
	renderRulesCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output markdown file (defaults to stdout)")

	rootCmd.AddCommand(renderRulesCmd)
}

func runRenderRules(_ *cobra.Command, _ []string) error {
	if renderInputFile == "" {
		return fmt.Errorf("--in is required")
	}
	return renderRulesFile(renderInputFile, renderOutputFile)
}

func renderRulesFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var ruleList []types.StyleRule
	if err := json.Unmarshal(data, &ruleList); err != nil {
		return fmt.Errorf("failed to parse rules JSON: %w", err)
	}

	// Renderer input must be a validated set; re-validating here makes the
	// command safe on hand-edited files
	validated := rules.ValidateRules(ruleList)
	markdown := rendering.RenderRulesMarkdown(validated.Valid)

	if outputPath == "" {
		fmt.Println(markdown)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(markdown+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
