package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/styleguide-studio/internal/observability"
	"github.com/jonathan/styleguide-studio/internal/rules"
	"github.com/jonathan/styleguide-studio/internal/schemas"
)

var validateRulesCmd = &cobra.Command{
	Use:   "validate-rules",
	Short: "Validate and deduplicate a candidate rule list",
	Long:  "Validate a raw candidate rule JSON file against the style rule schema and taxonomy, partitioning it into valid and invalid rules.",
	RunE:  runValidateRules,
}

var (
	validateInputFile  string
	validateOutputFile string
	validateSchemaFile string
	validateVerbose    bool
)

func init() {
	validateRulesCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to candidate rules JSON file (required)")
	validateRulesCmd.Flags().StringVarP(&validateOutputFile, "out", "o", "", "Path to output partition JSON file (defaults to stdout)")
	validateRulesCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to an alternate JSON Schema for the payload gate (defaults to the built-in style rules schema)")
	validateRulesCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a validation summary")

	rootCmd.AddCommand(validateRulesCmd)
}

func runValidateRules(_ *cobra.Command, _ []string) error {
	if validateInputFile == "" {
		return fmt.Errorf("--in is required")
	}
	return validateRulesFile(validateInputFile, validateOutputFile, validateSchemaFile, validateVerbose)
}

// validateRulesFile runs the schema gate, decodes candidates, partitions
// them, and writes the result. An explicit schema path replaces the built-in
// payload gate.
func validateRulesFile(inputPath, outputPath, schemaPath string, verbose bool) error {
	payload, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if schemaPath != "" {
		err = schemas.ValidateJSON(schemaPath, inputPath)
	} else {
		err = schemas.ValidateCandidatePayload(string(payload))
	}
	if err != nil {
		return fmt.Errorf("candidate payload failed the schema gate: %w", err)
	}

	candidates, err := schemas.DecodeCandidates(string(payload))
	if err != nil {
		return fmt.Errorf("failed to decode candidates: %w", err)
	}

	result := rules.ValidateRules(candidates)

	if verbose {
		observability.NewPrinter(os.Stderr).PrintValidationResult(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(outputPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
