package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/styleguide-studio/internal/config"
	"github.com/jonathan/styleguide-studio/internal/guide"
	"github.com/jonathan/styleguide-studio/internal/observability"
	"github.com/jonathan/styleguide-studio/internal/types"
)

var parseGuideCmd = &cobra.Command{
	Use:   "parse-guide",
	Short: "Parse a guide document into addressable sections",
	Long:  "Parse a markdown or HTML guide document into its ordered section list, with stable ids and default-open hints suitable for direct UI binding.",
	RunE:  runParseGuide,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseSentinel   string
	parseHTML       bool
	parseVerbose    bool
)

func init() {
	parseGuideCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to guide document (required)")
	parseGuideCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output sections JSON file (defaults to stdout)")
	parseGuideCmd.Flags().StringVar(&parseSentinel, "sentinel", config.DefaultSentinel, "Locked-content sentinel to flag placeholder sections")
	parseGuideCmd.Flags().BoolVar(&parseHTML, "html", false, "Treat the input as an HTML guide export")
	parseGuideCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print the parsed section listing")

	rootCmd.AddCommand(parseGuideCmd)
}

// parsedGuide is the JSON shape the parse-guide command emits
type parsedGuide struct {
	Sections    []types.StyleGuideSection `json:"sections"`
	DefaultOpen []string                  `json:"default_open"`
}

func runParseGuide(_ *cobra.Command, _ []string) error {
	if parseInputFile == "" {
		return fmt.Errorf("--in is required")
	}
	return parseGuideFile(parseInputFile, parseOutputFile, parseSentinel, parseHTML, parseVerbose)
}

func parseGuideFile(inputPath, outputPath, sentinel string, asHTML, verbose bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	opts := guide.ParseOptions{Sentinel: sentinel}
	var sections []types.StyleGuideSection
	if asHTML || looksLikeHTML(inputPath) {
		sections, err = guide.ParseHTMLWithOptions(string(data), opts)
		if err != nil {
			return err
		}
	} else {
		sections = guide.ParseWithOptions(string(data), opts)
	}

	if len(sections) == 0 {
		// Parsing failed; the caller must fall back to the raw content
		fmt.Fprintln(os.Stderr, "Warning: no sections recognized; treat the document as raw content")
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintSections(sections)
	}

	output := parsedGuide{
		Sections:    sections,
		DefaultOpen: guide.DefaultOpenSections(sections),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
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

// looksLikeHTML guesses the document format from the file extension
func looksLikeHTML(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
