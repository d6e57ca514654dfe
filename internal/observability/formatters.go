// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/styleguide-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidationResult outputs a human-readable summary of a rule
// validation pass: counts plus the first few accepted and rejected
// categories.
func (p *Printer) PrintValidationResult(result types.ValidationResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Accepted: %d   Rejected: %d\n", len(result.Valid), len(result.Invalid)))

	if len(result.Valid) > 0 {
		sb.WriteString("Valid categories:\n")
		for i, rule := range result.Valid {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Valid)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", rule.Category))
		}
	}

	if len(result.Invalid) > 0 {
		sb.WriteString("Rejected:\n")
		for i, rule := range result.Invalid {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Invalid)-maxItemsToShow))
				break
			}
			label := rule.Category
			if strings.TrimSpace(label) == "" {
				label = "(no category)"
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", label))
		}
	}

	p.printBox("Rule Validation", strings.TrimRight(sb.String(), "\n"))
}

// PrintSections outputs the parsed section list with ids, positions and
// placeholder flags.
func (p *Printer) PrintSections(sections []types.StyleGuideSection) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(sections)))
	for _, section := range sections {
		marker := " "
		if section.Placeholder {
			marker = "🔒"
		}
		sb.WriteString(fmt.Sprintf("  %d. [%s] %s %s\n", section.Position+1, section.ID, section.Title, marker))
	}

	p.printBox("Guide Sections", strings.TrimRight(sb.String(), "\n"))
}

// PrintStep outputs a one-line pipeline progress marker
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(step, message string) {
	fmt.Fprintf(p.out, "▶ %-18s %s\n", step, message)
}
