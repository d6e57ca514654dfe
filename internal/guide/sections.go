package guide

import (
	"regexp"
	"strings"

	"github.com/jonathan/styleguide-studio/internal/types"
)

// nonAlphanumeric matches runs of characters that a slug replaces with a
// single hyphen
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// headingLine matches an ATX markdown heading and captures depth and text
var headingLine = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*$`)

// ParseOptions tunes section parsing.
type ParseOptions struct {
	// Sentinel is the locked-content sentinel shared with the UI layer.
	// A section whose entire body equals the sentinel is flagged as a
	// placeholder at parse time, so nothing downstream has to pattern-match
	// copy text. Empty disables the check.
	Sentinel string
}

// heading is one recognized heading with its position in the line slice
type heading struct {
	line  int
	level int
	title string
}

// Slug derives the deterministic section id for a heading: lowercase,
// non-alphanumeric runs collapsed to single hyphens, hyphens trimmed. The
// same heading text always yields the same id across re-parses.
func Slug(headingText string) string {
	slug := strings.ToLower(headingText)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Parse splits a markdown guide document into ordered, addressable sections.
// Section boundaries are the document's top-level headings (the shallowest
// heading depth present); each section's content runs from its heading to the
// next heading at the same or shallower depth. Headings inside fenced code
// blocks are not boundaries.
//
// A document with zero recognized headings yields an empty list. Callers must
// treat that as "parsing failed, fall back to raw content", never as
// "document has no content".
func Parse(document string) []types.StyleGuideSection {
	return ParseWithOptions(document, ParseOptions{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(document string, opts ParseOptions) []types.StyleGuideSection {
	lines := strings.Split(document, "\n")
	boundaries := scanBoundaries(lines)
	if len(boundaries) == 0 {
		return nil
	}

	sections := make([]types.StyleGuideSection, 0, len(boundaries))
	for i, h := range boundaries {
		bodyStart := h.line + 1
		bodyEnd := len(lines)
		if i+1 < len(boundaries) {
			bodyEnd = boundaries[i+1].line
		}

		content := strings.TrimSpace(strings.Join(lines[bodyStart:bodyEnd], "\n"))
		section := types.StyleGuideSection{
			ID:       Slug(h.title),
			Title:    h.title,
			Level:    h.level,
			Content:  content,
			Position: i,
		}
		if opts.Sentinel != "" && content == opts.Sentinel {
			section.Placeholder = true
		}
		sections = append(sections, section)
	}

	return sections
}

// Render reassembles sections into a markdown document: each section's
// heading line followed by its body, sections separated by blank lines.
// Parsing the rendered output reproduces the same section boundaries.
func Render(sections []types.StyleGuideSection) string {
	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		headingText := strings.Repeat("#", section.Level) + " " + section.Title
		if section.Content == "" {
			blocks = append(blocks, headingText)
			continue
		}
		blocks = append(blocks, headingText+"\n\n"+section.Content)
	}
	return strings.Join(blocks, "\n\n")
}

// DefaultOpenSections returns the ids of the sections that render expanded by
// default: the first two sections are always open, and of the remainder the
// first section at index >= 2 starts expanded. This is a UI affordance
// policy; callers may override it.
func DefaultOpenSections(sections []types.StyleGuideSection) []string {
	open := make([]string, 0, 3)
	for i, section := range sections {
		open = append(open, section.ID)
		if i >= 2 {
			break
		}
	}
	return open
}

// ReplaceSectionContent swaps the body of the section with the given id for
// the supplied placeholder text, leaving every other section and the heading
// structure untouched. Returns SectionNotFoundError when the id matches no
// section, and UnparsableDocumentError when the document has no headings.
func ReplaceSectionContent(document, id, placeholder string) (string, error) {
	lines := strings.Split(document, "\n")
	boundaries := scanBoundaries(lines)
	if len(boundaries) == 0 {
		return "", &UnparsableDocumentError{Message: "no section headings found"}
	}

	for i, h := range boundaries {
		if Slug(h.title) != id {
			continue
		}

		bodyEnd := len(lines)
		if i+1 < len(boundaries) {
			bodyEnd = boundaries[i+1].line
		}

		rebuilt := make([]string, 0, len(lines))
		rebuilt = append(rebuilt, lines[:h.line+1]...)
		rebuilt = append(rebuilt, "", placeholder, "")
		rebuilt = append(rebuilt, lines[bodyEnd:]...)
		return strings.Join(rebuilt, "\n"), nil
	}

	return "", &SectionNotFoundError{ID: id}
}

// scanBoundaries returns the document's top-level headings in order.
// Fenced code blocks are lexed so a "#" line inside a fence never counts.
func scanBoundaries(lines []string) []heading {
	headings := make([]heading, 0)
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if match := headingLine.FindStringSubmatch(line); match != nil {
			headings = append(headings, heading{
				line:  i,
				level: len(match[1]),
				title: match[2],
			})
		}
	}

	if len(headings) == 0 {
		return nil
	}

	// Boundaries are the shallowest headings present; deeper headings
	// belong to section bodies
	top := headings[0].level
	for _, h := range headings {
		if h.level < top {
			top = h.level
		}
	}

	boundaries := make([]heading, 0, len(headings))
	for _, h := range headings {
		if h.level == top {
			boundaries = append(boundaries, h)
		}
	}
	return boundaries
}
