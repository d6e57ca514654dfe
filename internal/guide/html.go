package guide

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/styleguide-studio/internal/types"
)

// headingSelector matches every HTML heading element
const headingSelector = "h1, h2, h3, h4, h5, h6"

// ParseHTML splits an HTML guide export into the same ordered section list
// that Parse produces for markdown: boundaries at the shallowest heading
// level present, ids from the same slug function, content running to the
// next heading at the same or shallower level. Section content is the plain
// text of the intervening elements.
//
// A document with zero headings yields an empty list with no error, matching
// the markdown parser's fallback contract.
func ParseHTML(document string) ([]types.StyleGuideSection, error) {
	return ParseHTMLWithOptions(document, ParseOptions{})
}

// ParseHTMLWithOptions is ParseHTML with explicit options.
func ParseHTMLWithOptions(document string, opts ParseOptions) ([]types.StyleGuideSection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, &HTMLParseError{Message: "failed to parse HTML document", Cause: err}
	}

	headings := doc.Find(headingSelector)
	if headings.Length() == 0 {
		return nil, nil
	}

	// Boundaries are the shallowest heading level present
	top := 7
	headings.Each(func(_ int, s *goquery.Selection) {
		if level := headingLevel(s); level > 0 && level < top {
			top = level
		}
	})

	stopLevels := make([]string, 0, top)
	for level := 1; level <= top; level++ {
		stopLevels = append(stopLevels, "h"+string(rune('0'+level)))
	}
	stopSelector := strings.Join(stopLevels, ", ")

	sections := make([]types.StyleGuideSection, 0, headings.Length())
	headings.Each(func(_ int, s *goquery.Selection) {
		if headingLevel(s) != top {
			return
		}

		title := strings.TrimSpace(s.Text())
		bodyParts := make([]string, 0)
		s.NextUntil(stopSelector).Each(func(_ int, sibling *goquery.Selection) {
			if text := strings.TrimSpace(sibling.Text()); text != "" {
				bodyParts = append(bodyParts, text)
			}
		})

		content := strings.Join(bodyParts, "\n\n")
		section := types.StyleGuideSection{
			ID:       Slug(title),
			Title:    title,
			Level:    top,
			Content:  content,
			Position: len(sections),
		}
		if opts.Sentinel != "" && content == opts.Sentinel {
			section.Placeholder = true
		}
		sections = append(sections, section)
	})

	return sections, nil
}

// headingLevel returns the depth of a heading element (1 for h1), or 0 for
// anything that is not a heading
func headingLevel(s *goquery.Selection) int {
	node := s.Get(0)
	if node == nil || len(node.Data) != 2 || node.Data[0] != 'h' {
		return 0
	}
	level := int(node.Data[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}
