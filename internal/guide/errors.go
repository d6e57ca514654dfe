// Package guide parses style-guide documents into addressable sections and
// assembles tier-gated views of them.
package guide

import "fmt"

// SectionNotFoundError indicates that no section with the requested id exists
// in the document
type SectionNotFoundError struct {
	ID string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found in document", e.ID)
}

// UnparsableDocumentError indicates a document with no recognizable section
// headings. Callers should fall back to showing the raw content, never treat
// this as an empty guide.
type UnparsableDocumentError struct {
	Message string
}

func (e *UnparsableDocumentError) Error() string {
	return fmt.Sprintf("unparsable guide document: %s", e.Message)
}

// HTMLParseError indicates that an HTML guide export could not be parsed
type HTMLParseError struct {
	Message string
	Cause   error
}

func (e *HTMLParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html parse error: %s", e.Message)
}

func (e *HTMLParseError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates that the section generation collaborator failed
// for a specific section
type GenerationError struct {
	SectionID string
	Cause     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate section %q: %v", e.SectionID, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
