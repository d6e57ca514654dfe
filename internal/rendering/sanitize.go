// Package rendering serializes validated style rules into canonical markdown.
package rendering

import (
	"regexp"
	"strings"
)

var (
	// invisibleChars matches variation selectors, zero-width characters and
	// the word joiner, which some generators leak into rule text
	invisibleChars = regexp.MustCompile(`[\x{FE00}-\x{FE0F}\x{200B}-\x{200D}\x{2060}]`)

	// gluedQuote matches a double quote jammed between an alphanumeric and
	// an alphanumeric or slash, e.g. `Click"Create`
	gluedQuote = regexp.MustCompile(`([a-zA-Z0-9])(["\x{201C}])([a-zA-Z0-9/])`)

	// brokenTime matches a clock time split by a stray space, e.g. `10: 00`
	brokenTime = regexp.MustCompile(`(\d{1,2}): (\d{2})`)

	// newlineRuns matches one or more consecutive line breaks
	newlineRuns = regexp.MustCompile(`[\r\n]+`)
)

// SanitizeRuleText repairs common generation artifacts in rule text without
// altering meaning. The passes run in a fixed order because later passes
// assume earlier cleanup. The function is pure, total and idempotent; empty
// input yields the empty string.
func SanitizeRuleText(text string) string {
	if text == "" {
		return ""
	}

	// Strip the Unicode replacement character
	text = strings.ReplaceAll(text, "�", "")

	// Strip variation selectors and zero-width characters
	text = invisibleChars.ReplaceAllString(text, "")

	// Rule text is single-line: collapse newline runs into one space.
	// This must run before the time repair, which a newline can split
	// (`10:\n00` collapses to `10: 00`, the exact artifact the repair fixes).
	text = newlineRuns.ReplaceAllString(text, " ")

	// Heal quote collisions like `Click"Create` -> `Click "Create`.
	// Adjacent matches can overlap (`a"b"c`), so run to a fixpoint to keep
	// the pass idempotent.
	for {
		repaired := gluedQuote.ReplaceAllString(text, "$1 $2$3")
		if repaired == text {
			break
		}
		text = repaired
	}

	// Normalize times like `10: 00` -> `10:00`. Chained matches overlap
	// (`1: 23: 45`), so this pass also runs to a fixpoint.
	for {
		repaired := brokenTime.ReplaceAllString(text, "$1:$2")
		if repaired == text {
			break
		}
		text = repaired
	}

	return strings.TrimSpace(text)
}
