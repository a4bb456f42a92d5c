package analysis

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe   = regexp.MustCompile(`[^\S\n]+`)
	newlineRunRe = regexp.MustCompile(`\n+`)
)

// Normalize collapses runs of horizontal whitespace to a single space and runs
// of newlines to a single newline, and trims the result. Every downstream
// component operates on this canonical form; none re-normalizes independently.
// Empty input yields empty output.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, " \n", "\n")
	text = strings.ReplaceAll(text, "\n ", "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
