// Package ingestion converts uploaded resume documents into normalized
// plain text. Extraction is best-effort: an unreadable document degrades
// to empty text so the analysis pipeline can still produce a valid,
// low-scoring result instead of failing the request.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	horizontalWhitespaceRx = regexp.MustCompile(`[ \t]+`)
	excessiveNewlinesRx    = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText collapses whitespace noise in raw extracted text: carriage
// returns become newlines, runs of spaces and tabs collapse to one space,
// three or more consecutive newlines collapse to two, and the result is
// trimmed. It is a total function and never fails.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalWhitespaceRx.ReplaceAllString(text, " ")
	text = excessiveNewlinesRx.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
