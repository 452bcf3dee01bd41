// Package extraction pulls structured facts out of normalized resume
// text: skills, experience duration, education, certifications,
// achievements, projects, links, and word repetition. All matching is
// heuristic, driven by the compiled patterns below and the skill
// vocabulary; extractors are total functions that return empty facts
// rather than errors.
package extraction

import "regexp"

// Pattern fragments shared by the date expressions. End years spelled
// "present" or "current" resolve to the caller-supplied current year.
const (
	dashClass    = `[–—-]`
	monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`
	yearPattern  = `(?:19|20)\d{2}`
)

// Date and duration patterns.
var (
	// dateRangeRx matches "May 2019 - Jun 2021", "2019 to Present" and
	// similar month-aware ranges. Group 1 is the start year, group 2 the
	// end year, group 3 "Present"/"Current" when used instead.
	dateRangeRx = regexp.MustCompile(
		`(?i)\b(?:(?:` + monthPattern + `)\s+)?(` + yearPattern + `)(?:\s*` + dashClass + `|\s+to\s+|\s*-\s*)(?:(?:` + monthPattern + `\s+)?(` + yearPattern + `)|\b(Present|Current)\b)\b`)

	// yearRangeRx matches bare "2019 - 2021" and "2019 to Present" ranges.
	yearRangeRx = regexp.MustCompile(
		`(?i)\b(` + yearPattern + `)\s*(?:` + dashClass + `|\s+to\s+|\s*-\s*)\s*(` + yearPattern + `|Present|Current)\b`)

	// explicitYearsRx matches explicit duration mentions like "5 years"
	// or "2.5 yrs".
	explicitYearsRx = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:years|yrs?)\b`)

	yearRx           = regexp.MustCompile(yearPattern)
	presentCurrentRx = regexp.MustCompile(`(?i)^(?:present|current)`)
)

// Formatting patterns used by the scoring engine.
var (
	// BulletLineRx matches a line starting with a bullet marker.
	BulletLineRx = regexp.MustCompile(`(?m)^[\s>*•\-–—]\s+`)

	// HeaderLineRx matches a short title-cased line surrounded by
	// newlines, a cheap proxy for visual section headers.
	HeaderLineRx = regexp.MustCompile(`\n[A-Z][A-Za-z ]{2,50}\n`)

	// MetricsRx matches quantified impact: percentages, dollar amounts,
	// "40k" shorthand, and bare numbers of three or more digits.
	MetricsRx = regexp.MustCompile(`(\b\d{1,3}%|\$\d[\d,]*|\b\d+k\b|\b\d{3,}\b)`)
)

// linkPatterns maps each link kind to its pattern. The portfolio pattern
// is intentionally broad (any domain-like string); matches that belong to
// one of the dedicated site kinds are filtered out after matching.
var linkPatterns = []struct {
	kind string
	rx   *regexp.Regexp
}{
	{"email", regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{"phone", regexp.MustCompile(`(?i)(?:\+?\d{1,3}[\s-]?)?(?:\(?\d{2,4}\)?[\s-]?)?\d{3,4}[\s-]?\d{3,4}`)},
	{"linkedin", regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9_/\-]+`)},
	{"github", regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+`)},
	{"portfolio", regexp.MustCompile(`(?i)(?:https?://)?[A-Za-z0-9\-]+\.[A-Za-z]{2,}(?:/[^\s]*)?`)},
	{"leetcode", regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?leetcode\.com/[A-Za-z0-9_\-]+`)},
}

// skillTokenRx tokenizes text into candidate skill tokens for the fuzzy
// matching pass: a letter followed by letters, digits, or the symbols
// commonly found in technology names (c++, node.js, c#).
var skillTokenRx = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9.+#\-]{1,}`)

// wordRx tokenizes alphabetic runs for the repetition analyzer.
var wordRx = regexp.MustCompile(`[A-Za-z]{2,}`)
