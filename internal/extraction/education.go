package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// degreeWords are the degree keywords that qualify an education line, in
// extraction-priority order.
var degreeWords = []string{
	"bachelor", "master", "phd", "associate", "diploma", "degree", "b.tech", "m.tech",
	"b.e", "b.e.", "bsc", "b.sc", "msc", "m.sc", "mca", "me", "m.e", "mba",
}

var degreeWordRxs = compileDegreePatterns()

func compileDegreePatterns() []*regexp.Regexp {
	rxs := make([]*regexp.Regexp, len(degreeWords))
	for i, w := range degreeWords {
		rxs[i] = regexp.MustCompile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(w)))
	}
	return rxs
}

// ExtractEducation collects education entries from the education section
// when present, otherwise from the whole text. A line qualifies when it
// contains a degree keyword or a 19xx/20xx year. The first date range on
// the line supplies the start and end years; "present" resolves to
// nowYear. Entries are deduplicated by exact line text in first-seen
// order.
func ExtractEducation(text string, nowYear int) []types.EducationEntry {
	block := sections.Split(text)["education"]
	if block == "" {
		block = text
	}

	var entries []types.EducationEntry
	seen := make(map[string]bool)
	for _, line := range strings.Split(block, "\n") {
		low := strings.ToLower(line)
		if !containsDegreeWord(low) && !yearRx.MatchString(line) {
			continue
		}

		entry := types.EducationEntry{Line: strings.TrimSpace(line)}
		if entry.Line == "" || seen[entry.Line] {
			continue
		}
		seen[entry.Line] = true

		entry.StartYear, entry.EndYear = firstYearRange(line, nowYear)
		entry.Degree = firstDegreeWord(low)
		entries = append(entries, entry)
	}
	return entries
}

// containsDegreeWord checks for any degree keyword as a substring,
// matching the looser qualification test (the stricter word-boundary test
// is reserved for choosing the reported degree).
func containsDegreeWord(low string) bool {
	for _, w := range degreeWords {
		if strings.Contains(low, w) {
			return true
		}
	}
	return false
}

// firstDegreeWord returns the first degree keyword with a whole-word
// match, or "".
func firstDegreeWord(low string) string {
	for i, rx := range degreeWordRxs {
		if rx.MatchString(low) {
			return degreeWords[i]
		}
	}
	return ""
}

// firstYearRange finds the first date range on the line and returns its
// start and end years; both are nil when the line carries no range.
func firstYearRange(line string, nowYear int) (*int, *int) {
	normalized := strings.NewReplacer("–", "-", "—", "-").Replace(line)

	m := dateRangeRx.FindStringSubmatch(normalized)
	if m == nil {
		m = yearRangeRx.FindStringSubmatch(normalized)
		if m == nil {
			return nil, nil
		}
		return yearRangePointers(m[1], m[2], nowYear)
	}
	end := m[2]
	if end == "" {
		end = m[3]
	}
	return yearRangePointers(m[1], end, nowYear)
}

func yearRangePointers(startText, endText string, nowYear int) (*int, *int) {
	var start, end *int
	if y := parseYear(startText); y != 0 {
		start = &y
	}
	if presentCurrentRx.MatchString(endText) {
		end = &nowYear
	} else if y := parseYear(endText); y != 0 {
		end = &y
	}
	return start, end
}
