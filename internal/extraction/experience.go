package extraction

import (
	"math"
	"strconv"
	"strings"
)

// yearSpan is the deduplication key for a date range.
type yearSpan struct {
	start int
	end   int
}

// ExtractExperienceYears estimates total experience from two independent
// signals and returns the larger: the largest explicit "N years" mention,
// and the sum of date-range spans. Ranges are deduplicated by their
// (startYear, resolvedEndYear) pair so repeated phrasings of the same
// range are counted once. "Present" and "current" end years resolve to
// nowYear. When neither signal is present but the text mentions an
// internship, a half year is assumed. The result has two decimal places
// and is never negative.
func ExtractExperienceYears(text string, nowYear int) float64 {
	normalized := strings.NewReplacer("–", "-", "—", "-").Replace(text)

	explicit := 0.0
	for _, m := range explicitYearsRx.FindAllStringSubmatch(normalized, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > explicit {
			explicit = v
		}
	}

	totalFromRanges := 0.0
	seen := make(map[yearSpan]bool)
	addSpan := func(startText, endText string) {
		start := parseYear(startText)
		if start == 0 {
			return
		}
		end := resolveEndYear(endText, start, nowYear)
		key := yearSpan{start, end}
		if seen[key] {
			return
		}
		seen[key] = true
		totalFromRanges += math.Max(0, float64(end-start))
	}

	for _, m := range dateRangeRx.FindAllStringSubmatch(normalized, -1) {
		end := m[2]
		if end == "" {
			end = m[3]
		}
		addSpan(m[1], end)
	}
	for _, m := range yearRangeRx.FindAllStringSubmatch(normalized, -1) {
		addSpan(m[1], m[2])
	}

	if explicit == 0 && totalFromRanges == 0 && strings.Contains(strings.ToLower(normalized), "intern") {
		totalFromRanges = 0.5
	}

	return math.Round(math.Max(explicit, totalFromRanges)*100) / 100
}

// parseYear extracts the first 19xx/20xx year in s, or 0.
func parseYear(s string) int {
	match := yearRx.FindString(s)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// resolveEndYear resolves a range's end year: "present"/"current" becomes
// nowYear, an absent end means a single-year range.
func resolveEndYear(endText string, startYear, nowYear int) int {
	if presentCurrentRx.MatchString(endText) {
		return nowYear
	}
	if year := parseYear(endText); year != 0 {
		return year
	}
	return startYear
}
