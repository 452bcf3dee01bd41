// Package sections splits normalized resume text into named sections by
// detecting heading lines.
package sections

import (
	"fmt"
	"regexp"
	"strings"
)

// Headings is the fixed vocabulary of recognized section headings, in
// match-priority order. Leading text before the first heading is bucketed
// under "header".
var Headings = []string{
	"summary", "profile", "experience", "work experience", "professional experience",
	"projects", "education", "skills", "technical skills", "certifications",
	"achievements", "awards", "publications", "activities", "links",
}

// HeaderSection is the bucket for unclassified leading text.
const HeaderSection = "header"

var headingRxs = compileHeadingPatterns()

func compileHeadingPatterns() []*regexp.Regexp {
	rxs := make([]*regexp.Regexp, len(Headings))
	for i, h := range Headings {
		// Whole-line match, optional trailing colon or dash.
		rxs[i] = regexp.MustCompile(fmt.Sprintf(`(?i)^%s\b[:\-]?$`, regexp.QuoteMeta(h)))
	}
	return rxs
}

// headingFor returns the section name a trimmed line switches to, or ""
// if the line is not a heading.
func headingFor(line string) string {
	for i, rx := range headingRxs {
		if rx.MatchString(line) {
			return Headings[i]
		}
	}
	return ""
}

// Split scans text line by line in a single forward pass and returns a map
// from section name to that section's text. A line switches the current
// section only when, after trimming, it fully matches a heading word
// optionally followed by a colon or dash. Every non-blank, non-heading
// line lands in exactly one bucket. Blank lines never switch sections but
// are preserved inside a bucket as a single paragraph boundary so
// paragraph-aware extractors can split on them. Empty buckets are dropped.
func Split(text string) map[string]string {
	buffers := make(map[string][]string)
	current := HeaderSection

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			// Paragraph boundary within the current section.
			buf := buffers[current]
			if len(buf) > 0 && buf[len(buf)-1] != "" {
				buffers[current] = append(buf, "")
			}
			continue
		}
		if name := headingFor(line); name != "" {
			current = name
			if _, ok := buffers[current]; !ok {
				buffers[current] = nil
			}
			continue
		}
		buffers[current] = append(buffers[current], line)
	}

	result := make(map[string]string, len(buffers))
	for name, lines := range buffers {
		section := strings.TrimSpace(strings.Join(lines, "\n"))
		if section != "" {
			result[name] = section
		}
	}
	return result
}
