package extraction

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
)

// certKeywords classify a line as a certification.
var certKeywords = []string{"certified", "certification", "certificate", "exam", "credential", "badge"}

// achieveKeywords classify a line as an achievement.
var achieveKeywords = []string{
	"award", "achievement", "ranked", "honors", "honours", "winner",
	"finalist", "hackathon", "patent", "publication", "prize",
}

// ExtractCertificationsAndAchievements scans the relevant sections (the
// whole text when a section is absent) and returns certification lines
// and achievement lines by keyword membership. Bullet markers are
// stripped, whitespace collapsed, lines shorter than three characters
// discarded, and duplicates removed preserving order.
func ExtractCertificationsAndAchievements(text string) (certs, achievements []string) {
	sectionMap := sections.Split(text)

	certsBlock := sectionMap["certifications"]
	if strings.TrimSpace(certsBlock) == "" {
		certsBlock = text
	}

	achBlock := strings.Join([]string{
		sectionMap["achievements"],
		sectionMap["awards"],
		sectionMap["publications"],
	}, "\n")
	if strings.TrimSpace(achBlock) == "" {
		achBlock = text
	}

	certs = tidyLines(pickLines(certsBlock, certKeywords))
	achievements = tidyLines(pickLines(achBlock, achieveKeywords))
	return certs, achievements
}

// pickLines returns the lines of src containing any of the keywords, with
// leading bullet markers stripped.
func pickLines(src string, keywords []string) []string {
	var out []string
	for _, line := range strings.Split(src, "\n") {
		low := strings.ToLower(line)
		for _, k := range keywords {
			if strings.Contains(low, k) {
				out = append(out, strings.TrimSpace(strings.Trim(line, "•*- ")))
				break
			}
		}
	}
	return out
}

// tidyLines collapses whitespace, drops lines shorter than three
// characters, and deduplicates preserving order.
func tidyLines(items []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		item = strings.Join(strings.Fields(item), " ")
		if len(item) < 3 || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
