package extraction

import "strings"

// dedicatedLinkDomains are the site domains with their own link kind;
// portfolio matches containing one of these are misclassifications of the
// broad portfolio pattern and are filtered out.
var dedicatedLinkDomains = []string{"linkedin.com", "github.com", "leetcode.com"}

// ExtractLinks finds contact and profile links in the text, keyed by link
// kind (email, phone, linkedin, github, portfolio, leetcode). Matches are
// deduplicated preserving order. A kind is present in the map only when
// its pattern matched at least once; the portfolio list may still be
// empty after domain filtering.
func ExtractLinks(text string) map[string][]string {
	found := make(map[string][]string)
	for _, p := range linkPatterns {
		matches := p.rx.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		if p.kind == "portfolio" {
			matches = filterDedicatedDomains(matches)
		}
		found[p.kind] = dedupePreservingOrder(matches)
	}
	return found
}

func filterDedicatedDomains(matches []string) []string {
	filtered := make([]string, 0, len(matches))
	for _, m := range matches {
		low := strings.ToLower(m)
		dedicated := false
		for _, domain := range dedicatedLinkDomains {
			if strings.Contains(low, domain) {
				dedicated = true
				break
			}
		}
		if !dedicated {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func dedupePreservingOrder(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
