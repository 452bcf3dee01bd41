package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// fuzzyThreshold is the minimum similarity (0-100 scale) for a token to
// count as a fuzzy vocabulary match. Fixed contract value.
const fuzzyThreshold = 88

var (
	wordBoundaryCache   = make(map[string]*regexp.Regexp)
	wordBoundaryCacheMu sync.Mutex
)

// wordBoundaryRx returns a cached case-sensitive whole-word pattern for
// the (already lower-cased) term.
func wordBoundaryRx(term string) *regexp.Regexp {
	wordBoundaryCacheMu.Lock()
	defer wordBoundaryCacheMu.Unlock()
	if rx, ok := wordBoundaryCache[term]; ok {
		return rx
	}
	rx := regexp.MustCompile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(term)))
	wordBoundaryCache[term] = rx
	return rx
}

// ExtractSkills returns the sorted set of canonical vocabulary terms found
// in the text. Three passes feed the set: exact whole-word matches of
// canonical terms, alias-table hits (which add the canonical spelling),
// and a fuzzy pass that matches distinct tokens against the vocabulary to
// recover near-miss spellings.
func ExtractSkills(text string, vocab *Vocabulary) []string {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	padded := " " + strings.ToLower(text) + " "

	found := make(map[string]bool)
	for _, term := range vocab.Terms() {
		if wordBoundaryRx(term).MatchString(padded) {
			found[term] = true
		}
	}

	for canonical, aliases := range skillAliases {
		for _, alias := range aliases {
			if wordBoundaryRx(alias).MatchString(padded) {
				found[canonical] = true
				break
			}
		}
	}

	lev := metrics.NewLevenshtein()
	for token := range tokenSet(padded) {
		if term, score := bestVocabularyMatch(token, vocab, lev); score >= fuzzyThreshold {
			found[term] = true
		}
	}

	// "node" is a weaker variant of "node.js"; keep only the canonical
	// spelling when both are possible.
	if found["node"] && vocab.Contains("node.js") {
		delete(found, "node")
		found["node.js"] = true
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// tokenSet returns the distinct candidate skill tokens in the text.
func tokenSet(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, t := range skillTokenRx.FindAllString(text, -1) {
		tokens[t] = true
	}
	return tokens
}

// bestVocabularyMatch finds the vocabulary term with the highest
// similarity to the token on a 0-100 scale (100 = exact).
func bestVocabularyMatch(token string, vocab *Vocabulary, lev *metrics.Levenshtein) (string, int) {
	best := ""
	bestScore := -1
	for _, term := range vocab.Terms() {
		score := int(strutil.Similarity(token, term, lev) * 100)
		if score > bestScore {
			best = term
			bestScore = score
		}
	}
	return best, bestScore
}
