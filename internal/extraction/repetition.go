package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTopWords is the default number of repeated words reported.
const DefaultTopWords = 10

// stopWords are excluded from the repetition count.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "a": true, "an": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "as": true,
	"by": true, "or": true, "be": true, "is": true, "are": true, "was": true,
	"were": true, "this": true, "that": true, "it": true, "from": true,
	"your": true, "you": true, "we": true, "our": true, "my": true,
	"their": true, "his": true, "her": true, "they": true, "them": true,
	"us": true, "me": true,
}

// RepeatedWords counts lowercase alphabetic tokens (length >= 2, stop
// words removed) and returns the topN most frequent as (word, count)
// pairs, ordered by count descending with ties broken by first
// occurrence.
func RepeatedWords(text string, topN int) []types.WordCount {
	if topN <= 0 {
		topN = DefaultTopWords
	}

	counts := make(map[string]int)
	var order []string
	for _, token := range wordRx.FindAllString(text, -1) {
		token = strings.ToLower(token)
		if stopWords[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	words := make([]types.WordCount, 0, len(order))
	for _, w := range order {
		words = append(words, types.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})

	if len(words) > topN {
		words = words[:topN]
	}
	return words
}
