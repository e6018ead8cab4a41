// Package analytics computes stopword-aware word frequencies over extracted
// document text, used for the keyword summaries in CLI output.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords is a map of frequently occurring words that should be ignored
// in frequency analysis. This list can be extended as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "almost": {}, "also": {}, "although": {}, "always": {}, "am": {},
	"among": {}, "an": {}, "and": {}, "another": {}, "any": {}, "are": {},
	"aren't": {}, "as": {}, "at": {},

	"be": {}, "became": {}, "because": {}, "become": {}, "been": {},
	"before": {}, "behind": {}, "being": {}, "below": {}, "between": {},
	"beyond": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {}, "couldn't": {},

	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {}, "doing": {},
	"don't": {}, "done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {}, "even": {},
	"ever": {}, "every": {}, "everything": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "hence": {},
	"her": {}, "here": {}, "hereby": {}, "herein": {}, "hers": {}, "him": {},
	"his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {},
	"isn't": {}, "it": {}, "its": {}, "itself": {},

	"just": {},

	"last": {}, "least": {}, "less": {}, "let": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"might": {}, "more": {}, "most": {}, "much": {}, "must": {}, "my": {},

	"neither": {}, "never": {}, "next": {}, "no": {}, "none": {}, "nor": {},
	"not": {}, "nothing": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "otherwise": {},
	"our": {}, "ours": {}, "out": {}, "over": {}, "own": {},

	"per": {}, "perhaps": {},

	"rather": {},

	"same": {}, "shall": {}, "she": {}, "should": {}, "shouldn't": {},
	"since": {}, "so": {}, "some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"then": {}, "there": {}, "thereby": {}, "therefore": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "thus": {}, "to": {},
	"together": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "wasn't": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whereas": {}, "whether": {}, "which": {}, "while": {},
	"who": {}, "whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {}, "wouldn't": {},

	"yet": {}, "you": {}, "your": {}, "yours": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		// Keep only lowercase letters and numbers
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if _, exists := commonWords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopword words of text,
// most frequent first.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
