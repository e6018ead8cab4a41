// Package mapreduce aggregates word frequencies across many reference pages
// into a single keyword ranking.
package mapreduce

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fsociety-ai/doc-verifier/pkg/analytics"
)

// Map generates a word frequency map for a single page's text.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce aggregates per-page word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// TopKeywords returns the top N keywords from aggregated word counts as
// "word:count" strings. Ties break alphabetically so output is stable
// across runs.
func TopKeywords(wordCounts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}

// isValidKeyword filters obviously broken tokens: unmatched delimiters,
// trailing separators, odd quote counts. Technical terms like x_train pass.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") && !strings.Contains(word, "}") {
		return false
	}

	if strings.Count(word, `"`)%2 != 0 {
		return false
	}
	if strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}
