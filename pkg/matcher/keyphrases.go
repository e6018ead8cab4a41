package matcher

import "strings"

// Segmentation bounds: paragraphs shorter than minParagraphLen and sentences
// shorter than minPhraseLen carry no verifiable signal and are discarded.
const (
	minParagraphLen = 20
	minPhraseLen    = 30
)

// ExtractKeyPhrases segments text into candidate verifiable claims:
// sentence spans of at least 30 characters drawn from paragraphs of at
// least 20 characters, in first-seen order, capped at max to bound the
// downstream fetch and compare cost.
func ExtractKeyPhrases(text string, max int) []string {
	var phrases []string
	for _, para := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(para)) < minParagraphLen {
			continue
		}
		for _, sentence := range strings.Split(para, ".") {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) < minPhraseLen {
				continue
			}
			phrases = append(phrases, sentence)
			if len(phrases) == max {
				return phrases
			}
		}
	}
	return phrases
}
