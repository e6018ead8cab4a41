// Package webtext distills fetched HTML into plain text suitable for
// sentence-level comparison against document claims.
package webtext

import (
	"bufio"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// FromHTML lets go-readability isolate the main article content, then walks
// the distilled markup for content-bearing blocks joined by newlines.
// Returns the page title and the plain text.
func FromHTML(rawURL, html string) (string, string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", "", err
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,td,pre").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	text := strings.Join(blocks, "\n")
	if text == "" {
		text = normalizeText(article.TextContent)
	}
	return normalizeText(article.Title), text, nil
}

// Sentences splits plain text into sentence-like spans, paragraph by
// paragraph. Empty spans are dropped.
func Sentences(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		spans := strings.FieldsFunc(para, func(r rune) bool {
			return r == '.' || r == '!' || r == '?'
		})
		for _, s := range spans {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// normalizeText cleans up a string by trimming space and collapsing
// line breaks into single spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
