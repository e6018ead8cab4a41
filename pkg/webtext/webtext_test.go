package webtext

import (
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Filing Deadlines</title></head>
<body>
<article>
<h1>Filing Deadlines</h1>
<p>Annual statements are due before the end of the fiscal year. Extensions require a written request submitted at least thirty days in advance.</p>
<ul><li>Quarterly reports are due within forty five days of quarter end.</li></ul>
<p>Electronic submission is mandatory for all filings above the reporting threshold, and paper submissions are no longer accepted.</p>
</article>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	title, text, err := FromHTML("https://example.gov/deadlines", articleHTML)
	if err != nil {
		t.Fatalf("FromHTML() failed: %v", err)
	}

	if !strings.Contains(title, "Filing Deadlines") {
		t.Errorf("title = %q, want it to contain Filing Deadlines", title)
	}
	for _, want := range []string{
		"Annual statements are due before the end of the fiscal year",
		"Quarterly reports are due within forty five days",
		"Electronic submission is mandatory",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q\ntext: %s", want, text)
		}
	}
	if strings.Contains(text, "<p>") {
		t.Errorf("text contains markup: %s", text)
	}
}

func TestFromHTML_BadURL(t *testing.T) {
	if _, _, err := FromHTML("://not-a-url", articleHTML); err == nil {
		t.Error("expected error for malformed URL, got nil")
	}
}

func TestSentences(t *testing.T) {
	text := "First span runs here. Second span follows!\nThird span on a new paragraph? Fourth."
	got := Sentences(text)

	want := []string{
		"First span runs here",
		"Second span follows",
		"Third span on a new paragraph",
		"Fourth",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSentences_Empty(t *testing.T) {
	if got := Sentences(""); len(got) != 0 {
		t.Errorf("Sentences(\"\") = %v, want none", got)
	}
	if got := Sentences("...!!!???"); len(got) != 0 {
		t.Errorf("Sentences(punctuation only) = %v, want none", got)
	}
}

func TestNormalizeText(t *testing.T) {
	in := "  line one  \n\n   line two\t\n"
	if got := normalizeText(in); got != "line one line two" {
		t.Errorf("normalizeText() = %q, want %q", got, "line one line two")
	}
}
