package matcher

import (
	"strings"
	"testing"
)

func TestExtractKeyPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{
			name: "empty text",
			text: "",
			max:  20,
			want: nil,
		},
		{
			name: "short paragraphs are skipped",
			text: "tiny\nalso tiny here\n",
			max:  20,
			want: nil,
		},
		{
			name: "short sentences inside a long paragraph are skipped",
			text: "Short one. The quarterly filing was submitted to the commission on time. Tiny.",
			max:  20,
			want: []string{"The quarterly filing was submitted to the commission on time"},
		},
		{
			name: "order follows the document",
			text: "The first statement in this document runs long enough to qualify.\nThe second statement in this document also runs long enough.",
			max:  20,
			want: []string{
				"The first statement in this document runs long enough to qualify",
				"The second statement in this document also runs long enough",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeyPhrases(tt.text, tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d phrases %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("phrase[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractKeyPhrases_Cap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("This sentence is deliberately long enough to count as a phrase.\n")
	}

	got := ExtractKeyPhrases(sb.String(), 20)
	if len(got) != 20 {
		t.Errorf("len(phrases) = %d, want capped at 20", len(got))
	}
}
