package scorer

import (
	"strings"

	"github.com/fsociety-ai/doc-verifier/models"
)

// Category rules are evaluated in a fixed priority order: legal, financial,
// policy, identity. Filename signals outrank content signals.
type categoryRule struct {
	category string
	terms    []string
}

var filenameRules = []categoryRule{
	{models.CategoryLegal, []string{"contract", "agreement", "terms", "legal"}},
	{models.CategoryFinancial, []string{"report", "financial", "balance", "income", "statement"}},
	{models.CategoryPolicy, []string{"policy", "handbook", "manual", "guide"}},
	{models.CategoryIdentity, []string{"id", "passport", "license", "certificate"}},
}

var contentRules = []categoryRule{
	{models.CategoryLegal, []string{"contract", "agreement", "parties", "hereby", "terms", "conditions"}},
	{models.CategoryFinancial, []string{"financial", "revenue", "profit", "loss", "balance", "income", "statement"}},
	{models.CategoryPolicy, []string{"policy", "procedure", "guideline", "handbook"}},
	{models.CategoryIdentity, []string{"identification", "passport", "license", "certificate", "birth"}},
}

// Classify returns the document category, first matching rule wins.
func Classify(filename, text string) string {
	filenameLower := strings.ToLower(filename)
	for _, rule := range filenameRules {
		if containsAny(filenameLower, rule.terms) {
			return rule.category
		}
	}

	textLower := strings.ToLower(text)
	for _, rule := range contentRules {
		if containsAny(textLower, rule.terms) {
			return rule.category
		}
	}
	return models.CategoryGeneral
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
