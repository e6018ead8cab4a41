package extractors

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// The detector is expensive to build, so it is shared and built once.
var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		languages := []lingua.Language{
			lingua.English, lingua.Spanish, lingua.French, lingua.German,
			lingua.Italian, lingua.Portuguese, lingua.Dutch,
		}
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build()
	})
	return detector
}

// DetectLanguage returns the lower-case ISO 639-1 code for text. Very short
// inputs carry too little signal and report no language.
func DetectLanguage(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 40 {
		return "", false
	}
	lang, ok := languageDetector().DetectLanguageOf(trimmed)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
