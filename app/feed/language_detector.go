package feed

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
)

// LanguageUnknown is the sentinel for text the detector cannot classify.
const LanguageUnknown = "unknown"

// LanguageDetector classifies the dominant language of a text blob.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds a detector over all supported languages. The
// model load is not cheap, so callers should construct one detector and
// share it across feeds.
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Run returns a canonical BCP-47 tag for the dominant language of text, or
// LanguageUnknown when the text is empty, too short or ambiguous. Never
// errors.
func (d *LanguageDetector) Run(text string) string {
	if strings.TrimSpace(text) == "" {
		return LanguageUnknown
	}

	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return LanguageUnknown
	}

	tag, err := language.Parse(detected.IsoCode639_1().String())
	if err != nil {
		return LanguageUnknown
	}

	return tag.String()
}
