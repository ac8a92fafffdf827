package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// Unicode word characters plus basic punctuation survive; everything
	// else is dropped. Non-Latin scripts must be preserved so language
	// detection still has something to work with.
	specialCharsRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?-]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// TextNormalizer strips markup and character noise from raw text fields.
type TextNormalizer struct{}

func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{}
}

// Run cleans a raw text value: markup is stripped down to its text content
// (in document order), disallowed characters are removed, whitespace runs
// collapse to a single space and the ends are trimmed. Total and
// idempotent; malformed markup degrades to best-effort extraction.
func (n *TextNormalizer) Run(text string) string {
	if text == "" {
		return ""
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
		text = doc.Text()
	}

	text = specialCharsRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
