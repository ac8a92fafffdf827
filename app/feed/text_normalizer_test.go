package feed

import (
	"testing"
)

func TestNormalizeStripsMarkup(t *testing.T) {
	normalizer := NewTextNormalizer()

	cases := []struct {
		input    string
		expected string
	}{
		{"<b>Storm</b> Hits City", "Storm Hits City"},
		{"Heavy <i>rain</i> reported.", "Heavy rain reported."},
		{"<a href=\"https://example.com\">Read more</a> here", "Read more here"},
		{"plain text stays", "plain text stays"},
	}

	for _, tc := range cases {
		got := normalizer.Run(tc.input)
		if got != tc.expected {
			t.Errorf("Run(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	normalizer := NewTextNormalizer()

	got := normalizer.Run("  too \t many\n\n spaces  ")
	if got != "too many spaces" {
		t.Errorf("Expected 'too many spaces', got %q", got)
	}
}

func TestNormalizeRemovesSpecialCharacters(t *testing.T) {
	normalizer := NewTextNormalizer()

	cases := []struct {
		input    string
		expected string
	}{
		{"keeps basic. punctuation, too! right? yes-no", "keeps basic. punctuation, too! right? yes-no"},
		{"strips @#$%^&*() symbols", "strips symbols"},
		{"quotes \"removed\" 'here'", "quotes removed here"},
	}

	for _, tc := range cases {
		got := normalizer.Run(tc.input)
		if got != tc.expected {
			t.Errorf("Run(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeKeepsNonLatinScripts(t *testing.T) {
	normalizer := NewTextNormalizer()

	cases := []struct {
		input    string
		expected string
	}{
		{"मौसम समाचार", "मौसम समाचार"},
		{"Météo prévue à Paris", "Météo prévue à Paris"},
		{"天気予報", "天気予報"},
	}

	for _, tc := range cases {
		got := normalizer.Run(tc.input)
		if got != tc.expected {
			t.Errorf("Run(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	normalizer := NewTextNormalizer()

	if got := normalizer.Run(""); got != "" {
		t.Errorf("Expected empty string for empty input, got %q", got)
	}
	if got := normalizer.Run("   \n\t  "); got != "" {
		t.Errorf("Expected empty string for whitespace-only input, got %q", got)
	}
}

func TestNormalizeMalformedMarkup(t *testing.T) {
	normalizer := NewTextNormalizer()

	// Unclosed and nonsense tags degrade to best-effort text extraction.
	got := normalizer.Run("<b>Breaking<i> news <notatag>update")
	if got != "Breaking news update" {
		t.Errorf("Expected 'Breaking news update', got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	normalizer := NewTextNormalizer()

	inputs := []string{
		"<b>Storm</b> Hits City",
		"Heavy <i>rain</i> reported.",
		"a @ b",
		"  multi   space\n\ttext  ",
		"précis — with dash",
		"मौसम समाचार",
		"",
		"already clean text.",
	}

	for _, input := range inputs {
		once := normalizer.Run(input)
		twice := normalizer.Run(once)
		if once != twice {
			t.Errorf("Normalization not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
