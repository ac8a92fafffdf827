package feed

import (
	"log/slog"
	"time"

	"github.com/araddon/dateparse"
)

// Explicit layouts tried in order after the flexible parse fails.
var dateLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type dateStrategy func(string) (time.Time, bool)

// DateParser resolves heterogeneous date strings into a single naive
// timestamp through an ordered strategy chain. It never fails: the final
// fallback is the current run time.
type DateParser struct {
	strategies []dateStrategy
	now        func() time.Time
}

// NewDateParser creates a date parser. A nil now falls back to wall-clock
// time; tests inject a fixed clock.
func NewDateParser(now func() time.Time) *DateParser {
	if now == nil {
		now = time.Now
	}

	strategies := []dateStrategy{parseFlexible}
	for _, layout := range dateLayouts {
		strategies = append(strategies, parseLayout(layout))
	}

	return &DateParser{
		strategies: strategies,
		now:        now,
	}
}

// Run parses a date string, trying each strategy in order. Offsets are
// dropped, not converted: the wall-clock fields are kept as written and the
// result is always naive. Empty input resolves to now silently; any other
// unparseable input logs a warning and resolves to now.
func (p *DateParser) Run(dateText string) time.Time {
	if dateText == "" {
		return StripOffset(p.now())
	}

	for _, strategy := range p.strategies {
		if t, ok := strategy(dateText); ok {
			return StripOffset(t)
		}
	}

	slog.Warn("Could not parse date", "value", dateText)
	return StripOffset(p.now())
}

func parseFlexible(s string) (time.Time, bool) {
	t, err := dateparse.ParseAny(s)
	return t, err == nil
}

func parseLayout(layout string) dateStrategy {
	return func(s string) (time.Time, bool) {
		t, err := time.Parse(layout, s)
		return t, err == nil
	}
}

// StripOffset discards the timezone offset of t, keeping its wall-clock
// fields. Entries from different timezones are deliberately not aligned to
// a common epoch; downstream consumers expect naive local-as-written
// timestamps.
func StripOffset(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
