package feed

import (
	"time"
)

// DefaultWindowDays is the trailing retention window for admitted entries.
const DefaultWindowDays = 365

// DateLayout is the canonical naive timestamp representation used in all
// persisted output.
const DateLayout = "2006-01-02T15:04:05"

// Entry is the canonical normalized record produced by the pipeline. It is
// constructed once per raw feed item and never mutated afterwards.
type Entry struct {
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
	Source      string
	Country     string
	Language    string
}

// PublishedDate returns the published timestamp in its canonical naive
// ISO 8601 form (no offset).
func (e Entry) PublishedDate() string {
	return e.PublishedAt.Format(DateLayout)
}

// EntryStatus is the terminal state of one raw item's trip through the
// pipeline.
type EntryStatus int

const (
	StatusAdmitted EntryStatus = iota
	StatusDroppedStale
	StatusDroppedError
)

// EntryResult carries the outcome of processing a single raw item. Err is
// set only for StatusDroppedError.
type EntryResult struct {
	Status EntryStatus
	Entry  Entry
	Err    error
}

// Stats summarizes one pipeline run over a single feed.
type Stats struct {
	Total      int
	Admitted   int
	Stale      int
	Duplicates int
	Errors     int
}
