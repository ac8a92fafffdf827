package dashboard

import (
	"strings"
	"sync"
	"time"

	"newsharvest/app/feed"
	"newsharvest/app/output"
)

// Store holds the loaded article corpus for the read-only dashboard. The
// corpus is rebuilt on Load and only read afterwards; there is no write
// path back into the pipeline.
type Store struct {
	reader *output.Reader
	dedup  *feed.Deduplicator

	mu       sync.RWMutex
	articles []feed.Entry
	loadedAt time.Time
}

func NewStore(reader *output.Reader) *Store {
	return &Store{
		reader: reader,
		dedup:  feed.NewDeduplicator(),
	}
}

// Load reads every persisted output file and deduplicates the combined
// corpus by (title, url). This corpus-wide scope is deliberately stricter
// than the pipeline's per-feed dedup: a feed may legitimately re-report the
// same story across runs, and the viewer collapses that.
func (s *Store) Load() (int, error) {
	entries, err := s.reader.Load()
	if err != nil {
		return 0, err
	}

	unique := s.dedup.Run(entries)

	s.mu.Lock()
	s.articles = unique
	s.loadedAt = time.Now()
	s.mu.Unlock()

	return len(unique), nil
}

// Filter returns the articles matching every predicate of q, in corpus
// order.
func (s *Store) Filter(q Query) []feed.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]feed.Entry, 0)
	for _, article := range s.articles {
		if matches(article, q) {
			matched = append(matched, article)
		}
	}

	return matched
}

// Count returns the size of the loaded corpus and its load time.
func (s *Store) Count() (int, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), s.loadedAt
}

func matches(article feed.Entry, q Query) bool {
	if len(q.Countries) > 0 && !containsFold(q.Countries, article.Country) {
		return false
	}
	if len(q.Sources) > 0 && !containsFold(q.Sources, article.Source) {
		return false
	}
	if len(q.Languages) > 0 && !containsFold(q.Languages, article.Language) {
		return false
	}

	// Date-range bounds compare calendar dates, not instants.
	published := dateOf(article.PublishedAt)
	if !q.From.IsZero() && published.Before(dateOf(q.From)) {
		return false
	}
	if !q.To.IsZero() && published.After(dateOf(q.To)) {
		return false
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(article.Title), needle) &&
			!strings.Contains(strings.ToLower(article.Description), needle) {
			return false
		}
	}

	return true
}

// Counts aggregates per-dimension totals over an already-filtered set.
func Counts(articles []feed.Entry) Stats {
	stats := Stats{
		Total:      len(articles),
		ByCountry:  make(map[string]int),
		BySource:   make(map[string]int),
		ByLanguage: make(map[string]int),
	}

	for _, article := range articles {
		stats.ByCountry[article.Country]++
		stats.BySource[article.Source]++
		stats.ByLanguage[article.Language]++
	}

	return stats
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
