package dashboard

import (
	"time"
)

// Query holds the filter predicates applied to the loaded corpus. Empty
// slices and zero times mean "no restriction".
type Query struct {
	Countries []string
	Sources   []string
	Languages []string
	From      time.Time
	To        time.Time
	Search    string
}

// Article is the serialized shape of one corpus entry in API responses.
type Article struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
	Country       string `json:"country"`
	Language      string `json:"language"`
}

// Stats aggregates counts over a filtered article set.
type Stats struct {
	Total      int            `json:"total"`
	ByCountry  map[string]int `json:"by_country"`
	BySource   map[string]int `json:"by_source"`
	ByLanguage map[string]int `json:"by_language"`
}
