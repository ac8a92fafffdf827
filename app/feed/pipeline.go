package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/gofeed"

	"newsharvest/app/sources"
)

// Ordered body-field fallbacks: the first present field wins.
var bodyFields = []func(*gofeed.Item) (string, bool){
	func(item *gofeed.Item) (string, bool) { return item.Description, item.Description != "" },
	func(item *gofeed.Item) (string, bool) { return item.Content, item.Content != "" },
}

// Pipeline turns one parsed feed document into the final ordered,
// deduplicated, window-filtered list of normalized entries. Failures are
// contained at entry granularity: one bad item never aborts its batch.
type Pipeline struct {
	normalizer *TextNormalizer
	dates      *DateParser
	language   *LanguageDetector
	dedup      *Deduplicator
	windowDays int

	// Optional description backfill from the article page itself.
	articleFetcher *Fetcher
	extractor      *ContentExtractor
}

func NewPipeline(normalizer *TextNormalizer, dates *DateParser,
	language *LanguageDetector, dedup *Deduplicator, windowDays int) *Pipeline {
	return &Pipeline{
		normalizer: normalizer,
		dates:      dates,
		language:   language,
		dedup:      dedup,
		windowDays: windowDays,
	}
}

// EnableContentExtraction turns on article-page fetching for entries whose
// feed carried no body field. Extraction failures leave the description
// empty and never drop the entry.
func (p *Pipeline) EnableContentExtraction(fetcher *Fetcher, extractor *ContentExtractor) {
	p.articleFetcher = fetcher
	p.extractor = extractor
}

// Run processes every raw item of one feed against the given source
// metadata and run time, then deduplicates the admitted set.
func (p *Pipeline) Run(ctx context.Context, items []*gofeed.Item, src sources.Source, now time.Time) ([]Entry, Stats) {
	stats := Stats{Total: len(items)}
	admitted := make([]Entry, 0, len(items))

	for i, item := range items {
		result := p.processItem(ctx, item, src, now)

		switch result.Status {
		case StatusAdmitted:
			admitted = append(admitted, result.Entry)
		case StatusDroppedStale:
			stats.Stale++
		case StatusDroppedError:
			stats.Errors++
			slog.Error("Failed to process entry",
				"source", src.Agency, "index", i, "error", result.Err)
		}
	}

	unique := p.dedup.Run(admitted)
	stats.Duplicates = len(admitted) - len(unique)
	stats.Admitted = len(unique)

	return unique, stats
}

// processItem runs the per-entry state machine. A panic while handling a
// single item is converted into a dropped-error result.
func (p *Pipeline) processItem(ctx context.Context, item *gofeed.Item, src sources.Source, now time.Time) (result EntryResult) {
	defer func() {
		if r := recover(); r != nil {
			result = EntryResult{
				Status: StatusDroppedError,
				Err:    fmt.Errorf("panic while processing entry: %v", r),
			}
		}
	}()

	if item == nil {
		return EntryResult{
			Status: StatusDroppedError,
			Err:    fmt.Errorf("nil feed item"),
		}
	}

	title := p.normalizer.Run(item.Title)
	description := p.normalizer.Run(p.extractBody(item))

	published := p.dates.Run(item.Published)

	if !IsRecent(published, now, p.windowDays) {
		return EntryResult{Status: StatusDroppedStale}
	}

	if description == "" && p.extractor != nil && item.Link != "" {
		description = p.extractFromArticle(ctx, item.Link)
	}

	lang := p.language.Run(title + " " + description)

	return EntryResult{
		Status: StatusAdmitted,
		Entry: Entry{
			Title:       title,
			Description: description,
			URL:         item.Link,
			PublishedAt: published,
			Source:      src.Agency,
			Country:     src.Country,
			Language:    lang,
		},
	}
}

func (p *Pipeline) extractBody(item *gofeed.Item) string {
	for _, field := range bodyFields {
		if value, ok := field(item); ok {
			return value
		}
	}
	return ""
}

func (p *Pipeline) extractFromArticle(ctx context.Context, url string) string {
	data, err := p.articleFetcher.Run(ctx, url)
	if err != nil {
		slog.Debug("Article fetch failed, keeping empty description", "url", url, "error", err)
		return ""
	}

	text, err := p.extractor.Run(data)
	if err != nil {
		slog.Debug("Article extraction failed, keeping empty description", "url", url, "error", err)
		return ""
	}

	return p.normalizer.Run(text)
}
