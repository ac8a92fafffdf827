package cfg

type Cfg struct {
	// Scraper configuration
	SourcesFile  string
	OutputDir    string
	OutputFormat string
	WindowDays   int
	UserAgent    string
	FetchTimeout int
	FetchDelay   int
	CrawlDelay   int

	// Optional per-entry content extraction
	ExtractContent bool

	// Scheduler configuration
	IntervalHours int

	// Dashboard configuration
	Port string

	// Application metadata
	Debug   bool
	Version string
}
