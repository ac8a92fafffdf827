package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Scraper configuration
	SourcesFile  string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file with feed sources (built-in list used when empty)"`
	OutputDir    string `long:"output-dir" env:"OUTPUT_DIR" default:"./data" description:"Directory for scraped output files"`
	OutputFormat string `long:"output-format" env:"OUTPUT_FORMAT" default:"csv" choice:"csv" choice:"json" description:"Output serialization format"`
	WindowDays   int    `long:"window-days" env:"WINDOW_DAYS" default:"365" description:"Retention window in days for admitted entries"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36" description:"User agent string for HTTP requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"HTTP fetch timeout in seconds"`
	FetchDelay   int    `long:"fetch-delay" env:"FETCH_DELAY" default:"1" description:"Delay in seconds before each feed fetch"`
	CrawlDelay   int    `long:"crawl-delay" env:"CRAWL_DELAY" default:"2" description:"Delay in seconds between historical page fetches"`

	ExtractContent bool `long:"extract-content" env:"EXTRACT_CONTENT" description:"Fetch article pages to fill empty descriptions"`

	// Scheduler configuration
	IntervalHours int `long:"interval-hours" env:"INTERVAL_HOURS" default:"6" description:"Scheduler interval in hours"`

	// Dashboard configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"Dashboard HTTP server port"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Command string `positional-arg-name:"command" description:"run, historical, schedule or serve" default:"run"`
	} `positional-args:"yes"`
}

var globalCfg *Cfg

// Load parses configuration from command-line flags and environment
// variables. Returns the config and the positional command; a nil config
// with nil error means help was shown.
func Load() (*Cfg, string, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, "", nil
			}
		}
		return nil, "", fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SourcesFile:    raw.SourcesFile,
		OutputDir:      raw.OutputDir,
		OutputFormat:   raw.OutputFormat,
		WindowDays:     raw.WindowDays,
		UserAgent:      raw.UserAgent,
		FetchTimeout:   raw.FetchTimeout,
		FetchDelay:     raw.FetchDelay,
		CrawlDelay:     raw.CrawlDelay,
		ExtractContent: raw.ExtractContent,
		IntervalHours:  raw.IntervalHours,
		Port:           raw.Port,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	globalCfg = cfg

	return cfg, raw.Args.Command, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
