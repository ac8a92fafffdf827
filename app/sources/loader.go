package sources

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the feed source list
type Loader struct {
	path string
}

// NewLoader creates a new source list loader. An empty path selects the
// built-in default list.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the configured sources in file order. Duplicate entries are
// allowed; they just produce duplicate scraping work.
func (l *Loader) Load() ([]Source, error) {
	if l.path == "" {
		slog.Debug("No sources file configured, using built-in list", "count", len(DefaultSources))
		return DefaultSources, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var list []Source
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	for i, src := range list {
		if err := validate(src); err != nil {
			return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
		}
	}

	slog.Debug("Loaded sources", "file", l.path, "count", len(list))
	return list, nil
}

func validate(src Source) error {
	if src.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if src.Agency == "" {
		return fmt.Errorf("source agency is required")
	}
	if src.Country == "" {
		return fmt.Errorf("source country is required")
	}
	return nil
}
