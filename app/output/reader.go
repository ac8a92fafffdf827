package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/araddon/dateparse"

	"newsharvest/app/feed"
)

// Reader loads every persisted output file back into entries for the read
// path. This is a second, cheap validation layer: rows whose published_date
// no longer parses are dropped here rather than surfaced as errors.
type Reader struct {
	dir string
}

func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// Load reads and concatenates all output files in the data directory, in
// both supported serializations. Unreadable files are skipped with a
// warning; an empty directory is not an error.
func (r *Reader) Load() ([]feed.Entry, error) {
	var files []string
	for _, pattern := range []string{"*.csv", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(r.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list output files: %w", err)
		}
		files = append(files, matches...)
	}

	var entries []feed.Entry
	for _, path := range files {
		loaded, err := r.loadFile(path)
		if err != nil {
			slog.Warn("Skipping unreadable output file", "file", path, "error", err)
			continue
		}
		entries = append(entries, loaded...)
	}

	slog.Debug("Loaded output files", "files", len(files), "entries", len(entries))
	return entries, nil
}

func (r *Reader) loadFile(path string) ([]feed.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []record
	if filepath.Ext(path) == ".json" {
		records, err = readJSON(file)
	} else {
		records, err = readCSV(file)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]feed.Entry, 0, len(records))
	dropped := 0
	for _, rec := range records {
		published, err := dateparse.ParseAny(rec.PublishedDate)
		if err != nil {
			dropped++
			continue
		}

		entries = append(entries, feed.Entry{
			Title:       rec.Title,
			Description: rec.Description,
			URL:         rec.URL,
			PublishedAt: feed.StripOffset(published),
			Source:      rec.Source,
			Country:     rec.Country,
			Language:    rec.Language,
		})
	}

	if dropped > 0 {
		slog.Warn("Dropped rows with unparseable dates", "file", path, "dropped", dropped)
	}

	return entries, nil
}

func readCSV(in io.Reader) ([]record, error) {
	cr := csv.NewReader(in)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	if _, ok := col["published_date"]; !ok {
		return nil, fmt.Errorf("no published_date column found")
	}

	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	var records []record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		records = append(records, record{
			Title:         field(row, "title"),
			Description:   field(row, "description"),
			URL:           field(row, "url"),
			PublishedDate: field(row, "published_date"),
			Source:        field(row, "source"),
			Country:       field(row, "country"),
			Language:      field(row, "language"),
		})
	}

	return records, nil
}

func readJSON(in io.Reader) ([]record, error) {
	dec := json.NewDecoder(in)

	var records []record
	for {
		var rec record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
