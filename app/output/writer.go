package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"newsharvest/app/feed"
	"newsharvest/app/sources"
)

const fileDateLayout = "20060102"

// Format selects the output serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var csvHeader = []string{"title", "description", "url", "published_date", "source", "country", "language"}

// record is the serialized shape of one entry, shared by the CSV and
// line-JSON writers and the viewer-side reader.
type record struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
	Country       string `json:"country"`
	Language      string `json:"language"`
}

func toRecord(e feed.Entry) record {
	return record{
		Title:         e.Title,
		Description:   e.Description,
		URL:           e.URL,
		PublishedDate: e.PublishedDate(),
		Source:        e.Source,
		Country:       e.Country,
		Language:      e.Language,
	}
}

// Writer persists entry batches as flat files under a single directory, one
// file set per run. Files are complete, separate writes: a crash mid-run
// leaves previously written files intact.
type Writer struct {
	dir    string
	format Format
}

func NewWriter(dir string, format Format) *Writer {
	return &Writer{dir: dir, format: format}
}

// WriteSource persists one source's entries under a deterministic
// <country>_<agency>_<run date> name. Returns the written path.
func (w *Writer) WriteSource(src sources.Source, entries []feed.Entry, runTime time.Time) (string, error) {
	name := fmt.Sprintf("%s_%s_%s.%s", src.Country, src.Agency, runTime.Format(fileDateLayout), w.format)
	return w.write(name, entries)
}

// WriteCombined persists the accumulated cross-source entries for one run.
func (w *Writer) WriteCombined(entries []feed.Entry, runTime time.Time) (string, error) {
	name := fmt.Sprintf("all_news_%s.%s", runTime.Format(fileDateLayout), w.format)
	return w.write(name, entries)
}

func (w *Writer) write(name string, entries []feed.Entry) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch w.format {
	case FormatJSON:
		err = writeJSON(file, entries)
	default:
		err = writeCSV(file, entries)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

func writeCSV(out io.Writer, entries []feed.Entry) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, entry := range entries {
		r := toRecord(entry)
		row := []string{r.Title, r.Description, r.URL, r.PublishedDate, r.Source, r.Country, r.Language}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(out io.Writer, entries []feed.Entry) error {
	enc := json.NewEncoder(out)

	for _, entry := range entries {
		if err := enc.Encode(toRecord(entry)); err != nil {
			return err
		}
	}

	return nil
}
