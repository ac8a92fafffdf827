package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"newsharvest/app/feed"
	"newsharvest/app/sources"
)

var testRunTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var testEntries = []feed.Entry{
	{
		Title:       "Storm Hits City",
		Description: "Heavy rain reported.",
		URL:         "http://x/1",
		PublishedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Source:      "Example Times",
		Country:     "Exampleland",
		Language:    "en",
	},
	{
		Title:       "Markets Rally",
		Description: "",
		URL:         "http://x/2",
		PublishedAt: time.Date(2024, 5, 20, 8, 30, 0, 0, time.UTC),
		Source:      "Example Times",
		Country:     "Exampleland",
		Language:    "en",
	},
}

var testSource = sources.Source{
	URL:     "https://example.com/rss.xml",
	Agency:  "Example Times",
	Country: "Exampleland",
}

func TestWriteSourceCSV(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, FormatCSV)

	path, err := writer.WriteSource(testSource, testEntries, testRunTime)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := filepath.Join(dir, "Exampleland_Example Times_20240601.csv")
	if path != expected {
		t.Errorf("Expected path %q, got %q", expected, path)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV back: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d rows", len(rows))
	}

	header := strings.Join(rows[0], ",")
	if header != "title,description,url,published_date,source,country,language" {
		t.Errorf("Unexpected header: %s", header)
	}

	if rows[1][0] != "Storm Hits City" {
		t.Errorf("Expected title 'Storm Hits City', got %q", rows[1][0])
	}
	if rows[1][3] != "2024-01-15T10:00:00" {
		t.Errorf("Expected naive ISO date, got %q", rows[1][3])
	}
}

func TestWriteCombinedJSON(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, FormatJSON)

	path, err := writer.WriteCombined(testEntries, testRunTime)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := filepath.Join(dir, "all_news_20240601.json")
	if path != expected {
		t.Errorf("Expected path %q, got %q", expected, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 JSON lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"published_date":"2024-01-15T10:00:00"`) {
		t.Errorf("Expected naive ISO date in JSON line, got: %s", lines[0])
	}
}

func TestRoundTripCSV(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, FormatCSV)

	if _, err := writer.WriteCombined(testEntries, testRunTime); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reader := NewReader(dir)
	loaded, err := reader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded) != len(testEntries) {
		t.Fatalf("Expected %d entries back, got %d", len(testEntries), len(loaded))
	}
	for i := range testEntries {
		if loaded[i] != testEntries[i] {
			t.Errorf("Entry %d changed in round trip:\n  wrote %+v\n  read  %+v", i, testEntries[i], loaded[i])
		}
	}
}

func TestRoundTripJSON(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, FormatJSON)

	if _, err := writer.WriteCombined(testEntries, testRunTime); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := NewReader(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded) != len(testEntries) {
		t.Fatalf("Expected %d entries back, got %d", len(testEntries), len(loaded))
	}
}

func TestReaderDropsUnparseableDates(t *testing.T) {
	dir := t.TempDir()

	csvData := "title,description,url,published_date,source,country,language\n" +
		"Good Row,desc,http://x/1,2024-01-15T10:00:00,Agency,Country,en\n" +
		"Bad Row,desc,http://x/2,not-a-date,Agency,Country,en\n"
	if err := os.WriteFile(filepath.Join(dir, "all_news_20240601.csv"), []byte(csvData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loaded, err := NewReader(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded) != 1 {
		t.Fatalf("Expected 1 valid row, got %d", len(loaded))
	}
	if loaded[0].Title != "Good Row" {
		t.Errorf("Expected 'Good Row' kept, got %q", loaded[0].Title)
	}
}

func TestReaderSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	csvData := "title,description,url,published_date,source,country,language\n" +
		"Good Row,desc,http://x/1,2024-01-15T10:00:00,Agency,Country,en\n"
	if err := os.WriteFile(filepath.Join(dir, "good.csv"), []byte(csvData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	loaded, err := NewReader(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected the readable file's row only, got %d entries", len(loaded))
	}
}

func TestReaderEmptyDirectory(t *testing.T) {
	loaded, err := NewReader(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Expected no error for empty directory, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected no entries, got %d", len(loaded))
	}
}
