package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"newswire/domain"
)

func sampleArticles(t *testing.T) []domain.Article {
	t.Helper()
	published := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	fetched := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	return []domain.Article{
		{
			ID: uuid.New(), Country: "UK", Source: "BBC",
			Title: "First", Link: "https://news.example/1",
			Summary: "Summary one", PublishedAt: &published,
			Language: "en", Age: "This Week", FetchedAt: fetched,
		},
		{
			ID: uuid.New(), Country: "Japan", Source: "NHK",
			Title: "Second, with comma", Link: "https://news.example/2",
			Summary: "", PublishedAt: nil,
			Language: "unknown", Age: "Unknown", FetchedAt: fetched,
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported CSV: %v", err)
	}
	return rows
}

func TestCSVExporter_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.csv")
	e := NewCSVExporter(path, ModeOverwrite)
	articles := sampleArticles(t)

	if err := e.Export(articles); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "country" || rows[0][3] != "link" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "UK" || rows[1][3] != "https://news.example/1" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[1][5] != "2026-08-20T09:30:00Z" {
		t.Errorf("published_at = %q", rows[1][5])
	}
	if rows[2][2] != "Second, with comma" {
		t.Errorf("title with comma mangled: %q", rows[2][2])
	}
	if rows[2][5] != "" {
		t.Errorf("absent published_at = %q, want empty", rows[2][5])
	}
	if rows[2][6] != "unknown" {
		t.Errorf("language = %q, want unknown", rows[2][6])
	}
}

func TestCSVExporter_OverwriteReplacesPriorRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.csv")
	e := NewCSVExporter(path, ModeOverwrite)
	articles := sampleArticles(t)

	if err := e.Export(articles); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := e.Export(articles[:1]); err != nil {
		t.Fatalf("second export: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 after overwrite", len(rows))
	}
}

func TestCSVExporter_AppendKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.csv")
	e := NewCSVExporter(path, ModeAppend)
	articles := sampleArticles(t)

	if err := e.Export(articles); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := e.Export(articles); err != nil {
		t.Fatalf("second export: %v", err)
	}

	rows := readCSV(t, path)
	// Header once, both batches kept. Duplicate rows across runs are a
	// documented property of append mode.
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want header + 4", len(rows))
	}
	headerCount := 0
	for _, row := range rows {
		if row[0] == "country" {
			headerCount++
		}
	}
	if headerCount != 1 {
		t.Errorf("header written %d times, want once", headerCount)
	}
}

func TestCSVExporter_UnknownModeDefaultsToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.csv")
	e := NewCSVExporter(path, "bogus")
	articles := sampleArticles(t)

	if err := e.Export(articles); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := e.Export(articles); err != nil {
		t.Fatalf("second export: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 (file replaced)", len(rows))
	}
}

func TestCSVExporter_EmptyRunStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.csv")
	e := NewCSVExporter(path, ModeOverwrite)

	if err := e.Export(nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	rows := readCSV(t, path)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header only", len(rows))
	}
}
