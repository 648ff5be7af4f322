package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"newswire/domain"
)

const (
	// ModeOverwrite replaces the file on every run: a per-run snapshot.
	ModeOverwrite = "overwrite"
	// ModeAppend keeps a historical log. Rows may repeat across runs
	// because the file carries no dedup state of its own.
	ModeAppend = "append"
)

var header = []string{
	"country", "source", "title", "link", "summary",
	"published_at", "language", "age", "fetched_at",
}

type CSVExporter struct {
	path string
	mode string
}

func NewCSVExporter(path, mode string) *CSVExporter {
	if mode != ModeAppend {
		mode = ModeOverwrite
	}
	return &CSVExporter{path: path, mode: mode}
}

func (e *CSVExporter) Export(articles []domain.Article) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	writeHeader := true
	if e.mode == ModeAppend {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if info, err := os.Stat(e.path); err == nil && info.Size() > 0 {
			writeHeader = false
		}
	}

	f, err := os.OpenFile(e.path, flags, 0644)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write export header: %w", err)
		}
	}
	for _, a := range articles {
		if err := w.Write(record(a)); err != nil {
			return fmt.Errorf("write export row %s: %w", a.Link, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export file: %w", err)
	}
	return nil
}

func record(a domain.Article) []string {
	published := ""
	if a.PublishedAt != nil {
		published = a.PublishedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		a.Country, a.Source, a.Title, a.Link, a.Summary,
		published, a.Language, a.Age, a.FetchedAt.UTC().Format(time.RFC3339),
	}
}
