package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedSource is one registry entry: a national news publisher's feed.
type FeedSource struct {
	Country string
	Source  string
	URL     string
}

// FetchedItem is a single feed item as returned by the parser,
// before normalization.
type FetchedItem struct {
	Title       string
	Link        string
	Summary     string
	PublishedAt *time.Time
}

// Article is one normalized, persistable record.
// Link is the unique identifier: the store keeps exactly one row per link.
type Article struct {
	ID          uuid.UUID
	Country     string
	Source      string
	Title       string
	Link        string
	Summary     string
	PublishedAt *time.Time
	Language    string
	Age         string
	FetchedAt   time.Time
}

// RunSummary aggregates the outcome of one full pass over the registry.
type RunSummary struct {
	Total      int
	PerCountry map[string]int
	Failed     []string
	StartedAt  time.Time
	FinishedAt time.Time
}
