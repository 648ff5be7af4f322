package domain

import "context"

// ArticleRepository is the persistence port for scraped articles.
type ArticleRepository interface {
	Ensure(ctx context.Context) error
	HasLink(ctx context.Context, link string) (bool, error)
	// InsertArticle stores a and reports whether a new row landed.
	// A duplicate link is not an error; it returns (false, nil).
	InsertArticle(ctx context.Context, a Article) (bool, error)
	ListArticles(ctx context.Context, country string, limit int) ([]Article, error)
	CountByCountry(ctx context.Context) (map[string]int, error)
}

// FeedFetcher retrieves the raw document of one feed URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]byte, error)
}

// FeedParser turns a raw feed document into items.
type FeedParser interface {
	Parse(raw []byte) ([]FetchedItem, error)
}

// LanguageDetector classifies the dominant natural language of a text
// sample, returning an ISO 639-1 code or "unknown".
type LanguageDetector interface {
	Detect(text string) string
}

// Exporter writes one run's persisted records to a flat file.
type Exporter interface {
	Export(articles []Article) error
}
