package rss

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"newswire/domain"
)

// Parser maps RSS, Atom and RDF documents to feed items. Items are parsed
// independently: a malformed item is skipped, never the whole feed.
type Parser struct {
	feed  *gofeed.Parser
	strip *bluemonday.Policy
}

func NewParser() *Parser {
	return &Parser{
		feed:  gofeed.NewParser(),
		strip: bluemonday.StrictPolicy(),
	}
}

func (p *Parser) Parse(raw []byte) ([]domain.FetchedItem, error) {
	feed, err := p.feed.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.FetchedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		link := strings.TrimSpace(it.Link)
		if link == "" && len(it.Links) > 0 {
			link = strings.TrimSpace(it.Links[0])
		}
		if link == "" {
			// Without its identifier the item can neither be stored
			// nor deduplicated.
			continue
		}
		summary := it.Description
		if summary == "" {
			summary = it.Content
		}
		items = append(items, domain.FetchedItem{
			Title:       strings.TrimSpace(it.Title),
			Link:        link,
			Summary:     p.cleanText(summary),
			PublishedAt: publishedAt(it),
		})
	}
	return items, nil
}

// cleanText strips HTML markup, unescapes entities and collapses
// whitespace, so summaries persist as plain text.
func (p *Parser) cleanText(s string) string {
	if s == "" {
		return ""
	}
	s = p.strip.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// publishedAt resolves the item timestamp, falling back to absent rather
// than failing the item on a malformed date.
func publishedAt(it *gofeed.Item) *time.Time {
	if it.PublishedParsed != nil {
		t := *it.PublishedParsed
		return &t
	}
	if it.UpdatedParsed != nil {
		t := *it.UpdatedParsed
		return &t
	}
	for _, raw := range []string{it.Published, it.Updated} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if t, err := dateparse.ParseAny(raw); err == nil {
			return &t
		}
	}
	return nil
}
