package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newswire/domain"
)

// normalize trims an item's fields, labels it with its registry source and
// decides whether it may be persisted. Items without a title or link are
// dropped; links already seen in this run or already stored are skipped,
// so exactly one record exists per unique link.
func (p *Pipeline) normalize(ctx context.Context, it domain.FetchedItem, src domain.FeedSource, seen map[string]struct{}) (domain.Article, bool, error) {
	title := strings.TrimSpace(it.Title)
	link := strings.TrimSpace(it.Link)
	if title == "" || link == "" {
		return domain.Article{}, false, nil
	}
	if _, dup := seen[link]; dup {
		return domain.Article{}, false, nil
	}
	stored, err := p.repo.HasLink(ctx, link)
	if err != nil {
		return domain.Article{}, false, fmt.Errorf("check link %s: %w", link, err)
	}
	seen[link] = struct{}{}
	if stored {
		return domain.Article{}, false, nil
	}

	now := p.now()
	a := domain.Article{
		ID:          uuid.New(),
		Country:     src.Country,
		Source:      src.Source,
		Title:       title,
		Link:        link,
		Summary:     strings.TrimSpace(it.Summary),
		PublishedAt: it.PublishedAt,
		Age:         ageBucket(it.PublishedAt, now),
		FetchedAt:   now,
	}
	return a, true, nil
}

// ageBucket labels how old an article is relative to now.
func ageBucket(published *time.Time, now time.Time) string {
	if published == nil {
		return "Unknown"
	}
	days := int(now.Sub(*published).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days <= 7:
		return "This Week"
	case days <= 30:
		return "This Month"
	case days <= 365:
		return "1 Year Ago"
	case days <= 730:
		return "2 Years Ago"
	default:
		return "Older"
	}
}
