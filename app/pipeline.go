package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"newswire/domain"
	"newswire/internal/logger"
)

// Pipeline runs one sequential pass over the feed registry: each source is
// fetched, parsed, language-detected, normalized and persisted before the
// next one starts. Unreachable or unparsable feeds are counted and skipped;
// only a store or export failure aborts the run.
type Pipeline struct {
	repo     domain.ArticleRepository
	fetcher  domain.FeedFetcher
	parser   domain.FeedParser
	detector domain.LanguageDetector
	exporter domain.Exporter
	log      *logger.Logger
	now      func() time.Time
}

func NewPipeline(
	repo domain.ArticleRepository,
	fetcher domain.FeedFetcher,
	parser domain.FeedParser,
	detector domain.LanguageDetector,
	exporter domain.Exporter,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		repo:     repo,
		fetcher:  fetcher,
		parser:   parser,
		detector: detector,
		exporter: exporter,
		log:      log,
		now:      time.Now,
	}
}

func (p *Pipeline) Run(ctx context.Context, registry []domain.FeedSource) (domain.RunSummary, error) {
	summary := domain.RunSummary{
		PerCountry: make(map[string]int),
		StartedAt:  p.now(),
	}
	seen := make(map[string]struct{})
	failed := make(map[string]struct{})
	var persisted []domain.Article

	for _, src := range registry {
		if _, ok := summary.PerCountry[src.Country]; !ok {
			summary.PerCountry[src.Country] = 0
		}

		raw, err := p.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			p.log.Warn("feed unreachable",
				"country", src.Country, "source", src.Source, "error", err)
			failed[src.Country] = struct{}{}
			continue
		}

		items, err := p.parser.Parse(raw)
		if err != nil {
			p.log.Warn("feed unparsable",
				"country", src.Country, "source", src.Source, "error", err)
			failed[src.Country] = struct{}{}
			continue
		}

		count := 0
		for _, it := range items {
			a, ok, err := p.normalize(ctx, it, src, seen)
			if err != nil {
				return summary, err
			}
			if !ok {
				continue
			}
			a.Language = p.detector.Detect(strings.TrimSpace(a.Title + " " + a.Summary))

			inserted, err := p.repo.InsertArticle(ctx, a)
			if err != nil {
				return summary, fmt.Errorf("insert article %s: %w", a.Link, err)
			}
			if !inserted {
				// Link landed in the store between our check and the
				// insert; the unique constraint keeps first-write-wins.
				continue
			}
			persisted = append(persisted, a)
			count++
		}

		summary.PerCountry[src.Country] += count
		summary.Total += count
		p.log.Info("processed feed",
			"country", src.Country, "source", src.Source,
			"items", len(items), "stored", count)
	}

	if err := p.exporter.Export(persisted); err != nil {
		return summary, fmt.Errorf("export run: %w", err)
	}

	summary.Failed = sortedKeys(failed)
	summary.FinishedAt = p.now()
	return summary, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
