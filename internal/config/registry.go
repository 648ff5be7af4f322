package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"newswire/domain"
)

// Registry validation errors.
var (
	ErrNoFeeds            = errors.New("registry must contain at least one feed")
	ErrFeedMissingCountry = errors.New("country is required")
	ErrFeedMissingSource  = errors.New("source is required")
	ErrFeedInvalidURL     = errors.New("feed URL must be a valid http(s) URL")
)

type registryFile struct {
	Feeds []feedEntry `yaml:"feeds"`
}

type feedEntry struct {
	Country string `yaml:"country"`
	Source  string `yaml:"source"`
	URL     string `yaml:"url"`
}

// LoadRegistry reads a YAML feed registry from path. An empty path yields
// the built-in default registry. The registry is loaded once at start and
// treated as immutable afterwards.
func LoadRegistry(path string) ([]domain.FeedSource, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	var rf registryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse registry YAML: %w", err)
	}
	feeds := make([]domain.FeedSource, 0, len(rf.Feeds))
	for _, e := range rf.Feeds {
		feeds = append(feeds, domain.FeedSource{
			Country: strings.TrimSpace(e.Country),
			Source:  strings.TrimSpace(e.Source),
			URL:     strings.TrimSpace(e.URL),
		})
	}
	if err := ValidateRegistry(feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

func ValidateRegistry(feeds []domain.FeedSource) error {
	if len(feeds) == 0 {
		return ErrNoFeeds
	}
	for i, f := range feeds {
		if f.Country == "" {
			return fmt.Errorf("%w: feed[%d]", ErrFeedMissingCountry, i)
		}
		if f.Source == "" {
			return fmt.Errorf("%w: feed[%d]", ErrFeedMissingSource, i)
		}
		if err := validateFeedURL(f.URL); err != nil {
			return fmt.Errorf("%w: feed[%d] %q", err, i, f.URL)
		}
	}
	return nil
}

func validateFeedURL(feedURL string) error {
	u, err := url.ParseRequestURI(feedURL)
	if err != nil {
		return ErrFeedInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrFeedInvalidURL
	}
	return nil
}

// DefaultRegistry is the built-in list of 20 national news feeds.
func DefaultRegistry() []domain.FeedSource {
	return []domain.FeedSource{
		{Country: "UK", Source: "BBC", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
		{Country: "US", Source: "CNN", URL: "http://rss.cnn.com/rss/edition.rss"},
		{Country: "Canada", Source: "CBC", URL: "https://rss.cbc.ca/lineup/topstories.xml"},
		{Country: "Australia", Source: "ABC", URL: "https://www.abc.net.au/news/feed/51120/rss.xml"},
		{Country: "India", Source: "NDTV", URL: "https://feeds.feedburner.com/ndtvnews-top-stories"},
		{Country: "Germany", Source: "Deutsche Welle", URL: "https://rss.dw.com/rdf/rss-en-all"},
		{Country: "France", Source: "France 24", URL: "https://www.france24.com/en/rss"},
		{Country: "Japan", Source: "NHK", URL: "https://www3.nhk.or.jp/rss/news/cat0.xml"},
		{Country: "China", Source: "China Daily", URL: "http://www.chinadaily.com.cn/rss/china_rss.xml"},
		{Country: "Russia", Source: "RT News", URL: "https://www.rt.com/rss/news/"},
		{Country: "Brazil", Source: "G1 Globo", URL: "https://g1.globo.com/rss/g1/"},
		{Country: "South Africa", Source: "News24", URL: "https://feeds.news24.com/articles/news24/TopStories/rss"},
		{Country: "Italy", Source: "ANSA", URL: "https://www.ansa.it/sito/ansait_rss.xml"},
		{Country: "Spain", Source: "El Pais", URL: "https://feeds.elpais.com/mrss-s/pages/ep/site/elpais.com/portada"},
		{Country: "Mexico", Source: "Excelsior", URL: "https://www.excelsior.com.mx/rss.xml"},
		{Country: "Turkey", Source: "Daily Sabah", URL: "https://www.dailysabah.com/rss/turkey"},
		{Country: "South Korea", Source: "Korea.net", URL: "https://www.korea.net/koreanet/rss/news/3"},
		{Country: "New Zealand", Source: "RNZ National", URL: "https://www.rnz.co.nz/rss/national.xml"},
		{Country: "Singapore", Source: "CNA", URL: "https://www.channelnewsasia.com/rssfeeds/8395986"},
		{Country: "Nigeria", Source: "Daily Post Nigeria", URL: "https://dailypost.ng/feed/"},
	}
}
