package rss

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"newswire/domain"
)

// Some publishers reject requests without a browser User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/122.0 Safari/537.36"

const defaultTimeout = 15 * time.Second

type HTTPFetcher struct {
	client  *http.Client
	retries int
}

// NewHTTPFetcher returns a fetcher with a bounded per-request timeout.
// retries is capped at 1 so an inaccessible URL cannot stall a run.
func NewHTTPFetcher(timeout time.Duration, retries int) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if retries < 0 {
		retries = 0
	}
	if retries > 1 {
		retries = 1
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout},
		retries: retries,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		raw, err := f.fetchOnce(ctx, feedURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Reason: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.FetchError{URL: feedURL, Reason: fmt.Sprintf("unexpected status %s", resp.Status)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Reason: err.Error()}
	}
	return raw, nil
}
