package domain

import "fmt"

// FetchError reports a feed that could not be retrieved: network failure,
// DNS failure, timeout, or a non-2xx response. It is recovered per source
// and never aborts a run.
type FetchError struct {
	URL    string
	Reason string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}
