package sintagrab

import "context"

// FetchResult is the outcome of a completed page fetch. A non-2xx status
// is not an error at this layer: the body is still inspected and the
// status code is surfaced through progress reporting.
type FetchResult struct {
	StatusCode int
	Body       string
}

// Fetcher retrieves raw HTML from URLs using an authenticated session.
type Fetcher interface {
	// Fetch performs a GET request and returns the response status and body.
	// It fails only on transport errors (connection failure, timeout).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
