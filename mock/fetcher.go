// Package mock provides function-field mock implementations of the
// sintagrab domain interfaces for testing.
package mock

import (
	"context"

	"sintagrab"
)

var _ sintagrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sintagrab.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*sintagrab.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sintagrab.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
