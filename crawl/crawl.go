// Package crawl provides pagination orchestration for a profile's
// publication listing. It drives the sequential fetch loop, detects when
// pagination has stopped producing new content, and deduplicates the
// accumulated records.
package crawl

import (
	"context"
	"fmt"

	"sintagrab"
)

// DefaultMaxPages is the safety cap on pages fetched in one run.
const DefaultMaxPages = 100

// emptyStreakLimit is the number of consecutive zero-row pages that ends a run.
const emptyStreakLimit = 2

// StopReason explains why a crawl run terminated.
type StopReason int

// Stop reasons, reported with every result so callers can tell "ran out
// of data" from "something broke".
const (
	StopCapReached StopReason = iota
	StopDuplicate
	StopEmptyStreak
	StopError
)

// String returns a human-readable description of the stop reason.
func (r StopReason) String() string {
	switch r {
	case StopCapReached:
		return "page cap reached"
	case StopDuplicate:
		return "page identical to a previous page (end reached / pagination not advancing)"
	case StopEmptyStreak:
		return fmt.Sprintf("%d pages in a row returned 0 rows", emptyStreakLimit)
	case StopError:
		return "transport error"
	}
	return "unknown"
}

// PageEvent reports progress after each processed page. It is an
// observability side channel, not part of the correctness contract.
type PageEvent struct {
	Page   int // 1-based page index
	Status int // HTTP status code
	Rows   int // valid records extracted from the page
}

// ProgressFunc is called as pages are processed.
type ProgressFunc func(PageEvent)

// Result holds the outcome of a crawl run.
type Result struct {
	Records    []sintagrab.Record // deduplicated, in fetch order
	RowsBefore int                // rows accumulated across pages, pre-dedup
	RowsAfter  int                // rows surviving deduplication
	Pages      int                // pages parsed into the result
	Reason     StopReason
}

// Crawler fetches and parses listing pages strictly sequentially, one
// page at a time in increasing page order.
type Crawler struct {
	Fetcher  sintagrab.Fetcher
	Parser   sintagrab.PageParser
	MaxPages int   // safety cap; DefaultMaxPages when <= 0
	Pacer    Pacer // optional inter-page delay
}

// state is the run-scoped accumulator owned by a single Run call.
// Each run starts fresh; nothing is shared across runs.
type state struct {
	seen    fingerprintSet
	records []sintagrab.Record
	empties int
	pages   int
}

// Run crawls the listing starting from profileURL and returns the
// deduplicated records. The profile URL is normalized first; an invalid
// URL fails with EINVALID before any fetch.
//
// A transport failure aborts further fetching but is non-destructive:
// Run returns the partial result alongside the error, so rows gathered
// from earlier pages remain exportable. Cancellation is cooperative and
// takes effect at the next page boundary.
func (c *Crawler) Run(ctx context.Context, profileURL string, progress ProgressFunc) (*Result, error) {
	base, err := NormalizeProfileURL(profileURL)
	if err != nil {
		return nil, err
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	st := &state{seen: make(fingerprintSet)}
	reason := StopCapReached

loop:
	for page := 1; page <= maxPages; page++ {
		if page > 1 && c.Pacer != nil {
			if err := c.Pacer.Wait(ctx); err != nil {
				return c.finish(st, StopError), err
			}
		}
		if err := ctx.Err(); err != nil {
			return c.finish(st, StopError), err
		}

		pageURL, err := PageURL(base, page)
		if err != nil {
			return c.finish(st, StopError), err
		}

		resp, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return c.finish(st, StopError), fmt.Errorf("fetch page %d: %w", page, err)
		}

		// A repeated fingerprint means the page parameter had no further
		// effect; discard the body without parsing it.
		fp := Fingerprint(resp.Body)
		if st.seen.contains(fp) {
			reason = StopDuplicate
			break loop
		}
		st.seen.add(fp)

		records, err := c.Parser.ParsePage(resp.Body, fmt.Sprintf("page_%d", page))
		if err != nil {
			return c.finish(st, StopError), fmt.Errorf("parse page %d: %w", page, err)
		}
		st.records = append(st.records, records...)
		st.pages++

		if progress != nil {
			progress(PageEvent{Page: page, Status: resp.StatusCode, Rows: len(records)})
		}

		if len(records) == 0 {
			st.empties++
			if st.empties >= emptyStreakLimit {
				reason = StopEmptyStreak
				break loop
			}
		} else {
			st.empties = 0
		}
	}

	return c.finish(st, reason), nil
}

// finish deduplicates the accumulated rows and assembles the result.
func (c *Crawler) finish(st *state, reason StopReason) *Result {
	deduped := sintagrab.Deduplicate(st.records)
	return &Result{
		Records:    deduped,
		RowsBefore: len(st.records),
		RowsAfter:  len(deduped),
		Pages:      st.pages,
		Reason:     reason,
	}
}
