package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintagrab"
	"sintagrab/mock"
	sintaslog "sintagrab/slog"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*sintagrab.FetchResult, error) {
				return &sintagrab.FetchResult{StatusCode: 200, Body: "<html>content</html>"}, nil
			},
		}

		fetcher := sintaslog.NewLoggingFetcher(inner, logger)
		res, err := fetcher.Fetch(context.Background(), "https://sinta.example.org/authors/profile/1")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", res.Body)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://sinta.example.org/authors/profile/1")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs fetch errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*sintagrab.FetchResult, error) {
				return nil, errors.New("connection refused")
			},
		}

		fetcher := sintaslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://sinta.example.org/authors/profile/1")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := sintaslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}
