package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/factpage"
	"github.com/fwojciec/factpage/mock"
	fpslog "github.com/fwojciec/factpage/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the fetch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
			CloseFn: func() error { return nil },
		}

		fetcher := fpslog.NewLoggingFetcher(next, logger)

		html, err := fetcher.Fetch(context.Background(), "https://example.com/wellbore/105")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)

		out := buf.String()
		assert.Contains(t, out, "fetch")
		assert.Contains(t, out, "https://example.com/wellbore/105")
		assert.Contains(t, out, "bytes=13")

		require.NoError(t, fetcher.Close())
	})

	t.Run("logs the error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", factpage.Errorf(factpage.EUNAVAILABLE, "HTTP 404 for %s", url)
			},
		}

		fetcher := fpslog.NewLoggingFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com/missing")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "404")
	})
}

func TestLoggingExtractor(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the pair count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.TableExtractor{
			ExtractFn: func(html string) ([]factpage.Pair, error) {
				return []factpage.Pair{
					{Attribute: "Type", Value: "EXPLORATION"},
					{Attribute: "Status", Value: "P&A"},
				}, nil
			},
		}

		extractor := fpslog.NewLoggingExtractor(next, logger)

		pairs, err := extractor.Extract("<html></html>")
		require.NoError(t, err)
		assert.Len(t, pairs, 2)
		assert.Contains(t, buf.String(), "pairs=2")
	})
}
