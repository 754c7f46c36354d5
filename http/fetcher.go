// Package http provides an HTTP-based implementation of factpage.Fetcher
// for factpages that serve their tables in the initial response.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/factpage"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// The upstream server occasionally hangs; an unbounded fetch is never
// what the caller wants.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the scraper to the target site.
const DefaultUserAgent = "factpage/1.0"

// Ensure Fetcher implements factpage.Fetcher at compile time.
var _ factpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves factpage HTML using plain HTTP GET requests.
// It does not execute JavaScript; use rod.Fetcher for pages that build
// their tables client-side.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a single GET against url and returns the response body.
// Any status other than 200 is an EUNAVAILABLE error naming the URL.
// There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", factpage.Errorf(factpage.EINVALID, "invalid URL %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", factpage.Errorf(factpage.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
