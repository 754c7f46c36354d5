package factpage

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation when the target page renders
// its tables client-side.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// A response with a non-200 status is an error; the returned error
	// identifies the failed URL. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
