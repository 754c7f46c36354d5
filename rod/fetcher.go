// Package rod provides a browser-based implementation of factpage.Fetcher
// for factpages that build their tables client-side. The plain HTTP
// fetcher sees an empty shell on those pages; this one returns the DOM
// after rendering.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/factpage"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements factpage.Fetcher at compile time.
var _ factpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
type Fetcher struct {
	browser *rod.Browser
}

// Option configures the browser launch.
type Option func(*launcher.Launcher)

// WithHeadless controls whether the browser runs headless.
// Defaults to true; disable for debugging selector breakage against the
// live site.
func WithHeadless(headless bool) Option {
	return func(l *launcher.Launcher) {
		l.Headless(headless)
	}
}

// NewFetcher launches a Chrome browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	for _, opt := range opts {
		opt(l)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
