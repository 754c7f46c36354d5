package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/factpage"
)

// Ensure LoggingExtractor implements factpage.TableExtractor.
var _ factpage.TableExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TableExtractor with debug logging.
// The logged pair count is the only visibility into rows the extractor
// dropped; the extraction semantics stay silent about them.
type LoggingExtractor struct {
	next   factpage.TableExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next factpage.TableExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (pairs []factpage.Pair, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"pairs", len(pairs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
