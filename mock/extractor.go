package mock

import "github.com/fwojciec/factpage"

var _ factpage.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of factpage.TableExtractor.
type TableExtractor struct {
	ExtractFn func(html string) ([]factpage.Pair, error)
}

func (e *TableExtractor) Extract(html string) ([]factpage.Pair, error) {
	return e.ExtractFn(html)
}
