package mock

import "github.com/fwojciec/pagecheck"

var _ pagecheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagecheck.Extractor.
type Extractor struct {
	ExtractFn func(html string) (pagecheck.RegionMap, error)
}

func (e *Extractor) Extract(html string) (pagecheck.RegionMap, error) {
	return e.ExtractFn(html)
}

var _ pagecheck.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of pagecheck.Cleaner.
type Cleaner struct {
	CleanFn func(markup string) string
}

func (c *Cleaner) Clean(markup string) string {
	return c.CleanFn(markup)
}
