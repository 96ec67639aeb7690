// Package goquery implements pagecheck.Extractor using CSS selectors over a
// parsed DOM instead of regular expressions over raw markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pagecheck"
)

// Ensure Extractor implements pagecheck.Extractor at compile time.
var _ pagecheck.Extractor = (*Extractor)(nil)

// Extractor selects region elements with each pattern's Selector. Patterns
// without a selector are skipped.
type Extractor struct {
	set       pagecheck.PatternSet
	cleaner   pagecheck.Cleaner
	minLength int
}

// NewExtractor returns an Extractor for the pattern set. Fragments are
// cleaned with cleaner and kept when longer than minLength characters.
// Returns EINVALID if a selector does not compile or no pattern has one.
func NewExtractor(set pagecheck.PatternSet, cleaner pagecheck.Cleaner, minLength int) (*Extractor, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	var selectors int
	for _, p := range set.Patterns {
		if p.Selector == "" {
			continue
		}
		if _, err := cascadia.Compile(p.Selector); err != nil {
			return nil, pagecheck.Errorf(pagecheck.EINVALID, "pattern %q: invalid selector: %v", p.Region, err)
		}
		selectors++
	}
	if selectors == 0 {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "pattern set %q has no selectors", set.Name)
	}

	return &Extractor{set: set, cleaner: cleaner, minLength: minLength}, nil
}

// Extract parses html and returns the cleaned fragments of every region.
func (e *Extractor) Extract(html string) (pagecheck.RegionMap, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return pagecheck.RegionMap{}, pagecheck.Errorf(pagecheck.EINVALID, "failed to parse HTML: %v", err)
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument returns the cleaned fragments of every region of an
// already parsed document. Returns EINVALID and an empty map if a matched
// element cannot be rendered.
func (e *Extractor) ExtractDocument(doc *goquery.Document) (pagecheck.RegionMap, error) {
	var captures []pagecheck.Capture
	var order []string
	for _, p := range e.set.Patterns {
		if p.Selector == "" {
			continue
		}
		order = append(order, p.Region)

		var renderErr error
		doc.Find(p.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			inner, err := sel.Html()
			if err != nil {
				renderErr = err
				return false
			}
			captures = append(captures, pagecheck.Capture{Region: p.Region, Markup: inner})
			return true
		})
		if renderErr != nil {
			return pagecheck.RegionMap{}, pagecheck.Errorf(pagecheck.EINVALID, "pattern %q: failed to render element: %v", p.Region, renderErr)
		}
	}

	return pagecheck.BuildRegionMap(captures, e.cleaner, e.minLength, order...), nil
}
