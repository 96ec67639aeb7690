// Package regexp implements pagecheck.Extractor by matching region patterns
// as regular expressions against the raw page markup.
package regexp

import (
	"regexp"

	"github.com/fwojciec/pagecheck"
)

// Ensure Extractor implements pagecheck.Extractor at compile time.
var _ pagecheck.Extractor = (*Extractor)(nil)

// Extractor matches every pattern of a set against the whole document.
// Matches of a pattern never overlap and are taken top to bottom; every
// capture group of a match is a separate fragment.
type Extractor struct {
	set       pagecheck.PatternSet
	compiled  []*regexp.Regexp
	cleaner   pagecheck.Cleaner
	minLength int
}

// NewExtractor compiles the pattern set. Fragments are cleaned with cleaner
// and kept when longer than minLength characters.
// Returns EINVALID if the set does not validate.
func NewExtractor(set pagecheck.PatternSet, cleaner pagecheck.Cleaner, minLength int) (*Extractor, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	compiled := make([]*regexp.Regexp, 0, len(set.Patterns))
	for _, p := range set.Patterns {
		re, err := Compile(p.Expr)
		if err != nil {
			return nil, pagecheck.Errorf(pagecheck.EINVALID, "pattern %q: %v", p.Region, err)
		}
		compiled = append(compiled, re)
	}

	return &Extractor{
		set:       set,
		compiled:  compiled,
		cleaner:   cleaner,
		minLength: minLength,
	}, nil
}

// Compile compiles a region expression. Matching ignores case and lets "."
// span newlines.
func Compile(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?is)` + expr)
}

// Extract returns the cleaned fragments of every region found in html.
func (e *Extractor) Extract(html string) (pagecheck.RegionMap, error) {
	return pagecheck.BuildRegionMap(e.Captures(html), e.cleaner, e.minLength, e.set.Regions()...), nil
}

// Captures returns the raw markup captured by every pattern, grouped by
// pattern and in document order within a pattern.
func (e *Extractor) Captures(html string) []pagecheck.Capture {
	var captures []pagecheck.Capture
	for i, re := range e.compiled {
		region := e.set.Patterns[i].Region
		for _, match := range re.FindAllStringSubmatch(html, -1) {
			for _, group := range match[1:] {
				captures = append(captures, pagecheck.Capture{Region: region, Markup: group})
			}
		}
	}
	return captures
}
