// Package bluemonday implements pagecheck.Cleaner on top of the bluemonday
// HTML sanitizer.
package bluemonday

import (
	"strings"

	"github.com/fwojciec/pagecheck"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements pagecheck.Cleaner at compile time.
var _ pagecheck.Cleaner = (*Cleaner)(nil)

// Cleaner strips markup from captured fragments.
//
// Tags are removed before entities are decoded, so text that only looks
// like a tag after decoding (e.g. "&lt;b&gt;") survives as literal text.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner returns a Cleaner that keeps no tags at all. The bodies of
// script and style elements are dropped along with the tags.
func NewCleaner() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// Clean returns the plain text of markup with whitespace runs collapsed to
// single spaces and leading and trailing whitespace removed.
func (c *Cleaner) Clean(markup string) string {
	// The sanitizer re-escapes the text it keeps.
	text := html.UnescapeString(c.policy.Sanitize(markup))
	return strings.Join(strings.Fields(text), " ")
}
