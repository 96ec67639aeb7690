// Package offline implements pagecheck.PhraseLookup without any network
// access. Every phrase is reported clean with a note asking for a manual
// search.
package offline

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/pagecheck"
)

// Ensure Lookup implements pagecheck.PhraseLookup at compile time.
var _ pagecheck.PhraseLookup = (*Lookup)(nil)

// notePreviewLength is how much of the phrase the manual-search note quotes.
const notePreviewLength = 50

// Lookup never flags a phrase.
type Lookup struct{}

// NewLookup returns a new Lookup.
func NewLookup() *Lookup {
	return &Lookup{}
}

// Lookup returns a clean result with a manual-search note.
func (l *Lookup) Lookup(ctx context.Context, phrase pagecheck.CheckPhrase) (*pagecheck.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &pagecheck.CheckResult{
		Section:                phrase.Section,
		Query:                  phrase.SearchQuery,
		PotentiallyPlagiarized: false,
		Note:                   "Manual Google search recommended for: " + preview(phrase.Phrase) + "...",
	}, nil
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= notePreviewLength {
		return s
	}
	return string([]rune(s)[:notePreviewLength])
}
