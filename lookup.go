package pagecheck

import "context"

// Match is a page returned by a search backend for an exact-match query.
type Match struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CheckResult is the outcome of looking up one check phrase.
type CheckResult struct {
	Section                string  `json:"section"`
	Query                  string  `json:"query"`
	PotentiallyPlagiarized bool    `json:"potentially_plagiarized"`
	Note                   string  `json:"note,omitempty"`
	Error                  string  `json:"error,omitempty"`
	Matches                []Match `json:"matches,omitempty"`
}

// PhraseLookup searches for a phrase as an exact match somewhere else.
type PhraseLookup interface {
	// Lookup returns the result for a single phrase.
	// Returns EUNAVAILABLE when the backend is temporarily unable to answer.
	Lookup(ctx context.Context, phrase CheckPhrase) (*CheckResult, error)
}
