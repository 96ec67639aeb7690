package pagecheck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// CheckPhrase is a sentence ready to be searched for as an exact match.
type CheckPhrase struct {
	Section     string `json:"section"`
	Phrase      string `json:"phrase"`
	SearchQuery string `json:"search_query"`
}

var sentenceBreakRe = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on runs of terminal punctuation and trims
// each piece. Empty pieces are kept so callers can filter by length.
func SplitSentences(text string) []string {
	pieces := sentenceBreakRe.Split(text, -1)
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
	}
	return pieces
}

// QuoteQuery wraps a sentence in quotation marks for exact-match search.
func QuoteQuery(sentence string) string {
	return `"` + sentence + `"`
}

// Segment splits every fragment of every region into sentences and returns
// a CheckPhrase for each sentence longer than minLength characters. Order
// follows regions, then fragments, then sentences within a fragment.
func Segment(regions RegionMap, minLength int) []CheckPhrase {
	var phrases []CheckPhrase
	for _, r := range regions {
		for _, fragment := range r.Fragments {
			for _, sentence := range SplitSentences(fragment) {
				if utf8.RuneCountInString(sentence) <= minLength {
					continue
				}
				phrases = append(phrases, CheckPhrase{
					Section:     r.Name,
					Phrase:      sentence,
					SearchQuery: QuoteQuery(sentence),
				})
			}
		}
	}
	return phrases
}
