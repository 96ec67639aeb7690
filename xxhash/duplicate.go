// Package xxhash finds check phrases that appear more than once on a page,
// keyed by an xxhash fingerprint of their normalized text.
package xxhash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagecheck"
)

// Fingerprint returns a hash of the phrase that ignores case and
// whitespace differences.
func Fingerprint(phrase string) uint64 {
	normalized := strings.ToLower(strings.Join(strings.Fields(phrase), " "))
	return xxhash.Sum64String(normalized)
}

// FindDuplicates returns the phrases occurring more than once, in order of
// first occurrence. Each duplicate lists the distinct sections it was found
// in, in order of appearance.
func FindDuplicates(phrases []pagecheck.CheckPhrase) []pagecheck.DuplicatePhrase {
	index := make(map[uint64]int)
	var groups []pagecheck.DuplicatePhrase
	for _, p := range phrases {
		key := Fingerprint(p.Phrase)
		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, pagecheck.DuplicatePhrase{
				Phrase:      p.Phrase,
				Sections:    []string{p.Section},
				Occurrences: 1,
			})
			continue
		}
		g := &groups[i]
		g.Occurrences++
		if !contains(g.Sections, p.Section) {
			g.Sections = append(g.Sections, p.Section)
		}
	}

	var dups []pagecheck.DuplicatePhrase
	for _, g := range groups {
		if g.Occurrences > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
