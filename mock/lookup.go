package mock

import (
	"context"

	"github.com/fwojciec/pagecheck"
)

var _ pagecheck.PhraseLookup = (*PhraseLookup)(nil)

// PhraseLookup is a mock implementation of pagecheck.PhraseLookup.
type PhraseLookup struct {
	LookupFn func(ctx context.Context, phrase pagecheck.CheckPhrase) (*pagecheck.CheckResult, error)
}

func (l *PhraseLookup) Lookup(ctx context.Context, phrase pagecheck.CheckPhrase) (*pagecheck.CheckResult, error) {
	return l.LookupFn(ctx, phrase)
}
