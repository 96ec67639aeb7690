package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecheck"
)

// Ensure LoggingPhraseLookup implements pagecheck.PhraseLookup.
var _ pagecheck.PhraseLookup = (*LoggingPhraseLookup)(nil)

// LoggingPhraseLookup wraps a PhraseLookup with debug logging.
type LoggingPhraseLookup struct {
	next   pagecheck.PhraseLookup
	logger *slog.Logger
}

// NewLoggingPhraseLookup creates a new LoggingPhraseLookup.
func NewLoggingPhraseLookup(next pagecheck.PhraseLookup, logger *slog.Logger) *LoggingPhraseLookup {
	return &LoggingPhraseLookup{next: next, logger: logger}
}

// Lookup delegates to the wrapped lookup and logs the operation.
func (l *LoggingPhraseLookup) Lookup(ctx context.Context, phrase pagecheck.CheckPhrase) (result *pagecheck.CheckResult, err error) {
	defer func(begin time.Time) {
		var flagged bool
		var matches int
		if result != nil {
			flagged = result.PotentiallyPlagiarized
			matches = len(result.Matches)
		}
		l.logger.Debug("lookup",
			"section", phrase.Section,
			"query", phrase.SearchQuery,
			"flagged", flagged,
			"matches", matches,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Lookup(ctx, phrase)
}
