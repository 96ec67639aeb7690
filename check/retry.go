package check

import (
	"context"
	"time"

	"github.com/fwojciec/pagecheck"
)

// DefaultRetryDelays returns the backoff delays for lookup retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// LookupWithRetry performs a lookup, retrying EUNAVAILABLE errors once per
// delay. Other errors are returned immediately.
func LookupWithRetry(ctx context.Context, lookup pagecheck.PhraseLookup, phrase pagecheck.CheckPhrase, delays []time.Duration, logger LogFunc) (*pagecheck.CheckResult, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := lookup.Lookup(ctx, phrase)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if pagecheck.ErrorCode(err) != pagecheck.EUNAVAILABLE || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", phrase.SearchQuery, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
