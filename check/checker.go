// Package check looks up check phrases one at a time, pacing requests and
// retrying lookups whose backend is temporarily unavailable.
package check

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagecheck"
)

// DefaultMinLength is the length a phrase must exceed to be looked up.
const DefaultMinLength = 30

// Progress reports the outcome of one lookup.
type Progress struct {
	Phrase    pagecheck.CheckPhrase
	Completed int
	Total     int
	Result    *pagecheck.CheckResult
}

// ProgressFunc is called after every lookup.
type ProgressFunc func(Progress)

// Checker runs lookups sequentially.
type Checker struct {
	// Lookup answers whether a phrase appears elsewhere. Required.
	Lookup pagecheck.PhraseLookup

	// Limiter paces lookups. Nil disables pacing.
	Limiter Limiter

	// RetryDelays are the waits between retries of unavailable lookups.
	// Nil disables retries.
	RetryDelays []time.Duration

	// MinLength skips phrases that are not longer than this many characters.
	MinLength int

	// Logger receives retry messages. Optional.
	Logger LogFunc
}

// Check looks up every phrase longer than MinLength, in order. A failed
// lookup is recorded in its result's Error field and does not stop the
// run. Returns the results gathered so far and the context error if ctx
// is canceled.
func (c *Checker) Check(ctx context.Context, phrases []pagecheck.CheckPhrase, progress ProgressFunc) ([]pagecheck.CheckResult, error) {
	if c.Lookup == nil {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "lookup required")
	}

	var eligible []pagecheck.CheckPhrase
	for _, p := range phrases {
		if utf8.RuneCountInString(p.Phrase) > c.MinLength {
			eligible = append(eligible, p)
		}
	}

	results := make([]pagecheck.CheckResult, 0, len(eligible))
	for i, phrase := range eligible {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return results, err
			}
		}

		result, err := LookupWithRetry(ctx, c.Lookup, phrase, c.RetryDelays, c.Logger)
		if err == nil && result == nil {
			err = pagecheck.Errorf(pagecheck.EINTERNAL, "empty lookup result")
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return results, err
			}
			result = &pagecheck.CheckResult{
				Section: phrase.Section,
				Query:   phrase.SearchQuery,
				Error:   errorText(err),
			}
		}
		results = append(results, *result)

		if progress != nil {
			progress(Progress{
				Phrase:    phrase,
				Completed: i + 1,
				Total:     len(eligible),
				Result:    result,
			})
		}
	}

	return results, nil
}

func errorText(err error) string {
	var e *pagecheck.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
