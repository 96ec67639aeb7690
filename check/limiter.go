package check

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces lookups. *rate.Limiter satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewLimiter returns a token bucket allowing rps lookups per second with
// no bursting. A non-positive rps disables pacing.
func NewLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}
