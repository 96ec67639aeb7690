// Package slog wraps pagecheck services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagecheck"
)

// Ensure LoggingExtractor implements pagecheck.Extractor.
var _ pagecheck.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagecheck.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagecheck.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (regions pagecheck.RegionMap, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"bytes", len(html),
			"regions", len(regions),
			"fragments", regions.FragmentCount(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
