package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecheck"
)

// Ensure LoggingReportWriter implements pagecheck.ReportWriter.
var _ pagecheck.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   pagecheck.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next pagecheck.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
// Failures are logged at error level.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, report *pagecheck.Report) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		w.logger.Log(ctx, level, "write report",
			"sections", report.Summary.TotalSections,
			"phrases", report.Summary.TotalPhrasesToCheck,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, report)
}
