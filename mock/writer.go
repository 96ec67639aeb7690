package mock

import (
	"context"

	"github.com/fwojciec/pagecheck"
)

var _ pagecheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of pagecheck.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *pagecheck.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *pagecheck.Report) error {
	return w.WriteReportFn(ctx, report)
}
