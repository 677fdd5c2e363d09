package metrics

import (
	"io"
	"time"

	"github.com/kilianp07/pvderate/core/model"
)

// ReportEvent is a finished, sorted report handed to the sinks.
type ReportEvent struct {
	ReportID   string
	Technology string
	Params     model.Parameters
	Rows       []model.ResultRow
	Summary    model.Summary
	Time       time.Time
}

// ReportSink records built reports for observability purposes.
type ReportSink interface {
	RecordReport(ev ReportEvent) error
}

// NopSink implements ReportSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordReport(ReportEvent) error { return nil }

// Close releases the sink if it holds any resource.
func Close(s ReportSink) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
