package metrics

import "errors"

// MultiSink fans out reports to multiple sinks.
type MultiSink struct {
	Sinks []ReportSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...ReportSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordReport forwards the report to every sink. A failing sink does not
// stop the others; all errors are joined.
func (m *MultiSink) RecordReport(ev ReportEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordReport(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink that implements io.Closer.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if err := Close(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
