package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	count  int
	err    error
	closed bool
}

func (r *recordSink) RecordReport(ReportEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) Close() error {
	r.closed = true
	return nil
}

// TestMultiSink ensures reports are forwarded to all sinks.
func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordReport(ReportEvent{ReportID: "r1"}); err != nil {
		t.Fatalf("record report: %v", err)
	}
	if s1.count != 1 || s2.count != 1 {
		t.Fatalf("report not forwarded")
	}
}

func TestMultiSinkContinuesAfterError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2, NopSink{})
	err := m.RecordReport(ReportEvent{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s2.count != 1 {
		t.Fatalf("second sink skipped")
	}
}

func TestMultiSinkClose(t *testing.T) {
	s1 := &recordSink{}
	m := NewMultiSink(s1, NopSink{})
	if err := Close(m); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !s1.closed {
		t.Fatalf("sink not closed")
	}
}
