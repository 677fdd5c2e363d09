package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/pvderate/core/efficiency"
	"github.com/kilianp07/pvderate/core/logger"
	"github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/core/model"
)

// Builder turns station samples into ranked reports. A Builder holds no
// mutable state between calls and may be reused.
type Builder struct {
	params     model.Parameters
	technology string
	log        logger.Logger
	sink       metrics.ReportSink
	now        func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for warnings.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithSink records every built report on s.
func WithSink(s metrics.ReportSink) Option {
	return func(b *Builder) {
		if s != nil {
			b.sink = s
		}
	}
}

// WithTechnology labels reports with the cell technology name.
func WithTechnology(name string) Option {
	return func(b *Builder) { b.technology = name }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder returns a Builder for the given model parameters.
func NewBuilder(params model.Parameters, opts ...Option) *Builder {
	b := &Builder{
		params: params,
		log:    logger.NopLogger{},
		sink:   metrics.NopSink{},
		now:    time.Now,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Params returns the model parameters of the builder.
func (b *Builder) Params() model.Parameters { return b.params }

// Build computes one row per sample and sorts the rows by efficiency in
// descending order. The sort is stable: rows with exactly equal efficiency
// keep their input order.
func (b *Builder) Build(samples []model.StationSample) *Report {
	return b.build(samples, nil)
}

// BuildParallel pairs names and temps by index before building. A length
// mismatch is logged and recorded in Report.Warnings; the extra entries of
// the longer slice are dropped.
func (b *Builder) BuildParallel(names []string, temps []float64) *Report {
	samples, warning := Pair(names, temps)
	var warnings []string
	if warning != "" {
		b.log.Warnf("%s", warning)
		warnings = append(warnings, warning)
	}
	return b.build(samples, warnings)
}

func (b *Builder) build(samples []model.StationSample, warnings []string) *Report {
	rows := make([]model.ResultRow, len(samples))
	for i, s := range samples {
		rows[i] = efficiency.Row(s, b.params)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Efficiency > rows[j].Efficiency
	})
	rpt := &Report{
		ID:         uuid.NewString(),
		Generated:  b.now(),
		Technology: b.technology,
		Params:     b.params,
		Rows:       rows,
		Warnings:   warnings,
	}
	b.record(rpt)
	return rpt
}

func (b *Builder) record(rpt *Report) {
	ev := metrics.ReportEvent{
		ReportID:   rpt.ID,
		Technology: rpt.Technology,
		Params:     rpt.Params,
		Rows:       rpt.Rows,
		Summary:    rpt.Summary(),
		Time:       rpt.Generated,
	}
	if err := b.sink.RecordReport(ev); err != nil {
		b.log.Errorf("record report %s: %v", rpt.ID, err)
	}
}
