package app

import (
	"context"
	"fmt"

	"github.com/kilianp07/pvderate/config"
	coremetrics "github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/core/model"
	"github.com/kilianp07/pvderate/core/report"
	"github.com/kilianp07/pvderate/infra/logger"
	_ "github.com/kilianp07/pvderate/infra/metrics"
	"github.com/kilianp07/pvderate/internal/dataset"
	"github.com/kilianp07/pvderate/pkg/export"
)

// Service runs one efficiency report from configuration.
type Service struct {
	cfg  *config.Config
	sink coremetrics.ReportSink
	log  logger.Logger
}

// New creates a Service from the configuration, building the configured
// report sinks.
func New(cfg *config.Config) (*Service, error) {
	sink, err := coremetrics.NewReportSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("report sinks: %w", err)
	}
	return NewWithSink(cfg, sink, logger.New("report")), nil
}

// NewWithSink creates a Service with an explicit sink and logger.
func NewWithSink(cfg *config.Config, sink coremetrics.ReportSink, log logger.Logger) *Service {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{cfg: cfg, sink: sink, log: log}
}

// Dataset loads the configured dataset, or the builtin one when no path is set.
func (s *Service) Dataset() (dataset.Dataset, error) {
	if s.cfg.Dataset.Path == "" {
		return dataset.Builtin()
	}
	return dataset.Load(s.cfg.Dataset.Path)
}

// Builder returns a report builder for the dataset technology.
func (s *Service) Builder(ds dataset.Dataset) *report.Builder {
	tech := s.cfg.ResolveTechnology(ds.Technology)
	return report.NewBuilder(s.cfg.Parameters(ds.Technology),
		report.WithLogger(s.log),
		report.WithSink(s.sink),
		report.WithTechnology(tech.Name),
	)
}

// Run builds the report and writes it to the configured outputs. When a
// write fails the built report is still returned together with an
// *export.OutputError.
func (s *Service) Run(ctx context.Context) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	b := s.Builder(ds)
	s.banner(s.cfg.ResolveTechnology(ds.Technology), b.Params())

	var rpt *report.Report
	if ds.Paired() {
		rpt = b.Build(ds.Stations)
	} else {
		rpt = b.BuildParallel(ds.Names, ds.Temperatures)
	}

	if err := export.WriteCSVFile(s.cfg.Output.Path, rpt.Rows, s.cfg.Output.Precision); err != nil {
		return rpt, err
	}
	s.log.Infof("results saved in %s (%d stations)", s.cfg.Output.Path, rpt.Len())
	if s.cfg.Output.JSONPath != "" {
		if err := export.WriteJSONFile(s.cfg.Output.JSONPath, rpt); err != nil {
			return rpt, err
		}
		s.log.Infof("json report saved in %s", s.cfg.Output.JSONPath)
	}
	return rpt, nil
}

func (s *Service) banner(tech model.CellType, p model.Parameters) {
	s.log.Infof("technology: %s", tech.Name)
	s.log.Infof("%s", p)
}

// Close releases the report sinks.
func (s *Service) Close() error { return coremetrics.Close(s.sink) }
