package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/pvderate/core/metrics"
)

// PromSink exposes the latest report as Prometheus gauges. When a textfile
// path is set, the gathered metrics are also written there after every report
// so a node_exporter textfile collector can pick them up from batch runs.
type PromSink struct {
	efficiency *prometheus.GaugeVec
	power      *prometheus.GaugeVec
	cellTemp   *prometheus.GaugeVec
	reports    prometheus.Counter
	meanEff    prometheus.Gauge
	totalPower prometheus.Gauge
	lastRun    prometheus.Gauge

	gatherer prometheus.Gatherer
	textfile string
}

// NewPromSink registers report metrics on the default Prometheus registry.
func NewPromSink(textfile string) (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer, textfile)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer and
// gathers from gatherer for textfile output. Nil arguments default to the
// global Prometheus registry.
func NewPromSinkWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	labels := []string{"station", "rank"}
	s := &PromSink{gatherer: gatherer, textfile: textfile}
	var err error
	if s.efficiency, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pv_station_efficiency_ratio",
		Help: "Cell efficiency of the station as a fraction",
	}, labels)); err != nil {
		return nil, err
	}
	if s.power, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pv_station_power_watts",
		Help: "Power output of the station in watts",
	}, labels)); err != nil {
		return nil, err
	}
	if s.cellTemp, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pv_station_cell_temperature_celsius",
		Help: "Cell temperature used for the station",
	}, labels)); err != nil {
		return nil, err
	}
	if s.reports, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pv_reports_total",
		Help: "Number of efficiency reports built",
	})); err != nil {
		return nil, err
	}
	if s.meanEff, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pv_report_mean_efficiency_ratio",
		Help: "Mean efficiency over the stations of the last report",
	})); err != nil {
		return nil, err
	}
	if s.totalPower, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pv_report_total_power_watts",
		Help: "Sum of station power in the last report",
	})); err != nil {
		return nil, err
	}
	if s.lastRun, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pv_report_last_run_timestamp_seconds",
		Help: "Unix time of the last report",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds c to reg, reusing an identical collector that is already
// registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// RecordReport replaces the per-station gauges with the rows of ev.
func (s *PromSink) RecordReport(ev coremetrics.ReportEvent) error {
	s.efficiency.Reset()
	s.power.Reset()
	s.cellTemp.Reset()
	for i, r := range ev.Rows {
		rank := strconv.Itoa(i + 1)
		s.efficiency.WithLabelValues(r.Station, rank).Set(r.Efficiency)
		s.power.WithLabelValues(r.Station, rank).Set(r.Power)
		s.cellTemp.WithLabelValues(r.Station, rank).Set(r.CellTemperature)
	}
	s.reports.Inc()
	s.meanEff.Set(ev.Summary.MeanEfficiency)
	s.totalPower.Set(ev.Summary.TotalPower)
	s.lastRun.Set(float64(ev.Time.Unix()))
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.gatherer)
}
