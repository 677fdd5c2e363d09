package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/core/model"
)

func promEvent() coremetrics.ReportEvent {
	return coremetrics.ReportEvent{
		ReportID: "r1",
		Rows: []model.ResultRow{
			{Station: "COM", CellTemperature: 25, Efficiency: 0.21, Power: 210},
			{Station: "BAS", CellTemperature: 125, Efficiency: 0.1155, Power: 115.5},
		},
		Summary: model.Summary{Count: 2, MeanEfficiency: 0.16275, TotalPower: 325.5},
		Time:    time.Unix(1700000000, 0),
	}
}

func TestPromSinkRecordReport(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg, reg, "")
	require.NoError(t, err)
	require.NoError(t, sink.RecordReport(promEvent()))

	assert.Equal(t, 0.21, testutil.ToFloat64(sink.efficiency.WithLabelValues("COM", "1")))
	assert.Equal(t, 115.5, testutil.ToFloat64(sink.power.WithLabelValues("BAS", "2")))
	assert.Equal(t, 125.0, testutil.ToFloat64(sink.cellTemp.WithLabelValues("BAS", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.reports))
	assert.Equal(t, 325.5, testutil.ToFloat64(sink.totalPower))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(sink.lastRun))
}

func TestPromSinkResetsStations(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg, reg, "")
	require.NoError(t, err)
	require.NoError(t, sink.RecordReport(promEvent()))
	ev := promEvent()
	ev.Rows = ev.Rows[:1]
	require.NoError(t, sink.RecordReport(ev))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.efficiency))
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.reports))
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	s1, err := NewPromSinkWithRegistry(reg, reg, "")
	require.NoError(t, err)
	s2, err := NewPromSinkWithRegistry(reg, reg, "")
	require.NoError(t, err)
	require.NoError(t, s1.RecordReport(promEvent()))
	require.NoError(t, s2.RecordReport(promEvent()))
	assert.Equal(t, 2.0, testutil.ToFloat64(s1.reports))
}

func TestPromSinkTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	path := filepath.Join(t.TempDir(), "pv.prom")
	sink, err := NewPromSinkWithRegistry(reg, reg, path)
	require.NoError(t, err)
	require.NoError(t, sink.RecordReport(promEvent()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `pv_station_efficiency_ratio{rank="1",station="COM"} 0.21`), out)
	assert.True(t, strings.Contains(out, "pv_reports_total 1"), out)
}
