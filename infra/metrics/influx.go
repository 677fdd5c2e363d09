package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/infra/logger"
)

// InfluxSink writes report rows to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.ReportSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordReport writes one pv_station_result point per row and a
// pv_report_summary point in a single request.
func (s *InfluxSink) RecordReport(ev coremetrics.ReportEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	points := make([]*write.Point, 0, len(ev.Rows)+1)
	for i, r := range ev.Rows {
		p := write.NewPointWithMeasurement("pv_station_result").
			AddTag("station", r.Station).
			AddTag("report_id", ev.ReportID)
		if ev.Technology != "" {
			p.AddTag("technology", ev.Technology)
		}
		p.AddField("rank", i+1).
			AddField("cell_temperature", round6(r.CellTemperature)).
			AddField("efficiency", round6(r.Efficiency)).
			AddField("power_w", round6(r.Power)).
			SetTime(ev.Time)
		points = append(points, p)
	}
	sum := write.NewPointWithMeasurement("pv_report_summary").
		AddTag("report_id", ev.ReportID)
	if ev.Technology != "" {
		sum.AddTag("technology", ev.Technology)
	}
	sum.AddField("stations", ev.Summary.Count).
		AddField("mean_efficiency", round6(ev.Summary.MeanEfficiency)).
		AddField("total_power_w", round6(ev.Summary.TotalPower)).
		SetTime(ev.Time)
	points = append(points, sum)
	return s.writeAPI.WritePoint(ctx, points...)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

func round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}
