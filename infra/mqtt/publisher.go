package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	coremetrics "github.com/kilianp07/pvderate/core/metrics"
	coremqtt "github.com/kilianp07/pvderate/core/mqtt"
	"github.com/kilianp07/pvderate/core/model"
)

// StationMessage is published once per report row.
type StationMessage struct {
	MessageID       string  `json:"message_id"`
	ReportID        string  `json:"report_id"`
	Rank            int     `json:"rank"`
	Station         string  `json:"station"`
	CellTemperature float64 `json:"cell_temperature"`
	Efficiency      float64 `json:"efficiency"`
	Power           float64 `json:"power_w"`
	Timestamp       int64   `json:"timestamp"`
}

// SummaryMessage is published once per report after the station messages.
type SummaryMessage struct {
	MessageID  string           `json:"message_id"`
	ReportID   string           `json:"report_id"`
	Technology string           `json:"technology,omitempty"`
	Params     model.Parameters `json:"params"`
	Summary    model.Summary    `json:"summary"`
	Timestamp  int64            `json:"timestamp"`
}

// ReportPublisher is a ReportSink that publishes reports over MQTT.
// Station rows go to <prefix>/station/<name> and the summary to
// <prefix>/summary.
type ReportPublisher struct {
	pub    coremqtt.Publisher
	prefix string
}

// NewReportPublisher wraps pub. An empty prefix defaults to "pv/report".
func NewReportPublisher(pub coremqtt.Publisher, prefix string) *ReportPublisher {
	if prefix == "" {
		prefix = "pv/report"
	}
	return &ReportPublisher{pub: pub, prefix: strings.TrimSuffix(prefix, "/")}
}

// StationTopic returns the topic used for a station row.
func (p *ReportPublisher) StationTopic(station string) string {
	return fmt.Sprintf("%s/station/%s", p.prefix, sanitizeTopic(station))
}

// SummaryTopic returns the topic used for the report summary.
func (p *ReportPublisher) SummaryTopic() string { return p.prefix + "/summary" }

// RecordReport publishes every row then the summary. Publishing continues
// past failed rows; all failures are returned joined.
func (p *ReportPublisher) RecordReport(ev coremetrics.ReportEvent) error {
	ts := ev.Time.UnixMilli()
	var errs []error
	for i, r := range ev.Rows {
		msg := StationMessage{
			MessageID:       uuid.NewString(),
			ReportID:        ev.ReportID,
			Rank:            i + 1,
			Station:         r.Station,
			CellTemperature: r.CellTemperature,
			Efficiency:      r.Efficiency,
			Power:           r.Power,
			Timestamp:       ts,
		}
		if err := p.send(p.StationTopic(r.Station), msg); err != nil {
			errs = append(errs, err)
		}
	}
	sum := SummaryMessage{
		MessageID:  uuid.NewString(),
		ReportID:   ev.ReportID,
		Technology: ev.Technology,
		Params:     ev.Params,
		Summary:    ev.Summary,
		Timestamp:  ts,
	}
	if err := p.send(p.SummaryTopic(), sum); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close closes the underlying publisher when it supports it.
func (p *ReportPublisher) Close() error {
	if c, ok := p.pub.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *ReportPublisher) send(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.pub.Publish(topic, payload)
}

// sanitizeTopic strips MQTT wildcard and separator characters from a topic level.
func sanitizeTopic(s string) string {
	return strings.NewReplacer("/", "_", "+", "_", "#", "_").Replace(s)
}
