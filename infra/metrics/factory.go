package metrics

import (
	"github.com/kilianp07/pvderate/core/factory"
	coremetrics "github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/infra/mqtt"
)

// init registers built-in report sinks.
func init() {
	_ = coremetrics.RegisterReportSink("nop", func(map[string]any) (coremetrics.ReportSink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterReportSink("prometheus", func(conf map[string]any) (coremetrics.ReportSink, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Textfile)
	})

	_ = coremetrics.RegisterReportSink("influx", func(conf map[string]any) (coremetrics.ReportSink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})

	_ = coremetrics.RegisterReportSink("mqtt", func(conf map[string]any) (coremetrics.ReportSink, error) {
		var c mqtt.Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		cli, err := mqtt.NewPahoClient(c)
		if err != nil {
			return nil, err
		}
		c.SetDefaults()
		return mqtt.NewReportPublisher(cli, c.TopicPrefix), nil
	})
}
