package metrics

import "github.com/kilianp07/pvderate/core/factory"

var sinkRegistry = factory.NewRegistry[ReportSink]()

// RegisterReportSink adds a sink factory identified by name.
func RegisterReportSink(name string, f factory.Factory[ReportSink]) error {
	return sinkRegistry.Register(name, f)
}

// RegisteredSinks lists the known sink types.
func RegisteredSinks() []string { return sinkRegistry.Names() }

// NewReportSink creates a ReportSink from the provided configuration.
func NewReportSink(cfgs []factory.ModuleConfig) (ReportSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]ReportSink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			_ = NewMultiSink(sinks...).Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}
