// Package factory provides a small generic registry used to instantiate modules
// from configuration. A module is named by a type string and carries a map of
// raw settings which its factory decodes into a typed struct.
//
//	reg := factory.NewRegistry[metrics.ReportSink]()
//	_ = reg.Register("influx", func(conf map[string]any) (metrics.ReportSink, error) {
//	    var c struct{ URL string `json:"url"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newInfluxSink(c.URL), nil
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "influx", Conf: map[string]any{"url": "http://localhost:8086"}})
package factory
