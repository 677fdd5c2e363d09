package metrics

import "github.com/kilianp07/pvderate/core/factory"

// Config defines settings for report sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
