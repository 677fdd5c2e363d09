package config

import (
	"fmt"

	"github.com/kilianp07/pvderate/pkg/export"
)

// DatasetConfig selects the station input. An empty path uses the builtin
// dataset.
type DatasetConfig struct {
	Path string `json:"path"`
}

// OutputConfig defines where and how the report is written.
type OutputConfig struct {
	// Path of the CSV report.
	Path string `json:"path"`
	// JSONPath optionally writes a JSON copy of the report.
	JSONPath string `json:"json_path"`
	// Precision is the number of decimals of numeric CSV columns.
	Precision int `json:"precision"`
}

// DefaultOutputConfig writes results.csv with four decimals.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{Path: "results.csv", Precision: export.DefaultPrecision}
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "results.csv"
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Precision < 1 || c.Precision > 10 {
		return fmt.Errorf("output precision %d out of range 1-10", c.Precision)
	}
	return nil
}
