package config

import (
	"fmt"

	"github.com/kilianp07/pvderate/core/model"
)

// ModelConfig holds the efficiency model constants.
type ModelConfig struct {
	// ReferenceEfficiency as a fraction. Zero derives it from the technology.
	ReferenceEfficiency    float64 `json:"reference_efficiency"`
	ReferenceTemperature   float64 `json:"reference_temperature"`
	TemperatureCoefficient float64 `json:"temperature_coefficient"`
	Irradiance             float64 `json:"irradiance"`
	Area                   float64 `json:"area"`
}

// DefaultModelConfig mirrors model.DefaultParameters with a derived
// reference efficiency.
func DefaultModelConfig() ModelConfig {
	p := model.DefaultParameters()
	return ModelConfig{
		ReferenceTemperature:   p.ReferenceTemperature,
		TemperatureCoefficient: p.TemperatureCoefficient,
		Irradiance:             p.Irradiance,
		Area:                   p.Area,
	}
}

// Validate checks the reference efficiency is a fraction.
func (c ModelConfig) Validate() error {
	if c.ReferenceEfficiency < 0 || c.ReferenceEfficiency > 1 {
		return fmt.Errorf("reference_efficiency %v must be a fraction between 0 and 1", c.ReferenceEfficiency)
	}
	return nil
}

// Parameters builds model parameters, using tech when no reference
// efficiency is configured.
func (c ModelConfig) Parameters(tech model.CellType) model.Parameters {
	eta := c.ReferenceEfficiency
	if eta == 0 {
		eta = tech.ReferenceEfficiency()
	}
	return model.Parameters{
		ReferenceEfficiency:    eta,
		ReferenceTemperature:   c.ReferenceTemperature,
		TemperatureCoefficient: c.TemperatureCoefficient,
		Irradiance:             c.Irradiance,
		Area:                   c.Area,
	}
}
