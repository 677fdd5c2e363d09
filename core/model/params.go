package model

import "fmt"

// Parameters holds the constants of the linear temperature-coefficient model.
type Parameters struct {
	// ReferenceEfficiency is the efficiency at ReferenceTemperature, as a fraction.
	ReferenceEfficiency float64 `json:"reference_efficiency"`
	// ReferenceTemperature in °C.
	ReferenceTemperature float64 `json:"reference_temperature"`
	// TemperatureCoefficient is the fractional loss per °C above reference.
	TemperatureCoefficient float64 `json:"temperature_coefficient"`
	// Irradiance in W/m².
	Irradiance float64 `json:"irradiance"`
	// Area of the cell in m².
	Area float64 `json:"area"`
}

// DefaultParameters returns the reference parameters used by the batch report.
func DefaultParameters() Parameters {
	return Parameters{
		ReferenceEfficiency:    0.21,
		ReferenceTemperature:   25,
		TemperatureCoefficient: 0.0045,
		Irradiance:             1000,
		Area:                   1,
	}
}

// String renders the parameters the way they appear in the run banner.
func (p Parameters) String() string {
	return fmt.Sprintf("eta_ref = %.2f%%, Tref = %.1f°C, beta = %.4f 1/°C, G = %.0f W/m², A = %.1f m²",
		p.ReferenceEfficiency*100, p.ReferenceTemperature, p.TemperatureCoefficient, p.Irradiance, p.Area)
}

// CellType describes a PV cell technology by its efficiency range in percent.
type CellType struct {
	Name   string  `json:"name" yaml:"name"`
	EtaMin float64 `json:"eta_min" yaml:"eta_min"`
	EtaMax float64 `json:"eta_max" yaml:"eta_max"`
}

// DefaultCellType is the typical commercial monocrystalline module.
var DefaultCellType = CellType{Name: "Monocrystalline silicon (PERC, TOPCon)", EtaMin: 18, EtaMax: 24}

// ReferenceEfficiency is the midpoint of the efficiency range as a fraction.
func (c CellType) ReferenceEfficiency() float64 {
	return (c.EtaMin + c.EtaMax) / 2 / 100
}
