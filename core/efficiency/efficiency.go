package efficiency

import "github.com/kilianp07/pvderate/core/model"

// Compute returns the efficiency (fraction) and power (W) of a cell at
// temperature t in °C. Negative efficiencies are clamped to exactly 0 and the
// clamped value is used for power.
func Compute(t float64, p model.Parameters) (eta, power float64) {
	eta = p.ReferenceEfficiency * (1 - p.TemperatureCoefficient*(t-p.ReferenceTemperature))
	if eta < 0 {
		eta = 0
	}
	return eta, eta * p.Irradiance * p.Area
}

// Row applies Compute to a station sample.
func Row(s model.StationSample, p model.Parameters) model.ResultRow {
	eta, power := Compute(s.MeanTemperature, p)
	return model.ResultRow{
		Station:         s.Name,
		CellTemperature: s.MeanTemperature,
		Efficiency:      eta,
		Power:           power,
	}
}
