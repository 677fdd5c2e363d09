package model

// StationSample is one input station with its mean cell temperature in °C.
type StationSample struct {
	Name            string  `json:"name" yaml:"name"`
	MeanTemperature float64 `json:"mean_temperature" yaml:"mean_temperature"`
}

// ResultRow is the derived efficiency and power for a single station.
// Efficiency is a fraction (0.21 = 21%) and never negative.
type ResultRow struct {
	Station         string  `json:"station"`
	CellTemperature float64 `json:"cell_temperature"`
	Efficiency      float64 `json:"efficiency"`
	Power           float64 `json:"power_w"`
}
