package model

// Summary aggregates a report for banners and metrics.
type Summary struct {
	Count            int     `json:"count"`
	MeanEfficiency   float64 `json:"mean_efficiency"`
	MinEfficiency    float64 `json:"min_efficiency"`
	MaxEfficiency    float64 `json:"max_efficiency"`
	EfficiencyStdDev float64 `json:"efficiency_stddev"`
	MeanCellTemp     float64 `json:"mean_cell_temperature"`
	TotalPower       float64 `json:"total_power_w"`
}
