package report

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/pvderate/core/model"
)

// Report is a ranked set of results. Rows are sorted by efficiency,
// highest first.
type Report struct {
	ID         string
	Generated  time.Time
	Technology string
	Params     model.Parameters
	Rows       []model.ResultRow
	Warnings   []string
}

// Len returns the number of rows.
func (r *Report) Len() int { return len(r.Rows) }

// Efficiencies returns the efficiency fractions in report order.
func (r *Report) Efficiencies() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Efficiency
	}
	return out
}

// Powers returns the power values in W in report order.
func (r *Report) Powers() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Power
	}
	return out
}

// CellTemperatures returns the cell temperatures in °C in report order.
func (r *Report) CellTemperatures() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.CellTemperature
	}
	return out
}

// Stations returns the station names in report order.
func (r *Report) Stations() []string {
	out := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Station
	}
	return out
}

// Summary aggregates the report. An empty report yields a zero Summary.
func (r *Report) Summary() model.Summary {
	if len(r.Rows) == 0 {
		return model.Summary{}
	}
	eff := r.Efficiencies()
	s := model.Summary{
		Count:          len(eff),
		MeanEfficiency: stat.Mean(eff, nil),
		MinEfficiency:  floats.Min(eff),
		MaxEfficiency:  floats.Max(eff),
		MeanCellTemp:   stat.Mean(r.CellTemperatures(), nil),
		TotalPower:     floats.Sum(r.Powers()),
	}
	if len(eff) > 1 {
		s.EfficiencyStdDev = stat.StdDev(eff, nil)
	}
	return s
}
