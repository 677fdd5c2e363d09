package report

import (
	"fmt"

	"github.com/kilianp07/pvderate/core/model"
)

// Pair zips station names and temperatures by index. When the lengths differ
// only the first min(len(names), len(temps)) entries are kept and a non-empty
// warning describing the mismatch is returned.
func Pair(names []string, temps []float64) ([]model.StationSample, string) {
	n := min(len(names), len(temps))
	var warning string
	if len(names) != len(temps) {
		warning = fmt.Sprintf("number of stations (%d) does not match number of temperatures (%d); only the first %d entries will be paired",
			len(names), len(temps), n)
	}
	samples := make([]model.StationSample, n)
	for i := 0; i < n; i++ {
		samples[i] = model.StationSample{Name: names[i], MeanTemperature: temps[i]}
	}
	return samples, warning
}
