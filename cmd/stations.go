package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pvderate/app"
	"github.com/kilianp07/pvderate/core/metrics"
	"github.com/kilianp07/pvderate/core/report"
	"github.com/kilianp07/pvderate/infra/logger"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the stations of the dataset",
	RunE:  runStations,
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}

func runStations(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := app.NewWithSink(cfg, metrics.NopSink{}, logger.New("stations"))
	ds, err := svc.Dataset()
	if err != nil {
		return err
	}
	samples := ds.Stations
	if !ds.Paired() {
		var warning string
		samples, warning = report.Pair(ds.Names, ds.Temperatures)
		if warning != "" {
			logger.New("stations").Warnf("%s", warning)
		}
	}
	tech := cfg.ResolveTechnology(ds.Technology)
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "# %s, %d stations\n", tech.Name, len(samples)); err != nil {
		return err
	}
	for _, s := range samples {
		if _, err := fmt.Fprintf(out, "%s\t%.4f\n", s.Name, s.MeanTemperature); err != nil {
			return err
		}
	}
	return nil
}
