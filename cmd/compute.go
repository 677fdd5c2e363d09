package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pvderate/core/efficiency"
)

var computeCmd = &cobra.Command{
	Use:   "compute TEMPERATURE...",
	Short: "Compute efficiency and power for cell temperatures in °C",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Parameters(nil)
	out := cmd.OutOrStdout()
	for _, a := range args {
		t, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid temperature %q: %w", a, err)
		}
		eta, power := efficiency.Compute(t, params)
		if _, err := fmt.Fprintf(out, "Tcell=%.4f°C efficiency=%.4f%% power=%.4f W\n", t, eta*100, power); err != nil {
			return err
		}
	}
	return nil
}
