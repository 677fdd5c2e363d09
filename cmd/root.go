package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pvderate/app"
	"github.com/kilianp07/pvderate/config"
	"github.com/kilianp07/pvderate/infra/logger"
)

var (
	cfgPath     string
	outPath     string
	jsonPath    string
	datasetPath string
	precision   int
)

var rootCmd = &cobra.Command{
	Use:   "pvderate",
	Short: "PV cell efficiency derating report",
	Long: `pvderate computes the temperature-derated efficiency and power of PV
cells for a set of stations, ranks them by efficiency and writes a
semicolon separated CSV report.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "CSV output path")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "optional JSON output path")
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", "", "station dataset file (default builtin)")
	rootCmd.Flags().IntVarP(&precision, "precision", "p", 0, "decimals of numeric CSV columns")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("out"); f != nil && f.Changed {
		cfg.Output.Path = outPath
	}
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		cfg.Output.JSONPath = jsonPath
	}
	if f := cmd.Flags().Lookup("precision"); f != nil && f.Changed {
		cfg.Output.Precision = precision
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset.Path = datasetPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	rpt, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	s := rpt.Summary()
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%d stations written to %s\n", s.Count, cfg.Output.Path); err != nil {
		return err
	}
	if s.Count == 0 {
		return nil
	}
	_, err = fmt.Fprintf(out, "efficiency %.4f%% (min) / %.4f%% (mean) / %.4f%% (max), total power %.4f W\n",
		s.MinEfficiency*100, s.MeanEfficiency*100, s.MaxEfficiency*100, s.TotalPower)
	return err
}
