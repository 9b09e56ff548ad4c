// Package cmd implements the print-calc CLI commands.
package cmd

import (
	"os"

	"github.com/theirongolddev/print-calc/internal/calc"
	"github.com/theirongolddev/print-calc/internal/config"
	"github.com/theirongolddev/print-calc/internal/logging"
	"github.com/theirongolddev/print-calc/internal/tui/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig  string
	flagVerbose bool

	// appConfig is loaded once per invocation before any command runs.
	appConfig = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "print-calc",
	Short: "3D Print Cost Calculator CLI",
	Long: `Estimate what a 3D print costs: filament, electricity, machine time,
extras and an optional profit margin.

Examples:
  print-calc manual -w 45 -t 3.5
  print-calc manual -w 120 -t 6 --material petg --margin 30
  print-calc manual -w 80 -t 2 --format json`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
}

// Execute is the main entry point called from main.go.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/print-calc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.SetVersionTemplate("print-calc version {{.Version}}\n")
}

// initRuntime loads config, then sets up logging and the color theme.
func initRuntime(_ *cobra.Command, _ []string) error {
	// Bootstrap logger so config warnings are not lost.
	logging.Initialize(loggingConfig(logging.DefaultConfig()))

	path := configPath()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	appConfig = cfg

	logging.Initialize(loggingConfig(cfg.Logging))
	theme.SetActive(cfg.Appearance.Theme)

	logging.Debug("loaded config",
		zap.String("path", path),
		zap.Bool("exists", config.Exists(path)),
		zap.String("theme", theme.Active.Name),
	)
	return nil
}

func loggingConfig(cfg logging.Config) logging.Config {
	if flagVerbose {
		cfg.Level = "debug"
	}
	return cfg
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

// baseParams returns the configured defaults, with the default material
// preset applied when one is set.
func baseParams(cfg config.Config) (calc.Params, error) {
	p := cfg.Defaults.Params()
	if cfg.Defaults.Material == "" {
		return p, nil
	}

	m, err := config.LookupMaterial(cfg, cfg.Defaults.Material)
	if err != nil {
		return p, err
	}
	if m.CostPerKg != p.CostPerKg {
		logging.Debug("default material replaces configured cost per kg",
			zap.String("material", m.Key),
			zap.Float64("material_cost_per_kg", m.CostPerKg),
			zap.Float64("configured_cost_per_kg", p.CostPerKg),
		)
	}
	p.CostPerKg = m.CostPerKg
	return p, nil
}
