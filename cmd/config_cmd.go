package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/print-calc/internal/cli"
	"github.com/theirongolddev/print-calc/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfg := appConfig
	path := configPath()

	fmt.Fprintf(out, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	d := cfg.Defaults
	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Material cost:    %s/kg\n", cli.FormatCost(d.CostPerKg))
	if d.Material != "" {
		if m, err := config.LookupMaterial(cfg, d.Material); err == nil {
			fmt.Fprintf(out, "    Material:         %s (%s/kg, replaces material cost)\n", m.Key, cli.FormatCost(m.CostPerKg))
		} else {
			fmt.Fprintf(out, "    Material:         %s (unknown preset)\n", d.Material)
		}
	}
	fmt.Fprintf(out, "    Power:            %s\n", cli.FormatWatts(d.PowerW))
	fmt.Fprintf(out, "    Electricity rate: %s\n", cli.FormatRate(d.ElectricityRate, "kWh"))
	fmt.Fprintf(out, "    Machine rate:     %s\n", cli.FormatRate(d.MachineHourlyRate, "h"))
	fmt.Fprintf(out, "    Margin:           %s\n", cli.FormatPercent(d.MarginPercent))
	fmt.Fprintf(out, "    Waste:            %s\n", cli.FormatPercent(d.WastePercent))
	fmt.Fprintf(out, "    Additional costs: %s\n", cli.FormatCost(d.AdditionalCosts))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level:  %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "    Format: %s\n", cfg.Logging.Format)
	fmt.Fprintln(out)

	if len(cfg.Materials) > 0 {
		keys := make([]string, 0, len(cfg.Materials))
		for k := range cfg.Materials {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(out, "  [Materials]")
		for _, k := range keys {
			m := cfg.Materials[k]
			price := "built-in price"
			if m.CostPerKg != nil {
				price = cli.FormatCost(*m.CostPerKg) + "/kg"
			}
			if m.Name != "" {
				fmt.Fprintf(out, "    %s: %s (%s)\n", k, price, m.Name)
			} else {
				fmt.Fprintf(out, "    %s: %s\n", k, price)
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "  Run `print-calc setup` to reconfigure.")
	return nil
}
