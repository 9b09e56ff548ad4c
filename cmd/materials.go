package cmd

import (
	"fmt"

	"github.com/theirongolddev/print-calc/internal/cli"
	"github.com/theirongolddev/print-calc/internal/config"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List filament presets",
	Args:  cobra.NoArgs,
	RunE:  runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	rows := [][]string{}
	for _, m := range config.Materials(appConfig) {
		nozzle := "-"
		if m.NozzleTempC > 0 {
			nozzle = fmt.Sprintf("%d°C", m.NozzleTempC)
		}
		rows = append(rows, []string{m.Key, m.Name, cli.FormatCost(m.CostPerKg), nozzle})
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Filament Presets",
		Headers: []string{"Preset", "Material", "Cost/kg", "Nozzle"},
		Rows:    rows,
	}))
	fmt.Fprintln(out, "\n  Override prices in the [materials] section of the config file.")
	return nil
}
