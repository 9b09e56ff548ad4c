package cmd

import (
	"github.com/theirongolddev/print-calc/internal/calc"
	"github.com/theirongolddev/print-calc/internal/cli"
	"github.com/theirongolddev/print-calc/internal/config"
	"github.com/theirongolddev/print-calc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagWeight       float64
	flagTime         float64
	flagMaterialCost float64
	flagPower        float64
	flagRate         float64
	flagMachineRate  float64
	flagMargin       float64
	flagWaste        float64
	flagAdditional   float64
	flagMaterial     string
	flagFormat       string
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Calculate cost from manual input",
	Long: `Calculate the cost of a print from its filament weight and print time.

Rates not given as flags come from the config file, then from built-in
defaults. --material picks a filament preset; --material-cost wins over it.`,
	Args: cobra.NoArgs,
	RunE: runManual,
}

func init() {
	f := manualCmd.Flags()
	f.Float64VarP(&flagWeight, "weight", "w", 0, "Filament weight in grams")
	f.Float64VarP(&flagTime, "time", "t", 0, "Print time in hours")
	f.Float64Var(&flagMaterialCost, "material-cost", calc.DefaultCostPerKg, "Cost per kg")
	f.Float64Var(&flagPower, "power", calc.DefaultPowerW, "Power consumption in watts")
	f.Float64Var(&flagRate, "rate", calc.DefaultElectricityRate, "Electricity rate per kWh")
	f.Float64Var(&flagMachineRate, "machine-rate", 0, "Machine hourly rate")
	f.Float64Var(&flagMargin, "margin", 0, "Profit margin percentage")
	f.Float64Var(&flagWaste, "waste", calc.DefaultWastePercent, "Material waste percentage")
	f.Float64Var(&flagAdditional, "additional", 0, "Additional flat costs (supports, post-processing, packaging)")
	f.StringVarP(&flagMaterial, "material", "m", "", "Filament preset (see `print-calc materials`)")
	f.StringVarP(&flagFormat, "format", "f", string(cli.FormatTable), "Output format: table, json or yaml")

	_ = manualCmd.MarkFlagRequired("weight")
	_ = manualCmd.MarkFlagRequired("time")

	rootCmd.AddCommand(manualCmd)
}

func runManual(cmd *cobra.Command, _ []string) error {
	format, err := cli.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	p, err := manualParams(cmd, appConfig)
	if err != nil {
		return err
	}
	logging.Debug("resolved inputs", zap.Any("params", p))

	b, err := calc.Calculate(p)
	if err != nil {
		return err
	}
	logging.Debug("calculated cost breakdown",
		zap.Float64("subtotal", b.Subtotal),
		zap.Float64("total", b.Total),
	)

	return cli.Encode(cmd.OutOrStdout(), b, format)
}

// manualParams layers explicit flags over the material preset and the
// configured defaults.
func manualParams(cmd *cobra.Command, cfg config.Config) (calc.Params, error) {
	p, err := baseParams(cfg)
	if err != nil {
		return p, err
	}

	flags := cmd.Flags()
	if flags.Changed("material") {
		m, err := config.LookupMaterial(cfg, flagMaterial)
		if err != nil {
			return p, err
		}
		p.CostPerKg = m.CostPerKg
	}

	p.WeightG = flagWeight
	p.TimeHours = flagTime

	overrides := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"material-cost", flagMaterialCost, &p.CostPerKg},
		{"power", flagPower, &p.PowerW},
		{"rate", flagRate, &p.ElectricityRate},
		{"machine-rate", flagMachineRate, &p.MachineHourlyRate},
		{"margin", flagMargin, &p.MarginPercent},
		{"waste", flagWaste, &p.WastePercent},
		{"additional", flagAdditional, &p.AdditionalCosts},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.src
		}
	}
	return p, nil
}
