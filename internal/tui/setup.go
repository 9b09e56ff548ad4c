package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/print-calc/internal/config"
	"github.com/theirongolddev/print-calc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the raw form values of the setup wizard.
type SetupValues struct {
	CostPerKg         string
	PowerW            string
	ElectricityRate   string
	MachineHourlyRate string
	MarginPercent     string
	WastePercent      string
	Material          string
	Theme             string
}

// NewSetupValues prefills the form from cfg.
func NewSetupValues(cfg config.Config) SetupValues {
	d := cfg.Defaults
	return SetupValues{
		CostPerKg:         formatFloat(d.CostPerKg),
		PowerW:            formatFloat(d.PowerW),
		ElectricityRate:   formatFloat(d.ElectricityRate),
		MachineHourlyRate: formatFloat(d.MachineHourlyRate),
		MarginPercent:     formatFloat(d.MarginPercent),
		WastePercent:      formatFloat(d.WastePercent),
		Material:          d.Material,
		Theme:             cfg.Appearance.Theme,
	}
}

// NewSetupForm builds the first-run form bound to v.
func NewSetupForm(cfg config.Config, v *SetupValues) *huh.Form {
	materialOpts := []huh.Option[string]{huh.NewOption("None (use material cost)", "")}
	for _, m := range config.Materials(cfg) {
		label := fmt.Sprintf("%s  $%.2f/kg", m.Name, m.CostPerKg)
		materialOpts = append(materialOpts, huh.NewOption(label, m.Key))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to print-calc").
				Description("Set the default rates used when a flag is not given.\nPress Enter to continue."),
		),
		huh.NewGroup(
			numberInput("Material cost per kg", "Filament price, used when no preset is chosen", &v.CostPerKg),
			huh.NewSelect[string]().
				Title("Default material").
				Options(materialOpts...).
				Value(&v.Material),
			numberInput("Waste factor (%)", "Failed prints and purge waste added to material", &v.WastePercent),
		),
		huh.NewGroup(
			numberInput("Printer power (W)", "Average draw while printing", &v.PowerW),
			numberInput("Electricity rate (per kWh)", "", &v.ElectricityRate),
			numberInput("Machine hourly rate", "Depreciation and maintenance", &v.MachineHourlyRate),
			numberInput("Profit margin (%)", "", &v.MarginPercent),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	)
}

func numberInput(title, desc string, value *string) *huh.Input {
	in := huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateNonNegative)
	if desc != "" {
		in = in.Description(desc)
	}
	return in
}

// Apply parses v into cfg. cfg is left untouched on error.
func (v SetupValues) Apply(cfg *config.Config) error {
	d := cfg.Defaults
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"material cost", v.CostPerKg, &d.CostPerKg},
		{"printer power", v.PowerW, &d.PowerW},
		{"electricity rate", v.ElectricityRate, &d.ElectricityRate},
		{"machine rate", v.MachineHourlyRate, &d.MachineHourlyRate},
		{"margin", v.MarginPercent, &d.MarginPercent},
		{"waste factor", v.WastePercent, &d.WastePercent},
	}
	for _, f := range fields {
		n, err := parseNonNegative(f.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}
	d.Material = v.Material

	cfg.Defaults = d
	if theme.Known(v.Theme) {
		cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	}
	return nil
}

func validateNonNegative(s string) error {
	_, err := parseNonNegative(s)
	return err
}

// parseNonNegative parses a form number. Blank means zero.
func parseNonNegative(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("must be a finite number")
	}
	if v < 0 {
		return 0, errors.New("must be >= 0")
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
