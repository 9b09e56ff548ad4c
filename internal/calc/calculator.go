// Package calc computes the cost of a 3D print from filament, time and rate inputs.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/print-calc/internal/model"
)

// Built-in defaults for the optional inputs.
const (
	DefaultCostPerKg       = 20.0
	DefaultPowerW          = 200.0
	DefaultElectricityRate = 0.12
	DefaultWastePercent    = 5.0
)

// ErrInvalidInput is returned when an input is negative or not a finite number.
var ErrInvalidInput = errors.New("invalid input")

// Params holds the inputs of a cost calculation.
type Params struct {
	WeightG           float64 // filament used, grams
	TimeHours         float64 // print duration
	CostPerKg         float64 // filament price
	PowerW            float64 // average printer draw, watts
	ElectricityRate   float64 // price per kWh
	MachineHourlyRate float64 // depreciation/maintenance per hour
	AdditionalCosts   float64 // flat extras (supports, post-processing, packaging)
	MarginPercent     float64
	WastePercent      float64 // failed prints and purge overhead on material
}

// DefaultParams returns Params with every optional input at its default.
// Weight, time and material price are left at zero.
func DefaultParams() Params {
	return Params{
		PowerW:          DefaultPowerW,
		ElectricityRate: DefaultElectricityRate,
		WastePercent:    DefaultWastePercent,
	}
}

// Validate checks that every input is a finite, non-negative number.
// All offending fields are reported.
func Validate(p Params) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"weight_g", p.WeightG},
		{"time_hours", p.TimeHours},
		{"cost_per_kg", p.CostPerKg},
		{"power_w", p.PowerW},
		{"electricity_rate", p.ElectricityRate},
		{"machine_hourly_rate", p.MachineHourlyRate},
		{"additional_costs", p.AdditionalCosts},
		{"margin_percent", p.MarginPercent},
		{"waste_factor", p.WastePercent},
	}

	var errs []error
	for _, f := range fields {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			errs = append(errs, fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name))
		case f.value < 0:
			errs = append(errs, fmt.Errorf("%w: %s must be >= 0 (got %g)", ErrInvalidInput, f.name, f.value))
		}
	}
	return errors.Join(errs...)
}

// Calculate produces the cost breakdown for p.
func Calculate(p Params) (model.CostBreakdown, error) {
	if err := Validate(p); err != nil {
		return model.CostBreakdown{}, err
	}

	materialCost := (p.WeightG / 1000) * p.CostPerKg * (1 + p.WastePercent/100)
	energyCost := (p.PowerW / 1000) * p.TimeHours * p.ElectricityRate
	machineCost := p.TimeHours * p.MachineHourlyRate

	subtotal := materialCost + energyCost + machineCost + p.AdditionalCosts
	marginAmount := subtotal * (p.MarginPercent / 100)

	return model.CostBreakdown{
		WeightG:           p.WeightG,
		TimeHours:         p.TimeHours,
		CostPerKg:         p.CostPerKg,
		PowerW:            p.PowerW,
		ElectricityRate:   p.ElectricityRate,
		MachineHourlyRate: p.MachineHourlyRate,
		MarginPercent:     p.MarginPercent,
		WastePercent:      p.WastePercent,

		MaterialCost:    materialCost,
		EnergyCost:      energyCost,
		MachineCost:     machineCost,
		AdditionalCosts: p.AdditionalCosts,
		Subtotal:        subtotal,
		MarginAmount:    marginAmount,
		Total:           subtotal + marginAmount,
	}, nil
}
