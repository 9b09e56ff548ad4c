// Package model defines domain types for print cost calculations.
package model

// CostBreakdown is the result of a single print cost calculation.
// Inputs are echoed back so reports can be rendered from the record alone.
type CostBreakdown struct {
	WeightG           float64 `json:"weight_g" yaml:"weight_g"`
	TimeHours         float64 `json:"time_hours" yaml:"time_hours"`
	CostPerKg         float64 `json:"cost_per_kg" yaml:"cost_per_kg"`
	PowerW            float64 `json:"power_w" yaml:"power_w"`
	ElectricityRate   float64 `json:"electricity_rate" yaml:"electricity_rate"`
	MachineHourlyRate float64 `json:"machine_hourly_rate" yaml:"machine_hourly_rate"`
	MarginPercent     float64 `json:"margin_percent" yaml:"margin_percent"`
	WastePercent      float64 `json:"waste_percent" yaml:"waste_percent"`

	MaterialCost    float64 `json:"material_cost" yaml:"material_cost"`
	EnergyCost      float64 `json:"energy_cost" yaml:"energy_cost"`
	MachineCost     float64 `json:"machine_cost" yaml:"machine_cost"`
	AdditionalCosts float64 `json:"additional_costs" yaml:"additional_costs"`
	Subtotal        float64 `json:"subtotal" yaml:"subtotal"`
	MarginAmount    float64 `json:"margin_amount" yaml:"margin_amount"`
	Total           float64 `json:"total" yaml:"total"`
}

// HasMargin reports whether a profit margin was applied.
func (b CostBreakdown) HasMargin() bool {
	return b.MarginPercent > 0
}

// EnergyKWh returns the electricity consumed by the print.
func (b CostBreakdown) EnergyKWh() float64 {
	return b.PowerW / 1000 * b.TimeHours
}
