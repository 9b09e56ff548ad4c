package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMaterial is returned when a material preset cannot be resolved.
var ErrUnknownMaterial = errors.New("unknown material")

// Material is a filament preset.
type Material struct {
	Key         string
	Name        string
	CostPerKg   float64
	NozzleTempC int // typical nozzle temperature, informational
}

// DefaultMaterials maps preset keys to built-in filament prices.
var DefaultMaterials = map[string]Material{
	"pla":   {Key: "pla", Name: "PLA", CostPerKg: 20.00, NozzleTempC: 210},
	"petg":  {Key: "petg", Name: "PETG", CostPerKg: 22.00, NozzleTempC: 240},
	"abs":   {Key: "abs", Name: "ABS", CostPerKg: 21.00, NozzleTempC: 250},
	"asa":   {Key: "asa", Name: "ASA", CostPerKg: 28.00, NozzleTempC: 260},
	"tpu":   {Key: "tpu", Name: "TPU 95A", CostPerKg: 35.00, NozzleTempC: 225},
	"nylon": {Key: "nylon", Name: "Nylon (PA12)", CostPerKg: 45.00, NozzleTempC: 270},
}

// variantSuffixes are stripped when an exact key is not known.
// e.g., "PLA+" -> "pla", "petg-hf" -> "petg"
var variantSuffixes = []string{"+", "-hf", "-pro"}

// NormalizeMaterialName lowercases a material name and strips variant
// suffixes that do not have a preset of their own.
func NormalizeMaterialName(cfg Config, raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if hasMaterial(cfg, name) {
		return name
	}
	for _, suffix := range variantSuffixes {
		if base := strings.TrimSuffix(name, suffix); base != name && hasMaterial(cfg, base) {
			return base
		}
	}
	return name
}

func hasMaterial(cfg Config, key string) bool {
	if _, ok := cfg.Materials[key]; ok {
		return true
	}
	_, ok := DefaultMaterials[key]
	return ok
}

// variantBase returns the built-in preset a variant key derives from,
// e.g. "pla+" -> pla.
func variantBase(key string) (Material, bool) {
	for _, suffix := range variantSuffixes {
		if base := strings.TrimSuffix(key, suffix); base != key {
			if m, ok := DefaultMaterials[base]; ok {
				return m, true
			}
		}
	}
	return Material{}, false
}

// LookupMaterial resolves a preset by name. Config entries override
// built-in presets field by field and may add new materials. A config
// entry for a variant such as "pla+" inherits the base preset's price
// and nozzle temperature unless it sets its own.
func LookupMaterial(cfg Config, name string) (Material, error) {
	key := NormalizeMaterialName(cfg, name)

	m, builtin := DefaultMaterials[key]
	override, custom := cfg.Materials[key]
	if !builtin && !custom {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	if !builtin {
		if base, ok := variantBase(key); ok {
			m, builtin = base, true
			m.Name = ""
		}
	}

	m.Key = key
	if custom {
		if override.Name != "" {
			m.Name = override.Name
		}
		if override.CostPerKg != nil {
			m.CostPerKg = *override.CostPerKg
		}
	}
	if m.Name == "" {
		m.Name = strings.ToUpper(key)
	}
	if !builtin && override.CostPerKg == nil {
		return Material{}, fmt.Errorf("%w: %q has no cost_per_kg", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Materials returns every known preset sorted by key, overrides applied.
// Custom entries without a price are skipped.
func Materials(cfg Config) []Material {
	keys := make(map[string]struct{}, len(DefaultMaterials)+len(cfg.Materials))
	for k := range DefaultMaterials {
		keys[k] = struct{}{}
	}
	for k := range cfg.Materials {
		keys[strings.ToLower(k)] = struct{}{}
	}

	out := make([]Material, 0, len(keys))
	for k := range keys {
		m, err := LookupMaterial(cfg, k)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
