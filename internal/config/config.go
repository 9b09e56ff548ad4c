// Package config handles print-calc configuration and material presets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/theirongolddev/print-calc/internal/calc"
	"github.com/theirongolddev/print-calc/internal/logging"
)

// Environment variables that override [defaults] values.
const (
	EnvElectricityRate = "PRINT_CALC_ELECTRICITY_RATE"
	EnvCostPerKg       = "PRINT_CALC_COST_PER_KG"
)

// Config holds all print-calc configuration.
type Config struct {
	Defaults   DefaultsConfig            `toml:"defaults"`
	Appearance AppearanceConfig          `toml:"appearance"`
	Logging    logging.Config            `toml:"logging"`
	Materials  map[string]MaterialConfig `toml:"materials,omitempty"`
}

// DefaultsConfig holds the rates used when a flag is not given.
type DefaultsConfig struct {
	CostPerKg         float64 `toml:"cost_per_kg"`
	PowerW            float64 `toml:"power_w"`
	ElectricityRate   float64 `toml:"electricity_rate"`
	MachineHourlyRate float64 `toml:"machine_hourly_rate"`
	MarginPercent     float64 `toml:"margin_percent"`
	WastePercent      float64 `toml:"waste_percent"`
	AdditionalCosts   float64 `toml:"additional_costs"`
	Material          string  `toml:"material,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// MaterialConfig overrides or adds a material preset.
type MaterialConfig struct {
	Name      string   `toml:"name,omitempty"`
	CostPerKg *float64 `toml:"cost_per_kg,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			CostPerKg:       calc.DefaultCostPerKg,
			PowerW:          calc.DefaultPowerW,
			ElectricityRate: calc.DefaultElectricityRate,
			WastePercent:    calc.DefaultWastePercent,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Params converts the configured defaults into calculator params.
// Weight and time are left at zero.
func (d DefaultsConfig) Params() calc.Params {
	return calc.Params{
		CostPerKg:         d.CostPerKg,
		PowerW:            d.PowerW,
		ElectricityRate:   d.ElectricityRate,
		MachineHourlyRate: d.MachineHourlyRate,
		AdditionalCosts:   d.AdditionalCosts,
		MarginPercent:     d.MarginPercent,
		WastePercent:      d.WastePercent,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "print-calc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "print-calc")
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func LoadFrom(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads the config file at path without environment overrides.
// Use it when the result is written back to disk.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Materials = lowerKeys(cfg.Materials)
	return cfg, nil
}

func lowerKeys(m map[string]MaterialConfig) map[string]MaterialConfig {
	if len(m) == 0 {
		return m
	}
	out := make(map[string]MaterialConfig, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *float64
	}{
		{EnvElectricityRate, &cfg.Defaults.ElectricityRate},
		{EnvCostPerKg, &cfg.Defaults.CostPerKg},
	}
	for _, o := range overrides {
		raw := os.Getenv(o.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logging.Warn("ignoring malformed environment override",
				zap.String("key", o.key), zap.String("value", raw))
			continue
		}
		*o.dst = v
	}
}

// SaveTo writes the config to path, creating its directory if needed.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
