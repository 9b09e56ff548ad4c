package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvElectricityRate, "")
	t.Setenv(EnvCostPerKg, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	want := DefaultConfig()
	if cfg.Defaults != want.Defaults {
		t.Fatalf("Defaults = %+v, want %+v", cfg.Defaults, want.Defaults)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvElectricityRate, "")
	t.Setenv(EnvCostPerKg, "")

	path := writeConfig(t, `
[defaults]
electricity_rate = 0.31
margin_percent = 25.0

[materials.PLA]
cost_per_kg = 17.5
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Defaults.ElectricityRate != 0.31 {
		t.Fatalf("ElectricityRate = %v, want 0.31", cfg.Defaults.ElectricityRate)
	}
	if cfg.Defaults.MarginPercent != 25 {
		t.Fatalf("MarginPercent = %v, want 25", cfg.Defaults.MarginPercent)
	}
	if cfg.Defaults.PowerW != 200 {
		t.Fatalf("PowerW = %v, want default 200", cfg.Defaults.PowerW)
	}
	if cfg.Defaults.WastePercent != 5 {
		t.Fatalf("WastePercent = %v, want default 5", cfg.Defaults.WastePercent)
	}
	if _, ok := cfg.Materials["pla"]; !ok {
		t.Fatalf("material keys not lowercased: %v", cfg.Materials)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[defaults\npower_w = ")

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom accepted malformed TOML")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "[defaults]\nelectricity_rate = 0.2\ncost_per_kg = 30.0\n")
	t.Setenv(EnvElectricityRate, "0.45")
	t.Setenv(EnvCostPerKg, "not-a-number")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Defaults.ElectricityRate != 0.45 {
		t.Fatalf("ElectricityRate = %v, want env value 0.45", cfg.Defaults.ElectricityRate)
	}
	if cfg.Defaults.CostPerKg != 30 {
		t.Fatalf("CostPerKg = %v, want file value 30 when env is malformed", cfg.Defaults.CostPerKg)
	}
}

func TestSaveTo_CreatesDirAndReloads(t *testing.T) {
	t.Setenv(EnvElectricityRate, "")
	t.Setenv(EnvCostPerKg, "")

	path := filepath.Join(t.TempDir(), "nested", "print-calc", "config.toml")
	cfg := DefaultConfig()
	cfg.Defaults.MachineHourlyRate = 0.75
	cfg.Defaults.Material = "petg"
	cfg.Appearance.Theme = "tokyo-night"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists = false after SaveTo")
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Defaults != cfg.Defaults {
		t.Fatalf("Defaults = %+v, want %+v", got.Defaults, cfg.Defaults)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
}

func TestConfigDir_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if got, want := ConfigPath(), filepath.Join(dir, "print-calc", "config.toml"); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestLoadFrom_UnreadablePath(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := LoadFrom(t.TempDir())
	if err == nil {
		t.Fatal("LoadFrom on a directory returned nil error")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected not-exist error: %v", err)
	}
}

func TestLoadFile_IgnoresEnvOverrides(t *testing.T) {
	path := writeConfig(t, "[defaults]\nelectricity_rate = 0.2\ncost_per_kg = 30.0\n")
	t.Setenv(EnvElectricityRate, "0.99")
	t.Setenv(EnvCostPerKg, "99")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Defaults.ElectricityRate != 0.2 || cfg.Defaults.CostPerKg != 30 {
		t.Fatalf("defaults = %+v, want file values 0.2 and 30", cfg.Defaults)
	}
}
