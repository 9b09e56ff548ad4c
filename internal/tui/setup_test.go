package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/print-calc/internal/config"
)

func TestSetupValues_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.MarginPercent = 25

	v := NewSetupValues(cfg)
	if v.ElectricityRate != "0.12" || v.MarginPercent != "25" {
		t.Fatalf("prefill = %+v", v)
	}

	v.PowerW = "350"
	v.MachineHourlyRate = ""
	v.Material = "petg"
	v.Theme = "Tokyo-Night"

	if err := v.Apply(&cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Defaults.PowerW != 350 || cfg.Defaults.MachineHourlyRate != 0 {
		t.Fatalf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.Material != "petg" || cfg.Appearance.Theme != "tokyo-night" {
		t.Fatalf("material/theme = %q/%q", cfg.Defaults.Material, cfg.Appearance.Theme)
	}
}

func TestSetupValues_ApplyRejectsInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	v := NewSetupValues(cfg)
	v.ElectricityRate = "-0.1"

	err := v.Apply(&cfg)
	if err == nil || !strings.Contains(err.Error(), "electricity rate") {
		t.Fatalf("err = %v, want electricity rate error", err)
	}
	if cfg.Defaults != config.DefaultConfig().Defaults {
		t.Fatal("config modified despite error")
	}
}

func TestValidateNonNegative(t *testing.T) {
	for _, ok := range []string{"", "0", " 12.5 ", "1e3"} {
		if err := validateNonNegative(ok); err != nil {
			t.Errorf("validateNonNegative(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"abc", "-1", "NaN", "Inf"} {
		if err := validateNonNegative(bad); err == nil {
			t.Errorf("validateNonNegative(%q) = nil", bad)
		}
	}
}

func TestNewSetupForm_Builds(t *testing.T) {
	cfg := config.DefaultConfig()
	v := NewSetupValues(cfg)
	if NewSetupForm(cfg, &v) == nil {
		t.Fatal("NewSetupForm returned nil")
	}
}
