package config

import (
	"errors"
	"testing"
)

func float(v float64) *float64 { return &v }

func TestLookupMaterial_BuiltIn(t *testing.T) {
	m, err := LookupMaterial(DefaultConfig(), "PETG")
	if err != nil {
		t.Fatalf("LookupMaterial: %v", err)
	}
	if m.Key != "petg" || m.CostPerKg != 22 {
		t.Fatalf("got %+v, want petg at 22.00", m)
	}
}

func TestLookupMaterial_VariantSuffix(t *testing.T) {
	cfg := DefaultConfig()
	for _, name := range []string{"PLA+", " pla-hf ", "Pla-Pro"} {
		m, err := LookupMaterial(cfg, name)
		if err != nil {
			t.Fatalf("LookupMaterial(%q): %v", name, err)
		}
		if m.Key != "pla" {
			t.Fatalf("LookupMaterial(%q).Key = %q, want pla", name, m.Key)
		}
	}
}

func TestLookupMaterial_OverrideAndCustom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = map[string]MaterialConfig{
		"pla":     {CostPerKg: float(17.5)},
		"pc":      {Name: "Polycarbonate", CostPerKg: float(55)},
		"mystery": {Name: "No price"},
	}

	pla, err := LookupMaterial(cfg, "pla")
	if err != nil {
		t.Fatalf("LookupMaterial(pla): %v", err)
	}
	if pla.CostPerKg != 17.5 || pla.Name != "PLA" {
		t.Fatalf("pla = %+v, want overridden price with built-in name", pla)
	}

	pc, err := LookupMaterial(cfg, "PC")
	if err != nil {
		t.Fatalf("LookupMaterial(PC): %v", err)
	}
	if pc.Name != "Polycarbonate" || pc.CostPerKg != 55 {
		t.Fatalf("pc = %+v", pc)
	}

	if _, err := LookupMaterial(cfg, "mystery"); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("custom material without price: err = %v, want ErrUnknownMaterial", err)
	}
}

func TestLookupMaterial_Unknown(t *testing.T) {
	_, err := LookupMaterial(DefaultConfig(), "unobtainium")
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("err = %v, want ErrUnknownMaterial", err)
	}
}

func TestMaterials_SortedWithOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = map[string]MaterialConfig{
		"abs":     {CostPerKg: float(19)},
		"pc":      {CostPerKg: float(55)},
		"noprice": {Name: "skipped"},
	}

	list := Materials(cfg)
	if len(list) != len(DefaultMaterials)+1 {
		t.Fatalf("len = %d, want %d", len(list), len(DefaultMaterials)+1)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Key >= list[i].Key {
			t.Fatalf("not sorted at %d: %q >= %q", i, list[i-1].Key, list[i].Key)
		}
	}
	if list[0].Key != "abs" || list[0].CostPerKg != 19 {
		t.Fatalf("first = %+v, want abs overridden to 19", list[0])
	}
}

func TestLookupMaterial_VariantEntryInheritsBasePrice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = map[string]MaterialConfig{
		"pla+":    {Name: "PLA+ (Brand X)"},
		"petg-hf": {CostPerKg: float(26)},
	}

	m, err := LookupMaterial(cfg, "PLA+")
	if err != nil {
		t.Fatalf("LookupMaterial(PLA+): %v", err)
	}
	if m.Key != "pla+" || m.Name != "PLA+ (Brand X)" || m.CostPerKg != 20 || m.NozzleTempC != 210 {
		t.Fatalf("pla+ = %+v, want custom name with built-in pla price", m)
	}

	hf, err := LookupMaterial(cfg, "petg-hf")
	if err != nil {
		t.Fatalf("LookupMaterial(petg-hf): %v", err)
	}
	if hf.Name != "PETG-HF" || hf.CostPerKg != 26 {
		t.Fatalf("petg-hf = %+v, want own price with derived name", hf)
	}

	found := false
	for _, mat := range Materials(cfg) {
		if mat.Key == "pla+" {
			found = true
		}
	}
	if !found {
		t.Fatal("Materials dropped the pla+ entry")
	}
}
