package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/print-calc/internal/calc"

	tea "github.com/charmbracelet/bubbletea"
)

func typeKeys(a App, s string) App {
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m.(App)
}

func press(a App, k tea.KeyType) App {
	m, _ := a.Update(tea.KeyMsg{Type: k})
	return m.(App)
}

func defaultsWithPrice() calc.Params {
	p := calc.DefaultParams()
	p.CostPerKg = 20
	return p
}

func TestApp_LiveRecompute(t *testing.T) {
	a := NewApp(defaultsWithPrice())

	a = typeKeys(a, "100")
	a = press(a, tea.KeyTab)
	a = typeKeys(a, "2")

	b, err := a.Breakdown()
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if math.Abs(b.MaterialCost-2.10) > 1e-9 {
		t.Fatalf("MaterialCost = %v, want 2.10", b.MaterialCost)
	}
	if math.Abs(b.EnergyCost-0.048) > 1e-9 {
		t.Fatalf("EnergyCost = %v, want 0.048", b.EnergyCost)
	}
}

func TestApp_FocusWraps(t *testing.T) {
	a := NewApp(defaultsWithPrice())

	a = press(a, tea.KeyShiftTab)
	if a.focus != fieldWaste {
		t.Fatalf("focus = %d, want last field %d", a.focus, fieldWaste)
	}
	a = press(a, tea.KeyTab)
	if a.focus != fieldWeight {
		t.Fatalf("focus = %d, want first field", a.focus)
	}
}

func TestApp_InvalidInputShowsError(t *testing.T) {
	a := NewApp(defaultsWithPrice())
	a = typeKeys(a, "50")
	good, _ := a.Breakdown()

	a = typeKeys(a, "x")
	b, err := a.Breakdown()
	if err == nil {
		t.Fatal("expected an error for non-numeric weight")
	}
	if b != good {
		t.Fatal("breakdown changed on invalid input")
	}
	if !strings.Contains(a.View(), "not a number") {
		t.Fatalf("view does not show the error:\n%s", a.View())
	}
}

func TestApp_PrefillsFromParams(t *testing.T) {
	p := defaultsWithPrice()
	p.MarginPercent = 30
	a := NewApp(p)

	got, err := a.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if got != p {
		t.Fatalf("Params = %+v, want %+v", got, p)
	}
	if v := a.fields[fieldWeight].input.Value(); v != "" {
		t.Fatalf("zero weight prefilled as %q, want blank", v)
	}
}

func TestApp_ViewShowsTotals(t *testing.T) {
	a := NewApp(defaultsWithPrice())
	m, _ := a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	a = m.(App)
	a = typeKeys(a, "100")

	view := a.View()
	for _, want := range []string{"Filament weight", "Subtotal", "Total Cost"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_EscQuits(t *testing.T) {
	_, cmd := NewApp(defaultsWithPrice()).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc did not quit")
	}
}
