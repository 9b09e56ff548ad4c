// Package tui provides the interactive Bubble Tea calculator for print-calc.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/print-calc/internal/calc"
	"github.com/theirongolddev/print-calc/internal/cli"
	"github.com/theirongolddev/print-calc/internal/model"
	"github.com/theirongolddev/print-calc/internal/tui/components"
	"github.com/theirongolddev/print-calc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldWeight = iota
	fieldTime
	fieldCostPerKg
	fieldPower
	fieldRate
	fieldMachineRate
	fieldAdditional
	fieldMargin
	fieldWaste
	fieldCount // sentinel
)

const (
	labelWidth    = 20
	inputWidth    = 12
	minCardsWidth = 48
)

type field struct {
	label string
	unit  string
	input textinput.Model
}

// App is the root Bubble Tea model of the interactive calculator.
type App struct {
	fields []field
	focus  int

	breakdown model.CostBreakdown
	err       error

	width  int
	height int
}

// NewApp creates a calculator prefilled with p. Zero weight and time are
// left blank so the placeholder shows.
func NewApp(p calc.Params) App {
	specs := []struct {
		label, unit string
		value       float64
		blankZero   bool
	}{
		fieldWeight:      {"Filament weight", "g", p.WeightG, true},
		fieldTime:        {"Print time", "h", p.TimeHours, true},
		fieldCostPerKg:   {"Material cost", "$/kg", p.CostPerKg, false},
		fieldPower:       {"Printer power", "W", p.PowerW, false},
		fieldRate:        {"Electricity rate", "$/kWh", p.ElectricityRate, false},
		fieldMachineRate: {"Machine rate", "$/h", p.MachineHourlyRate, false},
		fieldAdditional:  {"Additional costs", "$", p.AdditionalCosts, false},
		fieldMargin:      {"Margin", "%", p.MarginPercent, false},
		fieldWaste:       {"Waste factor", "%", p.WastePercent, false},
	}

	a := App{fields: make([]field, fieldCount)}
	for i, s := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 16
		ti.Width = inputWidth
		if !(s.blankZero && s.value == 0) {
			ti.SetValue(strconv.FormatFloat(s.value, 'f', -1, 64))
		}
		a.fields[i] = field{label: s.label, unit: s.unit, input: ti}
	}
	a.fields[fieldWeight].input.Focus()
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Params parses the current field values. Blank fields count as zero.
func (a App) Params() (calc.Params, error) {
	values := make([]float64, fieldCount)
	for i, f := range a.fields {
		raw := strings.TrimSpace(f.input.Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return calc.Params{}, fmt.Errorf("%s: %q is not a number", strings.ToLower(f.label), raw)
		}
		values[i] = v
	}

	return calc.Params{
		WeightG:           values[fieldWeight],
		TimeHours:         values[fieldTime],
		CostPerKg:         values[fieldCostPerKg],
		PowerW:            values[fieldPower],
		ElectricityRate:   values[fieldRate],
		MachineHourlyRate: values[fieldMachineRate],
		AdditionalCosts:   values[fieldAdditional],
		MarginPercent:     values[fieldMargin],
		WastePercent:      values[fieldWaste],
	}, nil
}

// Breakdown returns the last successful calculation and the current
// validation error, if any.
func (a App) Breakdown() (model.CostBreakdown, error) {
	return a.breakdown, a.err
}

func (a *App) recompute() {
	p, err := a.Params()
	if err == nil {
		var b model.CostBreakdown
		b, err = calc.Calculate(p)
		if err == nil {
			a.breakdown = b
		}
	}
	a.err = err
}

func (a *App) setFocus(i int) tea.Cmd {
	a.fields[a.focus].input.Blur()
	a.focus = (i + fieldCount) % fieldCount
	return a.fields[a.focus].input.Focus()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down", "enter":
			return a, a.setFocus(a.focus + 1)
		case "shift+tab", "up":
			return a, a.setFocus(a.focus - 1)
		}
	}

	var cmd tea.Cmd
	a.fields[a.focus].input, cmd = a.fields[a.focus].input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		a.recompute()
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	left := a.viewInputs()
	right := a.viewResult()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  3D PRINT COST CALCULATOR"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("  tab/↓ next  shift+tab/↑ previous  esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) viewInputs() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(labelWidth)
	focusStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Width(labelWidth)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, f := range a.fields {
		marker, style := "  ", labelStyle
		if i == a.focus {
			marker, style = "▸ ", focusStyle
		}
		b.WriteString(marker)
		b.WriteString(style.Render(f.label))
		b.WriteString(lipgloss.NewStyle().Width(inputWidth + 1).Render(f.input.View()))
		b.WriteString(unitStyle.Render(f.unit))
		if i < len(a.fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) viewResult() string {
	t := theme.Active

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return errStyle.Render(a.err.Error())
	}

	b := a.breakdown
	margin := components.Metric{Label: "Margin", Value: cli.FormatCost(b.MarginAmount)}
	if b.HasMargin() {
		margin.Note = cli.FormatPercent(b.MarginPercent)
	}
	cards := components.MetricRow([]components.Metric{
		{Label: "Subtotal", Value: cli.FormatCost(b.Subtotal)},
		margin,
		{Label: "Total", Value: cli.FormatCost(b.Total)},
	}, a.cardsWidth())

	return cards + "\n" + cli.RenderTable(cli.Table{Rows: cli.BreakdownRows(b)})
}

func (a App) cardsWidth() int {
	w := a.width - labelWidth - inputWidth - 16
	if w < minCardsWidth {
		w = minCardsWidth
	}
	return w
}
