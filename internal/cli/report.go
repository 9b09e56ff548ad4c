package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/print-calc/internal/model"

	"gopkg.in/yaml.v3"
)

// Format selects how a breakdown is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// BreakdownRows builds the report rows for a breakdown. Machine and
// additional costs are only listed when non-zero; the margin rows only
// when a margin was applied. The last row is always the total.
func BreakdownRows(b model.CostBreakdown) [][]string {
	material := "Material Cost"
	if b.WastePercent > 0 {
		material = fmt.Sprintf("Material Cost (+%s waste)", FormatPercent(b.WastePercent))
	}

	rows := [][]string{
		{"Filament Weight", FormatWeight(b.WeightG)},
		{"Print Time", FormatHours(b.TimeHours)},
		{""},
		{material, FormatCost(b.MaterialCost)},
		{"Energy Cost", FormatCost(b.EnergyCost)},
	}
	if b.MachineCost > 0 {
		rows = append(rows, []string{"Machine Cost", FormatCost(b.MachineCost)})
	}
	if b.AdditionalCosts > 0 {
		rows = append(rows, []string{"Additional Costs", FormatCost(b.AdditionalCosts)})
	}
	rows = append(rows,
		[]string{Separator},
		[]string{"Subtotal", FormatCost(b.Subtotal)},
	)

	if b.HasMargin() {
		rows = append(rows,
			[]string{fmt.Sprintf("Margin (%s)", FormatPercent(b.MarginPercent)), FormatCost(b.MarginAmount)},
			[]string{Separator},
			[]string{"Total Price", FormatCost(b.Total)},
		)
	} else {
		rows = append(rows, []string{"Total Cost", FormatCost(b.Total)})
	}
	return rows
}

// RenderBreakdown renders the titled cost table for a breakdown.
func RenderBreakdown(b model.CostBreakdown) string {
	rows := BreakdownRows(b)
	return RenderTitle("COST BREAKDOWN") + "\n" + RenderTable(Table{
		Rows:      rows,
		Highlight: map[int]bool{len(rows) - 1: true},
	})
}

// Encode writes b to w in the requested format.
func Encode(w io.Writer, b model.CostBreakdown, format Format) error {
	switch format {
	case FormatTable, "":
		_, err := fmt.Fprintf(w, "\n%s\n", RenderBreakdown(b))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(b)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
