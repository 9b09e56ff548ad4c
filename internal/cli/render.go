package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/print-calc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Separator is a row value that renders as a horizontal rule.
const Separator = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title     string
	Headers   []string
	Rows      [][]string
	Widths    []int        // optional column widths, auto-calculated if nil
	Highlight map[int]bool // row indexes rendered bold in the accent color
}

type styles struct {
	title, header, value, highlight, dim lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:     lipgloss.NewStyle().Foreground(t.TextPrimary),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(t.Green),
		dim:       lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	st := currentStyles()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(40).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(st.title.Render(title))
}

// RenderTable renders a bordered table with optional headers.
// The first column is left-aligned, the rest are right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	st := currentStyles()

	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols && !isSeparator(row) {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			if isSeparator(row) {
				continue
			}
			for i, cell := range row {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return st.dim.Render(b.String()) + "\n"
	}

	line := func(cells []string, style func(col int) lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(i).Render(pad(cell, widths[i], i > 0)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, func(int) lipgloss.Style { return st.header }))
		b.WriteString(rule("├", "┼", "┤"))
	}

	for i, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		style := st.value
		if t.Highlight[i] {
			style = st.highlight
		}
		b.WriteString(line(row, func(int) lipgloss.Style { return style }))
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == Separator
}

// pad surrounds cell with one space each side, filling to width.
func pad(cell string, width int, right bool) string {
	gap := width - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if right {
		return fmt.Sprintf(" %s%s ", strings.Repeat(" ", gap), cell)
	}
	return fmt.Sprintf(" %s%s ", cell, strings.Repeat(" ", gap))
}
