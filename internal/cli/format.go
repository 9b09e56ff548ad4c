// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCost formats a USD amount rounded to cents.
// e.g., 2.1 -> "$2.10", 1234.5 -> "$1,234.50"
func FormatCost(cost float64) string {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return "n/a"
	}
	d := decimal.NewFromFloat(cost).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, FormatNumber(whole.IntPart()), cents)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatWeight formats grams, switching to kilograms from 1000g.
// e.g., 45 -> "45g", 12.5 -> "12.5g", 1250 -> "1.25kg"
func FormatWeight(grams float64) string {
	if grams >= 1000 {
		return trimFloat(grams/1000, 2) + "kg"
	}
	return trimFloat(grams, 1) + "g"
}

// FormatHours formats a duration given in hours.
// e.g., 2 -> "2h", 1.5 -> "1h 30m", 0.75 -> "45m"
func FormatHours(hours float64) string {
	mins := int64(math.Round(hours * 60))
	if mins <= 0 {
		return "0m"
	}

	h := mins / 60
	m := mins % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatWatts formats a power draw.
// e.g., 200 -> "200W", 150.5 -> "150.5W"
func FormatWatts(w float64) string {
	return trimFloat(w, 1) + "W"
}

// FormatPercent formats a percentage value (not a ratio).
// e.g., 30 -> "30%", 12.5 -> "12.5%"
func FormatPercent(pct float64) string {
	return trimFloat(pct, 2) + "%"
}

// FormatRate formats a per-unit price with enough precision for
// sub-cent electricity rates. e.g., 0.12 -> "$0.12", 0.145 -> "$0.145"
func FormatRate(rate float64, unit string) string {
	s := trimFloat(rate, 4)
	if !strings.Contains(s, ".") {
		s += ".00"
	} else if len(s)-strings.Index(s, ".") == 2 {
		s += "0"
	}
	return "$" + s + "/" + unit
}

// trimFloat formats f with at most prec decimals and no trailing zeros.
func trimFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
