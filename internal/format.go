package internal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Display formatting for strategy figures. Null inputs render as empty
// strings so missing data never shows as a fake zero.

// FormatPercent renders a decimal fraction as a percentage with two
// decimals, e.g. 0.0234 -> "2.34%".
func FormatPercent(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatDecimal(v) + "%"
}

// FormatDecimal renders a decimal fraction scaled to percent without the
// sign, e.g. 0.0234 -> "2.34". Rounding is half-up to match the published
// tables.
func FormatDecimal(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).Mul(decimal.NewFromInt(100)).Round(2).StringFixed(2)
}

// FormatCurrency renders a whole-dollar amount with comma separators,
// e.g. 25000 -> "$25,000".
func FormatCurrency(v *float64) string {
	if v == nil {
		return ""
	}
	whole := decimal.NewFromFloat(*v).Round(0).IntPart()

	negative := whole < 0
	if negative {
		whole = -whole
	}
	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// FormatMinimumShort renders an account minimum in card form with one
// decimal: $25.0K, $1.5M, $0.0 for zero.
func FormatMinimumShort(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return fmt.Sprintf("$%.1f", v)
	}
}
