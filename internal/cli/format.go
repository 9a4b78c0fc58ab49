package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with a dollar sign and two decimals.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatSigned renders an amount prefixed with + or - for list output.
func FormatSigned(amount decimal.Decimal, income bool) string {
	if income {
		return "+" + FormatCurrency(amount)
	}
	return "-" + FormatCurrency(amount)
}

// RenderBar renders a textual progress bar for a percentage in [0, 100].
func RenderBar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))

	bar := InfoStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %5.1f%%", bar, pct)
}
