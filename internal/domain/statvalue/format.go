package statvalue

import (
	"fmt"
	"math"
)

// ZeroPercent is the rendering of a ratio with an empty denominator.
const ZeroPercent = "0.0%"

// Ratio returns num/den, or 0 when den is not positive.
func Ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Percent renders num/den as a one-decimal percentage string clamped to [0, 100].
func Percent(num, den int) string {
	if den <= 0 {
		return ZeroPercent
	}
	return PercentOf(Ratio(num, den) * 100)
}

// PercentOf renders an already computed percentage value.
func PercentOf(value float64) string {
	if math.IsNaN(value) || value <= 0 {
		return ZeroPercent
	}
	if value > 100 {
		value = 100
	}
	return fmt.Sprintf("%.1f%%", value)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Per90 normalizes a season total to a 90 minute rate.
func Per90(value float64, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return Round2(value * 90 / float64(minutes))
}

// Fraction renders "num/den".
func Fraction(num, den int) string {
	return fmt.Sprintf("%d/%d", num, den)
}

// Decimal2 renders a value with exactly two decimals.
func Decimal2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
