package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatMagnitude formats a unitless value such as a voltage gain.
func FormatMagnitude(value float64) string {
	absValue := math.Abs(value)
	if absValue >= 1000 || (absValue < 0.001 && value != 0) {
		return fmt.Sprintf("%.3e", value) // "-1.204e+03" or "5.430e-05"
	}
	return fmt.Sprintf("%.3f", value) // "-7.325"
}

// FormatQuantity formats v with unit, or "n/a" when the quantity does not apply.
func FormatQuantity(v float64, ok bool, unit string) string {
	if !ok {
		return "n/a"
	}
	if unit == "" {
		return FormatMagnitude(v)
	}
	return FormatValueFactor(v, unit)
}
