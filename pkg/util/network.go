package util

import (
	"fmt"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// Parallel is the resistance of r1 and r2 in parallel.
func Parallel(r1, r2 float64) (float64, error) {
	return ParallelN(r1, r2)
}

// ParallelN is the resistance of all rs in parallel.
func ParallelN(rs ...float64) (float64, error) {
	g := 0.0
	for _, r := range rs {
		if r == 0 {
			return 0, fmt.Errorf("parallel combination of a zero resistance: %w", device.ErrDivideByZero)
		}
		g += 1.0 / r
	}
	if g == 0 {
		return 0, fmt.Errorf("parallel combination has zero conductance: %w", device.ErrDivideByZero)
	}
	return 1.0 / g, nil
}

// TheveninResistance of a divider r1 (upper) over r2 (lower).
func TheveninResistance(r1, r2 float64) (float64, error) {
	return Parallel(r1, r2)
}

// TheveninVoltage of supply v across a divider r1 (upper) over r2 (lower).
func TheveninVoltage(v, r1, r2 float64) (float64, error) {
	if r1+r2 == 0 {
		return 0, fmt.Errorf("divider resistance sums to zero: %w", device.ErrDivideByZero)
	}
	return v * r2 / (r1 + r2), nil
}
