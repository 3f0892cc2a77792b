package util

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

func TestParallel(t *testing.T) {
	tests := []struct {
		name string
		rs   []float64
		want float64
	}{
		{"two resistors", []float64{3e3, 6e3}, 2e3},
		{"equal pair", []float64{10e3, 10e3}, 5e3},
		{"three resistors", []float64{3, 3, 3}, 1},
		{"single resistor", []float64{47}, 47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParallelN(tt.rs...)
			if err != nil {
				t.Fatalf("ParallelN(%v) failed: %v", tt.rs, err)
			}
			if !scalar.EqualWithinAbsOrRel(got, tt.want, 1e-9, 1e-12) {
				t.Errorf("ParallelN(%v) = %g, want %g", tt.rs, got, tt.want)
			}
		})
	}

	got, err := Parallel(3e3, 6e3)
	if err != nil || !scalar.EqualWithinAbsOrRel(got, 2e3, 1e-9, 1e-12) {
		t.Errorf("Parallel(3k, 6k) = %g, %v", got, err)
	}
}

func TestParallelIsSymmetric(t *testing.T) {
	pairs := [][2]float64{{3e3, 6e3}, {470e3, 1}, {2.2e3, 50e3}, {1e-3, 1e9}}
	for _, p := range pairs {
		a, errA := Parallel(p[0], p[1])
		b, errB := Parallel(p[1], p[0])
		if errA != nil || errB != nil {
			t.Fatalf("Parallel(%g, %g) failed: %v, %v", p[0], p[1], errA, errB)
		}
		if a != b {
			t.Errorf("Parallel(%g, %g) = %g but Parallel(%g, %g) = %g", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestParallelDivideByZero(t *testing.T) {
	if _, err := Parallel(0, 5); !errors.Is(err, device.ErrDivideByZero) {
		t.Errorf("Expected ErrDivideByZero for a zero resistance, got %v", err)
	}
	if _, err := Parallel(1, -1); !errors.Is(err, device.ErrDivideByZero) {
		t.Errorf("Expected ErrDivideByZero for zero total conductance, got %v", err)
	}
	if _, err := ParallelN(); !errors.Is(err, device.ErrDivideByZero) {
		t.Errorf("Expected ErrDivideByZero for no resistors, got %v", err)
	}
}

func TestThevenin(t *testing.T) {
	rth, err := TheveninResistance(56e3, 8.2e3)
	if err != nil {
		t.Fatalf("TheveninResistance failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(rth, 56e3*8.2e3/64.2e3, 1e-9, 1e-12) {
		t.Errorf("Rth = %g", rth)
	}

	eth, err := TheveninVoltage(22, 56e3, 8.2e3)
	if err != nil {
		t.Fatalf("TheveninVoltage failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(eth, 22*8.2/64.2, 1e-12, 1e-12) {
		t.Errorf("Eth = %g", eth)
	}

	if _, err := TheveninVoltage(10, 1e3, -1e3); !errors.Is(err, device.ErrDivideByZero) {
		t.Errorf("Expected ErrDivideByZero, got %v", err)
	}
}
