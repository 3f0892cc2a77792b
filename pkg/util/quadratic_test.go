package util

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

func TestSelectRoot(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{"one non-negative root", 1, -1, -6, 3},       // roots 3, -2
		{"two non-negative roots", 1, -7, 10, 2},      // roots 5, 2
		{"two negative roots", 1, 7, 10, 2},           // roots -2, -5
		{"double root", 1, -2, 1, 1},                  // root 1
		{"zero root", 1, -4, 0, 0},                    // roots 4, 0
		{"negative leading coefficient", -1, 1, 6, 3}, // roots -2, 3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRoot(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("SelectRoot(%g, %g, %g) failed: %v", tt.a, tt.b, tt.c, err)
			}
			if !scalar.EqualWithinAbsOrRel(got, tt.want, 1e-12, 1e-12) {
				t.Errorf("SelectRoot(%g, %g, %g) = %g, want %g", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestSelectRootNegativeRootsMagnitude(t *testing.T) {
	// Roots -0.4 and -0.6 differ only below one: the nearest to zero wins.
	got, err := SelectRoot(1, 1, 0.24)
	if err != nil {
		t.Fatalf("SelectRoot failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(got, 0.4, 1e-12, 1e-12) {
		t.Errorf("Expected 0.4, got %g", got)
	}
}

func TestSelectRootInvalid(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"negative discriminant", 1, 0, 1},
		{"not quadratic", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectRoot(tt.a, tt.b, tt.c)
			if !errors.Is(err, device.ErrInvalidEquation) {
				t.Errorf("Expected ErrInvalidEquation, got %v", err)
			}
		})
	}
}

func TestSelectRootIsDeterministic(t *testing.T) {
	first, err := SelectRoot(222.22, -3.6667, 0.008)
	if err != nil {
		t.Fatalf("SelectRoot failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, _ := SelectRoot(222.22, -3.6667, 0.008)
		if got != first {
			t.Fatalf("Call %d returned %g, first call returned %g", i, got, first)
		}
	}
}
