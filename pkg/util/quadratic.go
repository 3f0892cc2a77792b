package util

import (
	"fmt"
	"math"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// SelectRoot solves a·Id² + b·Id + c = 0 for the physical drain current.
//
// With one non-negative root that root is returned. With two, the smaller
// one is the stable operating point. With two negative roots the magnitude
// of the root nearest to zero is returned.
func SelectRoot(a, b, c float64) (float64, error) {
	if a == 0 {
		return 0, fmt.Errorf("leading coefficient is zero: %w", device.ErrInvalidEquation)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 || math.IsNaN(discriminant) {
		return 0, fmt.Errorf("no real drain current (discriminant %g): %w", discriminant, device.ErrInvalidEquation)
	}

	sq := math.Sqrt(discriminant)
	root1 := (-b + sq) / (2 * a)
	root2 := (-b - sq) / (2 * a)

	switch {
	case root1 >= 0 && root2 < 0:
		return root1, nil
	case root2 >= 0 && root1 < 0:
		return root2, nil
	case root1 >= 0 && root2 >= 0:
		return math.Min(root1, root2), nil
	}
	return math.Min(math.Abs(root1), math.Abs(root2)), nil
}
