package device

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnsupportedMode  = errors.New("unsupported mode")
	ErrInvalidEquation  = errors.New("invalid equation")
	ErrDivideByZero     = errors.New("divide by zero")
)

// Analyzer computes the bias point or the small-signal model of one
// transistor bias topology.
type Analyzer interface {
	Family() Family
	Topology() string
	Params() []Param
	Analyze(mode Mode) (Result, error)
}

// Flagged is implemented by topologies that have on/off variants.
type Flagged interface {
	Flags() []Flag
}

// NodalSolver is implemented by topologies whose DC network can be solved
// as a linear circuit.
type NodalSolver interface {
	Nodal() (Result, error)
}

type Mode int

const (
	DC Mode = iota
	AC
)

func (m Mode) String() string {
	switch m {
	case DC:
		return "dc"
	case AC:
		return "ac"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dc":
		return DC, nil
	case "ac":
		return AC, nil
	}
	return 0, fmt.Errorf("%w: analysis mode %q (want dc or ac)", ErrUnsupportedMode, s)
}

type Family int

const (
	BJT     Family = iota
	FET            // JFET and depletion-type MOSFET share the square-law model
	EMOSFET        // Enhancement-type MOSFET
)

func (f Family) String() string {
	switch f {
	case BJT:
		return "bjt"
	case FET:
		return "fet"
	case EMOSFET:
		return "emosfet"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Families lists the device families in menu order.
func Families() []Family {
	return []Family{BJT, FET, EMOSFET}
}

type Phase int

const (
	InPhase Phase = iota
	OutOfPhase
)

func (p Phase) String() string {
	if p == OutOfPhase {
		return "out-of-phase"
	}
	return "in-phase"
}

// Dispatch runs dc or ac according to mode and converts the typed result to
// a Result. A failed call never yields a non-nil Result.
func Dispatch[D, A Result](mode Mode, dc func() (D, error), ac func() (A, error)) (Result, error) {
	switch mode {
	case DC:
		res, err := dc()
		if err != nil {
			return nil, err
		}
		return res, nil
	case AC:
		res, err := ac()
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
}

// Unsupported is the error returned by a topology that does not model mode.
func Unsupported(a Analyzer, mode Mode) error {
	return fmt.Errorf("%s: %w: no %v analysis for this configuration", Label(a), ErrUnsupportedMode, mode)
}

// Label names an analyzer as "family topology" for error messages.
func Label(a Analyzer) string {
	return a.Family().String() + " " + a.Topology()
}

// Wrap prefixes err with the analyzer label.
func Wrap(a Analyzer, err error) error {
	return fmt.Errorf("%s: %w", Label(a), err)
}
