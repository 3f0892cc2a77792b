package device

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Modes is the set of analysis modes that read a parameter.
type Modes uint8

const (
	UsedInDC Modes = 1 << iota
	UsedInAC

	UsedInBoth = UsedInDC | UsedInAC
)

func (ms Modes) Has(m Mode) bool {
	switch m {
	case DC:
		return ms&UsedInDC != 0
	case AC:
		return ms&UsedInAC != 0
	}
	return false
}

// Rule is the domain constraint of a parameter.
type Rule int

const (
	AnyValue Rule = iota
	Positive
	NonZero
)

type Param struct {
	Name string
	Unit string
	Desc string
	Ref  *float64
	Uses Modes
	Rule Rule
}

// Flag is a named variant switch. Naming the flag stores On into Ref.
type Flag struct {
	Name string
	Desc string
	Ref  *bool
	On   bool
}

// Validate checks the parameters read by mode against their rules.
func Validate(topology string, mode Mode, params []Param) error {
	for _, p := range params {
		if !p.Uses.Has(mode) {
			continue
		}
		v := *p.Ref
		switch p.Rule {
		case Positive:
			if !(v > 0) {
				return fmt.Errorf("%s: %s must be positive (got %g): %w", topology, p.Name, v, ErrInvalidParameter)
			}
		case NonZero:
			if v == 0 || math.IsNaN(v) {
				return fmt.Errorf("%s: %s must be non-zero (got %g): %w", topology, p.Name, v, ErrInvalidParameter)
			}
		}
	}
	return nil
}

// FindParam resolves name against params. An exact match wins; otherwise a
// case-insensitive match is accepted when it is unique, so "vcc" finds Vcc
// while "RD" is rejected when both Rd and rd exist.
func FindParam(params []Param, name string) (*Param, error) {
	for i := range params {
		if params[i].Name == name {
			return &params[i], nil
		}
	}

	var found *Param
	for i := range params {
		if strings.EqualFold(params[i].Name, name) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous parameter %q (%s or %s): %w", name, found.Name, params[i].Name, ErrInvalidParameter)
			}
			found = &params[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("unknown parameter %q: %w", name, ErrInvalidParameter)
	}
	return found, nil
}

// SetParameters stores values into the fields described by params. Two
// names resolving to the same parameter, such as "Vcc" and "vcc", are
// rejected.
func SetParameters(params []Param, values map[string]float64) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	given := make(map[string]string, len(names))
	for _, name := range names {
		p, err := FindParam(params, name)
		if err != nil {
			return err
		}
		if prev, dup := given[p.Name]; dup {
			return fmt.Errorf("%s given twice (as %q and %q): %w", p.Name, prev, name, ErrInvalidParameter)
		}
		given[p.Name] = name
		*p.Ref = values[name]
	}
	return nil
}

// SetFlags applies the named flags.
func SetFlags(flags []Flag, names []string) error {
	for _, name := range names {
		matched := false
		for _, f := range flags {
			if strings.EqualFold(f.Name, name) {
				*f.Ref = f.On
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("unknown option %q: %w", name, ErrInvalidParameter)
		}
	}
	return nil
}

// Resistor describes a strictly positive resistance parameter.
func Resistor(name, desc string, ref *float64, uses Modes) Param {
	return Param{Name: name, Unit: "ohm", Desc: desc, Ref: ref, Uses: uses, Rule: Positive}
}

// Supply describes a voltage parameter of any sign.
func Supply(name, desc string, ref *float64, uses Modes) Param {
	return Param{Name: name, Unit: "V", Desc: desc, Ref: ref, Uses: uses, Rule: AnyValue}
}

// Gain describes a strictly positive unitless factor such as β.
func Gain(name, desc string, ref *float64, uses Modes) Param {
	return Param{Name: name, Desc: desc, Ref: ref, Uses: uses, Rule: Positive}
}
