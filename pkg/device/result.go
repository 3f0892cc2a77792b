package device

import "strings"

// Value is a computed quantity that may not apply to a topology, such as
// the saturation current of an emitter-follower.
type Value struct {
	v  float64
	ok bool
}

// NotApplicable marks a field the topology does not define.
var NotApplicable = Value{}

func Known(v float64) Value { return Value{v: v, ok: true} }

func (v Value) Get() (float64, bool) { return v.v, v.ok }

func (v Value) Valid() bool { return v.ok }

// Or returns the value, or def when it does not apply.
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

type Quantity struct {
	Name  string
	Unit  string
	Value Value
}

// Result is a DC or AC result record.
type Result interface {
	Mode() Mode
	Quantities() []Quantity
}

// PhaseResult is implemented by AC results.
type PhaseResult interface {
	Result
	PhaseRelation() Phase
}

// Find returns the quantity of res named name, compared case-insensitively.
func Find(res Result, name string) (Quantity, bool) {
	for _, q := range res.Quantities() {
		if strings.EqualFold(q.Name, name) {
			return q, true
		}
	}
	return Quantity{}, false
}

// Lookup finds the value of a quantity of res by case-insensitive name.
func Lookup(res Result, name string) (Value, bool) {
	q, ok := Find(res, name)
	if !ok {
		return NotApplicable, false
	}
	return q.Value, true
}
