package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// EmitterBias is the fixed-bias network with an unbypassed emitter
// resistor Re.
type EmitterBias struct {
	Vcc  float64 // Supply voltage (V)
	Rb   float64 // Base resistor (ohm)
	Rc   float64 // Collector resistor (ohm)
	Re   float64 // Emitter resistor (ohm)
	Beta float64 // Current gain
	Ro   float64 // Output resistance (ohm), AC only
}

func (e *EmitterBias) Family() device.Family { return device.BJT }

func (e *EmitterBias) Topology() string { return "emitter-bias" }

func (e *EmitterBias) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "supply voltage", &e.Vcc, device.UsedInBoth),
		device.Resistor("Rb", "base resistor", &e.Rb, device.UsedInBoth),
		device.Resistor("Rc", "collector resistor", &e.Rc, device.UsedInBoth),
		device.Resistor("Re", "emitter resistor", &e.Re, device.UsedInBoth),
		device.Gain("beta", "current gain", &e.Beta, device.UsedInBoth),
		device.Resistor("ro", "output resistance", &e.Ro, device.UsedInAC),
	}
}

func (e *EmitterBias) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, e.DC, e.AC)
}

func (e *EmitterBias) baseCurrent() float64 {
	return (e.Vcc - consts.VBE) / (e.Rb + (e.Beta+1)*e.Re)
}

func (e *EmitterBias) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(e), device.DC, e.Params()); err != nil {
		return nil, err
	}
	return emitterBiasedDC(e.baseCurrent(), e.Beta, e.Vcc, e.Rc, e.Re), nil
}

func (e *EmitterBias) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(e), device.AC, e.Params()); err != nil {
		return nil, err
	}

	_, ie := currents(e.baseCurrent(), e.Beta)
	res, err := unbypassedAC(ie, e.Beta, e.Rb, e.Rc, e.Re, e.Ro)
	if err != nil {
		return nil, device.Wrap(e, err)
	}
	return res, nil
}
