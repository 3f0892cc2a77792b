package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// FixedBias: Rb from Vcc to the base, Rc from Vcc to the collector and the
// emitter grounded.
type FixedBias struct {
	Vcc  float64 // Supply voltage (V)
	Rb   float64 // Base resistor (ohm)
	Rc   float64 // Collector resistor (ohm)
	Beta float64 // Current gain
	Ro   float64 // Output resistance (ohm), AC only
}

func (f *FixedBias) Family() device.Family { return device.BJT }

func (f *FixedBias) Topology() string { return "fixed-bias" }

func (f *FixedBias) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "supply voltage", &f.Vcc, device.UsedInBoth),
		device.Resistor("Rb", "base resistor", &f.Rb, device.UsedInBoth),
		device.Resistor("Rc", "collector resistor", &f.Rc, device.UsedInBoth),
		device.Gain("beta", "current gain", &f.Beta, device.UsedInBoth),
		device.Resistor("ro", "output resistance", &f.Ro, device.UsedInAC),
	}
}

func (f *FixedBias) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, f.DC, f.AC)
}

func (f *FixedBias) baseCurrent() float64 {
	return (f.Vcc - consts.VBE) / f.Rb
}

func (f *FixedBias) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(f), device.DC, f.Params()); err != nil {
		return nil, err
	}

	ib := f.baseCurrent()
	ic, ie := currents(ib, f.Beta)
	vce := f.Vcc - ic*f.Rc
	vc := vce
	vb := consts.VBE

	return &DCResult{
		Ib:    ib,
		Ic:    ic,
		Ie:    ie,
		IcSat: device.Known(f.Vcc / f.Rc),
		Vce:   vce,
		Vc:    device.Known(vc),
		Ve:    device.Known(0),
		Vb:    device.Known(vb),
		Vbc:   vb - vc,
	}, nil
}

func (f *FixedBias) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(f), device.AC, f.Params()); err != nil {
		return nil, err
	}

	_, ie := currents(f.baseCurrent(), f.Beta)
	res, err := bypassedAC(ie, f.Beta, f.Rb, f.Rc, f.Ro)
	if err != nil {
		return nil, device.Wrap(f, err)
	}
	return res, nil
}
