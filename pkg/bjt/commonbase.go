package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// CommonBase drives the emitter from Vee through Re. The DC currents use β,
// the AC gain uses α.
type CommonBase struct {
	Vcc   float64 // Collector supply (V), DC only
	Vee   float64 // Emitter supply (V)
	Rc    float64 // Collector resistor (ohm)
	Re    float64 // Emitter resistor (ohm)
	Beta  float64 // Current gain, DC only
	Alpha float64 // Common-base current gain, AC only
}

func (c *CommonBase) Family() device.Family { return device.BJT }

func (c *CommonBase) Topology() string { return "common-base" }

func (c *CommonBase) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "collector supply", &c.Vcc, device.UsedInDC),
		device.Supply("Vee", "emitter supply", &c.Vee, device.UsedInBoth),
		device.Resistor("Rc", "collector resistor", &c.Rc, device.UsedInBoth),
		device.Resistor("Re", "emitter resistor", &c.Re, device.UsedInBoth),
		device.Gain("beta", "current gain", &c.Beta, device.UsedInDC),
		device.Gain("alpha", "common-base current gain", &c.Alpha, device.UsedInAC),
	}
}

func (c *CommonBase) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, c.DC, c.AC)
}

func (c *CommonBase) emitterCurrent() float64 {
	return (c.Vee - consts.VBE) / c.Re
}

func (c *CommonBase) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(c), device.DC, c.Params()); err != nil {
		return nil, err
	}

	ie := c.emitterCurrent()
	ib := ie / (c.Beta + 1)
	ic := c.Beta * ib
	vcb := c.Vcc - ic*c.Rc
	return &DCResult{
		Ib:    ib,
		Ic:    ic,
		Ie:    ie,
		IcSat: device.NotApplicable,
		Vce:   c.Vee + c.Vcc - ie*(c.Rc+c.Re),
		Vc:    device.NotApplicable,
		Ve:    device.NotApplicable,
		Vb:    device.NotApplicable,
		Vbc:   -vcb,
	}, nil
}

func (c *CommonBase) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(c), device.AC, c.Params()); err != nil {
		return nil, err
	}

	rE, err := device.EmitterResistance(c.emitterCurrent())
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	zi, err := util.Parallel(c.Re, rE)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	return &ACResult{Re: rE, Zi: zi, Zo: c.Rc, Av: c.Alpha * c.Rc / rE, Phase: device.InPhase}, nil
}
