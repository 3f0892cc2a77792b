package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// EmitterFollower is the common-collector stage. The DC bias is computed
// from the emitter supply Vee and the AC model from the collector supply Vcc.
type EmitterFollower struct {
	Vcc  float64 // Collector supply (V), AC only
	Vee  float64 // Emitter supply (V), DC only
	Rb   float64 // Base resistor (ohm)
	Re   float64 // Emitter resistor (ohm)
	Beta float64 // Current gain
	Ro   float64 // Output resistance (ohm), AC only
}

func (e *EmitterFollower) Family() device.Family { return device.BJT }

func (e *EmitterFollower) Topology() string { return "emitter-follower" }

func (e *EmitterFollower) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "collector supply", &e.Vcc, device.UsedInAC),
		device.Supply("Vee", "emitter supply", &e.Vee, device.UsedInDC),
		device.Resistor("Rb", "base resistor", &e.Rb, device.UsedInBoth),
		device.Resistor("Re", "emitter resistor", &e.Re, device.UsedInBoth),
		device.Gain("beta", "current gain", &e.Beta, device.UsedInBoth),
		device.Resistor("ro", "output resistance", &e.Ro, device.UsedInAC),
	}
}

func (e *EmitterFollower) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, e.DC, e.AC)
}

func (e *EmitterFollower) baseCurrent(supply float64) float64 {
	return (supply - consts.VBE) / (e.Rb + (e.Beta+1)*e.Re)
}

func (e *EmitterFollower) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(e), device.DC, e.Params()); err != nil {
		return nil, err
	}

	ib := e.baseCurrent(e.Vee)
	ic, ie := currents(ib, e.Beta)
	vce := e.Vee - ie*e.Re
	ve := ie*e.Re + e.Vee
	vc := vce + ve
	vb := consts.VBE + ve
	return &DCResult{
		Ib:    ib,
		Ic:    ic,
		Ie:    ie,
		IcSat: device.NotApplicable,
		Vce:   vce,
		Vc:    device.Known(vc),
		Ve:    device.Known(ve),
		Vb:    device.Known(vb),
		Vbc:   vb - vc,
	}, nil
}

func (e *EmitterFollower) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(e), device.AC, e.Params()); err != nil {
		return nil, err
	}

	_, ie := currents(e.baseCurrent(e.Vcc), e.Beta)
	rE, err := device.EmitterResistance(ie)
	if err != nil {
		return nil, device.Wrap(e, err)
	}

	zb := e.Beta*rE + (e.Beta+1)*e.Re/(1+e.Re/e.Ro)
	zi, err := util.Parallel(e.Rb, zb)
	if err != nil {
		return nil, device.Wrap(e, err)
	}
	zo, err := util.ParallelN(e.Ro, e.Re, e.Beta*rE/(e.Beta+1))
	if err != nil {
		return nil, device.Wrap(e, err)
	}
	av := ((e.Beta + 1) * e.Re / zb) / (1 + e.Re/e.Ro)

	return &ACResult{Re: rE, Zi: zi, Zo: zo, Av: av, Phase: device.InPhase}, nil
}
