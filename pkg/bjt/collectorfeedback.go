package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// CollectorFeedback returns the collector voltage to the base through Rf.
// The AC model ignores Re, so the two modes use different base currents.
type CollectorFeedback struct {
	Vcc  float64 // Supply voltage (V)
	Rf   float64 // Feedback resistor (ohm)
	Rc   float64 // Collector resistor (ohm)
	Re   float64 // Emitter resistor (ohm), DC only
	Beta float64 // Current gain
	Ro   float64 // Output resistance (ohm), AC only
}

func (c *CollectorFeedback) Family() device.Family { return device.BJT }

func (c *CollectorFeedback) Topology() string { return "collector-feedback" }

func (c *CollectorFeedback) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "supply voltage", &c.Vcc, device.UsedInBoth),
		device.Resistor("Rf", "feedback resistor", &c.Rf, device.UsedInBoth),
		device.Resistor("Rc", "collector resistor", &c.Rc, device.UsedInBoth),
		device.Resistor("Re", "emitter resistor", &c.Re, device.UsedInDC),
		device.Gain("beta", "current gain", &c.Beta, device.UsedInBoth),
		device.Resistor("ro", "output resistance", &c.Ro, device.UsedInAC),
	}
}

func (c *CollectorFeedback) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, c.DC, c.AC)
}

func (c *CollectorFeedback) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(c), device.DC, c.Params()); err != nil {
		return nil, err
	}
	ib := (c.Vcc - consts.VBE) / (c.Rf + c.Beta*(c.Rc+c.Re))
	return emitterBiasedDC(ib, c.Beta, c.Vcc, c.Rc, c.Re), nil
}

func (c *CollectorFeedback) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(c), device.AC, c.Params()); err != nil {
		return nil, err
	}

	ib := (c.Vcc - consts.VBE) / (c.Rf + c.Beta*c.Rc)
	_, ie := currents(ib, c.Beta)
	rE, err := device.EmitterResistance(ie)
	if err != nil {
		return nil, device.Wrap(c, err)
	}

	rL, err := util.Parallel(c.Rc, c.Ro)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	zi := (1 + rL/c.Rf) / (1/(c.Beta*rE) + 1/c.Rf + rL/(c.Beta*rE*c.Rf) + rL/(c.Rf*rE))
	zo, err := util.ParallelN(c.Ro, c.Rc, c.Rf)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	av := -(c.Rf / (rL + c.Rf)) * (rL / rE)

	return &ACResult{Re: rE, Zi: zi, Zo: zo, Av: av, Phase: device.OutOfPhase}, nil
}
