package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// CollectorDCFeedback splits the feedback path into Rf1 and Rf2 with the
// midpoint decoupled to ground, so only the AC model is defined.
type CollectorDCFeedback struct {
	Vcc  float64 // Supply voltage (V)
	Rf1  float64 // Feedback resistor on the base side (ohm)
	Rf2  float64 // Feedback resistor on the collector side (ohm)
	Rc   float64 // Collector resistor (ohm)
	Beta float64 // Current gain
	Ro   float64 // Output resistance (ohm)
}

func (c *CollectorDCFeedback) Family() device.Family { return device.BJT }

func (c *CollectorDCFeedback) Topology() string { return "collector-dc-feedback" }

func (c *CollectorDCFeedback) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "supply voltage", &c.Vcc, device.UsedInAC),
		device.Resistor("Rf1", "base-side feedback resistor", &c.Rf1, device.UsedInAC),
		device.Resistor("Rf2", "collector-side feedback resistor", &c.Rf2, device.UsedInAC),
		device.Resistor("Rc", "collector resistor", &c.Rc, device.UsedInAC),
		device.Gain("beta", "current gain", &c.Beta, device.UsedInAC),
		device.Resistor("ro", "output resistance", &c.Ro, device.UsedInAC),
	}
}

func (c *CollectorDCFeedback) Analyze(mode device.Mode) (device.Result, error) {
	if mode != device.AC {
		return nil, device.Unsupported(c, mode)
	}
	res, err := c.AC()
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *CollectorDCFeedback) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(c), device.AC, c.Params()); err != nil {
		return nil, err
	}

	ib := (c.Vcc - consts.VBE) / (c.Rf1 + c.Rf2 + c.Beta*c.Rc)
	_, ie := currents(ib, c.Beta)
	rE, err := device.EmitterResistance(ie)
	if err != nil {
		return nil, device.Wrap(c, err)
	}

	zi, err := util.Parallel(c.Rf1, c.Beta*rE)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	zo, err := util.ParallelN(c.Rc, c.Rf2, c.Ro)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	return &ACResult{Re: rE, Zi: zi, Zo: zo, Av: -zo / rE, Phase: device.OutOfPhase}, nil
}
