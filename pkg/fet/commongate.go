package fet

import (
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// CommonGate grounds the gate and drives the source from Vss through Rs.
type CommonGate struct {
	Device
	Vdd float64 // Drain supply (V), DC only
	Vss float64 // Source supply (V)
	Rd  float64 // Drain resistor (ohm)
	Rs  float64 // Source resistor (ohm)
	Ro  float64 // Drain output resistance rd (ohm), AC only
}

func (c *CommonGate) Family() device.Family { return device.FET }

func (c *CommonGate) Topology() string { return "common-gate" }

func (c *CommonGate) Params() []device.Param {
	return append([]device.Param{
		device.Supply("Vdd", "drain supply", &c.Vdd, device.UsedInDC),
		device.Supply("Vss", "source supply", &c.Vss, device.UsedInBoth),
		device.Resistor("Rd", "drain resistor", &c.Rd, device.UsedInBoth),
		device.Resistor("Rs", "source resistor", &c.Rs, device.UsedInBoth),
		device.Resistor("rd", "output resistance", &c.Ro, device.UsedInAC),
	}, c.params(device.UsedInBoth)...)
}

func (c *CommonGate) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, c.DC, c.AC)
}

func (c *CommonGate) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(c), device.DC, c.Params()); err != nil {
		return nil, err
	}

	id, err := c.biasCurrent(c.Vss, c.Rs)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	return &DCResult{
		Id:  id,
		Vgs: c.Vss - id*c.Rs,
		Vds: c.Vdd + c.Vss - id*(c.Rs+c.Rd),
		Vs:  -c.Vss + id*c.Rs,
		Vd:  c.Vdd - id*c.Rd,
		Vg:  0,
	}, nil
}

func (c *CommonGate) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(c), device.AC, c.Params()); err != nil {
		return nil, err
	}

	id, err := c.biasCurrent(c.Vss, c.Rs)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	gm := c.gm(c.Vss - id*c.Rs)

	zi, err := util.Parallel(c.Rs, (c.Ro+c.Rd)/(1+gm*c.Ro))
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	zo, err := util.Parallel(c.Rd, c.Ro)
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	av := (gm*c.Rd + c.Rd/c.Ro) / (1 + c.Rd/c.Ro)
	return &ACResult{Gm: gm, Zi: zi, Zo: zo, Av: av, Phase: device.InPhase}, nil
}
