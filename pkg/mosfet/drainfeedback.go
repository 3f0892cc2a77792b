package mosfet

import (
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// DrainFeedback ties the gate to the drain through Rg, so Vgs = Vds.
type DrainFeedback struct {
	Device
	Vdd float64 // Drain supply (V)
	Rg  float64 // Feedback resistor (ohm), AC only
	Rd  float64 // Drain resistor (ohm)
	Ro  float64 // Drain output resistance rd (ohm), AC only
}

func (d *DrainFeedback) Family() device.Family { return device.EMOSFET }

func (d *DrainFeedback) Topology() string { return "drain-feedback" }

func (d *DrainFeedback) Params() []device.Param {
	return append([]device.Param{
		device.Supply("Vdd", "drain supply", &d.Vdd, device.UsedInBoth),
		device.Resistor("Rg", "feedback resistor", &d.Rg, device.UsedInAC),
		device.Resistor("Rd", "drain resistor", &d.Rd, device.UsedInBoth),
		device.Resistor("rd", "output resistance", &d.Ro, device.UsedInAC),
	}, d.params()...)
}

func (d *DrainFeedback) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, d.DC, d.AC)
}

func (d *DrainFeedback) bias() (k, id, vgs float64, err error) {
	k, err = d.k()
	if err != nil {
		return 0, 0, 0, err
	}
	vov := d.VgsTh - d.Vdd
	id, err = util.SelectRoot(d.Rd*d.Rd*k, 2*k*d.Rd*vov-1, k*vov*vov)
	if err != nil {
		return 0, 0, 0, err
	}
	return k, id, d.Vdd - id*d.Rd, nil
}

func (d *DrainFeedback) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(d), device.DC, d.Params()); err != nil {
		return nil, err
	}

	k, id, vgs, err := d.bias()
	if err != nil {
		return nil, device.Wrap(d, err)
	}
	return &DCResult{K: k, Id: id, Vgs: vgs, Vds: vgs, Vs: 0, Vd: vgs, Vg: vgs}, nil
}

func (d *DrainFeedback) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(d), device.AC, d.Params()); err != nil {
		return nil, err
	}

	k, _, vgs, err := d.bias()
	if err != nil {
		return nil, device.Wrap(d, err)
	}
	gm := device.EnhancementGm(k, vgs, d.VgsTh)

	rl, err := util.Parallel(d.Ro, d.Rd)
	if err != nil {
		return nil, device.Wrap(d, err)
	}
	zo, err := util.Parallel(d.Rg, rl)
	if err != nil {
		return nil, device.Wrap(d, err)
	}
	zi := (d.Rg + rl) / (1 + gm*rl)
	return &ACResult{Gm: gm, Zi: zi, Zo: zo, Av: -gm * zo, Phase: device.OutOfPhase}, nil
}
