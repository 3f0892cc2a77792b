package mosfet

import (
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/fet"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// VoltageDivider sets the gate from the Rg1/Rg2 divider with a source
// resistor Rs.
type VoltageDivider struct {
	Device
	Vdd float64 // Drain supply (V)
	Rg1 float64 // Upper divider resistor (ohm)
	Rg2 float64 // Lower divider resistor (ohm)
	Rd  float64 // Drain resistor (ohm)
	Rs  float64 // Source resistor (ohm)
	Ro  float64 // Drain output resistance rd (ohm), AC only
}

func (v *VoltageDivider) Family() device.Family { return device.EMOSFET }

func (v *VoltageDivider) Topology() string { return "voltage-divider" }

func (v *VoltageDivider) Params() []device.Param {
	return append([]device.Param{
		device.Supply("Vdd", "drain supply", &v.Vdd, device.UsedInBoth),
		device.Resistor("Rg1", "upper divider resistor", &v.Rg1, device.UsedInBoth),
		device.Resistor("Rg2", "lower divider resistor", &v.Rg2, device.UsedInBoth),
		device.Resistor("Rd", "drain resistor", &v.Rd, device.UsedInBoth),
		device.Resistor("Rs", "source resistor", &v.Rs, device.UsedInBoth),
		device.Resistor("rd", "output resistance", &v.Ro, device.UsedInAC),
	}, v.params()...)
}

func (v *VoltageDivider) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, v.DC, v.AC)
}

func (v *VoltageDivider) bias() (k, vg, id, vgs float64, err error) {
	k, err = v.k()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	vg, err = util.TheveninVoltage(v.Vdd, v.Rg1, v.Rg2)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	vov := vg - v.VgsTh
	id, err = util.SelectRoot(v.Rs*v.Rs*k, -2*k*v.Rs*vov-1, k*vov*vov)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return k, vg, id, vg - id*v.Rs, nil
}

func (v *VoltageDivider) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(v), device.DC, v.Params()); err != nil {
		return nil, err
	}

	k, vg, id, vgs, err := v.bias()
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	return &DCResult{
		K:   k,
		Id:  id,
		Vgs: vgs,
		Vds: v.Vdd - id*(v.Rs+v.Rd),
		Vs:  id * v.Rs,
		Vd:  v.Vdd - id*v.Rd,
		Vg:  vg,
	}, nil
}

func (v *VoltageDivider) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(v), device.AC, v.Params()); err != nil {
		return nil, err
	}

	k, _, _, vgs, err := v.bias()
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	zi, err := util.Parallel(v.Rg1, v.Rg2)
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	res, err := fet.CommonSourceAC(device.EnhancementGm(k, vgs, v.VgsTh), zi, v.Rd, v.Ro)
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	return res, nil
}
