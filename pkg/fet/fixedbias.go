package fet

import "github.com/CanGulmez/transistor-analyzes/pkg/device"

// FixedBias holds the gate at -Vgg through Rg with the source grounded.
type FixedBias struct {
	Device
	Vdd float64 // Drain supply (V), DC only
	Vgg float64 // Gate supply magnitude (V)
	Rg  float64 // Gate resistor (ohm), AC only
	Rd  float64 // Drain resistor (ohm)
	Ro  float64 // Drain output resistance rd (ohm), AC only
}

func (f *FixedBias) Family() device.Family { return device.FET }

func (f *FixedBias) Topology() string { return "fixed-bias" }

func (f *FixedBias) Params() []device.Param {
	return append([]device.Param{
		device.Supply("Vdd", "drain supply", &f.Vdd, device.UsedInDC),
		device.Supply("Vgg", "gate supply magnitude", &f.Vgg, device.UsedInBoth),
		device.Resistor("Rg", "gate resistor", &f.Rg, device.UsedInAC),
		device.Resistor("Rd", "drain resistor", &f.Rd, device.UsedInBoth),
		device.Resistor("rd", "output resistance", &f.Ro, device.UsedInAC),
	}, f.params(device.UsedInBoth)...)
}

func (f *FixedBias) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, f.DC, f.AC)
}

func (f *FixedBias) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(f), device.DC, f.Params()); err != nil {
		return nil, err
	}

	vgs := -f.Vgg
	id := device.ShockleyCurrent(f.Idss, f.Vp, vgs)
	vds := f.Vdd - id*f.Rd
	return &DCResult{Id: id, Vgs: vgs, Vds: vds, Vs: 0, Vd: vds, Vg: vgs}, nil
}

func (f *FixedBias) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(f), device.AC, f.Params()); err != nil {
		return nil, err
	}

	res, err := CommonSourceAC(f.gm(-f.Vgg), f.Rg, f.Rd, f.Ro)
	if err != nil {
		return nil, device.Wrap(f, err)
	}
	return res, nil
}
