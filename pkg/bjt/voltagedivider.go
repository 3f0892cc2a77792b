package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// VoltageDivider biases the base from the Rb1/Rb2 divider. Bypassed selects
// the AC model with the emitter resistor shorted by a bypass capacitor.
type VoltageDivider struct {
	Vcc      float64 // Supply voltage (V)
	Rb1      float64 // Upper divider resistor (ohm)
	Rb2      float64 // Lower divider resistor (ohm)
	Rc       float64 // Collector resistor (ohm)
	Re       float64 // Emitter resistor (ohm)
	Beta     float64 // Current gain
	Ro       float64 // Output resistance (ohm), AC only
	Bypassed bool
}

func (v *VoltageDivider) Family() device.Family { return device.BJT }

func (v *VoltageDivider) Topology() string { return "voltage-divider" }

func (v *VoltageDivider) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "supply voltage", &v.Vcc, device.UsedInBoth),
		device.Resistor("Rb1", "upper divider resistor", &v.Rb1, device.UsedInBoth),
		device.Resistor("Rb2", "lower divider resistor", &v.Rb2, device.UsedInBoth),
		device.Resistor("Rc", "collector resistor", &v.Rc, device.UsedInBoth),
		device.Resistor("Re", "emitter resistor", &v.Re, device.UsedInBoth),
		device.Gain("beta", "current gain", &v.Beta, device.UsedInBoth),
		device.Resistor("ro", "output resistance", &v.Ro, device.UsedInAC),
	}
}

func (v *VoltageDivider) Flags() []device.Flag {
	return []device.Flag{
		{Name: "bypassed", Desc: "emitter resistor shorted for AC", Ref: &v.Bypassed, On: true},
		{Name: "unbypassed", Desc: "emitter resistor in the AC path (default)", Ref: &v.Bypassed, On: false},
	}
}

func (v *VoltageDivider) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, v.DC, v.AC)
}

// thevenin returns the divider equivalent and the resulting base current.
func (v *VoltageDivider) thevenin() (rth, ib float64, err error) {
	rth, err = util.TheveninResistance(v.Rb1, v.Rb2)
	if err != nil {
		return 0, 0, err
	}
	eth, err := util.TheveninVoltage(v.Vcc, v.Rb1, v.Rb2)
	if err != nil {
		return 0, 0, err
	}
	return rth, (eth - consts.VBE) / (rth + (v.Beta+1)*v.Re), nil
}

func (v *VoltageDivider) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(v), device.DC, v.Params()); err != nil {
		return nil, err
	}
	_, ib, err := v.thevenin()
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	return emitterBiasedDC(ib, v.Beta, v.Vcc, v.Rc, v.Re), nil
}

func (v *VoltageDivider) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(v), device.AC, v.Params()); err != nil {
		return nil, err
	}
	rth, ib, err := v.thevenin()
	if err != nil {
		return nil, device.Wrap(v, err)
	}

	_, ie := currents(ib, v.Beta)
	var res *ACResult
	if v.Bypassed {
		res, err = bypassedAC(ie, v.Beta, rth, v.Rc, v.Ro)
	} else {
		res, err = unbypassedAC(ie, v.Beta, rth, v.Rc, v.Re, v.Ro)
	}
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	return res, nil
}
