package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// MiscBias is the grounded-emitter stage biased through Rb from the
// collector node. Only the bias point is modelled.
type MiscBias struct {
	Vcc  float64 // Supply voltage (V)
	Rb   float64 // Base resistor (ohm)
	Rc   float64 // Collector resistor (ohm)
	Beta float64 // Current gain
}

func (m *MiscBias) Family() device.Family { return device.BJT }

func (m *MiscBias) Topology() string { return "miscellaneous-bias" }

func (m *MiscBias) Params() []device.Param {
	return []device.Param{
		device.Supply("Vcc", "supply voltage", &m.Vcc, device.UsedInDC),
		device.Resistor("Rb", "base resistor", &m.Rb, device.UsedInDC),
		device.Resistor("Rc", "collector resistor", &m.Rc, device.UsedInDC),
		device.Gain("beta", "current gain", &m.Beta, device.UsedInDC),
	}
}

func (m *MiscBias) Analyze(mode device.Mode) (device.Result, error) {
	if mode != device.DC {
		return nil, device.Unsupported(m, mode)
	}
	res, err := m.DC()
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (m *MiscBias) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(m), device.DC, m.Params()); err != nil {
		return nil, err
	}

	ib := (m.Vcc - consts.VBE) / (m.Rb + m.Beta*m.Rc)
	ic, ie := currents(ib, m.Beta)
	vce := m.Vcc - ie*m.Rc
	return &DCResult{
		Ib:    ib,
		Ic:    ic,
		Ie:    ie,
		IcSat: device.NotApplicable,
		Vce:   vce,
		Vc:    device.Known(vce),
		Ve:    device.Known(0),
		Vb:    device.Known(consts.VBE),
		Vbc:   consts.VBE - vce,
	}, nil
}
