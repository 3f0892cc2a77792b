package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/nodal"
)

// The nodal models replace the transistor by a VBE source from base to
// emitter and a β·Ib source from collector to emitter, and solve the bias
// network as a linear circuit.

// newStage starts a network with the supply and the transistor between the
// base, collector and emitter nodes. An emitter on ground is named "0".
func newStage(vcc, beta float64, emitter string) *nodal.Network {
	net := nodal.New()
	net.AddVoltageSource("Vcc", "vcc", "0", vcc)
	net.AddVoltageSource("Vbe", "b", emitter, consts.VBE)
	net.AddCCCS("Fc", "c", emitter, "Vbe", beta)
	return net
}

func solveStage(net *nodal.Network, beta float64, icSat device.Value) (*DCResult, error) {
	sol, err := net.Solve()
	if err != nil {
		return nil, err
	}

	ib := sol.I("Vbe")
	ic := beta * ib
	vb, vc, ve := sol.V("b"), sol.V("c"), sol.V("e")
	return &DCResult{
		Ib:    ib,
		Ic:    ic,
		Ie:    ib + ic,
		IcSat: icSat,
		Vce:   vc - ve,
		Vc:    device.Known(vc),
		Ve:    device.Known(ve),
		Vb:    device.Known(vb),
		Vbc:   vb - vc,
	}, nil
}

func (f *FixedBias) Nodal() (device.Result, error) {
	if err := device.Validate(device.Label(f), device.DC, f.Params()); err != nil {
		return nil, err
	}

	net := newStage(f.Vcc, f.Beta, "0")
	net.AddResistor("Rb", "vcc", "b", f.Rb)
	net.AddResistor("Rc", "vcc", "c", f.Rc)

	res, err := solveStage(net, f.Beta, device.Known(f.Vcc/f.Rc))
	if err != nil {
		return nil, device.Wrap(f, err)
	}
	return res, nil
}

func (e *EmitterBias) Nodal() (device.Result, error) {
	if err := device.Validate(device.Label(e), device.DC, e.Params()); err != nil {
		return nil, err
	}

	net := newStage(e.Vcc, e.Beta, "e")
	net.AddResistor("Rb", "vcc", "b", e.Rb)
	net.AddResistor("Rc", "vcc", "c", e.Rc)
	net.AddResistor("Re", "e", "0", e.Re)

	res, err := solveStage(net, e.Beta, device.Known(e.Vcc/(e.Rc+e.Re)))
	if err != nil {
		return nil, device.Wrap(e, err)
	}
	return res, nil
}

func (v *VoltageDivider) Nodal() (device.Result, error) {
	if err := device.Validate(device.Label(v), device.DC, v.Params()); err != nil {
		return nil, err
	}

	net := newStage(v.Vcc, v.Beta, "e")
	net.AddResistor("Rb1", "vcc", "b", v.Rb1)
	net.AddResistor("Rb2", "b", "0", v.Rb2)
	net.AddResistor("Rc", "vcc", "c", v.Rc)
	net.AddResistor("Re", "e", "0", v.Re)

	res, err := solveStage(net, v.Beta, device.Known(v.Vcc/(v.Rc+v.Re)))
	if err != nil {
		return nil, device.Wrap(v, err)
	}
	return res, nil
}

func (c *CollectorFeedback) Nodal() (device.Result, error) {
	if err := device.Validate(device.Label(c), device.DC, c.Params()); err != nil {
		return nil, err
	}

	net := newStage(c.Vcc, c.Beta, "e")
	net.AddResistor("Rf", "c", "b", c.Rf)
	net.AddResistor("Rc", "vcc", "c", c.Rc)
	net.AddResistor("Re", "e", "0", c.Re)

	res, err := solveStage(net, c.Beta, device.Known(c.Vcc/(c.Rc+c.Re)))
	if err != nil {
		return nil, device.Wrap(c, err)
	}
	return res, nil
}

func (m *MiscBias) Nodal() (device.Result, error) {
	if err := device.Validate(device.Label(m), device.DC, m.Params()); err != nil {
		return nil, err
	}

	net := newStage(m.Vcc, m.Beta, "0")
	net.AddResistor("Rb", "c", "b", m.Rb)
	net.AddResistor("Rc", "vcc", "c", m.Rc)

	res, err := solveStage(net, m.Beta, device.NotApplicable)
	if err != nil {
		return nil, device.Wrap(m, err)
	}
	return res, nil
}
