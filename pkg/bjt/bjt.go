// Package bjt implements the DC bias and re-model AC analysis of NPN BJT
// amplifier configurations.
package bjt

import (
	"github.com/CanGulmez/transistor-analyzes/internal/consts"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// DCResult is the operating point of a BJT configuration.
type DCResult struct {
	Ib    float64      // Base current (A)
	Ic    float64      // Collector current (A)
	Ie    float64      // Emitter current (A)
	IcSat device.Value // Collector saturation current (A)
	Vce   float64      // Collector-emitter voltage (V)
	Vc    device.Value // Collector voltage (V)
	Ve    device.Value // Emitter voltage (V)
	Vb    device.Value // Base voltage (V)
	Vbc   float64      // Base-collector voltage (V)
}

func (r *DCResult) Mode() device.Mode { return device.DC }

func (r *DCResult) Quantities() []device.Quantity {
	return []device.Quantity{
		{Name: "Ib", Unit: "A", Value: device.Known(r.Ib)},
		{Name: "Ic", Unit: "A", Value: device.Known(r.Ic)},
		{Name: "Ie", Unit: "A", Value: device.Known(r.Ie)},
		{Name: "IcSat", Unit: "A", Value: r.IcSat},
		{Name: "Vce", Unit: "V", Value: device.Known(r.Vce)},
		{Name: "Vc", Unit: "V", Value: r.Vc},
		{Name: "Ve", Unit: "V", Value: r.Ve},
		{Name: "Vb", Unit: "V", Value: r.Vb},
		{Name: "Vbc", Unit: "V", Value: device.Known(r.Vbc)},
	}
}

// ACResult is the re-model small-signal result of a BJT configuration.
type ACResult struct {
	Re    float64 // re = VT/Ie (ohm)
	Zi    float64 // Input impedance (ohm)
	Zo    float64 // Output impedance (ohm)
	Av    float64 // Voltage gain, negative when inverting
	Phase device.Phase
}

func (r *ACResult) Mode() device.Mode { return device.AC }

func (r *ACResult) PhaseRelation() device.Phase { return r.Phase }

func (r *ACResult) Quantities() []device.Quantity {
	return []device.Quantity{
		{Name: "re", Unit: "ohm", Value: device.Known(r.Re)},
		{Name: "Zi", Unit: "ohm", Value: device.Known(r.Zi)},
		{Name: "Zo", Unit: "ohm", Value: device.Known(r.Zo)},
		{Name: "Av", Unit: "", Value: device.Known(r.Av)},
	}
}

// currents derives Ic and Ie from the base current.
func currents(ib, beta float64) (ic, ie float64) {
	return beta * ib, (beta + 1) * ib
}

// emitterBiasedDC fills the operating point shared by the configurations
// with an emitter resistor: Vce = Vcc - Ic(Rc + Re).
func emitterBiasedDC(ib, beta, vcc, rc, re float64) *DCResult {
	ic, ie := currents(ib, beta)
	vce := vcc - ic*(rc+re)
	ve := ie * re
	vc := vce + ve
	vb := consts.VBE + ve
	return &DCResult{
		Ib:    ib,
		Ic:    ic,
		Ie:    ie,
		IcSat: device.Known(vcc / (rc + re)),
		Vce:   vce,
		Vc:    device.Known(vc),
		Ve:    device.Known(ve),
		Vb:    device.Known(vb),
		Vbc:   vb - vc,
	}
}

// unbypassedAC is the re model of a common-emitter stage whose emitter
// resistor is not bypassed, including the effect of ro. rb is the
// resistance seen from the base to ground.
func unbypassedAC(ie, beta, rb, rc, re, ro float64) (*ACResult, error) {
	rE, err := device.EmitterResistance(ie)
	if err != nil {
		return nil, err
	}

	zb := beta*rE + ((beta+1)+rc/ro)/(1+(rc+re)/ro)*re
	zi, err := util.Parallel(rb, zb)
	if err != nil {
		return nil, err
	}

	zoBranch := ro + beta*(ro+rE)/(1+beta*rE/re)
	zo, err := util.Parallel(rc, zoBranch)
	if err != nil {
		return nil, err
	}

	av := ((-beta*rc/zb)*(1+rE/ro) + rc/ro) / (1 + rc/ro)

	return &ACResult{Re: rE, Zi: zi, Zo: zo, Av: av, Phase: device.OutOfPhase}, nil
}

// bypassedAC is the re model of a common-emitter stage with the emitter at
// AC ground.
func bypassedAC(ie, beta, rb, rc, ro float64) (*ACResult, error) {
	rE, err := device.EmitterResistance(ie)
	if err != nil {
		return nil, err
	}
	zi, err := util.Parallel(rb, beta*rE)
	if err != nil {
		return nil, err
	}
	zo, err := util.Parallel(rc, ro)
	if err != nil {
		return nil, err
	}
	return &ACResult{Re: rE, Zi: zi, Zo: zo, Av: -zo / rE, Phase: device.OutOfPhase}, nil
}
