// Package fet implements the JFET and depletion-type MOSFET configurations.
// Both devices follow the square-law model Id = Idss(1 - Vgs/Vp)^2, so one
// set of analyzers serves the two families.
package fet

import (
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// Device holds the square-law parameters.
type Device struct {
	Idss float64 // Saturation drain current (A)
	Vp   float64 // Pinch-off voltage (V)
}

func (d *Device) params(uses device.Modes) []device.Param {
	return []device.Param{
		{Name: "Idss", Unit: "A", Desc: "saturation drain current", Ref: &d.Idss, Uses: uses, Rule: device.Positive},
		{Name: "Vp", Unit: "V", Desc: "pinch-off voltage", Ref: &d.Vp, Uses: uses, Rule: device.NonZero},
	}
}

func (d *Device) gm(vgs float64) float64 {
	return device.Transconductance(d.Idss, d.Vp, vgs)
}

// biasCurrent solves Id = Idss(1 - (vg - Id·rs)/Vp)^2 for a gate held at vg
// and a source resistor rs.
func (d *Device) biasCurrent(vg, rs float64) (float64, error) {
	vp2 := d.Vp * d.Vp
	a := rs * rs * d.Idss / vp2
	b := 2*rs*d.Idss/d.Vp - 2*vg*rs*d.Idss/vp2 - 1
	c := d.Idss * (1 - 2*vg/d.Vp + vg*vg/vp2)
	return util.SelectRoot(a, b, c)
}

// DCResult is the operating point of a FET configuration.
type DCResult struct {
	Id  float64 // Drain current (A)
	Vgs float64 // Gate-source voltage (V)
	Vds float64 // Drain-source voltage (V)
	Vs  float64 // Source voltage (V)
	Vd  float64 // Drain voltage (V)
	Vg  float64 // Gate voltage (V)
}

func (r *DCResult) Mode() device.Mode { return device.DC }

func (r *DCResult) Quantities() []device.Quantity {
	return []device.Quantity{
		{Name: "Id", Unit: "A", Value: device.Known(r.Id)},
		{Name: "Vgs", Unit: "V", Value: device.Known(r.Vgs)},
		{Name: "Vds", Unit: "V", Value: device.Known(r.Vds)},
		{Name: "Vs", Unit: "V", Value: device.Known(r.Vs)},
		{Name: "Vd", Unit: "V", Value: device.Known(r.Vd)},
		{Name: "Vg", Unit: "V", Value: device.Known(r.Vg)},
	}
}

// ACResult is the small-signal result of a FET or E-MOSFET configuration.
type ACResult struct {
	Gm    float64 // Transconductance (S)
	Zi    float64 // Input impedance (ohm)
	Zo    float64 // Output impedance (ohm)
	Av    float64 // Voltage gain, negative when inverting
	Phase device.Phase
}

func (r *ACResult) Mode() device.Mode { return device.AC }

func (r *ACResult) PhaseRelation() device.Phase { return r.Phase }

func (r *ACResult) Quantities() []device.Quantity {
	return []device.Quantity{
		{Name: "gm", Unit: "S", Value: device.Known(r.Gm)},
		{Name: "Zi", Unit: "ohm", Value: device.Known(r.Zi)},
		{Name: "Zo", Unit: "ohm", Value: device.Known(r.Zo)},
		{Name: "Av", Unit: "", Value: device.Known(r.Av)},
	}
}

// CommonSourceAC is the model shared by the configurations with the source
// at AC ground: Zo = Rd || rd and Av = -gm·Zo.
func CommonSourceAC(gm, zi, rd, rdOut float64) (*ACResult, error) {
	zo, err := util.Parallel(rd, rdOut)
	if err != nil {
		return nil, err
	}
	return &ACResult{Gm: gm, Zi: zi, Zo: zo, Av: -gm * zo, Phase: device.OutOfPhase}, nil
}
