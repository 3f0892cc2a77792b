// Package mosfet implements the enhancement-type MOSFET configurations.
// The device follows Id = k(Vgs - Vgs(th))^2 with k taken from one
// specified on-state point.
package mosfet

import (
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/fet"
)

// Device holds the on-state point and threshold of the E-MOSFET.
type Device struct {
	IdOn  float64 // Drain current at VgsOn (A)
	VgsOn float64 // Gate-source voltage of the on-state point (V)
	VgsTh float64 // Threshold voltage (V)
}

func (d *Device) params() []device.Param {
	return []device.Param{
		{Name: "IdOn", Unit: "A", Desc: "drain current at VgsOn", Ref: &d.IdOn, Uses: device.UsedInBoth, Rule: device.Positive},
		device.Supply("VgsOn", "gate-source voltage at IdOn", &d.VgsOn, device.UsedInBoth),
		device.Supply("VgsTh", "threshold voltage", &d.VgsTh, device.UsedInBoth),
	}
}

func (d *Device) k() (float64, error) {
	return device.DeviceConstant(d.IdOn, d.VgsOn, d.VgsTh)
}

// DCResult is the operating point of an E-MOSFET configuration.
type DCResult struct {
	K   float64 // Device constant (A/V^2)
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
		{Name: "k", Unit: "A/V^2", Value: device.Known(r.K)},
		{Name: "Id", Unit: "A", Value: device.Known(r.Id)},
		{Name: "Vgs", Unit: "V", Value: device.Known(r.Vgs)},
		{Name: "Vds", Unit: "V", Value: device.Known(r.Vds)},
		{Name: "Vs", Unit: "V", Value: device.Known(r.Vs)},
		{Name: "Vd", Unit: "V", Value: device.Known(r.Vd)},
		{Name: "Vg", Unit: "V", Value: device.Known(r.Vg)},
	}
}

// ACResult shares the FET small-signal record.
type ACResult = fet.ACResult
