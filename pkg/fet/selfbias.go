package fet

import "github.com/CanGulmez/transistor-analyzes/pkg/device"

// SelfBias develops Vgs = -Id·Rs across an unbypassed source resistor with
// the gate returned to ground through Rg.
type SelfBias struct {
	Device
	Vdd float64 // Drain supply (V), DC only
	Rg  float64 // Gate resistor (ohm), AC only
	Rd  float64 // Drain resistor (ohm)
	Rs  float64 // Source resistor (ohm)
	Ro  float64 // Drain output resistance rd (ohm), AC only
}

func (s *SelfBias) Family() device.Family { return device.FET }

func (s *SelfBias) Topology() string { return "self-bias" }

func (s *SelfBias) Params() []device.Param {
	return append([]device.Param{
		device.Supply("Vdd", "drain supply", &s.Vdd, device.UsedInDC),
		device.Resistor("Rg", "gate resistor", &s.Rg, device.UsedInAC),
		device.Resistor("Rd", "drain resistor", &s.Rd, device.UsedInBoth),
		device.Resistor("Rs", "source resistor", &s.Rs, device.UsedInBoth),
		device.Resistor("rd", "output resistance", &s.Ro, device.UsedInAC),
	}, s.params(device.UsedInBoth)...)
}

func (s *SelfBias) Analyze(mode device.Mode) (device.Result, error) {
	return device.Dispatch(mode, s.DC, s.AC)
}

func (s *SelfBias) DC() (*DCResult, error) {
	if err := device.Validate(device.Label(s), device.DC, s.Params()); err != nil {
		return nil, err
	}

	id, err := s.biasCurrent(0, s.Rs)
	if err != nil {
		return nil, device.Wrap(s, err)
	}
	vs := id * s.Rs
	vds := s.Vdd - id*(s.Rs+s.Rd)
	return &DCResult{Id: id, Vgs: -vs, Vds: vds, Vs: vs, Vd: vds + vs, Vg: 0}, nil
}

func (s *SelfBias) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(s), device.AC, s.Params()); err != nil {
		return nil, err
	}

	id, err := s.biasCurrent(0, s.Rs)
	if err != nil {
		return nil, device.Wrap(s, err)
	}
	gm := s.gm(-id * s.Rs)

	k := 1 + gm*s.Rs + s.Rs/s.Ro
	zo := k * s.Rd / (k + s.Rd/s.Ro)
	av := -gm * s.Rd / (1 + gm*s.Rs + (s.Rd+s.Rs)/s.Ro)
	return &ACResult{Gm: gm, Zi: s.Rg, Zo: zo, Av: av, Phase: device.OutOfPhase}, nil
}
