package fet

import (
	"fmt"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

// SourceFollower is the common-drain stage at a given bias Vgs. Only the
// small-signal model is defined.
type SourceFollower struct {
	Device
	Vgs float64 // Gate-source bias voltage (V)
	Rg  float64 // Gate resistor (ohm)
	Rs  float64 // Source resistor (ohm)
	Ro  float64 // Drain output resistance rd (ohm)
}

func (s *SourceFollower) Family() device.Family { return device.FET }

func (s *SourceFollower) Topology() string { return "source-follower" }

func (s *SourceFollower) Params() []device.Param {
	return append([]device.Param{
		device.Supply("Vgs", "gate-source bias", &s.Vgs, device.UsedInAC),
		device.Resistor("Rg", "gate resistor", &s.Rg, device.UsedInAC),
		device.Resistor("Rs", "source resistor", &s.Rs, device.UsedInAC),
		device.Resistor("rd", "output resistance", &s.Ro, device.UsedInAC),
	}, s.params(device.UsedInAC)...)
}

func (s *SourceFollower) Analyze(mode device.Mode) (device.Result, error) {
	if mode != device.AC {
		return nil, device.Unsupported(s, mode)
	}
	res, err := s.AC()
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SourceFollower) AC() (*ACResult, error) {
	if err := device.Validate(device.Label(s), device.AC, s.Params()); err != nil {
		return nil, err
	}

	gm := s.gm(s.Vgs)
	if !(gm > 0) {
		return nil, fmt.Errorf("%s: gm %g S at Vgs %g V, device is pinched off: %w",
			device.Label(s), gm, s.Vgs, device.ErrInvalidParameter)
	}

	zo, err := util.ParallelN(s.Ro, s.Rs, 1/gm)
	if err != nil {
		return nil, device.Wrap(s, err)
	}
	rl, err := util.Parallel(s.Ro, s.Rs)
	if err != nil {
		return nil, device.Wrap(s, err)
	}
	av := gm * rl / (1 + gm*rl)
	return &ACResult{Gm: gm, Zi: s.Rg, Zo: zo, Av: av, Phase: device.InPhase}, nil
}
