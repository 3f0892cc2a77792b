package mosfet

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-9) {
		t.Errorf("%s = %g, want %g", name, got, want)
	}
}

func TestDrainFeedbackDC(t *testing.T) {
	df := &DrainFeedback{Device: Device{IdOn: 6e-3, VgsOn: 8, VgsTh: 3}, Vdd: 12, Rd: 2e3}
	res, err := df.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}

	near(t, "k", res.K, 0.24e-3)
	if !scalar.EqualWithinAbsOrRel(res.Id, 2.794e-3, 1e-12, 1e-3) {
		t.Errorf("Expected Id ~ 2.794 mA, got %g", res.Id)
	}
	if !scalar.EqualWithinAbsOrRel(res.Vgs, 6.41, 1e-12, 1e-3) {
		t.Errorf("Expected Vgs ~ 6.41 V, got %g", res.Vgs)
	}
	near(t, "Vds", res.Vds, res.Vgs)
	near(t, "Id", res.Id, 0.24e-3*(res.Vgs-3)*(res.Vgs-3))
}

func TestDrainFeedbackAC(t *testing.T) {
	df := &DrainFeedback{Device: Device{IdOn: 6e-3, VgsOn: 8, VgsTh: 3}, Vdd: 12, Rg: 10e6, Rd: 2e3, Ro: 50e3}
	res, err := df.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}

	dc, err := df.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}
	gm := 2 * 0.24e-3 * (dc.Vgs - 3)
	rl := 1 / (1/50e3 + 1/2e3)
	zo := 1 / (1/10e6 + 1/rl)
	near(t, "gm", res.Gm, gm)
	near(t, "Zi", res.Zi, (10e6+rl)/(1+gm*rl))
	near(t, "Zo", res.Zo, zo)
	near(t, "Av", res.Av, -gm*zo)
	if res.Phase != device.OutOfPhase {
		t.Errorf("Expected out-of-phase, got %v", res.Phase)
	}
}

func TestVoltageDivider(t *testing.T) {
	vd := &VoltageDivider{
		Device: Device{IdOn: 3e-3, VgsOn: 10, VgsTh: 5},
		Vdd:    40, Rg1: 22e6, Rg2: 18e6, Rd: 3e3, Rs: 820, Ro: 100e3,
	}
	res, err := vd.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}

	near(t, "Vg", res.Vg, 18.0)
	near(t, "Vgs", res.Vgs, 18-res.Id*820)
	near(t, "Id", res.Id, res.K*(res.Vgs-5)*(res.Vgs-5))
	if res.Vgs <= 5 {
		t.Errorf("Expected the device to be on, Vgs = %g", res.Vgs)
	}

	ac, err := vd.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	near(t, "Zi", ac.Zi, 1/(1/22e6+1/18e6))
	near(t, "Av", ac.Av, -ac.Gm*ac.Zo)
}

func TestDeviceConstantRequiresOverdrive(t *testing.T) {
	df := &DrainFeedback{Device: Device{IdOn: 6e-3, VgsOn: 3, VgsTh: 3}, Vdd: 12, Rd: 2e3}
	if _, err := df.Analyze(device.DC); !errors.Is(err, device.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}
