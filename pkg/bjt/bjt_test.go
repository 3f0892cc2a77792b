package bjt

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

func value(t *testing.T, name string, v device.Value) float64 {
	t.Helper()
	got, ok := v.Get()
	if !ok {
		t.Fatalf("%s is not applicable", name)
	}
	return got
}

func TestFixedBiasDC(t *testing.T) {
	fb := &FixedBias{Vcc: 20, Rb: 470e3, Rc: 3e3, Beta: 100}
	res, err := fb.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}

	near(t, "Ib", res.Ib, 19.3/470e3)
	near(t, "Ic", res.Ic, 100*19.3/470e3)
	near(t, "Ie", res.Ie, 101*19.3/470e3)
	near(t, "Vce", res.Vce, 20-100*19.3/470e3*3e3)
	near(t, "IcSat", value(t, "IcSat", res.IcSat), 20.0/3e3)
	near(t, "Ve", value(t, "Ve", res.Ve), 0)
	near(t, "Vb", value(t, "Vb", res.Vb), 0.7)
	near(t, "Vc", value(t, "Vc", res.Vc), res.Vce)
	near(t, "Vbc", res.Vbc, 0.7-res.Vce)

	if res.Ic < 4.10e-3 || res.Ic > 4.11e-3 || res.Vce < 7.67 || res.Vce > 7.69 {
		t.Errorf("Expected Ic ~ 4.106 mA and Vce ~ 7.68 V, got %g and %g", res.Ic, res.Vce)
	}
}

func TestFixedBiasAC(t *testing.T) {
	fb := &FixedBias{Vcc: 20, Rb: 470e3, Rc: 3e3, Beta: 100, Ro: 50e3}
	res, err := fb.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}

	ie := 101 * 19.3 / 470e3
	re := 0.026 / ie
	zo := 1 / (1/3e3 + 1/50e3)
	near(t, "re", res.Re, re)
	near(t, "Zi", res.Zi, 1/(1/470e3+1/(100*re)))
	near(t, "Zo", res.Zo, zo)
	near(t, "Av", res.Av, -zo/re)
	if res.Phase != device.OutOfPhase {
		t.Errorf("Expected out-of-phase, got %v", res.Phase)
	}
}

func TestFixedBiasAnalyzeModes(t *testing.T) {
	fb := &FixedBias{Vcc: 20, Rb: 470e3, Rc: 3e3, Beta: 100, Ro: 50e3}
	for _, mode := range []device.Mode{device.DC, device.AC} {
		res, err := fb.Analyze(mode)
		if err != nil {
			t.Fatalf("Analyze(%v) failed: %v", mode, err)
		}
		if res.Mode() != mode {
			t.Errorf("Analyze(%v) returned a %v result", mode, res.Mode())
		}
	}
}

func TestEmitterBias(t *testing.T) {
	eb := &EmitterBias{Vcc: 20, Rb: 430e3, Rc: 2e3, Re: 1e3, Beta: 50, Ro: 40e3}
	dc, err := eb.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}

	ib := 19.3 / (430e3 + 51*1e3)
	near(t, "Ib", dc.Ib, ib)
	near(t, "Ic", dc.Ic, 50*ib)
	near(t, "Vce", dc.Vce, 20-50*ib*3e3)
	near(t, "Ve", value(t, "Ve", dc.Ve), 51*ib*1e3)
	near(t, "Vc", value(t, "Vc", dc.Vc), dc.Vce+51*ib*1e3)
	near(t, "Vb", value(t, "Vb", dc.Vb), 0.7+51*ib*1e3)
	near(t, "IcSat", value(t, "IcSat", dc.IcSat), 20.0/3e3)

	ac, err := eb.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	re := 0.026 / (51 * ib)
	zb := 50*re + (51+2e3/40e3)/(1+3e3/40e3)*1e3
	near(t, "Zi", ac.Zi, 1/(1/430e3+1/zb))
	near(t, "Zo", ac.Zo, 1/(1/2e3+1/(40e3+50*(40e3+re)/(1+50*re/1e3))))
	near(t, "Av", ac.Av, ((-50*2e3/zb)*(1+re/40e3)+2e3/40e3)/(1+2e3/40e3))
	if ac.Av >= 0 || ac.Phase != device.OutOfPhase {
		t.Errorf("Expected an inverting stage, got Av %g %v", ac.Av, ac.Phase)
	}
}

func TestVoltageDivider(t *testing.T) {
	vd := &VoltageDivider{Vcc: 22, Rb1: 39e3, Rb2: 3.9e3, Rc: 10e3, Re: 1.5e3, Beta: 100, Ro: 50e3}
	dc, err := vd.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}

	rth := 39e3 * 3.9e3 / 42.9e3
	eth := 22 * 3.9e3 / 42.9e3
	ib := (eth - 0.7) / (rth + 101*1.5e3)
	near(t, "Ib", dc.Ib, ib)
	near(t, "Vce", dc.Vce, 22-100*ib*11.5e3)
	if dc.Vce < 12.2 || dc.Vce > 12.5 {
		t.Errorf("Expected Vce ~ 12.3 V, got %g", dc.Vce)
	}

	unbypassed, err := vd.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	if err := device.SetFlags(vd.Flags(), []string{"bypassed"}); err != nil {
		t.Fatalf("SetFlags failed: %v", err)
	}
	bypassed, err := vd.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}

	re := 0.026 / (101 * ib)
	zo := 1 / (1/10e3 + 1/50e3)
	near(t, "bypassed Zi", bypassed.Zi, 1/(1/rth+1/(100*re)))
	near(t, "bypassed Av", bypassed.Av, -zo/re)
	if !(-bypassed.Av > -unbypassed.Av) {
		t.Errorf("Bypassing Re should raise the gain: bypassed %g, unbypassed %g", bypassed.Av, unbypassed.Av)
	}
	if !(unbypassed.Zi > bypassed.Zi) {
		t.Errorf("Unbypassed Re should raise Zi: bypassed %g, unbypassed %g", bypassed.Zi, unbypassed.Zi)
	}
}

func TestCollectorFeedbackModesDiffer(t *testing.T) {
	cf := &CollectorFeedback{Vcc: 10, Rf: 250e3, Rc: 4.7e3, Re: 1.2e3, Beta: 90, Ro: 1e12}
	dc, err := cf.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}
	near(t, "DC Ib", dc.Ib, 9.3/(250e3+90*5.9e3))

	ac, err := cf.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	ibAC := 9.3 / (250e3 + 90*4.7e3)
	near(t, "re", ac.Re, 0.026/(91*ibAC))
	if ac.Phase != device.OutOfPhase || ac.Av >= 0 {
		t.Errorf("Expected inverting stage, got Av %g %v", ac.Av, ac.Phase)
	}

	// Re is not an AC input
	cf.Re = 0
	if _, err := cf.AC(); err != nil {
		t.Errorf("AC should not read Re: %v", err)
	}
	if _, err := cf.DC(); !errors.Is(err, device.ErrInvalidParameter) {
		t.Errorf("DC should reject Re=0, got %v", err)
	}
}

func TestCollectorDCFeedback(t *testing.T) {
	cdf := &CollectorDCFeedback{Vcc: 12, Rf1: 120e3, Rf2: 68e3, Rc: 3e3, Beta: 140, Ro: 30e3}
	res, err := cdf.Analyze(device.AC)
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	ac := res.(*ACResult)

	ib := 11.3 / (188e3 + 140*3e3)
	re := 0.026 / (141 * ib)
	zo := 1 / (1/3e3 + 1/68e3 + 1/30e3)
	near(t, "Zi", ac.Zi, 1/(1/120e3+1/(140*re)))
	near(t, "Zo", ac.Zo, zo)
	near(t, "Av", ac.Av, -zo/re)

	res, err = cdf.Analyze(device.DC)
	if !errors.Is(err, device.ErrUnsupportedMode) {
		t.Errorf("Expected ErrUnsupportedMode, got %v", err)
	}
	if res != nil {
		t.Errorf("Expected no result, got %#v", res)
	}
}

func TestEmitterFollower(t *testing.T) {
	ef := &EmitterFollower{Vcc: 12, Vee: 10, Rb: 220e3, Re: 3.3e3, Beta: 100, Ro: 1e12}

	dc, err := ef.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}
	ib := 9.3 / (220e3 + 101*3.3e3)
	near(t, "Ib", dc.Ib, ib)
	near(t, "Vce", dc.Vce, 10-101*ib*3.3e3)
	near(t, "Ve", value(t, "Ve", dc.Ve), 101*ib*3.3e3+10)
	if dc.IcSat.Valid() {
		t.Error("IcSat should not apply to the emitter-follower")
	}

	ac, err := ef.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	ie := 101 * 11.3 / (220e3 + 101*3.3e3)
	near(t, "re", ac.Re, 0.026/ie)
	if ac.Phase != device.InPhase {
		t.Errorf("Expected in-phase, got %v", ac.Phase)
	}
	if ac.Av <= 0.9 || ac.Av >= 1 {
		t.Errorf("Expected a gain just below 1, got %g", ac.Av)
	}

	// Vee is read by DC only, Vcc by AC only
	ef.Vcc = 0.5
	if _, err := ef.DC(); err != nil {
		t.Errorf("DC should not read Vcc: %v", err)
	}
	if _, err := ef.AC(); !errors.Is(err, device.ErrInvalidParameter) {
		t.Errorf("AC below Vbe should fail with ErrInvalidParameter, got %v", err)
	}
}

func TestCommonBase(t *testing.T) {
	cb := &CommonBase{Vcc: 8, Vee: 2, Rc: 5e3, Re: 1e3, Beta: 60, Alpha: 0.98}

	dc, err := cb.DC()
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}
	ie := 1.3 / 1e3
	near(t, "Ie", dc.Ie, ie)
	near(t, "Ib", dc.Ib, ie/61)
	near(t, "Vce", dc.Vce, 2+8-ie*6e3)
	near(t, "Vbc", dc.Vbc, -(8 - 60*ie/61*5e3))
	for name, v := range map[string]device.Value{"IcSat": dc.IcSat, "Vc": dc.Vc, "Ve": dc.Ve, "Vb": dc.Vb} {
		if v.Valid() {
			t.Errorf("%s should not apply to the common-base stage", name)
		}
	}

	ac, err := cb.AC()
	if err != nil {
		t.Fatalf("AC failed: %v", err)
	}
	re := 0.026 / ie
	near(t, "Zi", ac.Zi, 1/(1/1e3+1/re))
	near(t, "Zo", ac.Zo, 5e3)
	near(t, "Av", ac.Av, 0.98*5e3/re)
	if ac.Phase != device.InPhase {
		t.Errorf("Expected in-phase, got %v", ac.Phase)
	}

	// β is DC only and α is AC only
	cb.Beta = 0
	if _, err := cb.AC(); err != nil {
		t.Errorf("AC should not read beta: %v", err)
	}
}

func TestMiscBias(t *testing.T) {
	mb := &MiscBias{Vcc: 18, Rb: 560e3, Rc: 1.2e3, Beta: 100}
	res, err := mb.Analyze(device.DC)
	if err != nil {
		t.Fatalf("DC failed: %v", err)
	}
	dc := res.(*DCResult)

	ib := 17.3 / (560e3 + 100*1.2e3)
	near(t, "Ib", dc.Ib, ib)
	near(t, "Vce", dc.Vce, 18-101*ib*1.2e3)
	near(t, "Vc", value(t, "Vc", dc.Vc), dc.Vce)
	if dc.IcSat.Valid() {
		t.Error("IcSat should not apply to miscellaneous-bias")
	}

	if _, err := mb.Analyze(device.AC); !errors.Is(err, device.ErrUnsupportedMode) {
		t.Errorf("Expected ErrUnsupportedMode, got %v", err)
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		a    device.Analyzer
		mode device.Mode
	}{
		{"fixed-bias zero Rb", &FixedBias{Vcc: 20, Rb: 0, Rc: 3e3, Beta: 100}, device.DC},
		{"fixed-bias negative beta", &FixedBias{Vcc: 20, Rb: 470e3, Rc: 3e3, Beta: -1}, device.DC},
		{"fixed-bias missing ro", &FixedBias{Vcc: 20, Rb: 470e3, Rc: 3e3, Beta: 100}, device.AC},
		{"emitter-bias zero Re", &EmitterBias{Vcc: 20, Rb: 430e3, Rc: 2e3, Beta: 50}, device.DC},
		{"voltage-divider zero Rb2", &VoltageDivider{Vcc: 22, Rb1: 39e3, Rc: 10e3, Re: 1.5e3, Beta: 100}, device.DC},
		{"common-base zero alpha", &CommonBase{Vee: 2, Rc: 5e3, Re: 1e3}, device.AC},
		{"supply below Vbe", &FixedBias{Vcc: 0.5, Rb: 470e3, Rc: 3e3, Beta: 100, Ro: 50e3}, device.AC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.a.Analyze(tt.mode)
			if !errors.Is(err, device.ErrInvalidParameter) {
				t.Fatalf("Expected ErrInvalidParameter, got %v", err)
			}
			if res != nil {
				t.Errorf("Expected no result, got %#v", res)
			}
		})
	}
}

func TestAnalyzersAreIndependent(t *testing.T) {
	a := &FixedBias{Vcc: 20, Rb: 470e3, Rc: 3e3, Beta: 100}
	b := &FixedBias{Vcc: 12, Rb: 240e3, Rc: 2.2e3, Beta: 50}

	ra, _ := a.DC()
	rb, _ := b.DC()
	ra2, _ := a.DC()

	if ra == ra2 {
		t.Error("Each call should return a fresh result")
	}
	if ra.Ib != ra2.Ib || ra.Ib == rb.Ib {
		t.Errorf("Results interfere: %g %g %g", ra.Ib, ra2.Ib, rb.Ib)
	}
}
