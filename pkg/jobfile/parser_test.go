package jobfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

const jobs = `# amplifier checks

bjt fixed-bias dc Vcc=20 Rb=470k Rc=3k beta=100
bjt vd ac Vcc=22 Rb1=56k Rb2=8.2k Rc=6.8k Re=1.5k beta=90 ro=50k bypassed   # bypassed stage
jfet fb dc Vdd=16 Vgg=2 Rd=2k Idss=8m Vp=-6
e-mosfet df ac Vdd=12 Rg=10meg Rd=2k rd=50k IdOn=6m VgsOn=8 VgsTh=3
`

func TestParseString(t *testing.T) {
	entries, err := ParseString("jobs.txt", jobs)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	lines := []int{3, 4, 5, 6}
	for i, e := range entries {
		if e.Line != lines[i] {
			t.Errorf("Entry %d: line %d, want %d", i, e.Line, lines[i])
		}
	}

	first := entries[0].Request
	if first.Family != device.BJT || first.Topology != "fixed-bias" || first.Mode != device.DC {
		t.Errorf("Unexpected first request %v", first)
	}
	if first.Values["Rb"] != 470e3 || first.Values["beta"] != 100 {
		t.Errorf("Unexpected values %v", first.Values)
	}

	vd := entries[1].Request
	if vd.Topology != "voltage-divider" || vd.Mode != device.AC {
		t.Errorf("Expected the vd code to resolve to voltage-divider ac, got %v", vd)
	}
	if len(vd.Flags) != 1 || vd.Flags[0] != "bypassed" {
		t.Errorf("Expected the bypassed flag, got %v", vd.Flags)
	}
	if vd.Values["Rb2"] != 8.2e3 {
		t.Errorf("Rb2 = %g, want 8200", vd.Values["Rb2"])
	}

	if got := entries[2].Request.Values["Vp"]; got != -6 {
		t.Errorf("Vp = %g, want -6", got)
	}

	mos := entries[3].Request
	if mos.Family != device.EMOSFET || mos.Topology != "drain-feedback" || mos.Values["Rg"] != 10e6 {
		t.Errorf("Unexpected e-mosfet request %v", mos)
	}
}

func TestParsedJobsRun(t *testing.T) {
	entries, err := ParseString("jobs.txt", jobs)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	reqs := make([]analysis.Request, len(entries))
	for i, e := range entries {
		reqs[i] = e.Request
	}
	for _, out := range analysis.RunBatch(reqs, 2) {
		if out.Err != nil {
			t.Errorf("Line %d failed: %v", entries[out.Index].Line, out.Err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing value", "bjt fb dc Vcc=\n", "parse error"},
		{"missing mode", "bjt fb\n", "parse error"},
		{"unknown family", "triode fb dc Vcc=1\n", "jobs.txt:1:1"},
		{"unknown topology", "bjt fb dc Vcc=1\nbjt cascode dc Vcc=1\n", "jobs.txt:2:1"},
		{"bad mode", "bjt fb tran Vcc=1\n", "unsupported mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("jobs.txt", tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDuplicateValue(t *testing.T) {
	_, err := ParseString("jobs.txt", "bjt fb dc Vcc=20 Vcc=12\n")
	if !errors.Is(err, device.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stages.job")
	if err := os.WriteFile(path, []byte(jobs), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	entries, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Expected 4 entries, got %d", len(entries))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.job")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestEmptyFile(t *testing.T) {
	entries, err := ParseString("jobs.txt", "# nothing yet\n\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
