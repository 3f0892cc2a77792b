package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

// Request is one analysis to run.
type Request struct {
	Family   device.Family
	Topology string
	Mode     device.Mode
	Values   map[string]float64
	Flags    []string
}

func (r Request) String() string {
	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := []string{r.Family.String(), r.Topology, r.Mode.String()}
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%g", name, r.Values[name]))
	}
	parts = append(parts, r.Flags...)
	return strings.Join(parts, " ")
}

// Analyzer builds the analyzer of r and binds its values and flags. Every
// parameter read by r.Mode must be given.
func (r Request) Analyzer() (device.Analyzer, error) {
	entry, err := Lookup(r.Family, r.Topology)
	if err != nil {
		return nil, err
	}
	a := entry.New()
	params := a.Params()

	if err := device.SetParameters(params, r.Values); err != nil {
		return nil, device.Wrap(a, err)
	}

	given := make(map[string]bool, len(r.Values))
	for name := range r.Values {
		p, _ := device.FindParam(params, name)
		given[p.Name] = true
	}
	var missing []string
	for _, p := range params {
		if p.Uses.Has(r.Mode) && !given[p.Name] {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing %s for %v analysis: %w",
			device.Label(a), strings.Join(missing, ", "), r.Mode, device.ErrInvalidParameter)
	}

	if len(r.Flags) > 0 {
		fl, ok := a.(device.Flagged)
		if !ok {
			return nil, fmt.Errorf("%s: unknown option %q: %w", device.Label(a), r.Flags[0], device.ErrInvalidParameter)
		}
		if err := device.SetFlags(fl.Flags(), r.Flags); err != nil {
			return nil, device.Wrap(a, err)
		}
	}

	Logger.Printf("request: %v", r)
	return a, nil
}

// Run performs r. On error the result is nil.
func Run(r Request) (device.Result, error) {
	a, err := r.Analyzer()
	if err != nil {
		return nil, err
	}
	return a.Analyze(r.Mode)
}

// RunNodal solves the linear bias network of r. Only DC requests of
// topologies with a resistive bias network are accepted.
func RunNodal(r Request) (device.Result, error) {
	if r.Mode != device.DC {
		return nil, fmt.Errorf("%w: nodal solution is dc only", device.ErrUnsupportedMode)
	}
	a, err := r.Analyzer()
	if err != nil {
		return nil, err
	}
	ns, ok := a.(device.NodalSolver)
	if !ok {
		return nil, fmt.Errorf("%s: %w: no nodal model", device.Label(a), device.ErrUnsupportedMode)
	}
	return ns.Nodal()
}
