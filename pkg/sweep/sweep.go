// Package sweep evaluates one output quantity of an analysis while a single
// input parameter is stepped over a range.
package sweep

import (
	"errors"
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/floats"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

var ErrNotApplicable = errors.New("quantity not applicable")

// Sweep steps Param from Start to Stop in Points steps and records Quantity.
type Sweep struct {
	Request  analysis.Request
	Param    string
	Start    float64
	Stop     float64
	Points   int
	Log      bool // logarithmic spacing, Start and Stop must be positive
	Quantity string
}

// Point is one evaluated step. Err is set when the analysis failed at X,
// e.g. past a physical limit of the circuit.
type Point struct {
	X   float64
	Y   float64
	Err error
}

type Series struct {
	Sweep     Sweep
	ParamUnit string
	Unit      string
	Points    []Point
}

// Values returns the X positions of the sweep.
func (s Sweep) Values() ([]float64, error) {
	if s.Points < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points (got %d)", s.Points)
	}
	xs := make([]float64, s.Points)
	if s.Log {
		if !(s.Start > 0 && s.Stop > 0) {
			return nil, fmt.Errorf("logarithmic sweep needs positive bounds (got %g to %g)", s.Start, s.Stop)
		}
		return floats.LogSpan(xs, s.Start, s.Stop), nil
	}
	return floats.Span(xs, s.Start, s.Stop), nil
}

// requests builds one request per X with Param replaced.
func (s Sweep) requests(xs []float64) ([]analysis.Request, *device.Param, error) {
	entry, err := analysis.Lookup(s.Request.Family, s.Request.Topology)
	if err != nil {
		return nil, nil, err
	}
	params := entry.New().Params()
	target, err := device.FindParam(params, s.Param)
	if err != nil {
		return nil, nil, err
	}

	base := make(map[string]float64, len(s.Request.Values)+1)
	for name, v := range s.Request.Values {
		p, err := device.FindParam(params, name)
		if err != nil {
			return nil, nil, err
		}
		if p.Name != target.Name {
			base[name] = v
		}
	}

	reqs := make([]analysis.Request, len(xs))
	for i, x := range xs {
		values := make(map[string]float64, len(base)+1)
		for name, v := range base {
			values[name] = v
		}
		values[target.Name] = x

		req := s.Request
		req.Values = values
		reqs[i] = req
	}
	return reqs, target, nil
}

// Run evaluates every point of the sweep.
func (s Sweep) Run() (*Series, error) {
	xs, err := s.Values()
	if err != nil {
		return nil, err
	}
	reqs, target, err := s.requests(xs)
	if err != nil {
		return nil, err
	}

	series := &Series{Sweep: s, ParamUnit: target.Unit, Points: make([]Point, len(xs))}
	found := false
	for _, out := range analysis.RunBatch(reqs, runtime.NumCPU()) {
		pt := Point{X: xs[out.Index], Err: out.Err}
		if out.Err == nil {
			q, ok := device.Find(out.Result, s.Quantity)
			if !ok {
				return nil, fmt.Errorf("%v result has no quantity %q", s.Request.Mode, s.Quantity)
			}
			found = true
			series.Unit = q.Unit
			if v, ok := q.Value.Get(); ok {
				pt.Y = v
			} else {
				pt.Err = fmt.Errorf("%s: %w", q.Name, ErrNotApplicable)
			}
		}
		series.Points[out.Index] = pt
	}
	if !found {
		return nil, fmt.Errorf("every point failed, first error: %w", series.Points[0].Err)
	}
	return series, nil
}
