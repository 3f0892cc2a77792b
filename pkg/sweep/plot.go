package sweep

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotFormats are the image formats accepted by RenderPlot.
var PlotFormats = []string{"png", "svg", "pdf"}

// RenderPlot draws the series as a static image in format. Failed points
// split the curve into separate segments.
func (s *Series) RenderPlot(w io.Writer, format string) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	supported := false
	for _, f := range PlotFormats {
		if f == format {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported plot format %q (want %s)", format, strings.Join(PlotFormats, ", "))
	}

	p := plot.New()
	p.Title.Text = s.title()
	p.X.Label.Text = axisName(s.Sweep.Param, s.ParamUnit)
	p.Y.Label.Text = axisName(s.Sweep.Quantity, s.Unit)
	p.Add(plotter.NewGrid())
	if s.Sweep.Log {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	segs := s.segments()
	if len(segs) == 0 {
		return fmt.Errorf("%s: no point to plot", s.title())
	}
	for _, seg := range segs {
		line, points, err := plotter.NewLinePoints(seg)
		if err != nil {
			return err
		}
		points.GlyphStyle.Radius = vg.Points(2)
		p.Add(line, points)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// segments splits the successful points into runs without failures.
func (s *Series) segments() []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for _, pt := range s.Points {
		if pt.Err != nil {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}
