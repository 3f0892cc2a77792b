package sweep

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

func (s *Series) title() string {
	return fmt.Sprintf("%s versus %s", s.Sweep.Quantity, s.Sweep.Param)
}

// RenderHTML writes a line chart of the series as a standalone HTML page.
// Failed points are left as gaps.
func (s *Series) RenderHTML(w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    s.title(),
			Subtitle: s.Sweep.Request.String(),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: axisName(s.Sweep.Param, s.ParamUnit),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  axisName(s.Sweep.Quantity, s.Unit),
			Scale: true,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)

	xs := make([]string, len(s.Points))
	items := make([]opts.LineData, len(s.Points))
	for i, pt := range s.Points {
		xs[i] = util.FormatValueFactor(pt.X, s.ParamUnit)
		if pt.Err != nil {
			items[i] = opts.LineData{Value: "-"}
			continue
		}
		items[i] = opts.LineData{Value: pt.Y}
	}
	line.SetXAxis(xs).AddSeries(s.Sweep.Quantity, items)

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

func axisName(name, unit string) string {
	if unit == "" {
		return name
	}
	return name + " (" + unit + ")"
}
