package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CanGulmez/transistor-analyzes/pkg/sweep"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

var (
	sweepFlags    []string
	sweepParam    string
	sweepFrom     string
	sweepTo       string
	sweepPoints   int
	sweepLog      bool
	sweepQuantity string
	sweepHTML     string
	sweepXLSX     string
	sweepPlot     string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <family> <topology> <dc|ac> name=value...",
	Short: "Step one parameter and record one result quantity",
	Long: `Re-run an analysis while one parameter is stepped over a range. Points
where the analysis fails are reported and left out of the chart.

Examples:
  amp sweep bjt fb dc Vcc=20 Rc=3k beta=100 --param Rb --from 100k --to 1meg --quantity Vce
  amp sweep jfet sb dc Vdd=20 Rd=3.3k Idss=8m Vp=-6 --param Rs --from 100 --to 10k --log --quantity Id --html id.html
  amp sweep bjt vd ac Vcc=22 Rb1=56k Rb2=8.2k Rc=6.8k Re=1.5k ro=50k --param beta --from 50 --to 200 --quantity Av --plot av.svg`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringSliceVarP(&sweepFlags, "flag", "f", nil, "topology variant, e.g. bypassed")
	sweepCmd.Flags().StringVarP(&sweepParam, "param", "p", "", "parameter to sweep")
	sweepCmd.Flags().StringVar(&sweepFrom, "from", "", "first value")
	sweepCmd.Flags().StringVar(&sweepTo, "to", "", "last value")
	sweepCmd.Flags().IntVarP(&sweepPoints, "points", "n", 11, "number of points")
	sweepCmd.Flags().BoolVar(&sweepLog, "log", false, "logarithmic spacing")
	sweepCmd.Flags().StringVarP(&sweepQuantity, "quantity", "q", "", "result quantity to record, e.g. Vce or Av")
	sweepCmd.Flags().StringVar(&sweepHTML, "html", "", "write a line chart to this HTML file")
	sweepCmd.Flags().StringVar(&sweepXLSX, "xlsx", "", "write the points to this XLSX file")
	sweepCmd.Flags().StringVar(&sweepPlot, "plot", "", "write a static plot, format taken from the extension (png, svg, pdf)")

	sweepCmd.MarkFlagRequired("param")
	sweepCmd.MarkFlagRequired("from")
	sweepCmd.MarkFlagRequired("to")
	sweepCmd.MarkFlagRequired("quantity")
}

func runSweep(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(args, sweepFlags)
	if err != nil {
		return err
	}
	from, err := util.ParseValue(sweepFrom)
	if err != nil {
		return fmt.Errorf("--from: %v", err)
	}
	to, err := util.ParseValue(sweepTo)
	if err != nil {
		return fmt.Errorf("--to: %v", err)
	}

	sw := sweep.Sweep{
		Request:  req,
		Param:    sweepParam,
		Start:    from,
		Stop:     to,
		Points:   sweepPoints,
		Log:      sweepLog,
		Quantity: sweepQuantity,
	}
	series, err := sw.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s sweep of %s (%d points):\n", sweepQuantity, sweepParam, len(series.Points))
	for _, pt := range series.Points {
		x := util.FormatValueFactor(pt.X, series.ParamUnit)
		if pt.Err != nil {
			fmt.Fprintf(out, "  %-14s error: %v\n", x, pt.Err)
			continue
		}
		fmt.Fprintf(out, "  %-14s %s\n", x, util.FormatQuantity(pt.Y, true, series.Unit))
	}

	if sweepHTML != "" {
		if err := writeFile(sweepHTML, series.RenderHTML); err != nil {
			return err
		}
		fmt.Fprintf(out, "chart written to %s\n", sweepHTML)
	}
	if sweepXLSX != "" {
		if err := writeFile(sweepXLSX, series.WriteXLSX); err != nil {
			return err
		}
		fmt.Fprintf(out, "sheet written to %s\n", sweepXLSX)
	}
	if sweepPlot != "" {
		render := func(w io.Writer) error {
			return series.RenderPlot(w, filepath.Ext(sweepPlot))
		}
		if err := writeFile(sweepPlot, render); err != nil {
			return err
		}
		fmt.Fprintf(out, "plot written to %s\n", sweepPlot)
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
