package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/nodal"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "amp",
	Short: "Transistor amplifier bias and small-signal analyzer",
	Long: `Closed-form DC bias and small-signal AC analysis of BJT, JFET,
D-MOSFET and E-MOSFET amplifier configurations.

Examples:
  amp list bjt                                              # BJT topologies and their parameters
  amp analyze bjt fixed-bias dc Vcc=20 Rb=470k Rc=3k beta=100
  amp analyze jfet sb ac Rg=1meg Rd=3.3k Rs=1k Idss=8m Vp=-6 rd=50k
  amp batch jobs.txt --workers 4                            # Run a job file`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			analysis.Logger.SetOutput(io.Discard)
			nodal.Trace = nil
			return
		}
		analysis.Logger.SetOutput(cmd.ErrOrStderr())
		analysis.Logger.SetFlags(log.LstdFlags | log.Lshortfile)
		nodal.Trace = cmd.ErrOrStderr()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace requests, batch workers and nodal systems to stderr")
}
