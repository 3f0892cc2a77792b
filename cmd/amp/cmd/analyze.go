package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
)

var (
	analyzeFlags []string
	showNodal    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <family> <topology> <dc|ac> name=value...",
	Short: "Analyze one amplifier configuration",
	Long: `Compute the DC operating point or the small-signal AC model of one
configuration. Values accept SI suffixes (T G meg M k m u n p f).

Examples:
  amp analyze bjt fixed-bias dc Vcc=20 Rb=470k Rc=3k beta=100
  amp analyze bjt vd ac Vcc=22 Rb1=56k Rb2=8.2k Rc=6.8k Re=1.5k beta=90 ro=50k --flag bypassed
  amp analyze bjt eb dc Vcc=20 Rb=430k Rc=2k Re=1k beta=50 --nodal
  amp analyze emosfet df dc Vdd=12 Rd=2k IdOn=6m VgsOn=8 VgsTh=3`,
	Args: cobra.MinimumNArgs(3),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringSliceVarP(&analyzeFlags, "flag", "f", nil,
		"topology variant, e.g. bypassed")
	analyzeCmd.Flags().BoolVar(&showNodal, "nodal", false,
		"also solve the linear bias network (bjt dc)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(args, analyzeFlags)
	if err != nil {
		return err
	}

	res, err := analysis.Run(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printResult(out, fmt.Sprintf("%v %s", req.Family, req.Topology), res)

	if showNodal {
		nres, err := analysis.RunNodal(req)
		if err != nil {
			return fmt.Errorf("nodal solution: %w", err)
		}
		fmt.Fprintln(out)
		printResult(out, "Nodal solution", nres)
	}
	return nil
}
