package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/jobfile"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <jobfile>",
	Short: "Run every request of a job file",
	Long: `Run the requests of a job file concurrently and print the results in
file order. Each line holds one request:

  # family topology mode name=value... [flag...]
  bjt fixed-bias dc Vcc=20 Rb=470k Rc=3k beta=100
  jfet fb dc Vdd=16 Vgg=2 Rd=2k Idss=8m Vp=-6`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", runtime.NumCPU(),
		"maximum concurrent analyses")
}

func runBatch(cmd *cobra.Command, args []string) error {
	entries, err := jobfile.ParseFile(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s: no jobs", args[0])
	}

	reqs := make([]analysis.Request, len(entries))
	for i, e := range entries {
		reqs[i] = e.Request
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, o := range analysis.RunBatch(reqs, batchWorkers) {
		title := fmt.Sprintf("[line %d] %v", entries[o.Index].Line, o.Request)
		if o.Err != nil {
			failed++
			fmt.Fprintf(out, "%s\n  error: %v\n\n", title, o.Err)
			continue
		}
		printResult(out, title, o.Result)
		fmt.Fprintln(out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(entries))
	}
	return nil
}
