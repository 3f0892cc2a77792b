package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
)

var listCmd = &cobra.Command{
	Use:   "list [family]",
	Short: "List topologies, their codes and parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	families := device.Families()
	if len(args) == 1 {
		f, err := analysis.ParseFamily(args[0])
		if err != nil {
			return err
		}
		families = []device.Family{f}
	}

	out := cmd.OutOrStdout()
	for _, family := range families {
		fmt.Fprintf(out, "%s:\n", strings.ToUpper(family.String()))
		for _, e := range analysis.Topologies(family) {
			var modes []string
			for _, m := range e.Modes() {
				modes = append(modes, m.String())
			}
			fmt.Fprintf(out, "  %-22s %-7s %-6s %s\n", e.Name, strings.Join(e.Codes, ","), strings.Join(modes, ","), e.Summary)

			a := e.New()
			for _, p := range a.Params() {
				unit := p.Unit
				if unit == "" {
					unit = "-"
				}
				fmt.Fprintf(out, "      %-6s %-4s %-3s %s\n", p.Name, unit, usage(p.Uses), p.Desc)
			}
			if fl, ok := a.(device.Flagged); ok {
				for _, f := range fl.Flags() {
					fmt.Fprintf(out, "      --flag %-10s %s\n", f.Name, f.Desc)
				}
			}
		}
	}
	return nil
}

func usage(m device.Modes) string {
	switch m {
	case device.UsedInDC:
		return "dc"
	case device.UsedInAC:
		return "ac"
	}
	return "all"
}
