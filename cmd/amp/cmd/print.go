package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/CanGulmez/transistor-analyzes/pkg/analysis"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/util"
)

func printResult(w io.Writer, title string, res device.Result) {
	fmt.Fprintf(w, "%s (%s):\n", title, strings.ToUpper(res.Mode().String()))
	for _, q := range res.Quantities() {
		v, ok := q.Value.Get()
		fmt.Fprintf(w, "  %-6s = %s\n", q.Name, util.FormatQuantity(v, ok, q.Unit))
	}
	if pr, ok := res.(device.PhaseResult); ok {
		fmt.Fprintf(w, "  %-6s = %v\n", "phase", pr.PhaseRelation())
	}
}

// parseRequest reads "family topology mode name=value... [flag...]".
func parseRequest(args, flags []string) (analysis.Request, error) {
	family, err := analysis.ParseFamily(args[0])
	if err != nil {
		return analysis.Request{}, err
	}
	entry, err := analysis.Lookup(family, args[1])
	if err != nil {
		return analysis.Request{}, err
	}
	mode, err := device.ParseMode(args[2])
	if err != nil {
		return analysis.Request{}, err
	}

	req := analysis.Request{
		Family:   family,
		Topology: entry.Name,
		Mode:     mode,
		Values:   make(map[string]float64),
		Flags:    append([]string(nil), flags...),
	}
	for _, arg := range args[3:] {
		if !strings.Contains(arg, "=") {
			req.Flags = append(req.Flags, arg)
			continue
		}
		name, value, err := util.ParseAssignment(arg)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("%w: %v", device.ErrInvalidParameter, err)
		}
		if _, dup := req.Values[name]; dup {
			return analysis.Request{}, fmt.Errorf("%s given twice: %w", name, device.ErrInvalidParameter)
		}
		req.Values[name] = value
	}
	return req, nil
}
