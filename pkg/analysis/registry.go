// Package analysis maps device families and topology names to analyzers and
// runs analysis requests, one at a time or as a concurrent batch.
package analysis

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/CanGulmez/transistor-analyzes/pkg/bjt"
	"github.com/CanGulmez/transistor-analyzes/pkg/device"
	"github.com/CanGulmez/transistor-analyzes/pkg/fet"
	"github.com/CanGulmez/transistor-analyzes/pkg/mosfet"
)

var ErrUnknownTopology = errors.New("unknown topology")

// Logger receives request tracing. It discards output until the caller
// replaces it.
var Logger = log.New(io.Discard, "", 0)

// Entry describes one topology of a family.
type Entry struct {
	Family  device.Family
	Name    string   // Long name, e.g. "voltage-divider"
	Codes   []string // Short codes, e.g. "vd"
	Summary string
	New     func() device.Analyzer
}

var registry = []Entry{
	{device.BJT, "fixed-bias", []string{"fb"}, "base resistor from Vcc, grounded emitter",
		func() device.Analyzer { return &bjt.FixedBias{} }},
	{device.BJT, "emitter-bias", []string{"eb"}, "fixed bias with emitter resistor",
		func() device.Analyzer { return &bjt.EmitterBias{} }},
	{device.BJT, "voltage-divider", []string{"vd"}, "base divider, emitter resistor bypassed or not",
		func() device.Analyzer { return &bjt.VoltageDivider{} }},
	{device.BJT, "collector-feedback", []string{"cf"}, "collector to base feedback resistor",
		func() device.Analyzer { return &bjt.CollectorFeedback{} }},
	{device.BJT, "collector-dc-feedback", []string{"cdf"}, "split feedback decoupled at midpoint (ac only)",
		func() device.Analyzer { return &bjt.CollectorDCFeedback{} }},
	{device.BJT, "emitter-follower", []string{"ef"}, "common collector",
		func() device.Analyzer { return &bjt.EmitterFollower{} }},
	{device.BJT, "common-base", []string{"cb"}, "grounded base, emitter supply",
		func() device.Analyzer { return &bjt.CommonBase{} }},
	{device.BJT, "miscellaneous-bias", []string{"mb"}, "base resistor from collector, grounded emitter (dc only)",
		func() device.Analyzer { return &bjt.MiscBias{} }},

	{device.FET, "fixed-bias", []string{"fb"}, "negative gate supply, grounded source",
		func() device.Analyzer { return &fet.FixedBias{} }},
	{device.FET, "self-bias", []string{"sb"}, "source resistor, grounded gate",
		func() device.Analyzer { return &fet.SelfBias{} }},
	{device.FET, "voltage-divider", []string{"vd"}, "gate divider with source resistor",
		func() device.Analyzer { return &fet.VoltageDivider{} }},
	{device.FET, "common-gate", []string{"cg"}, "grounded gate, source supply",
		func() device.Analyzer { return &fet.CommonGate{} }},
	{device.FET, "source-follower", []string{"sf"}, "common drain (ac only)",
		func() device.Analyzer { return &fet.SourceFollower{} }},

	{device.EMOSFET, "drain-feedback", []string{"df", "fb"}, "drain to gate feedback resistor",
		func() device.Analyzer { return &mosfet.DrainFeedback{} }},
	{device.EMOSFET, "voltage-divider", []string{"vd"}, "gate divider with source resistor",
		func() device.Analyzer { return &mosfet.VoltageDivider{} }},
}

// ParseFamily accepts bjt, jfet, fet, dmosfet and emosfet, with or without
// a hyphen.
func ParseFamily(s string) (device.Family, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "bjt":
		return device.BJT, nil
	case "fet", "jfet", "dmosfet":
		return device.FET, nil
	case "emosfet", "mosfet":
		return device.EMOSFET, nil
	}
	return 0, fmt.Errorf("%w: device family %q", ErrUnknownTopology, s)
}

// Topologies lists the entries of family in menu order.
func Topologies(family device.Family) []Entry {
	var entries []Entry
	for _, e := range registry {
		if e.Family == family {
			entries = append(entries, e)
		}
	}
	return entries
}

// Lookup finds a topology of family by long name or short code.
func Lookup(family device.Family, name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.Family != family {
			continue
		}
		if e.Name == key {
			return e, nil
		}
		for _, code := range e.Codes {
			if code == key {
				return e, nil
			}
		}
	}
	return Entry{}, fmt.Errorf("%w: %v %q", ErrUnknownTopology, family, name)
}

// Modes reports which analysis modes the topology models: a mode is
// modelled when at least one parameter is read by it.
func (e Entry) Modes() []device.Mode {
	var modes []device.Mode
	params := e.New().Params()
	for _, m := range []device.Mode{device.DC, device.AC} {
		for _, p := range params {
			if p.Uses.Has(m) {
				modes = append(modes, m)
				break
			}
		}
	}
	return modes
}
