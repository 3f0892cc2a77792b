// Package nodal solves linear DC networks of resistors, independent voltage
// sources and current-controlled current sources by modified nodal analysis.
package nodal

import (
	"fmt"
	"io"
	"sort"

	"github.com/CanGulmez/transistor-analyzes/pkg/matrix"
)

type kind int

const (
	resistor kind = iota
	voltageSource
	cccs
)

type element struct {
	kind    kind
	name    string
	nodes   [2]string
	value   float64
	control string // controlling voltage source, cccs only
}

// Network is a netlist under construction. Node "0" and "gnd" are ground.
type Network struct {
	elements []element
	nodeMap  map[string]int
	// branchMap holds the extra MNA row of every voltage source.
	branchMap map[string]int
}

// Trace, when set, receives every assembled system before factorization.
var Trace io.Writer

func New() *Network {
	return &Network{}
}

func isGround(node string) bool {
	return node == "0" || node == "gnd"
}

// AddResistor connects r ohms between n1 and n2.
func (n *Network) AddResistor(name, n1, n2 string, r float64) {
	n.elements = append(n.elements, element{kind: resistor, name: name, nodes: [2]string{n1, n2}, value: r})
}

// AddVoltageSource holds V(pos) - V(neg) = v. Its branch current is the
// current flowing from pos through the source to neg.
func (n *Network) AddVoltageSource(name, pos, neg string, v float64) {
	n.elements = append(n.elements, element{kind: voltageSource, name: name, nodes: [2]string{pos, neg}, value: v})
}

// AddCCCS drives gain times the branch current of the voltage source
// control from node from through the element to node to.
func (n *Network) AddCCCS(name, from, to, control string, gain float64) {
	n.elements = append(n.elements, element{kind: cccs, name: name, nodes: [2]string{from, to}, value: gain, control: control})
}

func (n *Network) assignNodeBranchMaps() error {
	n.nodeMap = make(map[string]int)
	n.branchMap = make(map[string]int)

	names := make(map[string]bool)
	for _, e := range n.elements {
		if names[e.name] {
			return fmt.Errorf("duplicate element %s", e.name)
		}
		names[e.name] = true

		for _, node := range e.nodes {
			if node == "" {
				return fmt.Errorf("element %s: empty node name", e.name)
			}
			if isGround(node) {
				continue
			}
			if _, exists := n.nodeMap[node]; !exists {
				n.nodeMap[node] = len(n.nodeMap) + 1
			}
		}
	}

	branchStart := len(n.nodeMap) + 1
	for _, e := range n.elements {
		if e.kind == voltageSource {
			n.branchMap[e.name] = branchStart
			branchStart++
		}
	}
	return nil
}

func (n *Network) index(node string) int {
	if isGround(node) {
		return 0
	}
	return n.nodeMap[node]
}

func (n *Network) stamp(m matrix.Stamper, e element) error {
	n1, n2 := n.index(e.nodes[0]), n.index(e.nodes[1])

	switch e.kind {
	case resistor:
		if !(e.value > 0) {
			return fmt.Errorf("resistor %s: value must be positive (got %g)", e.name, e.value)
		}
		g := 1.0 / e.value
		m.AddElement(n1, n1, g)
		m.AddElement(n1, n2, -g)
		m.AddElement(n2, n1, -g)
		m.AddElement(n2, n2, g)

	case voltageSource:
		bIdx := n.branchMap[e.name]
		m.AddElement(bIdx, n1, 1)
		m.AddElement(n1, bIdx, 1)
		m.AddElement(bIdx, n2, -1)
		m.AddElement(n2, bIdx, -1)
		m.AddRHS(bIdx, e.value)

	case cccs:
		bIdx, ok := n.branchMap[e.control]
		if !ok {
			return fmt.Errorf("cccs %s: controlling source %s not found", e.name, e.control)
		}
		m.AddElement(n1, bIdx, e.value)
		m.AddElement(n2, bIdx, -e.value)
	}
	return nil
}

// Solve assembles and solves the network.
func (n *Network) Solve() (*Solution, error) {
	if len(n.elements) == 0 {
		return nil, fmt.Errorf("empty network")
	}
	if err := n.assignNodeBranchMaps(); err != nil {
		return nil, err
	}

	size := len(n.nodeMap) + len(n.branchMap)
	m, err := matrix.NewMatrix(size)
	if err != nil {
		return nil, err
	}
	defer m.Destroy()

	for _, e := range n.elements {
		if err := n.stamp(m, e); err != nil {
			return nil, fmt.Errorf("stamping: %v", err)
		}
	}

	if Trace != nil {
		m.PrintSystem(Trace)
	}

	if err := m.Solve(); err != nil {
		return nil, err
	}

	x := m.Solution()
	sol := &Solution{
		voltages: make(map[string]float64, len(n.nodeMap)),
		currents: make(map[string]float64, len(n.branchMap)),
	}
	for name, idx := range n.nodeMap {
		sol.voltages[name] = x[idx]
	}
	for name, idx := range n.branchMap {
		sol.currents[name] = x[idx]
	}
	return sol, nil
}

// Solution holds node voltages and voltage-source branch currents.
type Solution struct {
	voltages map[string]float64
	currents map[string]float64
}

// V returns the voltage of node. Ground and unknown nodes read 0.
func (s *Solution) V(node string) float64 {
	return s.voltages[node]
}

// I returns the branch current of a voltage source, positive when flowing
// from its positive node through the source.
func (s *Solution) I(source string) float64 {
	return s.currents[source]
}

// Nodes lists the non-ground node names in sorted order.
func (s *Solution) Nodes() []string {
	nodes := make([]string, 0, len(s.voltages))
	for name := range s.voltages {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}
