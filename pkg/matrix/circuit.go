package matrix

import (
	"fmt"
	"io"

	"github.com/edp1096/sparse"
)

// CircuitMatrix is a real modified-nodal-analysis system A·x = b. Node rows
// come first, followed by one row per voltage-source branch.
type CircuitMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
}

func NewMatrix(size int) (*CircuitMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("matrix size must be positive (got %d)", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &CircuitMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
	}, nil
}

func (m *CircuitMatrix) inBounds(i int) bool {
	return i > 0 && i <= m.Size
}

// AddElement adds value to A[i][j]. Index 0 is ground and is dropped.
func (m *CircuitMatrix) AddElement(i, j int, value float64) {
	if !m.inBounds(i) || !m.inBounds(j) {
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

// AddRHS adds value to b[i]. Index 0 is ground and is dropped.
func (m *CircuitMatrix) AddRHS(i int, value float64) {
	if !m.inBounds(i) {
		return
	}
	m.rhs[i] += value
}

func (m *CircuitMatrix) Element(i, j int) float64 {
	if !m.inBounds(i) || !m.inBounds(j) {
		return 0
	}
	return m.matrix.GetElement(int64(i), int64(j)).Real
}

func (m *CircuitMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *CircuitMatrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	solution, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}
	m.solution = solution
	return nil
}

func (m *CircuitMatrix) RHS() []float64 {
	return m.rhs
}

// Solution returns x with x[0] unused.
func (m *CircuitMatrix) Solution() []float64 {
	return m.solution
}

// PrintSystem writes the equations row by row followed by the RHS vector.
func (m *CircuitMatrix) PrintSystem(w io.Writer) {
	fmt.Fprintf(w, "Circuit Equations (%dx%d):\n", m.Size, m.Size)
	fmt.Fprintln(w, "Node equations 1..n, followed by branch equations")

	for i := 1; i <= m.Size; i++ {
		fmt.Fprintf(w, "Equation %d:", i)
		for j := 1; j <= m.Size; j++ {
			if v := m.Element(i, j); v != 0 {
				fmt.Fprintf(w, "  %+g*x%d", v, j)
			}
		}
		fmt.Fprintf(w, " = %g\n", m.rhs[i])
	}
}

func (m *CircuitMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
		m.matrix = nil
	}
}
