package matrix

// Stamper is the view of the system an element needs to load itself.
type Stamper interface {
	AddElement(i, j int, value float64) // 1-based indexing
	AddRHS(i int, value float64)
}
