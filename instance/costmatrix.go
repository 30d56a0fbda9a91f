package instance

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// valid range of a CostMatrix.
var ErrIndexOutOfBounds = errors.New("instance: index out of bounds")

// CostMatrix is a square, row-major table of arc costs, storing elements
// in a flat slice for cache friendliness. Entries default to 0; only
// positions backed by a real arc carry meaning.
type CostMatrix struct {
	n    int   // number of rows and columns
	data []int // flat backing storage, length == n*n
}

// NewCostMatrix creates an n×n cost matrix initialized to zeros.
// Complexity: O(n²) time and memory.
func NewCostMatrix(n int) *CostMatrix {
	return &CostMatrix{n: n, data: make([]int, n*n)}
}

// Size returns the edge length n of the matrix.
func (m *CostMatrix) Size() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds.
func (m *CostMatrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("CostMatrix(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At retrieves the cost at (row, col).
func (m *CostMatrix) At(row, col int) (int, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns cost v at (row, col).
func (m *CostMatrix) Set(row, col, v int) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}
