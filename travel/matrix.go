// SPDX-License-Identifier: MIT
// Package: maneuvergen/travel
//
// matrix.go - Matrix, a square row-major travel-time table over locations 0..n.

package travel

import (
	"fmt"
	"strings"
)

// Matrix is an (n+1)×(n+1) table of travel times stored in a flat slice.
type Matrix struct {
	n    int       // switch count; order is n+1
	data []float64 // row-major, len == (n+1)*(n+1)
}

// NewMatrix returns a zero matrix over locations 0..n.
// Complexity: O(n²) time and memory.
func NewMatrix(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewMatrix: n=%d: %w", n, ErrInvalidSize)
	}
	o := n + 1
	return &Matrix{n: n, data: make([]float64, o*o)}, nil
}

// N returns the switch count.
func (m *Matrix) N() int { return m.n }

// Order returns the number of rows (n+1).
func (m *Matrix) Order() int { return m.n + 1 }

func (m *Matrix) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i > m.n || j < 0 || j > m.n {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}
	return i*(m.n+1) + j, nil
}

// At returns s[i][j].
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns s[i][j] = v.
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	start, err := m.indexOf("Row", i, 0)
	if err != nil {
		return nil, err
	}
	row := make([]float64, m.n+1)
	copy(row, m.data[start:start+m.n+1])
	return row, nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{n: m.n, data: data}
}

// Equal reports whether both matrices have the same order and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the matrix row by row for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	o := m.n + 1
	for i := 0; i < o; i++ {
		fmt.Fprintln(&sb, m.data[i*o:(i+1)*o])
	}
	return sb.String()
}

// Sample fills m matrices over n switches. Off-diagonal entries come from
// draw in team → row → column order; the diagonal is 0 and consumes nothing.
func Sample(n, m int, draw func() float64) ([]*Matrix, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("Sample: n=%d m=%d: %w", n, m, ErrInvalidSize)
	}
	if draw == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilDraw)
	}
	mats := make([]*Matrix, m)
	o := n + 1
	var k, i, j int
	for k = 0; k < m; k++ {
		mat, _ := NewMatrix(n) // n validated above
		for i = 0; i < o; i++ {
			for j = 0; j < o; j++ {
				if i != j {
					mat.data[i*o+j] = draw()
				}
			}
		}
		mats[k] = mat
	}
	return mats, nil
}
