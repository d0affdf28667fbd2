// SPDX-License-Identifier: MIT
// Package: matrix
//
// Dense is a row-major matrix of float64 values stored in one flat slice.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Operation names used for error wrapping.
const (
	opNewDense     = "NewDense"
	opFromRows     = "FromRows"
	opAt           = "Dense.At"
	opSet          = "Dense.Set"
	opMatVec       = "MatVec"
	opQuadForm     = "QuadForm"
	opValidateCov  = "ValidateCovariance"
	opValidateSymm = "ValidateSymmetric"
)

// Dense is a row-major matrix: r rows, c columns, data holds r*c elements.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero matrix.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies a rectangular [][]float64 into a Dense.
// Stage 1 (Validate): non-empty, rectangular, finite.
// Stage 2 (Execute): copy row by row into the flat buffer.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opFromRows, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}
	return row*m.c + col, true
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, ok := m.indexOf(row, col)
	if !ok {
		return 0, matrixErrorf(opAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, ok := m.indexOf(row, col)
	if !ok {
		return matrixErrorf(opSet, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i (nil when out of range).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
