// SPDX-License-Identifier: MIT
// Package: matrix
//
// ops.go — products used by delta-method variance computation.
//
// Exposed API:
//   - MatVec(A, x)   -> A·x
//   - QuadForm(A, x) -> xᵀ·A·x
//
// Determinism: fixed i→j traversal.

package matrix

import "fmt"

// MatVec returns A·x.
// Complexity: O(r*c).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), a.c, ErrDimensionMismatch))
	}

	out := make([]float64, a.r)
	var s float64
	for i := 0; i < a.r; i++ {
		s = 0
		base := i * a.c
		for j := 0; j < a.c; j++ {
			s += a.data[base+j] * x[j]
		}
		out[i] = s
	}

	return out, nil
}

// QuadForm returns xᵀ·A·x for a square A.
// Complexity: O(n²) time, O(1) extra space.
func QuadForm(a *Dense, x []float64) (float64, error) {
	if a == nil {
		return 0, matrixErrorf(opQuadForm, ErrNilMatrix)
	}
	if a.r != a.c {
		return 0, matrixErrorf(opQuadForm, ErrNonSquare)
	}
	if len(x) != a.r {
		return 0, matrixErrorf(opQuadForm, fmt.Errorf("len(x)=%d, n=%d: %w", len(x), a.r, ErrDimensionMismatch))
	}

	var total, row float64
	for i := 0; i < a.r; i++ {
		if x[i] == 0 {
			continue // dummy-coded designs are mostly zeros
		}
		row = 0
		base := i * a.c
		for j := 0; j < a.c; j++ {
			row += a.data[base+j] * x[j]
		}
		total += x[i] * row
	}

	return total, nil
}
