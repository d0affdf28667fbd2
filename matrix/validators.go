// SPDX-License-Identifier: MIT
// Package: matrix
//
// Validators return wrapped sentinels and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ eps on the upper triangle.
func ValidateSymmetric(a *Dense, eps float64) error {
	if a == nil {
		return matrixErrorf(opValidateSymm, ErrNilMatrix)
	}
	if a.r != a.c {
		return matrixErrorf(opValidateSymm, ErrNonSquare)
	}
	for i := 0; i < a.r; i++ {
		for j := i + 1; j < a.c; j++ {
			if math.Abs(a.data[i*a.c+j]-a.data[j*a.c+i]) > eps {
				return matrixErrorf(opValidateSymm, fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}
	return nil
}

// ValidateCovariance checks that a is an n×n symmetric matrix with a
// non-negative diagonal. Positive semi-definiteness is not verified.
func ValidateCovariance(a *Dense, n int, eps float64) error {
	if a == nil {
		return matrixErrorf(opValidateCov, ErrNilMatrix)
	}
	if a.r != n || a.c != n {
		return matrixErrorf(opValidateCov, fmt.Errorf("%dx%d, want %dx%d: %w", a.r, a.c, n, n, ErrDimensionMismatch))
	}
	if err := ValidateSymmetric(a, eps); err != nil {
		return matrixErrorf(opValidateCov, err)
	}
	for i := 0; i < n; i++ {
		if a.data[i*n+i] < 0 {
			return matrixErrorf(opValidateCov, fmt.Errorf("(%d,%d): %w", i, i, ErrNegativeVariance))
		}
	}
	return nil
}
