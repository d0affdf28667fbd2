// SPDX-License-Identifier: MIT
// Package: nestplot/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Option constructors panic on meaningless input; generators never do.

package dataset

import (
	"errors"
	"fmt"
)

// ErrTooFewRows indicates a requested row count below the minimum.
var ErrTooFewRows = errors.New("dataset: too few rows")

// ErrNeedRandSource indicates a generator called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("dataset: rng is required")

func datasetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
