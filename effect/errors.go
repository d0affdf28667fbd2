// SPDX-License-Identifier: MIT
// Package: nestplot/effect
//
// errors.go — sentinel errors of the resolve/grid/fetch stages.
// All of them are raised before anything is drawn.

package effect

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil model handle.
	ErrNilModel = errors.New("effect: nil model")

	// ErrInvalidPredictor indicates a sweep variable that is not a model predictor.
	ErrInvalidPredictor = errors.New("effect: sweep variable is not a predictor")

	// ErrMultiValuedFixedInput indicates a fixed-value entry without exactly one value.
	ErrMultiValuedFixedInput = errors.New("effect: fixed value must be a single value")

	// ErrUnknownPredictor indicates a fixed-value key that is not a model predictor.
	ErrUnknownPredictor = errors.New("effect: fixed value names an unknown predictor")

	// ErrPredictionFailure indicates the model could not evaluate the grid,
	// or returned columns that do not match its categories and the grid rows.
	ErrPredictionFailure = errors.New("effect: prediction failed")

	// ErrBadResolution indicates fewer than two points for a numeric sweep.
	ErrBadResolution = errors.New("effect: resolution must be at least 2")
)

// effectErrorf prefixes a formatted error with the operation name.
func effectErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", op, fmt.Errorf(format, args...))
}
