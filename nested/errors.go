// SPDX-License-Identifier: MIT
// Package: nestplot/nested
//
// errors.go — sentinel errors for spec validation and evaluation.
// Callers MUST branch with errors.Is; messages are stable.

package nested

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSpec indicates a structurally invalid model spec (missing response,
	// no predictors, empty dichotomy sides, unknown or duplicate categories).
	ErrBadSpec = errors.New("nested: invalid model spec")

	// ErrNotNested indicates the dichotomies do not form a single binary tree
	// over the response categories.
	ErrNotNested = errors.New("nested: dichotomies are not nested")

	// ErrCategoryMismatch indicates the spec's categories disagree with the
	// response levels observed in the data.
	ErrCategoryMismatch = errors.New("nested: categories disagree with response levels")

	// ErrUnknownTerm indicates a coefficient name that matches no intercept,
	// numeric predictor, or factor dummy.
	ErrUnknownTerm = errors.New("nested: unknown coefficient term")

	// ErrBadCoefficients indicates mismatched term/coefficient/covariance sizes.
	ErrBadCoefficients = errors.New("nested: coefficient shape mismatch")

	// ErrMissingPredictor indicates newdata lacks a predictor column.
	ErrMissingPredictor = errors.New("nested: predictor missing from newdata")

	// ErrKindMismatch indicates a newdata column whose kind differs from training.
	ErrKindMismatch = errors.New("nested: predictor kind differs from training data")

	// ErrUnknownLevel indicates a categorical value not seen in training.
	ErrUnknownLevel = errors.New("nested: level not in training data")

	// ErrForeignPrediction indicates ConfInt received a prediction from another model.
	ErrForeignPrediction = errors.New("nested: prediction not produced by this model")

	// ErrBadLevel indicates a confidence level outside (0, 1).
	ErrBadLevel = errors.New("nested: confidence level must be in (0, 1)")

	// ErrNoCovariance indicates ConfInt on a dichotomy without a covariance matrix.
	ErrNoCovariance = errors.New("nested: dichotomy has no covariance matrix")
)

// nestedErrorf wraps an inner message with the operation name: "<op>: <msg>".
func nestedErrorf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", op, fmt.Errorf(format, args...))
}
