// SPDX-License-Identifier: MIT
// Package: nestplot/effect
//
// fetch.go — Prediction Fetcher.
//
// Contract:
//   • The model's probability columns must cover exactly m.Categories(),
//     each with one value per grid row.
//   • level == 0 requests no intervals; otherwise every category gets a
//     Lower and an Upper column of the same length.
//   • Any collaborator error or shape mismatch is ErrPredictionFailure.

package effect

import (
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/model"
)

// DefaultConfLevel is the confidence level used when the caller sets none.
const DefaultConfLevel = 0.95

// Fetch evaluates m on grid and attaches fitted probabilities and, when
// level > 0, pointwise bounds at that level.
func Fetch(m model.Model, grid *frame.Frame, ax Axis, level float64) (*Table, error) {
	const op = "Fetch"
	if m == nil {
		return nil, effectErrorf(op, "%w", ErrNilModel)
	}
	if grid == nil {
		return nil, effectErrorf(op, "nil grid: %w", ErrPredictionFailure)
	}
	cats := m.Categories()
	rows := grid.Rows()

	// Stage 1: fitted probabilities.
	pred, err := m.Predict(grid)
	if err != nil {
		return nil, effectErrorf(op, "predict: %v: %w", err, ErrPredictionFailure)
	}
	if pred.Rows() != rows {
		return nil, effectErrorf(op, "prediction has %d rows, grid has %d: %w", pred.Rows(), rows, ErrPredictionFailure)
	}
	probs := pred.Probabilities()
	if len(probs) != len(cats) {
		return nil, effectErrorf(op, "%d probability columns for %d categories: %w", len(probs), len(cats), ErrPredictionFailure)
	}

	t := &Table{
		Grid:       grid,
		Axis:       ax,
		Categories: cats,
		cols:       make(map[Key][]float64, 3*len(cats)),
	}
	for _, c := range cats {
		col, ok := probs[c]
		if !ok || len(col) != rows {
			return nil, effectErrorf(op, "category %q: missing or misaligned probabilities: %w", c, ErrPredictionFailure)
		}
		t.cols[Key{Category: c, Bound: Point}] = col
	}
	if level == 0 {
		return t, nil
	}

	// Stage 2: bounds.
	ci, err := m.ConfInt(pred, level)
	if err != nil {
		return nil, effectErrorf(op, "confint at %v: %v: %w", level, err, ErrPredictionFailure)
	}
	for _, c := range cats {
		iv, ok := ci[c]
		if !ok || len(iv.Lower) != rows || len(iv.Upper) != rows {
			return nil, effectErrorf(op, "category %q: missing or misaligned bounds: %w", c, ErrPredictionFailure)
		}
		t.cols[Key{Category: c, Bound: Lower}] = iv.Lower
		t.cols[Key{Category: c, Bound: Upper}] = iv.Upper
	}
	t.Level = level

	return t, nil
}
