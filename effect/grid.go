// SPDX-License-Identifier: MIT
// Package: nestplot/effect
//
// grid.go — Grid Builder.
//
// Contract:
//   • Numeric sweep: n evenly spaced points, first = observed min, last = observed max.
//   • Categorical sweep: every level once, in natural order.
//   • Every other predictor column is constant; columns follow formula order.
//   • The sweep order produced here is the plotting order; nothing re-sorts it.

package effect

import (
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/model"
)

// DefaultResolution is the number of grid points for a numeric sweep.
const DefaultResolution = 100

// BuildGrid expands ax into an evaluation grid for m.
// n is ignored for a categorical sweep.
// Complexity: O(n · p) for p predictors.
func BuildGrid(m model.Model, ax Axis, n int) (*frame.Frame, error) {
	const op = "BuildGrid"
	if m == nil {
		return nil, effectErrorf(op, "%w", ErrNilModel)
	}

	sweep, err := sweepColumn(ax, n)
	if err != nil {
		return nil, effectErrorf(op, "%w", err)
	}
	rows := sweep.Len()

	grid := frame.New()
	for _, p := range m.Predictors() {
		col := sweep
		if p.Name != ax.Sweep {
			v, ok := ax.Setting(p.Name)
			if !ok {
				return nil, effectErrorf(op, "predictor %q has no fixed value: %w", p.Name, ErrUnknownPredictor)
			}
			if col, err = fixedColumn(p, v, rows); err != nil {
				return nil, effectErrorf(op, "predictor %q: %v: %w", p.Name, err, ErrPredictionFailure)
			}
		}
		if err = grid.Add(col); err != nil {
			return nil, effectErrorf(op, "%w", err)
		}
	}

	return grid, nil
}

// sweepColumn materializes the sweep settings.
func sweepColumn(ax Axis, n int) (*frame.Column, error) {
	p := ax.Predictor
	if ax.Kind == frame.Categorical {
		return frame.NewFactor(p.Name, p.Levels, p.Levels)
	}
	if n < 2 {
		return nil, effectErrorf("sweepColumn", "n=%d: %w", n, ErrBadResolution)
	}
	return frame.NewNumeric(p.Name, Linspace(p.Min, p.Max, n)), nil
}

// fixedColumn repeats v. A level outside the predictor's level set keeps
// only itself as level set so the model can reject it.
func fixedColumn(p model.Predictor, v frame.Value, rows int) (*frame.Column, error) {
	var levels []string
	if v.Kind() == frame.Categorical && p.Kind == frame.Categorical {
		for _, l := range p.Levels {
			if l == v.Str() {
				levels = p.Levels
				break
			}
		}
	}
	return frame.Constant(p.Name, v, rows, levels)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// The last value is hi exactly.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
