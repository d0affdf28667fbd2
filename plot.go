// SPDX-License-Identifier: MIT
// Package: nestplot
//
// plot.go — entry points.
//
// Contract:
//   • Stages run strictly in order: resolve → grid → fetch → render → annotate.
//   • Every resolver, grid and fetch error is returned before the first
//     surface call, so a failed Plot leaves the surface untouched.
//   • The model is only read; nothing is retained after the call.
//
// Complexity: O(n·k) for n grid rows and k categories, plus the model's
// own prediction cost.

package nestplot

import (
	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/model"
	"github.com/katalvlaran/nestplot/render"
)

// Result is what a call resolved and computed.
type Result struct {
	Axis  effect.Axis
	Table *effect.Table
	// Notes repeats Axis.Notes: the advisories for every choice made on
	// the caller's behalf.
	Notes []effect.Note
}

// Predict runs the resolve, grid and fetch stages without drawing.
func Predict(m model.Model, opts ...Option) (*Result, error) {
	return predict(m, newPlotConfig(opts...))
}

// Plot draws the fitted-probability plot of m onto s.
func Plot(m model.Model, s render.Surface, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, plotErrorf("Plot", ErrNilSurface)
	}
	cfg := newPlotConfig(opts...)
	res, err := predict(m, cfg)
	if err != nil {
		return nil, err
	}

	// Stage 4: draw with the renderer matching the sweep kind.
	if err = render.For(res.Axis.Kind).Render(s, res.Table, cfg.style); err != nil {
		return nil, plotErrorf("Plot", err)
	}
	cfg.log.Debug("plot drawn",
		"kind", res.Axis.Kind.String(),
		"categories", len(res.Table.Categories),
		"intervals", res.Table.HasIntervals(),
	)
	return res, nil
}

func predict(m model.Model, cfg plotConfig) (*Result, error) {
	// Stage 1: sweep variable and fixed values.
	ax, err := effect.Resolve(m, cfg.request(), cfg.log)
	if err != nil {
		return nil, plotErrorf("Predict", err)
	}

	// Stage 2: evaluation grid.
	grid, err := effect.BuildGrid(m, ax, cfg.resolution)
	if err != nil {
		return nil, plotErrorf("Predict", err)
	}

	// Stage 3: probabilities and bounds.
	tbl, err := effect.Fetch(m, grid, ax, cfg.level)
	if err != nil {
		return nil, plotErrorf("Predict", err)
	}
	cfg.log.Debug("prediction table ready",
		"sweep", ax.Sweep,
		"rows", tbl.Rows(),
		"level", tbl.Level,
	)
	return &Result{Axis: ax, Table: tbl, Notes: ax.Notes}, nil
}
