// Package effect turns a fitted model into the table an effect plot is drawn from.
//
// 🚀 What is effect?
//
// The first three stages of the plotting pipeline, run strictly in order:
//
//  1. Resolve   — pick the sweep predictor and pin every other predictor
//     to exactly one value (defaults are logged as advisories);
//  2. BuildGrid — expand the sweep predictor into an evaluation grid
//     (evenly spaced for numeric, every level for categorical);
//  3. Fetch     — ask the model for fitted probabilities and, optionally,
//     pointwise confidence bounds, and check they line up with the grid.
//
// ✨ Key features
//
//   - Predictor kind is resolved once (frame.Kind) and threaded through.
//   - Table columns are addressed by a structured Key{Category, Bound};
//     legacy names like "work.p" or "work.0.025" exist only for export.
//   - One shared y range (Table.YRange) feeds every renderer.
//   - Every failure is a sentinel from errors.go and happens before drawing.
//
// ⚙️ Usage
//
//	ax, err := effect.Resolve(m, effect.Request{Sweep: "hincome"}, logger)
//	grid, err := effect.BuildGrid(m, ax, effect.DefaultResolution)
//	tbl, err := effect.Fetch(m, grid, ax, 0.95)
//	lo, hi := tbl.YRange()
//	title := effect.Title(ax, effect.DefaultDigits)
package effect
