// Package nestplot draws fitted-probability curves of a nested-dichotomies
// (nested logit) model: one predictor is swept over its observed range while
// every other predictor is held at a single value.
//
// 🚀 What is nestplot?
//
//	A small pipeline that turns a fitted polytomous model into an effect plot:
//		• Resolve:   pick the sweep variable, pin the rest (defaults logged)
//		• Grid:      evenly spaced points (numeric) or every level (categorical)
//		• Fetch:     fitted probabilities plus pointwise confidence bounds
//		• Render:    bands + lines, or whiskers + markers, on a shared y range
//		• Annotate:  legend and a "name = value" title of the fixed predictors
//
// ✨ Why nestplot?
//
//   - One call – Plot(m, surface, opts...) runs every stage in order
//   - Fails early – every validation error happens before the first draw
//   - Pluggable – any model.Model, any render.Surface
//   - Deterministic – the same inputs draw the same calls in the same order
//
// Under the hood:
//
//	frame/   — typed training-data columns, factor levels, CSV ingestion
//	matrix/  — dense matrices and quadratic forms for interval estimation
//	model/   — the model collaborator contract and predictor descriptors
//	nested/  — nested dichotomies with fixed coefficients (YAML specs)
//	effect/  — resolver, grid builder, prediction fetcher, prediction table
//	render/  — drawing-surface contract, go-chart surface, both renderers
//	dataset/ — seeded synthetic training data
//
// Quick example:
//
//	data, _ := dataset.Womenlf(263, dataset.WithSeed(1))
//	m, _ := dataset.WomenlfModel(data)
//	s := render.NewChartSurface(render.WithFormat(render.PNG))
//	res, err := nestplot.Plot(m, s,
//		nestplot.WithSweep("hincome"),
//		nestplot.WithFixedLevel("children", "present"),
//	)
//	_ = s.Render(w)
//
//	go get github.com/katalvlaran/nestplot
package nestplot
