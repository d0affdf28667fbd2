// Package render draws an effect.Table as a fitted-probability plot.
//
// 🚀 What is render?
//
// The last two stages of the plotting pipeline: a Renderer turns a
// prediction table into calls on a Surface, and the Surface turns those
// calls into pixels (or into a record, for tests).
//
// ✨ Key features
//
//   - Two Renderers behind one interface:
//     Continuous  — shaded bands first, then one line per category;
//     Categorical — whiskers with caps, then markers at positions 1..k,
//     custom tick labels and a box frame.
//   - One shared y range (effect.Table.YRange) for every series.
//   - Colors come from an explicit palette sized to the category count;
//     line types and marker shapes cycle the same way.
//   - ChartSurface is backed by github.com/wcharczuk/go-chart/v2 and writes
//     PNG or SVG; Recorder captures every call for assertions.
//
// ⚙️ Usage
//
//	s := render.NewChartSurface(render.WithSize(800, 600))
//	if err := render.For(tbl.Axis.Kind).Render(s, tbl, render.DefaultStyle()); err != nil { ... }
//	err := s.Render(w)
//
// Surfaces are owned by one plot call and are not safe for concurrent use.
package render
