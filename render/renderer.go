// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// renderer.go — Continuous and Categorical renderers.
//
// Contract:
//   • Axis is the first surface call; both renderers use Table.YRange.
//   • Bands/whiskers are drawn before lines/markers so they never cover them.
//   • No band, whisker or cap call is made when the table has no intervals.
//   • Surface errors are returned unchanged; drawing stops at the first one.
//   • Zero LineWidth, PointSize, BandAlpha and TitleSize take their Default*
//     values, so a zero Style renders like DefaultStyle's numbers.

package render

import (
	"math"

	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer draws a prediction table onto a surface.
type Renderer interface {
	Render(s Surface, t *effect.Table, st Style) error
}

// For returns the renderer for a sweep-variable kind.
func For(k frame.Kind) Renderer {
	if k == frame.Categorical {
		return Categorical{}
	}
	return Continuous{}
}

// Draw renders t with the renderer matching its sweep kind.
// Zero numeric style fields fall back to their Default* constants.
func Draw(s Surface, t *effect.Table, st Style) error {
	if t == nil {
		return renderErrorf("Draw", "%w", ErrEmptyTable)
	}
	return For(t.Axis.Kind).Render(s, t, st)
}

// layout is what both renderers derive from the table and style.
type layout struct {
	cats     []string
	colors   []drawing.Color
	lines    []LineType
	markers  []Marker
	width    float64
	size     float64
	alpha    float64
	ylo, yhi float64
}

func prepare(s Surface, t *effect.Table, st Style) (layout, error) {
	if t == nil || len(t.Categories) == 0 || t.Rows() == 0 {
		return layout{}, renderErrorf("prepare", "%w", ErrEmptyTable)
	}
	k := len(t.Categories)
	colors := st.Colors
	if len(colors) == 0 {
		colors = s.Palette()
	}
	lo, hi := t.YRange()
	lo, hi = padRange(lo, hi, 0.05)

	return layout{
		cats:    t.Categories,
		colors:  Cycle(colors, k),
		lines:   lineTypesFor(st.LineTypes, k),
		markers: markersFor(st.Markers, k),
		width:   positive(st.LineWidth, DefaultLineWidth),
		size:    positive(st.PointSize, DefaultPointSize),
		alpha:   positive(st.BandAlpha, DefaultBandAlpha),
		ylo:     lo,
		yhi:     hi,
	}, nil
}

// Continuous draws bands and lines over a numeric sweep.
type Continuous struct{}

// Render implements Renderer.
func (Continuous) Render(s Surface, t *effect.Table, st Style) error {
	lay, err := prepare(s, t, st)
	if err != nil {
		return err
	}
	xs := t.Sweep().Floats()
	xlo, xhi := xs[0], xs[len(xs)-1]
	for _, x := range xs {
		xlo, xhi = math.Min(xlo, x), math.Max(xhi, x)
	}
	xlo, xhi = padRange(xlo, xhi, 0.5)

	if err = s.Axis(AxisSpec{
		XLabel: orDefault(st.XLabel, t.Axis.Sweep),
		YLabel: orDefault(st.YLabel, DefaultYLabel),
		XMin:   xlo, XMax: xhi,
		YMin: lay.ylo, YMax: lay.yhi,
	}); err != nil {
		return err
	}

	// Stage 1: bands, upper edge left→right then lower edge right→left.
	if t.HasIntervals() {
		for i, c := range lay.cats {
			lower, _ := t.Column(effect.Key{Category: c, Bound: effect.Lower})
			upper, _ := t.Column(effect.Key{Category: c, Bound: effect.Upper})
			px := make([]float64, 0, 2*len(xs))
			py := make([]float64, 0, 2*len(xs))
			px = append(px, xs...)
			py = append(py, upper...)
			for j := len(xs) - 1; j >= 0; j-- {
				px = append(px, xs[j])
				py = append(py, lower[j])
			}
			if err = s.Polygon(Polygon{X: px, Y: py, Fill: lay.colors[i].WithAlpha(alpha8(lay.alpha))}); err != nil {
				return err
			}
		}
	}

	// Stage 2: fitted lines.
	entries := make([]LegendEntry, len(lay.cats))
	for i, c := range lay.cats {
		fit, _ := t.Column(effect.Key{Category: c, Bound: effect.Point})
		if err = s.Series(Path{
			Name: c, X: xs, Y: fit,
			Color: lay.colors[i], Width: lay.width, LineType: lay.lines[i],
			Line:  true,
			Extra: st.Series,
		}); err != nil {
			return err
		}
		entries[i] = LegendEntry{Label: c, Color: lay.colors[i], LineType: lay.lines[i], Width: lay.width, ShowLine: true}
	}

	return annotate(s, t, st, entries)
}

// Categorical draws whiskers and markers at positions 1..k.
type Categorical struct{}

// Render implements Renderer.
func (Categorical) Render(s Surface, t *effect.Table, st Style) error {
	lay, err := prepare(s, t, st)
	if err != nil {
		return err
	}
	levels := t.Sweep().Strings()
	k := len(levels)
	pos := make([]float64, k)
	ticks := make([]Tick, 0, k+2)
	ticks = append(ticks, Tick{Value: 0.5})
	for j, l := range levels {
		pos[j] = float64(j + 1)
		ticks = append(ticks, Tick{Value: pos[j], Label: l})
	}
	ticks = append(ticks, Tick{Value: float64(k) + 0.5})

	if err = s.Axis(AxisSpec{
		XLabel: orDefault(st.XLabel, t.Axis.Sweep),
		YLabel: orDefault(st.YLabel, DefaultYLabel),
		XMin:   0.5, XMax: float64(k) + 0.5,
		YMin: lay.ylo, YMax: lay.yhi,
		Ticks: ticks,
	}); err != nil {
		return err
	}

	// Stage 1: whiskers with end caps.
	if t.HasIntervals() {
		for i, c := range lay.cats {
			lower, _ := t.Column(effect.Key{Category: c, Bound: effect.Lower})
			upper, _ := t.Column(effect.Key{Category: c, Bound: effect.Upper})
			segs := make([]Segment, 0, 3*k)
			for j, x := range pos {
				segs = append(segs,
					Segment{X0: x, Y0: lower[j], X1: x, Y1: upper[j]},
					Segment{X0: x - capFraction, Y0: lower[j], X1: x + capFraction, Y1: lower[j]},
					Segment{X0: x - capFraction, Y0: upper[j], X1: x + capFraction, Y1: upper[j]},
				)
			}
			if err = s.Segments(Segments{Segs: segs, Color: lay.colors[i], Width: lay.width}); err != nil {
				return err
			}
		}
	}

	// Stage 2: markers, optionally connected.
	entries := make([]LegendEntry, len(lay.cats))
	for i, c := range lay.cats {
		fit, _ := t.Column(effect.Key{Category: c, Bound: effect.Point})
		if err = s.Series(Path{
			Name: c, X: pos, Y: fit,
			Color: lay.colors[i], Width: lay.width, LineType: lay.lines[i],
			Line:   st.ConnectPoints,
			Points: true, Marker: lay.markers[i], MarkerSize: lay.size,
			Extra: st.Series,
		}); err != nil {
			return err
		}
		entries[i] = LegendEntry{
			Label: c, Color: lay.colors[i], LineType: lay.lines[i], Width: lay.width,
			ShowLine: true, Marker: lay.markers[i], ShowMarker: true,
		}
	}

	if err = s.Frame(); err != nil {
		return err
	}
	return annotate(s, t, st, entries)
}

// annotate adds the title (explicit, else derived from the fixed values,
// else none) and the legend.
func annotate(s Surface, t *effect.Table, st Style, entries []LegendEntry) error {
	text := st.Title
	if text == "" {
		text = effect.Title(t.Axis, st.Digits)
	}
	if text != "" {
		if err := s.Title(TitleSpec{Text: text, Size: positive(st.TitleSize, DefaultTitleSize), Font: st.TitleFont}); err != nil {
			return err
		}
	}
	if st.Legend.Show {
		return s.Legend(LegendSpec{Entries: entries, Style: st.Legend})
	}
	return nil
}

// padRange widens a degenerate or non-finite range so axes stay drawable.
func padRange(lo, hi, pad float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return 0, 1
	}
	if hi <= lo {
		return lo - pad, hi + pad
	}
	return lo, hi
}

func positive(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
