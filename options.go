// SPDX-License-Identifier: MIT
// Package: nestplot
//
// options.go — functional options for Plot and Predict.
//
// Every constructor validates its argument and panics on a value that can
// never be meaningful (resolution < 2, a confidence level outside (0,1),
// nil logger, ...). Errors that depend on the model, such as an unknown
// predictor name, are reported by Plot/Predict instead.

package nestplot

import (
	"log/slog"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/render"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Option configures a Plot or Predict call.
type Option func(*plotConfig)

type plotConfig struct {
	sweep      string
	fixed      map[string][]frame.Value
	digits     int
	resolution int
	level      float64
	style      render.Style
	log        *slog.Logger
}

func newPlotConfig(opts ...Option) plotConfig {
	cfg := plotConfig{
		fixed:      map[string][]frame.Value{},
		digits:     effect.DefaultDigits,
		resolution: effect.DefaultResolution,
		level:      effect.DefaultConfLevel,
		style:      render.DefaultStyle(),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.style.Digits = cfg.digits
	return cfg
}

func (c plotConfig) request() effect.Request {
	return effect.Request{Sweep: c.sweep, Fixed: c.fixed, Digits: c.digits}
}

// WithSweep names the predictor to vary. Empty selects the first predictor.
func WithSweep(name string) Option {
	return func(c *plotConfig) { c.sweep = name }
}

// WithFixed pins a predictor. More than one value is accepted here and
// rejected by Plot with effect.ErrMultiValuedFixedInput.
// Panics if name is empty.
func WithFixed(name string, values ...frame.Value) Option {
	if name == "" {
		panic("nestplot: WithFixed requires a predictor name")
	}
	vs := append([]frame.Value(nil), values...)
	return func(c *plotConfig) { c.fixed[name] = vs }
}

// WithFixedNumber pins a numeric predictor.
func WithFixedNumber(name string, x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("nestplot: WithFixedNumber requires a finite value")
	}
	return WithFixed(name, frame.Num(x))
}

// WithFixedLevel pins a categorical predictor.
func WithFixedLevel(name, level string) Option {
	return WithFixed(name, frame.Level(level))
}

// WithResolution sets the number of grid points for a numeric sweep.
// Panics if n < 2.
func WithResolution(n int) Option {
	if n < 2 {
		panic("nestplot: WithResolution requires n >= 2")
	}
	return func(c *plotConfig) { c.resolution = n }
}

// WithConfLevel sets the confidence level of the bounds. Panics unless 0 < l < 1.
func WithConfLevel(l float64) Option {
	if !(l > 0 && l < 1) {
		panic("nestplot: WithConfLevel requires 0 < level < 1")
	}
	return func(c *plotConfig) { c.level = l }
}

// WithoutIntervals turns off confidence bands and whiskers.
func WithoutIntervals() Option {
	return func(c *plotConfig) { c.level = 0 }
}

// WithDigits sets the significant digits of numeric defaults and of the
// generated title. Panics if d < 1.
func WithDigits(d int) Option {
	if d < 1 {
		panic("nestplot: WithDigits requires d >= 1")
	}
	return func(c *plotConfig) { c.digits = d }
}

// WithLogger routes resolver advisories and stage records to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("nestplot: WithLogger(nil)")
	}
	return func(c *plotConfig) { c.log = l }
}

// WithBandAlpha sets the band opacity. Panics outside (0, 1];
// use WithoutIntervals to drop the bands.
func WithBandAlpha(a float64) Option {
	if !(a > 0 && a <= 1) {
		panic("nestplot: WithBandAlpha requires a value in (0, 1]")
	}
	return func(c *plotConfig) { c.style.BandAlpha = a }
}

// WithXLabel overrides the x-axis label (default: sweep variable name).
func WithXLabel(s string) Option {
	return func(c *plotConfig) { c.style.XLabel = s }
}

// WithYLabel overrides the y-axis label (default: "Fitted Probability").
func WithYLabel(s string) Option {
	return func(c *plotConfig) { c.style.YLabel = s }
}

// WithTitle replaces the generated title.
func WithTitle(s string) Option {
	return func(c *plotConfig) { c.style.Title = s }
}

// WithTitleSize sets the title font size in points. Panics if size <= 0.
func WithTitleSize(size float64) Option {
	checkPositive("WithTitleSize", size)
	return func(c *plotConfig) { c.style.TitleSize = size }
}

// WithTitleFont sets the title font. Panics on nil.
func WithTitleFont(f *truetype.Font) Option {
	if f == nil {
		panic("nestplot: WithTitleFont(nil)")
	}
	return func(c *plotConfig) { c.style.TitleFont = f }
}

// WithColors sets the category colors, cycled when shorter than the
// category list. Panics when empty.
func WithColors(cs ...drawing.Color) Option {
	if len(cs) == 0 {
		panic("nestplot: WithColors requires at least one color")
	}
	cs = append([]drawing.Color(nil), cs...)
	return func(c *plotConfig) { c.style.Colors = cs }
}

// WithLineTypes sets the category line types, cycled. Panics when empty
// or on an unknown line type.
func WithLineTypes(ls ...render.LineType) Option {
	if len(ls) == 0 {
		panic("nestplot: WithLineTypes requires at least one line type")
	}
	for _, l := range ls {
		if !l.Valid() {
			panic("nestplot: WithLineTypes: unknown line type")
		}
	}
	ls = append([]render.LineType(nil), ls...)
	return func(c *plotConfig) { c.style.LineTypes = ls }
}

// WithMarkers sets the category markers, cycled. Panics when empty or on
// an unknown marker.
func WithMarkers(ms ...render.Marker) Option {
	if len(ms) == 0 {
		panic("nestplot: WithMarkers requires at least one marker")
	}
	for _, m := range ms {
		if !m.Valid() {
			panic("nestplot: WithMarkers: unknown marker")
		}
	}
	ms = append([]render.Marker(nil), ms...)
	return func(c *plotConfig) { c.style.Markers = ms }
}

// WithLineWidth sets the stroke width. Panics if w <= 0.
func WithLineWidth(w float64) Option {
	checkPositive("WithLineWidth", w)
	return func(c *plotConfig) { c.style.LineWidth = w }
}

// WithPointSize sets the marker size. Panics if s <= 0.
func WithPointSize(s float64) Option {
	checkPositive("WithPointSize", s)
	return func(c *plotConfig) { c.style.PointSize = s }
}

// WithConnectPoints joins categorical markers with lines.
func WithConnectPoints(on bool) Option {
	return func(c *plotConfig) { c.style.ConnectPoints = on }
}

// WithLegend shows or hides the legend.
func WithLegend(show bool) Option {
	return func(c *plotConfig) { c.style.Legend.Show = show }
}

// WithLegendPosition anchors the legend. Panics on an unknown position.
func WithLegendPosition(p render.Position) Option {
	if !p.Valid() {
		panic("nestplot: WithLegendPosition: unknown position")
	}
	return func(c *plotConfig) { c.style.Legend.Position = p }
}

// WithLegendInset moves the legend away from its anchor, as a fraction of
// the plot region. Panics unless -1 < f < 1.
func WithLegendInset(f float64) Option {
	if !(f > -1 && f < 1) {
		panic("nestplot: WithLegendInset requires -1 < inset < 1")
	}
	return func(c *plotConfig) { c.style.Legend.Inset = f }
}

// WithLegendBorder draws or omits the legend border.
func WithLegendBorder(on bool) Option {
	return func(c *plotConfig) { c.style.Legend.Border = on }
}

// WithLegendAlpha sets the legend background opacity. Panics outside [0, 1].
func WithLegendAlpha(a float64) Option {
	checkUnit("WithLegendAlpha", a)
	return func(c *plotConfig) { c.style.Legend.Alpha = a }
}

// WithSeriesStyle merges st into every line and point series; set fields
// win over the computed color, width and dash pattern.
func WithSeriesStyle(st chart.Style) Option {
	return func(c *plotConfig) { c.style.Series = st }
}

func checkUnit(name string, v float64) {
	if !(v >= 0 && v <= 1) {
		panic("nestplot: " + name + " requires a value in [0, 1]")
	}
}

func checkPositive(name string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		panic("nestplot: " + name + " requires a positive value")
	}
}
