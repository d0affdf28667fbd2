// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// chart_surface.go — Surface backed by go-chart/v2.
//
// Every drawing call appends a chart.Series (series are drawn in call order,
// so bands recorded first stay underneath the lines) or a chart.Renderable
// (frame, legend; drawn after the title). Nothing is rasterized until Render.

package render

import (
	"bytes"
	"image/png"
	"io"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Surface defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultDPI    = 96.0
)

// SurfaceOption configures a ChartSurface.
type SurfaceOption func(*surfaceConfig)

type surfaceConfig struct {
	width, height int
	dpi           float64
	format        Format
	font          *truetype.Font
	footnote      string
	padding       chart.Box
	palette       []drawing.Color
}

func newSurfaceConfig(opts ...SurfaceOption) surfaceConfig {
	cfg := surfaceConfig{
		width:   DefaultWidth,
		height:  DefaultHeight,
		dpi:     DefaultDPI,
		format:  PNG,
		padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		palette: DefaultPalette,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithSize sets the image size in pixels. Panics on non-positive sizes.
func WithSize(width, height int) SurfaceOption {
	if width <= 0 || height <= 0 {
		panic("render: WithSize requires positive width and height")
	}
	return func(c *surfaceConfig) { c.width, c.height = width, height }
}

// WithDPI sets the resolution used for font scaling. Panics if dpi <= 0.
func WithDPI(dpi float64) SurfaceOption {
	if dpi <= 0 {
		panic("render: WithDPI requires dpi > 0")
	}
	return func(c *surfaceConfig) { c.dpi = dpi }
}

// WithFormat selects PNG (default) or SVG output.
func WithFormat(f Format) SurfaceOption {
	if f != PNG && f != SVG {
		panic("render: WithFormat requires PNG or SVG")
	}
	return func(c *surfaceConfig) { c.format = f }
}

// WithFont sets the font for axes, legend and (by default) the title.
func WithFont(f *truetype.Font) SurfaceOption {
	return func(c *surfaceConfig) { c.font = f }
}

// WithFootnote stamps text in the bottom-right corner of PNG output.
func WithFootnote(text string) SurfaceOption {
	return func(c *surfaceConfig) { c.footnote = text }
}

// WithPadding sets the margin around the plot region, in pixels.
// A legend with negative inset needs room here.
func WithPadding(top, left, right, bottom int) SurfaceOption {
	if top < 0 || left < 0 || right < 0 || bottom < 0 {
		panic("render: WithPadding requires non-negative margins")
	}
	return func(c *surfaceConfig) { c.padding = chart.Box{Top: top, Left: left, Right: right, Bottom: bottom} }
}

// WithPalette sets the initial color sequence. Panics on an empty palette.
func WithPalette(cs ...drawing.Color) SurfaceOption {
	if len(cs) == 0 {
		panic("render: WithPalette requires at least one color")
	}
	return func(c *surfaceConfig) { c.palette = append([]drawing.Color(nil), cs...) }
}

// ChartSurface accumulates drawing calls into a chart.Chart.
type ChartSurface struct {
	cfg   surfaceConfig
	chart chart.Chart
}

var _ Surface = (*ChartSurface)(nil)

// NewChartSurface returns an empty surface.
func NewChartSurface(opts ...SurfaceOption) *ChartSurface {
	cfg := newSurfaceConfig(opts...)
	return &ChartSurface{
		cfg: cfg,
		chart: chart.Chart{
			Width:      cfg.width,
			Height:     cfg.height,
			DPI:        cfg.dpi,
			Font:       cfg.font,
			Background: chart.Style{Padding: cfg.padding},
		},
	}
}

// Palette returns a copy of the current color sequence.
func (s *ChartSurface) Palette() []drawing.Color {
	return append([]drawing.Color(nil), s.cfg.palette...)
}

// SetPalette replaces the color sequence; an empty slice restores the default.
func (s *ChartSurface) SetPalette(cs []drawing.Color) {
	if len(cs) == 0 {
		cs = DefaultPalette
	}
	s.cfg.palette = append([]drawing.Color(nil), cs...)
}

// Axis fixes both ranges, the axis names and optional x ticks.
func (s *ChartSurface) Axis(a AxisSpec) error {
	s.chart.XAxis = chart.XAxis{
		Name:  a.XLabel,
		Range: &chart.ContinuousRange{Min: a.XMin, Max: a.XMax},
	}
	for _, t := range a.Ticks {
		s.chart.XAxis.Ticks = append(s.chart.XAxis.Ticks, chart.Tick{Value: t.Value, Label: t.Label})
	}
	s.chart.YAxis = chart.YAxis{
		Name:  a.YLabel,
		Range: &chart.ContinuousRange{Min: a.YMin, Max: a.YMax},
	}
	return nil
}

// Series adds a line and/or marker series.
func (s *ChartSurface) Series(p Path) error {
	if len(p.X) != len(p.Y) {
		return renderErrorf("ChartSurface.Series", "%q: %d x values, %d y values: %w", p.Name, len(p.X), len(p.Y), ErrShapeMismatch)
	}
	s.chart.Series = append(s.chart.Series, newPathSeries(p))
	return nil
}

// Polygon adds a filled region.
func (s *ChartSurface) Polygon(p Polygon) error {
	s.chart.Series = append(s.chart.Series, polygonSeries{p: p})
	return nil
}

// Segments adds a batch of strokes.
func (s *ChartSurface) Segments(sg Segments) error {
	s.chart.Series = append(s.chart.Series, segmentSeries{s: sg})
	return nil
}

// Frame strokes the border of the plot region.
func (s *ChartSurface) Frame() error {
	s.chart.Elements = append(s.chart.Elements, frameRenderable)
	return nil
}

// Title sets the title text, size and font.
func (s *ChartSurface) Title(t TitleSpec) error {
	s.chart.Title = t.Text
	s.chart.TitleStyle = chart.Style{FontSize: t.Size, Font: t.Font}
	return nil
}

// Legend adds a legend box.
func (s *ChartSurface) Legend(l LegendSpec) error {
	s.chart.Elements = append(s.chart.Elements, legendRenderable(l))
	return nil
}

// Format returns the configured output format.
func (s *ChartSurface) Format() Format { return s.cfg.format }

// Render encodes the accumulated plot to w.
func (s *ChartSurface) Render(w io.Writer) error {
	const op = "ChartSurface.Render"
	if len(s.chart.Series) == 0 {
		return renderErrorf(op, "%w", ErrNothingDrawn)
	}
	if s.cfg.footnote == "" || s.cfg.format != PNG {
		if err := s.chart.Render(s.cfg.format.provider(), w); err != nil {
			return renderErrorf(op, "%w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := s.chart.Render(chart.PNG, &buf); err != nil {
		return renderErrorf(op, "%w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return renderErrorf(op, "decode: %w", err)
	}
	if err = png.Encode(w, Stamp(img, s.cfg.footnote)); err != nil {
		return renderErrorf(op, "encode: %w", err)
	}
	return nil
}

// frameRenderable strokes the canvas box without filling it.
func frameRenderable(r chart.Renderer, cb chart.Box, _ chart.Style) {
	r.SetStrokeColor(chart.DefaultAxisColor)
	r.SetStrokeWidth(chart.DefaultAxisLineWidth)
	r.SetStrokeDashArray(nil)
	r.MoveTo(cb.Left, cb.Top)
	r.LineTo(cb.Right, cb.Top)
	r.LineTo(cb.Right, cb.Bottom)
	r.LineTo(cb.Left, cb.Bottom)
	r.Close()
	r.Stroke()
}
