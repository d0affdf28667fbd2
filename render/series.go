// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// series.go — chart.Series implementations for paths, polygons and segments.
//
// Data → pixel mapping follows go-chart:
//
//	px = canvas.Left   + xrange.Translate(x)
//	py = canvas.Bottom − yrange.Translate(y)

package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func toPixel(cb chart.Box, xr, yr chart.Range, x, y float64) (int, int) {
	return cb.Left + xr.Translate(x), cb.Bottom - yr.Translate(y)
}

// pathSeries draws a polyline, markers, or both.
type pathSeries struct {
	p     Path
	style chart.Style
}

func newPathSeries(p Path) pathSeries {
	base := chart.Style{
		StrokeColor:     p.Color,
		StrokeWidth:     p.Width,
		StrokeDashArray: p.LineType.Dashes(),
		DotColor:        p.Color,
		DotWidth:        p.MarkerSize,
	}
	st := p.Extra.InheritFrom(base)
	st.Hidden = p.Extra.Hidden
	return pathSeries{p: p, style: st}
}

func (s pathSeries) GetName() string           { return s.p.Name }
func (s pathSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s pathSeries) GetStyle() chart.Style     { return s.style }
func (s pathSeries) Validate() error {
	if len(s.p.X) != len(s.p.Y) {
		return renderErrorf("pathSeries.Validate", "%q: %w", s.p.Name, ErrShapeMismatch)
	}
	return nil
}

func (s pathSeries) Render(r chart.Renderer, cb chart.Box, xr, yr chart.Range, defaults chart.Style) {
	st := s.style.InheritFrom(defaults)
	n := len(s.p.X)
	if n == 0 {
		return
	}

	if s.p.Line && n > 1 {
		r.SetStrokeColor(st.GetStrokeColor())
		r.SetStrokeWidth(st.GetStrokeWidth())
		r.SetStrokeDashArray(st.GetStrokeDashArray())
		x, y := toPixel(cb, xr, yr, s.p.X[0], s.p.Y[0])
		r.MoveTo(x, y)
		for i := 1; i < n; i++ {
			x, y = toPixel(cb, xr, yr, s.p.X[i], s.p.Y[i])
			r.LineTo(x, y)
		}
		r.Stroke()
	}

	if s.p.Points {
		r.SetStrokeColor(st.GetDotColor())
		r.SetStrokeWidth(markerStroke(st.GetStrokeWidth()))
		r.SetStrokeDashArray(nil)
		for i := 0; i < n; i++ {
			x, y := toPixel(cb, xr, yr, s.p.X[i], s.p.Y[i])
			drawMarker(r, s.p.Marker, x, y, st.GetDotWidth(DefaultPointSize))
		}
	}
}

// markerStroke keeps marker outlines visible but thinner than lines.
func markerStroke(lineWidth float64) float64 {
	if w := lineWidth * 0.6; w > 1 {
		return w
	}
	return 1
}

// drawMarker strokes an open symbol of radius size centred on (x, y).
func drawMarker(r chart.Renderer, m Marker, x, y int, size float64) {
	s := int(size + 0.5)
	switch m {
	case Circle:
		r.Circle(size, x, y)
		r.Stroke()
	case Triangle:
		r.MoveTo(x, y-s)
		r.LineTo(x+s, y+s)
		r.LineTo(x-s, y+s)
		r.Close()
		r.Stroke()
	case TriangleDown:
		r.MoveTo(x, y+s)
		r.LineTo(x+s, y-s)
		r.LineTo(x-s, y-s)
		r.Close()
		r.Stroke()
	case Plus:
		r.MoveTo(x-s, y)
		r.LineTo(x+s, y)
		r.Stroke()
		r.MoveTo(x, y-s)
		r.LineTo(x, y+s)
		r.Stroke()
	case Cross:
		r.MoveTo(x-s, y-s)
		r.LineTo(x+s, y+s)
		r.Stroke()
		r.MoveTo(x-s, y+s)
		r.LineTo(x+s, y-s)
		r.Stroke()
	case Diamond:
		r.MoveTo(x, y-s)
		r.LineTo(x+s, y)
		r.LineTo(x, y+s)
		r.LineTo(x-s, y)
		r.Close()
		r.Stroke()
	default: // Square
		r.MoveTo(x-s, y-s)
		r.LineTo(x+s, y-s)
		r.LineTo(x+s, y+s)
		r.LineTo(x-s, y+s)
		r.Close()
		r.Stroke()
	}
}

// polygonSeries fills a closed region without a border.
type polygonSeries struct {
	p Polygon
}

func (s polygonSeries) GetName() string           { return "" }
func (s polygonSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s polygonSeries) GetStyle() chart.Style     { return chart.Style{FillColor: s.p.Fill} }
func (s polygonSeries) Validate() error {
	if len(s.p.X) != len(s.p.Y) {
		return renderErrorf("polygonSeries.Validate", "%w", ErrShapeMismatch)
	}
	return nil
}

func (s polygonSeries) Render(r chart.Renderer, cb chart.Box, xr, yr chart.Range, _ chart.Style) {
	if len(s.p.X) < 3 {
		return
	}
	r.SetFillColor(s.p.Fill)
	r.SetStrokeColor(drawing.ColorTransparent)
	r.SetStrokeWidth(0)
	x, y := toPixel(cb, xr, yr, s.p.X[0], s.p.Y[0])
	r.MoveTo(x, y)
	for i := 1; i < len(s.p.X); i++ {
		x, y = toPixel(cb, xr, yr, s.p.X[i], s.p.Y[i])
		r.LineTo(x, y)
	}
	r.Close()
	r.Fill()
}

// segmentSeries strokes independent line segments.
type segmentSeries struct {
	s Segments
}

func (s segmentSeries) GetName() string           { return "" }
func (s segmentSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (s segmentSeries) GetStyle() chart.Style {
	return chart.Style{StrokeColor: s.s.Color, StrokeWidth: s.s.Width}
}
func (s segmentSeries) Validate() error { return nil }

func (s segmentSeries) Render(r chart.Renderer, cb chart.Box, xr, yr chart.Range, _ chart.Style) {
	r.SetStrokeColor(s.s.Color)
	r.SetStrokeWidth(s.s.Width)
	r.SetStrokeDashArray(nil)
	for _, sg := range s.s.Segs {
		x0, y0 := toPixel(cb, xr, yr, sg.X0, sg.Y0)
		x1, y1 := toPixel(cb, xr, yr, sg.X1, sg.Y1)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y1)
		r.Stroke()
	}
}
