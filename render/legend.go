// SPDX-License-Identifier: MIT
// Package: nestplot/render
//
// legend.go — legend box as a chart.Renderable.
//
// Layout (pixels): | pad | sample (line and/or marker) | gap | label | pad |
// One row per entry; the box is anchored by Position and pushed inward by
// Inset × plot size (outward when Inset < 0).

package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	legendPad    = 5
	legendGap    = 5
	legendSample = 25
	legendRowGap = 4
)

func legendRenderable(l LegendSpec) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(l.Entries) == 0 {
			return
		}
		size := l.Style.FontSize
		if size <= 0 {
			size = DefaultLegendSize
		}
		r.SetFont(defaults.Font)
		r.SetFontSize(size)
		r.SetFontColor(chart.DefaultTextColor)

		// Stage 1: measure.
		textW, rowH := 0, int(2*DefaultPointSize)
		boxes := make([]chart.Box, len(l.Entries))
		for i, e := range l.Entries {
			boxes[i] = r.MeasureText(e.Label)
			textW = max(textW, boxes[i].Width())
			rowH = max(rowH, boxes[i].Height())
		}
		n := len(l.Entries)
		w := 2*legendPad + legendSample + legendGap + textW
		h := 2*legendPad + n*rowH + (n-1)*legendRowGap
		left, top := anchor(l.Style.Position, l.Style.Inset, cb, w, h)

		// Stage 2: background and border.
		r.SetFillColor(drawing.ColorWhite.WithAlpha(alpha8(l.Style.Alpha)))
		r.SetStrokeDashArray(nil)
		r.MoveTo(left, top)
		r.LineTo(left+w, top)
		r.LineTo(left+w, top+h)
		r.LineTo(left, top+h)
		r.Close()
		if l.Style.Border {
			r.SetStrokeColor(chart.DefaultAxisColor)
			r.SetStrokeWidth(chart.DefaultAxisLineWidth)
			r.FillStroke()
		} else {
			r.Fill()
		}

		// Stage 3: entries.
		for i, e := range l.Entries {
			yc := top + legendPad + i*(rowH+legendRowGap) + rowH/2
			x0 := left + legendPad
			if e.ShowLine {
				r.SetStrokeColor(e.Color)
				r.SetStrokeWidth(max(e.Width, 1))
				r.SetStrokeDashArray(e.LineType.Dashes())
				r.MoveTo(x0, yc)
				r.LineTo(x0+legendSample, yc)
				r.Stroke()
			}
			if e.ShowMarker {
				r.SetStrokeColor(e.Color)
				r.SetStrokeWidth(markerStroke(e.Width))
				r.SetStrokeDashArray(nil)
				drawMarker(r, e.Marker, x0+legendSample/2, yc, DefaultPointSize)
			}
			r.SetFont(defaults.Font)
			r.SetFontSize(size)
			r.SetFontColor(chart.DefaultTextColor)
			r.Text(e.Label, x0+legendSample+legendGap, yc+boxes[i].Height()/2)
		}
	}
}

// anchor returns the top-left pixel of a w×h box placed at p inside cb.
func anchor(p Position, inset float64, cb chart.Box, w, h int) (left, top int) {
	dx := int(inset * float64(cb.Width()))
	dy := int(inset * float64(cb.Height()))

	switch p {
	case TopLeft, Left, BottomLeft:
		left = cb.Left + dx
	case TopRight, Right, BottomRight:
		left = cb.Right - w - dx
	default:
		left = cb.Left + (cb.Width()-w)/2
	}
	switch p {
	case TopLeft, Top, TopRight:
		top = cb.Top + dy
	case BottomLeft, Bottom, BottomRight:
		top = cb.Bottom - h - dy
	default:
		top = cb.Top + (cb.Height()-h)/2
	}
	return left, top
}
