// SPDX-License-Identifier: MIT
// Package: nestplot/effect
//
// table.go — the prediction table and its text export.

package effect

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/mattn/go-runewidth"
)

// Bound selects one of the three columns kept per category.
type Bound uint8

const (
	// Point is the fitted probability.
	Point Bound = iota
	// Lower is the lower confidence bound.
	Lower
	// Upper is the upper confidence bound.
	Upper
)

// Key addresses a table column.
type Key struct {
	Category string
	Bound    Bound
}

// Table is the evaluation grid plus per-category probability columns.
// Lower/Upper columns exist iff Level > 0.
type Table struct {
	Grid       *frame.Frame
	Axis       Axis
	Categories []string
	Level      float64

	cols map[Key][]float64
}

// Rows returns the number of grid rows.
func (t *Table) Rows() int { return t.Grid.Rows() }

// HasIntervals reports whether bound columns are present.
func (t *Table) HasIntervals() bool { return t.Level > 0 }

// Column returns a copy of the column at k.
func (t *Table) Column(k Key) ([]float64, bool) {
	col, ok := t.cols[k]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), col...), true
}

// Sweep returns the sweep column of the grid.
func (t *Table) Sweep() *frame.Column {
	col, _ := t.Grid.Column(t.Axis.Sweep)
	return col
}

// YRange is the shared vertical scale: the extremes of every bound column
// when intervals exist, else of every fitted column.
func (t *Table) YRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	lb, ub := Point, Point
	if t.HasIntervals() {
		lb, ub = Lower, Upper
	}
	for _, c := range t.Categories {
		for _, v := range t.cols[Key{Category: c, Bound: lb}] {
			lo = math.Min(lo, v)
		}
		for _, v := range t.cols[Key{Category: c, Bound: ub}] {
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// ColumnName returns the conventional export name of k:
// "<category>.p" for fitted values and "<category>.<q>" for bounds, where q
// is the tail quantile (1−level)/2 or its complement rounded to 4 decimals.
func (t *Table) ColumnName(k Key) string {
	tail := (1 - t.Level) / 2
	switch k.Bound {
	case Lower:
		return k.Category + "." + quantileSuffix(tail)
	case Upper:
		return k.Category + "." + quantileSuffix(1-tail)
	default:
		return k.Category + ".p"
	}
}

func quantileSuffix(q float64) string {
	return strconv.FormatFloat(math.Round(q*1e4)/1e4, 'f', -1, 64)
}

// Keys lists the present columns: per category Point, then Lower and Upper.
func (t *Table) Keys() []Key {
	out := make([]Key, 0, 3*len(t.Categories))
	for _, c := range t.Categories {
		out = append(out, Key{Category: c, Bound: Point})
		if t.HasIntervals() {
			out = append(out, Key{Category: c, Bound: Lower}, Key{Category: c, Bound: Upper})
		}
	}
	return out
}

// WriteText writes the grid columns followed by every probability column
// as a right-aligned text table. Widths are display widths, so labels with
// wide runes stay aligned.
func (t *Table) WriteText(w io.Writer) error {
	header := t.Grid.Names()
	keys := t.Keys()
	for _, k := range keys {
		header = append(header, t.ColumnName(k))
	}

	cells := make([][]string, t.Rows())
	for i := range cells {
		row := make([]string, 0, len(header))
		for _, name := range t.Grid.Names() {
			col, _ := t.Grid.Column(name)
			row = append(row, formatCell(col.Value(i)))
		}
		for _, k := range keys {
			row = append(row, strconv.FormatFloat(t.cols[k][i], 'f', 4, 64))
		}
		cells[i] = row
	}

	widths := make([]int, len(header))
	for j, h := range header {
		widths[j] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for j, c := range row {
			widths[j] = max(widths[j], runewidth.StringWidth(c))
		}
	}

	bw := bufio.NewWriter(w)
	writeRow(bw, header, widths)
	for _, row := range cells {
		writeRow(bw, row, widths)
	}
	return bw.Flush()
}

func formatCell(v frame.Value) string {
	if v.Kind() == frame.Numeric {
		return strconv.FormatFloat(v.Float(), 'g', 6, 64)
	}
	return v.String()
}

func writeRow(w *bufio.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for j, c := range cells {
		padded[j] = runewidth.FillLeft(c, widths[j])
	}
	_, _ = w.WriteString(strings.Join(padded, "  "))
	_ = w.WriteByte('\n')
}
