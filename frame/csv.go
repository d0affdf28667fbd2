// SPDX-License-Identifier: MIT
// Package: nestplot/frame
//
// csv.go — CSV ingestion with per-column kind inference.
//
// Inference policy:
//   • A column whose every cell parses as a float is Numeric; NaN and ±Inf
//     cells in such a column are rejected with ErrNonFinite.
//   • Anything else is Categorical (text or logical); levels sorted byte-wise.
//   • WithLevels/WithFactor force a column to Categorical; WithLevels also
//     fixes the level order and rejects values outside it.
//   • Empty cells are rejected (no missing-value support).

package frame

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// CSVOption customizes ReadCSV.
type CSVOption func(*csvConfig)

type csvConfig struct {
	comma   rune
	levels  map[string][]string
	factors map[string]struct{}
}

const defaultComma = ','

func newCSVConfig(opts ...CSVOption) csvConfig {
	cfg := csvConfig{
		comma:   defaultComma,
		levels:  make(map[string][]string),
		factors: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLevels declares column as a factor with the given level order.
// Panics on an empty column name or an empty level list.
func WithLevels(column string, levels ...string) CSVOption {
	if column == "" {
		panic("frame: WithLevels(\"\")")
	}
	if len(levels) == 0 {
		panic("frame: WithLevels without levels")
	}
	lv := append([]string(nil), levels...)
	return func(c *csvConfig) {
		c.levels[column] = lv
	}
}

// WithFactor forces column to be categorical even when it looks numeric.
func WithFactor(column string) CSVOption {
	if column == "" {
		panic("frame: WithFactor(\"\")")
	}
	return func(c *csvConfig) {
		c.factors[column] = struct{}{}
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) CSVOption {
	if r == 0 || r == '"' || r == '\n' || r == '\r' {
		panic("frame: WithComma(invalid delimiter)")
	}
	return func(c *csvConfig) {
		c.comma = r
	}
}

// ReadCSV reads a header row followed by data rows into a Frame.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	const op = "ReadCSV"
	cfg := newCSVConfig(opts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, frameErrorf(op, "missing header: %w", ErrBadCSV)
	}
	if err != nil {
		return nil, frameErrorf(op, "header: %v: %w", err, ErrBadCSV)
	}

	cells := make([][]string, len(header))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, frameErrorf(op, "line %d: %v: %w", line, err, ErrBadCSV)
		}
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				return nil, frameErrorf(op, "line %d column %q: empty cell: %w", line, header[j], ErrBadCSV)
			}
			cells[j] = append(cells[j], cell)
		}
	}

	f := New()
	for j, name := range header {
		col, err := buildColumn(strings.TrimSpace(name), cells[j], cfg)
		if err != nil {
			return nil, frameErrorf(op, "%w", err)
		}
		if err = f.Add(col); err != nil {
			return nil, frameErrorf(op, "%w", err)
		}
	}

	return f, nil
}

// buildColumn applies the inference policy to one column of raw cells.
func buildColumn(name string, raw []string, cfg csvConfig) (*Column, error) {
	if lv, ok := cfg.levels[name]; ok {
		return NewFactor(name, raw, lv)
	}
	if _, ok := cfg.factors[name]; ok {
		return NewFactor(name, raw, nil)
	}
	if nums, ok := parseFloats(raw); ok {
		for i, x := range nums {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, frameErrorf("buildColumn", "column %q row %d value %q: %w", name, i+1, raw[i], ErrNonFinite)
			}
		}
		return NewNumeric(name, nums), nil
	}
	return NewText(name, raw), nil
}

// parseFloats converts every cell or reports false on the first failure.
func parseFloats(raw []string) ([]float64, bool) {
	out := make([]float64, len(raw))
	for i, s := range raw {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = x
	}
	return out, true
}

// WriteCSV writes f as a header row followed by data rows, in column order.
// Numbers use the shortest exact representation, so ReadCSV round-trips them.
func WriteCSV(w io.Writer, f *Frame) error {
	const op = "WriteCSV"
	cw := csv.NewWriter(w)
	names := f.Names()
	if err := cw.Write(names); err != nil {
		return frameErrorf(op, "header: %w", err)
	}

	cols := make([]*Column, len(names))
	for j, n := range names {
		cols[j], _ = f.Column(n)
	}
	rec := make([]string, len(cols))
	for i := 0; i < f.Rows(); i++ {
		for j, c := range cols {
			rec[j] = c.Value(i).String()
		}
		if err := cw.Write(rec); err != nil {
			return frameErrorf(op, "row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return frameErrorf(op, "%w", err)
	}
	return nil
}
