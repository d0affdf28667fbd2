// SPDX-License-Identifier: MIT
// Package: nestplot/frame
//
// column.go — typed columns with a cached natural level order.
//
// Contract:
//   • Numeric columns own a private copy of their values.
//   • Categorical columns validate every value against the level set.
//   • Accessors return copies; a Column is immutable after construction.

package frame

import (
	"math"
	"sort"
)

// Column is a named, typed vector of values.
type Column struct {
	name   string
	kind   Kind
	nums   []float64
	strs   []string
	levels []string
	factor bool // levels were declared, not derived
}

// NewNumeric builds a numeric column. The slice is copied.
func NewNumeric(name string, values []float64) *Column {
	nums := make([]float64, len(values))
	copy(nums, values)

	return &Column{name: name, kind: Numeric, nums: nums}
}

// NewFactor builds a categorical column with an explicit level order.
// A nil levels slice derives levels as in NewText, but the column still
// reports itself as a factor.
func NewFactor(name string, values, levels []string) (*Column, error) {
	const op = "NewFactor"
	if levels == nil {
		c := NewText(name, values)
		c.factor = true
		return c, nil
	}

	seen := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		if _, dup := seen[l]; dup {
			return nil, frameErrorf(op, "column %q level %q: %w", name, l, ErrDuplicateLevel)
		}
		seen[l] = struct{}{}
	}
	for i, v := range values {
		if _, ok := seen[v]; !ok {
			return nil, frameErrorf(op, "column %q row %d value %q: %w", name, i, v, ErrUnknownLevel)
		}
	}

	strs := make([]string, len(values))
	copy(strs, values)
	lv := make([]string, len(levels))
	copy(lv, levels)

	return &Column{name: name, kind: Categorical, strs: strs, levels: lv, factor: true}, nil
}

// NewText builds a categorical column whose levels are its distinct values
// sorted byte-wise ascending.
func NewText(name string, values []string) *Column {
	strs := make([]string, len(values))
	copy(strs, values)

	return &Column{name: name, kind: Categorical, strs: strs, levels: sortedDistinct(strs)}
}

// Constant builds a column of n copies of v. Categorical constants carry the
// given level set (nil means just v).
func Constant(name string, v Value, n int, levels []string) (*Column, error) {
	switch v.Kind() {
	case Numeric:
		nums := make([]float64, n)
		for i := range nums {
			nums[i] = v.Float()
		}
		return &Column{name: name, kind: Numeric, nums: nums}, nil
	case Categorical:
		strs := make([]string, n)
		for i := range strs {
			strs[i] = v.Str()
		}
		if levels == nil {
			levels = []string{v.Str()}
		}
		return NewFactor(name, strs, levels)
	default:
		return nil, frameErrorf("Constant", "column %q: %w", name, ErrKindMismatch)
	}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns Numeric or Categorical.
func (c *Column) Kind() Kind { return c.kind }

// IsFactor reports whether the level order was declared.
func (c *Column) IsFactor() bool { return c.factor }

// Len returns the number of rows.
func (c *Column) Len() int {
	if c.kind == Numeric {
		return len(c.nums)
	}
	return len(c.strs)
}

// Value returns row i as a Value. It panics on an out-of-range index, like a slice.
func (c *Column) Value(i int) Value {
	if c.kind == Numeric {
		return Num(c.nums[i])
	}
	return Level(c.strs[i])
}

// Floats returns a copy of the numeric values (nil for categorical columns).
func (c *Column) Floats() []float64 {
	if c.kind != Numeric {
		return nil
	}
	out := make([]float64, len(c.nums))
	copy(out, c.nums)
	return out
}

// Strings returns a copy of the categorical values (nil for numeric columns).
func (c *Column) Strings() []string {
	if c.kind != Categorical {
		return nil
	}
	out := make([]string, len(c.strs))
	copy(out, c.strs)
	return out
}

// Levels returns the natural level order (nil for numeric columns).
func (c *Column) Levels() []string {
	if c.kind != Categorical {
		return nil
	}
	out := make([]string, len(c.levels))
	copy(out, c.levels)
	return out
}

// Mean returns the arithmetic mean of a numeric column, NaN when empty or categorical.
func (c *Column) Mean() float64 {
	if c.kind != Numeric || len(c.nums) == 0 {
		return math.NaN()
	}
	var s float64
	for _, x := range c.nums {
		s += x
	}
	return s / float64(len(c.nums))
}

// Range returns the observed min and max of a numeric column (NaN, NaN when empty).
func (c *Column) Range() (lo, hi float64) {
	if c.kind != Numeric || len(c.nums) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi = c.nums[0], c.nums[0]
	for _, x := range c.nums[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// sortedDistinct returns the distinct values of xs in byte-wise ascending order.
func sortedDistinct(xs []string) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}
