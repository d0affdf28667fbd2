package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags a column or scalar as numeric or categorical.
// The zero value is invalid on purpose so an unset Kind is caught early.
type Kind uint8

const (
	// Numeric columns hold float64 values and sweep continuously.
	Numeric Kind = iota + 1
	// Categorical columns hold levels and sweep over their distinct values.
	Categorical
)

// String returns "numeric", "categorical" or "invalid".
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "invalid"
	}
}

// Value is a single scalar: either a number or a level.
type Value struct {
	kind  Kind
	num   float64
	level string
}

// Num returns a numeric Value.
func Num(x float64) Value { return Value{kind: Numeric, num: x} }

// Level returns a categorical Value.
func Level(s string) Value { return Value{kind: Categorical, level: s} }

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric payload (0 for levels).
func (v Value) Float() float64 { return v.num }

// Str returns the level payload ("" for numbers).
func (v Value) Str() string { return v.level }

// IsZero reports whether v was never set.
func (v Value) IsZero() bool { return v.kind == 0 }

// String renders numbers with the shortest exact representation and levels verbatim.
func (v Value) String() string {
	switch v.kind {
	case Numeric:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case Categorical:
		return v.level
	default:
		return "<unset>"
	}
}

// AsNumber converts a level that spells a number into a numeric Value.
// Numeric values are returned unchanged; ok is false when no conversion applies.
func (v Value) AsNumber() (Value, bool) {
	switch v.kind {
	case Numeric:
		return v, true
	case Categorical:
		x, err := strconv.ParseFloat(strings.TrimSpace(v.level), 64)
		if err != nil {
			return v, false
		}
		return Num(x), true
	default:
		return v, false
	}
}

// ParseValue reads s as a Value of kind k.
func ParseValue(s string, k Kind) (Value, error) {
	switch k {
	case Numeric:
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, fmt.Errorf("ParseValue(%q): %w", s, ErrKindMismatch)
		}
		return Num(x), nil
	case Categorical:
		return Level(s), nil
	default:
		return Value{}, fmt.Errorf("ParseValue(%q): kind %v: %w", s, k, ErrKindMismatch)
	}
}
