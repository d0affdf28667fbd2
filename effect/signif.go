package effect

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/nestplot/frame"
)

// Signif rounds x to digits significant digits (digits < 1 is treated as 1).
func Signif(x float64, digits int) float64 {
	if digits < 1 {
		digits = 1
	}
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	e := digits - int(math.Ceil(math.Log10(math.Abs(x))))
	if e >= 0 {
		pow := math.Pow(10, float64(e))
		if math.IsInf(pow, 0) {
			return x
		}
		return math.Round(x*pow) / pow
	}
	pow := math.Pow(10, float64(-e))
	return math.Round(x/pow) * pow
}

// FormatSignif formats x rounded to digits significant digits, without
// trailing zeros.
func FormatSignif(x float64, digits int) string {
	return strconv.FormatFloat(Signif(x, digits), 'g', -1, 64)
}

// Title lists every fixed predictor as "name = value", joined by ", ".
// Numeric values are rounded to digits significant digits; the result is
// empty when nothing is fixed.
func Title(ax Axis, digits int) string {
	if digits <= 0 {
		digits = DefaultDigits
	}
	parts := make([]string, 0, len(ax.Fixed))
	for _, s := range ax.Fixed {
		v := s.Value.String()
		if s.Value.Kind() == frame.Numeric {
			v = FormatSignif(s.Value.Float(), digits)
		}
		parts = append(parts, s.Name+" = "+v)
	}
	return strings.Join(parts, ", ")
}
