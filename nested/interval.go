// SPDX-License-Identifier: MIT
// Package: nestplot/nested
//
// interval.go — pointwise delta-method intervals.
//
// For category c with path steps (d, side):
//
//	p_c         = Π_d b_d,       b_d = π_d or 1−π_d
//	∂p_c/∂β_d   = p_c · g_d · x_d,   g_d = 1−π_d (right) or −π_d (left)
//	Var(p_c)    = Σ_d (p_c · g_d)² · x_dᵀ V_d x_d
//
// Dichotomies are fitted independently, so cross-covariances are zero.
// Bounds are p_c ± z·se clamped to [0, 1] with z = Φ⁻¹((1+level)/2).

package nested

import (
	"math"

	"github.com/katalvlaran/nestplot/matrix"
	"github.com/katalvlaran/nestplot/model"
)

// ConfInt returns per-category bounds for a prediction made by m.
func (m *Model) ConfInt(p model.Prediction, level float64) (map[string]model.Interval, error) {
	const op = "ConfInt"
	pred, ok := p.(*Prediction)
	if !ok || pred.owner != m {
		return nil, nestedErrorf(op, "%w", ErrForeignPrediction)
	}
	if !(level > 0 && level < 1) {
		return nil, nestedErrorf(op, "level %v: %w", level, ErrBadLevel)
	}
	for _, d := range m.ds {
		if d.vcov == nil {
			return nil, nestedErrorf(op, "dichotomy %q: %w", d.name, ErrNoCovariance)
		}
	}

	z := normalQuantile(level)

	// Stage 1: quadratic forms x_dᵀ V_d x_d, shared by every category.
	quad := make([][]float64, len(m.ds))
	for d, dich := range m.ds {
		quad[d] = make([]float64, pred.rows)
		for i := 0; i < pred.rows; i++ {
			q, err := matrix.QuadForm(dich.vcov, pred.design[d][i])
			if err != nil {
				return nil, nestedErrorf(op, "dichotomy %q row %d: %w", dich.name, i, err)
			}
			quad[d][i] = q
		}
	}

	// Stage 2: variance per category and row.
	out := make(map[string]model.Interval, len(m.categories))
	for _, c := range m.categories {
		fit := pred.probs[c]
		iv := model.Interval{Lower: make([]float64, pred.rows), Upper: make([]float64, pred.rows)}
		for i := 0; i < pred.rows; i++ {
			var v float64
			for _, st := range m.tree.paths[c] {
				pi := pred.pi[st.d][i]
				g := -pi
				if st.side == rightSide {
					g = 1 - pi
				}
				grad := fit[i] * g
				v += grad * grad * quad[st.d][i]
			}
			half := z * math.Sqrt(math.Max(v, 0))
			iv.Lower[i] = math.Max(0, fit[i]-half)
			iv.Upper[i] = math.Min(1, fit[i]+half)
		}
		out[c] = iv
	}

	return out, nil
}

// normalQuantile returns the two-sided standard-normal critical value for level.
func normalQuantile(level float64) float64 {
	return math.Sqrt2 * math.Erfinv(level)
}
