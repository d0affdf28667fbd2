// SPDX-License-Identifier: MIT
// Package: nestplot/nested
//
// design.go — mapping coefficient names to design-matrix columns.
//
// Term grammar (treatment contrasts, first level is the baseline):
//   • "(Intercept)"            → constant 1
//   • "<numeric predictor>"    → the predictor value
//   • "<factor><level>"        → 1 if factor == level else 0 (level ≠ baseline)

package nested

import (
	"strings"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/model"
)

// InterceptTerm is the conventional name of the constant term.
const InterceptTerm = "(Intercept)"

type termKind uint8

const (
	termIntercept termKind = iota
	termNumeric
	termDummy
)

// term is one resolved design column.
type term struct {
	kind  termKind
	pred  string
	level string
}

// resolveTerm matches name against the predictors in formula order.
func resolveTerm(name string, preds []model.Predictor) (term, bool) {
	if name == InterceptTerm {
		return term{kind: termIntercept}, true
	}
	for _, p := range preds {
		switch p.Kind {
		case frame.Numeric:
			if name == p.Name {
				return term{kind: termNumeric, pred: p.Name}, true
			}
		case frame.Categorical:
			if !strings.HasPrefix(name, p.Name) || len(p.Levels) < 2 {
				continue
			}
			lvl := strings.TrimPrefix(name, p.Name)
			for _, l := range p.Levels[1:] {
				if l == lvl {
					return term{kind: termDummy, pred: p.Name, level: l}, true
				}
			}
		}
	}
	return term{}, false
}

// TermNames returns the full treatment-coded term list for preds:
// intercept, then each numeric predictor, then one dummy per non-baseline level.
func TermNames(preds []model.Predictor) []string {
	out := []string{InterceptTerm}
	for _, p := range preds {
		switch p.Kind {
		case frame.Numeric:
			out = append(out, p.Name)
		case frame.Categorical:
			for _, l := range p.Levels[1:] {
				out = append(out, p.Name+l)
			}
		}
	}
	return out
}

// designRow evaluates terms at row i of the bound columns.
func designRow(terms []term, cols map[string]*frame.Column, i int, dst []float64) []float64 {
	dst = dst[:0]
	for _, t := range terms {
		switch t.kind {
		case termIntercept:
			dst = append(dst, 1)
		case termNumeric:
			dst = append(dst, cols[t.pred].Value(i).Float())
		case termDummy:
			if cols[t.pred].Value(i).Str() == t.level {
				dst = append(dst, 1)
			} else {
				dst = append(dst, 0)
			}
		}
	}
	return dst
}
