// SPDX-License-Identifier: MIT
// Package: nestplot/nested
//
// nested.go — the Model type: construction and Predict.
//
// Contract:
//   • New validates the spec completely; a *Model is immutable afterwards.
//   • Predict never panics; every malformed newdata maps to a sentinel.
//   • Category probabilities in a row sum to 1 up to rounding.

package nested

import (
	"math"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/matrix"
	"github.com/katalvlaran/nestplot/model"
)

// covEps is the symmetry tolerance for covariance matrices read from YAML.
const covEps = 1e-9

// dichotomy is a validated, bound DichotomySpec.
type dichotomy struct {
	name  string
	terms []term
	coef  []float64
	vcov  *matrix.Dense // nil when the spec carries none
}

// Model is a fitted nested-dichotomies model bound to its training data.
type Model struct {
	response   string
	categories []string
	predictors []model.Predictor
	data       *frame.Frame
	ds         []dichotomy
	tree       tree
}

var _ model.Model = (*Model)(nil)

// New validates s against data and returns the bound model.
// Stage 1: response, predictors and categories.
// Stage 2: nesting of the dichotomies.
// Stage 3: terms, coefficients and covariance per dichotomy.
func New(s Spec, data *frame.Frame) (*Model, error) {
	const op = "New"
	if data == nil {
		return nil, nestedErrorf(op, "nil data: %w", ErrBadSpec)
	}
	if s.Response == "" || len(s.Predictors) == 0 {
		return nil, nestedErrorf(op, "response and predictors are required: %w", ErrBadSpec)
	}

	preds, err := model.Describe(data, s.Predictors)
	if err != nil {
		return nil, nestedErrorf(op, "%w: %w", err, ErrBadSpec)
	}
	seen := make(map[string]struct{}, len(preds))
	for _, p := range preds {
		if _, dup := seen[p.Name]; dup {
			return nil, nestedErrorf(op, "predictor %q listed twice: %w", p.Name, ErrBadSpec)
		}
		if p.Name == s.Response {
			return nil, nestedErrorf(op, "response %q used as predictor: %w", p.Name, ErrBadSpec)
		}
		seen[p.Name] = struct{}{}
	}

	cats, err := resolveCategories(s, data)
	if err != nil {
		return nil, nestedErrorf(op, "%w", err)
	}

	tr, err := buildTree(cats, s.Dichotomies)
	if err != nil {
		return nil, nestedErrorf(op, "%w", err)
	}

	ds := make([]dichotomy, len(s.Dichotomies))
	for i, d := range s.Dichotomies {
		if ds[i], err = bindDichotomy(d, preds); err != nil {
			return nil, nestedErrorf(op, "%w", err)
		}
	}

	return &Model{
		response:   s.Response,
		categories: cats,
		predictors: preds,
		data:       data,
		ds:         ds,
		tree:       tr,
	}, nil
}

// resolveCategories prefers the response levels in data, checking them
// against any categories the spec lists.
func resolveCategories(s Spec, data *frame.Frame) ([]string, error) {
	var cats []string
	if col, ok := data.Column(s.Response); ok {
		if col.Kind() != frame.Categorical {
			return nil, nestedErrorf("resolveCategories", "response %q is numeric: %w", s.Response, ErrBadSpec)
		}
		cats = col.Levels()
		if len(s.Categories) > 0 && setKey(s.Categories) != setKey(cats) {
			return nil, nestedErrorf("resolveCategories", "spec %v vs data %v: %w", s.Categories, cats, ErrCategoryMismatch)
		}
	} else {
		cats = append([]string(nil), s.Categories...)
	}
	if len(cats) < 2 {
		return nil, nestedErrorf("resolveCategories", "need at least 2 categories, have %d: %w", len(cats), ErrBadSpec)
	}
	seen := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		if _, dup := seen[c]; dup {
			return nil, nestedErrorf("resolveCategories", "category %q repeated: %w", c, ErrBadSpec)
		}
		seen[c] = struct{}{}
	}
	return cats, nil
}

// bindDichotomy resolves terms and validates coefficient shapes.
func bindDichotomy(d DichotomySpec, preds []model.Predictor) (dichotomy, error) {
	const op = "bindDichotomy"
	if len(d.Terms) == 0 || len(d.Terms) != len(d.Coef) {
		return dichotomy{}, nestedErrorf(op, "dichotomy %q: %d terms, %d coefficients: %w", d.Name, len(d.Terms), len(d.Coef), ErrBadCoefficients)
	}
	out := dichotomy{name: d.Name, terms: make([]term, len(d.Terms)), coef: append([]float64(nil), d.Coef...)}
	used := make(map[string]struct{}, len(d.Terms))
	for i, name := range d.Terms {
		if _, dup := used[name]; dup {
			return dichotomy{}, nestedErrorf(op, "dichotomy %q: term %q repeated: %w", d.Name, name, ErrBadCoefficients)
		}
		used[name] = struct{}{}
		t, ok := resolveTerm(name, preds)
		if !ok {
			return dichotomy{}, nestedErrorf(op, "dichotomy %q: term %q: %w", d.Name, name, ErrUnknownTerm)
		}
		out.terms[i] = t
	}
	for _, c := range out.coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return dichotomy{}, nestedErrorf(op, "dichotomy %q: non-finite coefficient: %w", d.Name, ErrBadCoefficients)
		}
	}
	if d.Vcov != nil {
		v, err := matrix.FromRows(d.Vcov)
		if err != nil {
			return dichotomy{}, nestedErrorf(op, "dichotomy %q vcov: %v: %w", d.Name, err, ErrBadCoefficients)
		}
		if err = matrix.ValidateCovariance(v, len(d.Terms), covEps); err != nil {
			return dichotomy{}, nestedErrorf(op, "dichotomy %q vcov: %v: %w", d.Name, err, ErrBadCoefficients)
		}
		out.vcov = v
	}
	return out, nil
}

// Response names the response variable.
func (m *Model) Response() string { return m.response }

// Categories returns the response categories in level order.
func (m *Model) Categories() []string { return append([]string(nil), m.categories...) }

// Predictors returns the predictor descriptors in formula order.
func (m *Model) Predictors() []model.Predictor {
	out := make([]model.Predictor, len(m.predictors))
	copy(out, m.predictors)
	return out
}

// Data returns the training data.
func (m *Model) Data() *frame.Frame { return m.data }

// Dichotomies returns the dichotomy names in spec order.
func (m *Model) Dichotomies() []string {
	out := make([]string, len(m.ds))
	for i, d := range m.ds {
		out[i] = d.name
	}
	return out
}

// Prediction is the result of Model.Predict; it keeps the design rows so
// ConfInt can reuse them.
type Prediction struct {
	owner  *Model
	rows   int
	design [][][]float64 // [dichotomy][row][term]
	pi     [][]float64   // [dichotomy][row] = P(right side)
	probs  map[string][]float64
}

// Rows returns the number of evaluated rows.
func (p *Prediction) Rows() int { return p.rows }

// Probabilities returns a copy of the per-category probability columns.
func (p *Prediction) Probabilities() map[string][]float64 {
	out := make(map[string][]float64, len(p.probs))
	for k, v := range p.probs {
		out[k] = append([]float64(nil), v...)
	}
	return out
}

// Predict evaluates category probabilities at each row of newdata.
func (m *Model) Predict(newdata *frame.Frame) (model.Prediction, error) {
	const op = "Predict"
	if newdata == nil {
		return nil, nestedErrorf(op, "nil newdata: %w", ErrMissingPredictor)
	}

	// Stage 1 (Bind): every predictor present, same kind, known levels.
	cols := make(map[string]*frame.Column, len(m.predictors))
	for _, p := range m.predictors {
		col, ok := newdata.Column(p.Name)
		if !ok {
			return nil, nestedErrorf(op, "predictor %q: %w", p.Name, ErrMissingPredictor)
		}
		if col.Kind() != p.Kind {
			return nil, nestedErrorf(op, "predictor %q is %v, trained as %v: %w", p.Name, col.Kind(), p.Kind, ErrKindMismatch)
		}
		if p.Kind == frame.Categorical {
			for i, v := range col.Strings() {
				if !contains(p.Levels, v) {
					return nil, nestedErrorf(op, "predictor %q row %d value %q: %w", p.Name, i, v, ErrUnknownLevel)
				}
			}
		}
		cols[p.Name] = col
	}

	// Stage 2 (Execute): linear predictor and branch probability per dichotomy.
	n := newdata.Rows()
	pred := &Prediction{
		owner:  m,
		rows:   n,
		design: make([][][]float64, len(m.ds)),
		pi:     make([][]float64, len(m.ds)),
		probs:  make(map[string][]float64, len(m.categories)),
	}
	for d, dich := range m.ds {
		pred.design[d] = make([][]float64, n)
		pred.pi[d] = make([]float64, n)
		for i := 0; i < n; i++ {
			x := designRow(dich.terms, cols, i, make([]float64, 0, len(dich.terms)))
			var eta float64
			for j, c := range dich.coef {
				eta += c * x[j]
			}
			pred.design[d][i] = x
			pred.pi[d][i] = logistic(eta)
		}
	}

	// Stage 3 (Finalize): multiply branch probabilities along each path.
	for _, c := range m.categories {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			p := 1.0
			for _, st := range m.tree.paths[c] {
				p *= branch(pred.pi[st.d][i], st.side)
			}
			col[i] = p
		}
		pred.probs[c] = col
	}

	return pred, nil
}

// branch returns the probability of taking side s given P(right) = pi.
func branch(pi float64, s side) float64 {
	if s == rightSide {
		return pi
	}
	return 1 - pi
}

// logistic is 1/(1+e^−x), evaluated without overflow for large |x|.
func logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
