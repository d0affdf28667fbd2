// SPDX-License-Identifier: MIT
// Package: nestplot/dataset
//
// womenlf.go — labour-force participation fixture.
//
// Response partic ∈ {not.work, parttime, fulltime} follows the nested model
// returned by WomenlfSpec:
//
//	work: not.work | {parttime, fulltime}
//	full: parttime | fulltime            (within the working)
//
// each with terms (Intercept), hincome, childrenpresent.

package dataset

import (
	"math"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/nested"
)

// Column names and levels of the Womenlf table.
const (
	Response = "partic"
	Income   = "hincome"
	Children = "children"
)

var (
	// Participation lists the response levels in order.
	Participation = []string{"not.work", "parttime", "fulltime"}
	// ChildrenLevels lists the children levels; "absent" is the baseline.
	ChildrenLevels = []string{"absent", "present"}
)

// minRows keeps every factor level likely to appear.
const minRows = 2

// WomenlfSpec returns the nested model the response is drawn from.
func WomenlfSpec() nested.Spec {
	terms := []string{nested.InterceptTerm, Income, Children + "present"}
	return nested.Spec{
		Response:   Response,
		Categories: append([]string(nil), Participation...),
		Predictors: []string{Income, Children},
		Dichotomies: []nested.DichotomySpec{
			{
				Name:  "work",
				Left:  []string{"not.work"},
				Right: []string{"parttime", "fulltime"},
				Terms: terms,
				Coef:  []float64{1.3358, -0.0423, -1.5756},
				Vcov: [][]float64{
					{0.147, -0.004, -0.05},
					{-0.004, 0.0002, 0},
					{-0.05, 0, 0.084},
				},
			},
			{
				Name:  "full",
				Left:  []string{"parttime"},
				Right: []string{"fulltime"},
				Terms: append([]string(nil), terms...),
				Coef:  []float64{3.4778, -0.1073, -2.6515},
				Vcov: [][]float64{
					{0.588, -0.02, -0.1},
					{-0.02, 0.001, 0},
					{-0.1, 0, 0.237},
				},
			},
		},
	}
}

// WomenlfModel binds WomenlfSpec to data.
func WomenlfModel(data *frame.Frame) (*nested.Model, error) {
	return nested.New(WomenlfSpec(), data)
}

// Womenlf draws n rows: hincome (integer thousands), children (factor) and
// partic (factor) sampled from the model's fitted probabilities.
// Stage 1: predictors. Stage 2: probabilities. Stage 3: response draws.
// Complexity: O(n).
func Womenlf(n int, opts ...DatasetOption) (*frame.Frame, error) {
	const op = "Womenlf"
	if n < minRows {
		return nil, datasetErrorf(op, ErrTooFewRows)
	}
	cfg := newDatasetConfig(opts...)
	if cfg.rng == nil {
		return nil, datasetErrorf(op, ErrNeedRandSource)
	}

	income := make([]float64, n)
	kids := make([]string, n)
	for i := 0; i < n; i++ {
		x := cfg.rng.NormFloat64()*cfg.incomeSD + cfg.incomeMean
		income[i] = math.Round(math.Min(math.Max(x, cfg.incomeMin), cfg.incomeMax))
		kids[i] = ChildrenLevels[0]
		if cfg.rng.Float64() < cfg.childrenRate {
			kids[i] = ChildrenLevels[1]
		}
	}

	data := frame.New()
	if err := data.Add(frame.NewNumeric(Income, income)); err != nil {
		return nil, datasetErrorf(op, err)
	}
	kc, err := frame.NewFactor(Children, kids, ChildrenLevels)
	if err != nil {
		return nil, datasetErrorf(op, err)
	}
	if err = data.Add(kc); err != nil {
		return nil, datasetErrorf(op, err)
	}

	m, err := nested.New(WomenlfSpec(), data)
	if err != nil {
		return nil, datasetErrorf(op, err)
	}
	pred, err := m.Predict(data)
	if err != nil {
		return nil, datasetErrorf(op, err)
	}
	probs := pred.Probabilities()

	partic := make([]string, n)
	for i := range partic {
		u := cfg.rng.Float64()
		partic[i] = Participation[len(Participation)-1]
		var acc float64
		for _, c := range Participation {
			acc += probs[c][i]
			if u < acc {
				partic[i] = c
				break
			}
		}
	}
	pc, err := frame.NewFactor(Response, partic, Participation)
	if err != nil {
		return nil, datasetErrorf(op, err)
	}
	if err = data.Add(pc); err != nil {
		return nil, datasetErrorf(op, err)
	}
	return data, nil
}
