package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nestplot/frame"
)

// ErrMissingColumn indicates a predictor or response name absent from the data.
var ErrMissingColumn = errors.New("model: column not in data")

// ErrEmptyColumn indicates a predictor column without rows; ranges and means are undefined.
var ErrEmptyColumn = errors.New("model: predictor column is empty")

// ErrNonFinite indicates a numeric predictor holding NaN or ±Inf.
var ErrNonFinite = errors.New("model: non-finite numeric predictor")

// Predictor describes one right-hand-side variable as observed in the training data.
type Predictor struct {
	Name string
	Kind frame.Kind

	// Numeric predictors.
	Min, Max, Mean float64

	// Categorical predictors, in natural order.
	Levels []string
}

// Model is a fitted polytomous-response model.
type Model interface {
	// Response names the response variable.
	Response() string
	// Categories returns the response categories in level order.
	Categories() []string
	// Predictors returns the predictor descriptors in formula order.
	Predictors() []Predictor
	// Data returns the training data.
	Data() *frame.Frame
	// Predict evaluates fitted probabilities at every row of newdata.
	Predict(newdata *frame.Frame) (Prediction, error)
	// ConfInt computes pointwise intervals at level (0 < level < 1) for a
	// prediction obtained from the same model.
	ConfInt(p Prediction, level float64) (map[string]Interval, error)
}

// Prediction is the result of Model.Predict.
type Prediction interface {
	// Rows returns the number of evaluated rows.
	Rows() int
	// Probabilities returns one column per response category, keyed by label.
	Probabilities() map[string][]float64
}

// Interval holds pointwise lower and upper bounds aligned with a Prediction's rows.
type Interval struct {
	Lower []float64
	Upper []float64
}

// Describe builds predictor descriptors for names (formula order) from data.
func Describe(data *frame.Frame, names []string) ([]Predictor, error) {
	out := make([]Predictor, 0, len(names))
	for _, name := range names {
		col, ok := data.Column(name)
		if !ok {
			return nil, fmt.Errorf("Describe: predictor %q: %w", name, ErrMissingColumn)
		}
		if col.Len() == 0 {
			return nil, fmt.Errorf("Describe: predictor %q: %w", name, ErrEmptyColumn)
		}

		p := Predictor{Name: name, Kind: col.Kind()}
		switch col.Kind() {
		case frame.Numeric:
			p.Min, p.Max = col.Range()
			p.Mean = col.Mean()
			if !finite(p.Min) || !finite(p.Max) || !finite(p.Mean) {
				return nil, fmt.Errorf("Describe: predictor %q: %w", name, ErrNonFinite)
			}
		case frame.Categorical:
			p.Levels = col.Levels()
		}
		out = append(out, p)
	}

	return out, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Lookup returns the descriptor named name.
func Lookup(ps []Predictor, name string) (Predictor, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Predictor{}, false
}
