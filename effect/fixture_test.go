package effect_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/model"
	"github.com/katalvlaran/nestplot/nested"
	"github.com/stretchr/testify/require"
)

const womenlfYAML = `
response: partic
predictors: [hincome, children, region]
dichotomies:
  - name: work
    left: [not.work]
    right: [parttime, fulltime]
    terms: ["(Intercept)", hincome, childrenpresent]
    coef: [1.3358, -0.0423, -1.5756]
    vcov: [[0.147, -0.004, -0.05], [-0.004, 0.0002, 0.0], [-0.05, 0.0, 0.084]]
  - name: full
    left: [parttime]
    right: [fulltime]
    terms: ["(Intercept)", hincome, childrenpresent]
    coef: [3.4778, -0.1073, -2.6515]
    vcov: [[0.588, -0.02, -0.1], [-0.02, 0.001, 0.0], [-0.1, 0.0, 0.237]]
`

// womenlf returns a nested model over hincome (mean 24.88), children
// (absent/present) and region (text: east, north, west).
func womenlf(t *testing.T) *nested.Model {
	t.Helper()
	f := frame.New()
	partic, err := frame.NewFactor("partic",
		[]string{"not.work", "fulltime", "parttime", "not.work", "fulltime"},
		[]string{"not.work", "parttime", "fulltime"})
	require.NoError(t, err)
	kids, err := frame.NewFactor("children",
		[]string{"present", "absent", "present", "present", "absent"},
		[]string{"absent", "present"})
	require.NoError(t, err)
	require.NoError(t, f.Add(partic))
	require.NoError(t, f.Add(frame.NewNumeric("hincome", []float64{10.4, 15, 23, 31, 45})))
	require.NoError(t, f.Add(kids))
	require.NoError(t, f.Add(frame.NewText("region", []string{"west", "east", "north", "east", "west"})))

	m, err := nested.Load(strings.NewReader(womenlfYAML), f)
	require.NoError(t, err)
	return m
}

// stubModel returns canned columns regardless of newdata.
type stubModel struct {
	preds []model.Predictor
	cats  []string
	probs map[string][]float64
	ci    map[string]model.Interval
	err   error
}

type stubPrediction struct {
	rows  int
	probs map[string][]float64
}

func (p stubPrediction) Rows() int                           { return p.rows }
func (p stubPrediction) Probabilities() map[string][]float64 { return p.probs }

func (m *stubModel) Response() string              { return "y" }
func (m *stubModel) Categories() []string          { return m.cats }
func (m *stubModel) Predictors() []model.Predictor { return m.preds }
func (m *stubModel) Data() *frame.Frame            { return frame.New() }
func (m *stubModel) Predict(newdata *frame.Frame) (model.Prediction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return stubPrediction{rows: newdata.Rows(), probs: m.probs}, nil
}
func (m *stubModel) ConfInt(model.Prediction, float64) (map[string]model.Interval, error) {
	return m.ci, nil
}

// unitStub is a one-predictor model on x ∈ [0, 1] with two categories and
// three-row columns.
func unitStub() *stubModel {
	return &stubModel{
		preds: []model.Predictor{{Name: "x", Kind: frame.Numeric, Min: 0, Max: 1, Mean: 0.5}},
		cats:  []string{"über", "b"},
		probs: map[string][]float64{
			"über": {0.25, 0.5, 0.75},
			"b":    {0.75, 0.5, 0.25},
		},
		ci: map[string]model.Interval{
			"über": {Lower: []float64{0.1, 0.3, 0.6}, Upper: []float64{0.4, 0.7, 0.9}},
			"b":    {Lower: []float64{0.6, 0.3, 0.1}, Upper: []float64{0.9, 0.7, 0.4}},
		},
	}
}
