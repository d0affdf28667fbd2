package render_test

import (
	"testing"

	"github.com/katalvlaran/nestplot/dataset"
	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/nested"
	"github.com/stretchr/testify/require"
)

// womenlfTable builds a prediction table over the synthetic labour-force data.
func womenlfTable(t *testing.T, sweep string, level float64) *effect.Table {
	t.Helper()
	data, err := dataset.Womenlf(200, dataset.WithSeed(1))
	require.NoError(t, err)
	m, err := dataset.WomenlfModel(data)
	require.NoError(t, err)

	ax, err := effect.Resolve(m, effect.Request{
		Sweep: sweep,
		Fixed: map[string][]frame.Value{},
	}, nil)
	require.NoError(t, err)
	grid, err := effect.BuildGrid(m, ax, 50)
	require.NoError(t, err)
	tbl, err := effect.Fetch(m, grid, ax, level)
	require.NoError(t, err)
	return tbl
}

// incomeOnlyTable uses a one-predictor model, so nothing is fixed.
func incomeOnlyTable(t *testing.T) *effect.Table {
	t.Helper()
	data, err := dataset.Womenlf(100, dataset.WithSeed(2))
	require.NoError(t, err)
	s := dataset.WomenlfSpec()
	s.Predictors = []string{dataset.Income}
	for i := range s.Dichotomies {
		s.Dichotomies[i].Terms = s.Dichotomies[i].Terms[:2]
		s.Dichotomies[i].Coef = s.Dichotomies[i].Coef[:2]
		s.Dichotomies[i].Vcov = [][]float64{s.Dichotomies[i].Vcov[0][:2], s.Dichotomies[i].Vcov[1][:2]}
	}
	m, err := nested.New(s, data)
	require.NoError(t, err)

	ax, err := effect.Resolve(m, effect.Request{}, nil)
	require.NoError(t, err)
	grid, err := effect.BuildGrid(m, ax, 10)
	require.NoError(t, err)
	tbl, err := effect.Fetch(m, grid, ax, 0.95)
	require.NoError(t, err)
	return tbl
}
