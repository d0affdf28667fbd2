package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nestplot/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWomenlf_Shape(t *testing.T) {
	data, err := dataset.Womenlf(263, dataset.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 263, data.Rows())
	assert.Equal(t, []string{"hincome", "children", "partic"}, data.Names())

	inc, _ := data.Column(dataset.Income)
	lo, hi := inc.Range()
	assert.GreaterOrEqual(t, lo, 1.0)
	assert.LessOrEqual(t, hi, 45.0)

	partic, _ := data.Column(dataset.Response)
	assert.Equal(t, dataset.Participation, partic.Levels())
}

// TestWomenlf_Deterministic locks output to the seed.
func TestWomenlf_Deterministic(t *testing.T) {
	a, err := dataset.Womenlf(50, dataset.WithSeed(7))
	require.NoError(t, err)
	b, err := dataset.Womenlf(50, dataset.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	for _, name := range a.Names() {
		ca, _ := a.Column(name)
		cb, _ := b.Column(name)
		for i := 0; i < a.Rows(); i++ {
			assert.Equal(t, ca.Value(i), cb.Value(i), "%s row %d", name, i)
		}
	}
}

func TestWomenlf_Options(t *testing.T) {
	data, err := dataset.Womenlf(30, dataset.WithSeed(3), dataset.WithChildrenRate(0), dataset.WithIncome(20, 1, 18, 22))
	require.NoError(t, err)
	kids, _ := data.Column(dataset.Children)
	for _, v := range kids.Strings() {
		assert.Equal(t, "absent", v)
	}
	inc, _ := data.Column(dataset.Income)
	lo, hi := inc.Range()
	assert.GreaterOrEqual(t, lo, 18.0)
	assert.LessOrEqual(t, hi, 22.0)
}

func TestWomenlf_Errors(t *testing.T) {
	_, err := dataset.Womenlf(1, dataset.WithSeed(1))
	assert.ErrorIs(t, err, dataset.ErrTooFewRows)
	_, err = dataset.Womenlf(10)
	assert.ErrorIs(t, err, dataset.ErrNeedRandSource)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { dataset.WithRand(nil) })
	assert.Panics(t, func() { dataset.WithChildrenRate(1.5) })
	assert.Panics(t, func() { dataset.WithIncome(10, 0, 1, 2) })
	assert.Panics(t, func() { dataset.WithIncome(10, 1, 5, 5) })
}

func TestWomenlfModel(t *testing.T) {
	data, err := dataset.Womenlf(100, dataset.WithSeed(11))
	require.NoError(t, err)
	m, err := dataset.WomenlfModel(data)
	require.NoError(t, err)
	assert.Equal(t, dataset.Participation, m.Categories())
	assert.Equal(t, []string{"work", "full"}, m.Dichotomies())
}
