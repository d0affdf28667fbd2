package effect_test

import (
	"testing"

	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildGrid_Continuous spans the observed range with constant fixed columns.
func TestBuildGrid_Continuous(t *testing.T) {
	m := womenlf(t)
	req := effect.Request{Sweep: "hincome", Fixed: fixed("children", []frame.Value{frame.Level("present")})}
	ax, err := effect.Resolve(m, req, nil)
	require.NoError(t, err)

	grid, err := effect.BuildGrid(m, ax, effect.DefaultResolution)
	require.NoError(t, err)
	assert.Equal(t, 100, grid.Rows())
	assert.Equal(t, []string{"hincome", "children", "region"}, grid.Names())

	inc, _ := grid.Column("hincome")
	xs := inc.Floats()
	assert.Equal(t, 10.4, xs[0])
	assert.Equal(t, 45.0, xs[99])
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}

	kids, _ := grid.Column("children")
	for _, v := range kids.Strings() {
		assert.Equal(t, "present", v)
	}
	assert.Equal(t, []string{"absent", "present"}, kids.Levels())
}

// TestBuildGrid_Categorical has one row per level in natural order.
func TestBuildGrid_Categorical(t *testing.T) {
	m := womenlf(t)
	ax, err := effect.Resolve(m, effect.Request{Sweep: "region"}, nil)
	require.NoError(t, err)

	grid, err := effect.BuildGrid(m, ax, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Rows())
	col, _ := grid.Column("region")
	assert.Equal(t, []string{"east", "north", "west"}, col.Strings())

	inc, _ := grid.Column("hincome")
	assert.Equal(t, []float64{24.9, 24.9, 24.9}, inc.Floats())
}

func TestBuildGrid_BadResolution(t *testing.T) {
	m := womenlf(t)
	ax, err := effect.Resolve(m, effect.Request{}, nil)
	require.NoError(t, err)
	_, err = effect.BuildGrid(m, ax, 1)
	assert.ErrorIs(t, err, effect.ErrBadResolution)
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, effect.Linspace(0, 1, 5))
	assert.Equal(t, []float64{2, 2, 2}, effect.Linspace(2, 2, 3))
	assert.Nil(t, effect.Linspace(0, 1, 0))
}
