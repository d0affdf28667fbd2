package effect_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(kv ...interface{}) map[string][]frame.Value {
	out := make(map[string][]frame.Value)
	for i := 0; i < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1].([]frame.Value)
	}
	return out
}

// TestResolve_DefaultSweep picks the first predictor and notes it once.
func TestResolve_DefaultSweep(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	ax, err := effect.Resolve(womenlf(t), effect.Request{}, log)
	require.NoError(t, err)

	assert.Equal(t, "hincome", ax.Sweep)
	assert.Equal(t, frame.Numeric, ax.Kind)

	var sweepNotes int
	for _, n := range ax.Notes {
		if n.Kind == effect.NoteSweep {
			sweepNotes++
			assert.Equal(t, "hincome", n.Predictor)
		}
	}
	assert.Equal(t, 1, sweepNotes)
	assert.Contains(t, buf.String(), "predictor=hincome")
	assert.Contains(t, buf.String(), "level=INFO")
}

// TestResolve_Defaults pins categorical predictors to their first level and
// numeric ones to the mean rounded to 3 significant digits.
func TestResolve_Defaults(t *testing.T) {
	ax, err := effect.Resolve(womenlf(t), effect.Request{Sweep: "region"}, nil)
	require.NoError(t, err)

	assert.Equal(t, frame.Categorical, ax.Kind)
	require.Len(t, ax.Fixed, 2)
	assert.Equal(t, effect.Setting{Name: "hincome", Value: frame.Num(24.9)}, ax.Fixed[0])
	assert.Equal(t, effect.Setting{Name: "children", Value: frame.Level("absent")}, ax.Fixed[1])

	require.Len(t, ax.Notes, 2)
	for _, n := range ax.Notes {
		assert.Equal(t, effect.NoteDefault, n.Kind)
	}

	ax, err = effect.Resolve(womenlf(t), effect.Request{Sweep: "hincome"}, nil)
	require.NoError(t, err)
	v, ok := ax.Setting("region")
	require.True(t, ok)
	assert.Equal(t, frame.Level("east"), v, "text levels sort byte-wise")
}

// TestResolve_Supplied keeps caller values and coerces numeric strings.
func TestResolve_Supplied(t *testing.T) {
	req := effect.Request{
		Sweep: "hincome",
		Fixed: fixed(
			"children", []frame.Value{frame.Level("present")},
			"region", []frame.Value{frame.Level("west")},
		),
	}
	ax, err := effect.Resolve(womenlf(t), req, nil)
	require.NoError(t, err)
	assert.Empty(t, ax.Notes)
	assert.Equal(t, []effect.Setting{
		{Name: "children", Value: frame.Level("present")},
		{Name: "region", Value: frame.Level("west")},
	}, ax.Fixed)

	req = effect.Request{Sweep: "children", Fixed: fixed("hincome", []frame.Value{frame.Level("30")})}
	ax, err = effect.Resolve(womenlf(t), req, nil)
	require.NoError(t, err)
	v, _ := ax.Setting("hincome")
	assert.Equal(t, frame.Num(30), v)
}

// TestResolve_SweepInFixed ignores a fixed value for the sweep variable.
func TestResolve_SweepInFixed(t *testing.T) {
	req := effect.Request{Sweep: "hincome", Fixed: fixed("hincome", []frame.Value{frame.Num(3)})}
	ax, err := effect.Resolve(womenlf(t), req, nil)
	require.NoError(t, err)
	_, ok := ax.Setting("hincome")
	assert.False(t, ok)
	assert.Equal(t, effect.NoteIgnored, ax.Notes[0].Kind)
}

// TestResolve_Errors covers each failure class and their precedence.
func TestResolve_Errors(t *testing.T) {
	two := []frame.Value{frame.Level("absent"), frame.Level("present")}
	one := []frame.Value{frame.Num(1)}

	cases := []struct {
		name string
		req  effect.Request
		want error
	}{
		{"unknown sweep", effect.Request{Sweep: "nonexistent"}, effect.ErrInvalidPredictor},
		{"multi valued", effect.Request{Fixed: fixed("children", two)}, effect.ErrMultiValuedFixedInput},
		{"empty entry", effect.Request{Fixed: fixed("children", []frame.Value{})}, effect.ErrMultiValuedFixedInput},
		{"unknown key", effect.Request{Fixed: fixed("age", one)}, effect.ErrUnknownPredictor},
		{"sweep checked first", effect.Request{Sweep: "nonexistent", Fixed: fixed("children", two)}, effect.ErrInvalidPredictor},
		{"count before name", effect.Request{Fixed: fixed("age", one, "children", two)}, effect.ErrMultiValuedFixedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := effect.Resolve(womenlf(t), tc.req, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := effect.Resolve(nil, effect.Request{}, nil)
	assert.ErrorIs(t, err, effect.ErrNilModel)
}

func TestNote_String(t *testing.T) {
	assert.Equal(t, "sweep variable not given, using hincome",
		effect.Note{Kind: effect.NoteSweep, Predictor: "hincome"}.String())
	assert.Equal(t, "children not given, fixed at absent",
		effect.Note{Kind: effect.NoteDefault, Predictor: "children", Value: frame.Level("absent")}.String())
}
