package nestplot_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/nestplot"
	"github.com/katalvlaran/nestplot/dataset"
	"github.com/katalvlaran/nestplot/effect"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/nested"
	"github.com/katalvlaran/nestplot/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func womenlf(t *testing.T) *nested.Model {
	t.Helper()
	data, err := dataset.Womenlf(263, dataset.WithSeed(1))
	require.NoError(t, err)
	m, err := dataset.WomenlfModel(data)
	require.NoError(t, err)
	return m
}

// TestPlot_Defaults sweeps the first predictor and pins the rest.
func TestPlot_Defaults(t *testing.T) {
	rec := render.NewRecorder()
	res, err := nestplot.Plot(womenlf(t), rec, nestplot.WithLogger(quiet))
	require.NoError(t, err)

	assert.Equal(t, "hincome", res.Axis.Sweep)
	assert.Equal(t, frame.Numeric, res.Axis.Kind)
	assert.Equal(t, effect.DefaultResolution, res.Table.Rows())
	assert.Equal(t, 0.95, res.Table.Level)
	require.Len(t, res.Notes, 2)
	assert.Equal(t, effect.NoteSweep, res.Notes[0].Kind)
	assert.Equal(t, "children not given, fixed at absent", res.Notes[1].String())

	assert.Equal(t, "Axis", rec.Ops[0])
	assert.Equal(t, 3, rec.Count("Polygon"))
	assert.Equal(t, 3, rec.Count("Series"))
	assert.Equal(t, "children = absent", rec.Titles[0].Text)
}

func TestPlot_Categorical(t *testing.T) {
	rec := render.NewRecorder()
	res, err := nestplot.Plot(womenlf(t), rec,
		nestplot.WithLogger(quiet),
		nestplot.WithSweep("children"),
		nestplot.WithFixedNumber("hincome", 20),
		nestplot.WithConnectPoints(true),
		nestplot.WithMarkers(render.Square),
	)
	require.NoError(t, err)

	assert.Empty(t, res.Notes)
	assert.Equal(t, 2, res.Table.Rows())
	assert.Equal(t, 1, rec.Frames)
	assert.Equal(t, "hincome = 20", rec.Titles[0].Text)
	for _, p := range rec.Paths {
		assert.True(t, p.Line)
		assert.Equal(t, render.Square, p.Marker)
	}
}

// TestPlot_FailsBeforeDrawing leaves the surface untouched on every
// resolve, grid or fetch error.
func TestPlot_FailsBeforeDrawing(t *testing.T) {
	tests := []struct {
		name string
		opts []nestplot.Option
		want error
	}{
		{"bad sweep", []nestplot.Option{nestplot.WithSweep("age")}, effect.ErrInvalidPredictor},
		{"two values", []nestplot.Option{nestplot.WithFixed("children", frame.Level("absent"), frame.Level("present"))}, effect.ErrMultiValuedFixedInput},
		{"no values", []nestplot.Option{nestplot.WithFixed("children")}, effect.ErrMultiValuedFixedInput},
		{"unknown name", []nestplot.Option{nestplot.WithFixedNumber("age", 30)}, effect.ErrUnknownPredictor},
		{"unknown level", []nestplot.Option{nestplot.WithFixedLevel("children", "many")}, effect.ErrPredictionFailure},
	}
	m := womenlf(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := render.NewRecorder()
			res, err := nestplot.Plot(m, rec, append(tt.opts, nestplot.WithLogger(quiet))...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, res)
			assert.Empty(t, rec.Ops)
		})
	}
}

func TestPlot_NilArguments(t *testing.T) {
	_, err := nestplot.Plot(womenlf(t), nil)
	assert.ErrorIs(t, err, nestplot.ErrNilSurface)

	_, err = nestplot.Plot(nil, render.NewRecorder())
	assert.ErrorIs(t, err, effect.ErrNilModel)
}

func TestPlot_SurfaceError(t *testing.T) {
	boom := errors.New("disk full")
	rec := render.NewRecorder()
	rec.Fail = map[string]error{"Legend": boom}

	_, err := nestplot.Plot(womenlf(t), rec, nestplot.WithLogger(quiet))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rec.Count("Title"))

	rec = render.NewRecorder()
	rec.Fail = map[string]error{"Legend": boom}
	_, err = nestplot.Plot(womenlf(t), rec, nestplot.WithLogger(quiet), nestplot.WithLegend(false))
	assert.NoError(t, err)
}

func TestPlot_StyleOptions(t *testing.T) {
	rec := render.NewRecorder()
	_, err := nestplot.Plot(womenlf(t), rec,
		nestplot.WithLogger(quiet),
		nestplot.WithoutIntervals(),
		nestplot.WithResolution(5),
		nestplot.WithTitle("Labour force participation"),
		nestplot.WithTitleSize(18),
		nestplot.WithXLabel("income"),
		nestplot.WithYLabel("P"),
		nestplot.WithColors(drawing.ColorBlack),
		nestplot.WithLineTypes(render.Dashed, render.Solid),
		nestplot.WithLineWidth(1),
		nestplot.WithLegendPosition(render.BottomLeft),
		nestplot.WithLegendInset(0.05),
		nestplot.WithLegendBorder(false),
		nestplot.WithLegendAlpha(0.5),
	)
	require.NoError(t, err)

	assert.Zero(t, rec.Count("Polygon"))
	assert.Len(t, rec.Paths[0].X, 5)
	assert.Equal(t, render.TitleSpec{Text: "Labour force participation", Size: 18}, rec.Titles[0])
	assert.Equal(t, "income", rec.Axes[0].XLabel)
	assert.Equal(t, "P", rec.Axes[0].YLabel)
	assert.Equal(t, []render.LineType{render.Dashed, render.Solid, render.Dashed},
		[]render.LineType{rec.Paths[0].LineType, rec.Paths[1].LineType, rec.Paths[2].LineType})
	assert.Equal(t, drawing.ColorBlack, rec.Paths[2].Color)
	assert.Equal(t, 1.0, rec.Paths[0].Width)

	lg := rec.Legends[0].Style
	assert.Equal(t, render.BottomLeft, lg.Position)
	assert.Equal(t, 0.05, lg.Inset)
	assert.False(t, lg.Border)
	assert.Equal(t, 0.5, lg.Alpha)
}

func TestPlot_BandAlphaAndDigits(t *testing.T) {
	rec := render.NewRecorder()
	_, err := nestplot.Plot(womenlf(t), rec,
		nestplot.WithLogger(quiet),
		nestplot.WithSweep("children"),
		nestplot.WithFixedNumber("hincome", 14.7652),
		nestplot.WithDigits(2),
	)
	require.NoError(t, err)
	assert.Equal(t, "hincome = 15", rec.Titles[0].Text)

	rec = render.NewRecorder()
	_, err = nestplot.Plot(womenlf(t), rec, nestplot.WithLogger(quiet), nestplot.WithBandAlpha(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), rec.Polygons[0].Fill.A)
}

// TestPredict_Logs sends advisories to the configured logger.
func TestPredict_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	res, err := nestplot.Predict(womenlf(t), nestplot.WithLogger(log), nestplot.WithConfLevel(0.9))
	require.NoError(t, err)
	assert.Equal(t, 0.9, res.Table.Level)
	assert.Contains(t, buf.String(), "predictor=children")
	assert.Contains(t, buf.String(), "value=absent")
}

func TestOptions_Panic(t *testing.T) {
	tests := map[string]func(){
		"fixed no name":   func() { nestplot.WithFixed("") },
		"fixed NaN":       func() { nestplot.WithFixedNumber("x", nan()) },
		"resolution":      func() { nestplot.WithResolution(1) },
		"conf level 0":    func() { nestplot.WithConfLevel(0) },
		"conf level 1":    func() { nestplot.WithConfLevel(1) },
		"digits":          func() { nestplot.WithDigits(0) },
		"logger":          func() { nestplot.WithLogger(nil) },
		"band alpha":      func() { nestplot.WithBandAlpha(1.5) },
		"band alpha 0":    func() { nestplot.WithBandAlpha(0) },
		"title size":      func() { nestplot.WithTitleSize(0) },
		"title font":      func() { nestplot.WithTitleFont(nil) },
		"colors":          func() { nestplot.WithColors() },
		"line types":      func() { nestplot.WithLineTypes() },
		"bad line type":   func() { nestplot.WithLineTypes(render.LineType(40)) },
		"markers":         func() { nestplot.WithMarkers() },
		"bad marker":      func() { nestplot.WithMarkers(render.Marker(40)) },
		"line width":      func() { nestplot.WithLineWidth(-1) },
		"point size":      func() { nestplot.WithPointSize(0) },
		"legend position": func() { nestplot.WithLegendPosition(render.Position(40)) },
		"legend inset":    func() { nestplot.WithLegendInset(1) },
		"legend alpha":    func() { nestplot.WithLegendAlpha(-0.1) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) { assert.Panics(t, fn) })
	}
}
