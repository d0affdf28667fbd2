package render_test

import (
	"testing"

	"github.com/katalvlaran/nestplot/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestParseLineType(t *testing.T) {
	for i := render.Solid; i <= render.TwoDash; i++ {
		got, err := render.ParseLineType(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	got, err := render.ParseLineType("Dashed")
	require.NoError(t, err)
	assert.Equal(t, render.Dashed, got)
	assert.Nil(t, render.Solid.Dashes())
	assert.NotEmpty(t, render.Dotted.Dashes())

	_, err = render.ParseLineType("wavy")
	assert.ErrorIs(t, err, render.ErrUnknownLineType)
}

func TestParseMarker(t *testing.T) {
	got, err := render.ParseMarker("triangle-down")
	require.NoError(t, err)
	assert.Equal(t, render.TriangleDown, got)
	assert.Equal(t, "square", render.Square.String())

	_, err = render.ParseMarker("star")
	assert.ErrorIs(t, err, render.ErrUnknownMarker)
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want render.Position
	}{
		{"topright", render.TopRight},
		{"bottom-left", render.BottomLeft},
		{"TOP_LEFT", render.TopLeft},
		{"center", render.Center},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := render.ParsePosition(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := render.ParsePosition("outside")
	assert.ErrorIs(t, err, render.ErrUnknownPosition)
}

func TestParseColor(t *testing.T) {
	c, err := render.ParseColor("#E69F00")
	require.NoError(t, err)
	assert.Equal(t, drawing.Color{R: 0xe6, G: 0x9f, B: 0x00, A: 0xff}, c)

	c, err = render.ParseColor("0f0")
	require.NoError(t, err)
	assert.Equal(t, drawing.Color{R: 0, G: 0xff, B: 0, A: 0xff}, c)

	c, err = render.ParseColor(" blue ")
	require.NoError(t, err)
	assert.Equal(t, drawing.ColorBlue, c)

	for _, bad := range []string{"", "#12345", "chartreuse-ish"} {
		_, err = render.ParseColor(bad)
		assert.ErrorIs(t, err, render.ErrBadColor, bad)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := render.FormatFromPath("out/plot.SVG")
	require.NoError(t, err)
	assert.Equal(t, render.SVG, f)

	f, err = render.ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, "png", f.String())

	_, err = render.FormatFromPath("plot.pdf")
	assert.ErrorIs(t, err, render.ErrBadFormat)
}

func TestCycle(t *testing.T) {
	cs := []drawing.Color{drawing.ColorRed, drawing.ColorBlue}
	assert.Equal(t, []drawing.Color{drawing.ColorRed, drawing.ColorBlue, drawing.ColorRed}, render.Cycle(cs, 3))
	assert.Equal(t, render.DefaultPalette[:2], render.Cycle(nil, 2))
}

func TestDefaultStyle(t *testing.T) {
	st := render.DefaultStyle()
	assert.Equal(t, render.DefaultBandAlpha, st.BandAlpha)
	assert.True(t, st.Legend.Show)
	assert.Equal(t, render.TopRight, st.Legend.Position)
}
