package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/golang/freetype/truetype"
	"github.com/katalvlaran/nestplot"
	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/render"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// requestOptions converts the resolved settings into Plot/Predict options.
// Values the option constructors would panic on are reported as errors.
func requestOptions(c Config, fixed map[string][]string) ([]nestplot.Option, error) {
	opts := []nestplot.Option{nestplot.WithLogger(logger), nestplot.WithSweep(c.Sweep)}

	merged := make(map[string][]string, len(c.Fixed)+len(fixed))
	for k, v := range c.Fixed {
		merged[k] = []string{v}
	}
	for k, vs := range fixed {
		merged[k] = vs
	}
	names := make([]string, 0, len(merged))
	for k := range merged {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		vs := make([]frame.Value, len(merged[k]))
		for i, s := range merged[k] {
			vs[i] = frame.Level(s)
		}
		opts = append(opts, nestplot.WithFixed(k, vs...))
	}

	if c.Resolution != 0 {
		if c.Resolution < 2 {
			return nil, fmt.Errorf("resolution %d: need at least 2", c.Resolution)
		}
		opts = append(opts, nestplot.WithResolution(c.Resolution))
	}
	if c.ConfLevel != 0 {
		if !(c.ConfLevel > 0 && c.ConfLevel < 1) {
			return nil, fmt.Errorf("confidence level %g: need 0 < level < 1", c.ConfLevel)
		}
		opts = append(opts, nestplot.WithConfLevel(c.ConfLevel))
	}
	if c.Intervals != nil && !*c.Intervals {
		opts = append(opts, nestplot.WithoutIntervals())
	}
	if c.Digits != 0 {
		if c.Digits < 1 {
			return nil, fmt.Errorf("digits %d: need at least 1", c.Digits)
		}
		opts = append(opts, nestplot.WithDigits(c.Digits))
	}
	return opts, nil
}

// styleOptions converts the style section into drawing options.
func styleOptions(s StyleConfig) ([]nestplot.Option, error) {
	var opts []nestplot.Option
	if s.Title != "" {
		opts = append(opts, nestplot.WithTitle(s.Title))
	}
	if s.TitleSize != 0 {
		if s.TitleSize < 0 {
			return nil, fmt.Errorf("title size %g: must be positive", s.TitleSize)
		}
		opts = append(opts, nestplot.WithTitleSize(s.TitleSize))
	}
	if s.TitleFont != "" {
		f, err := loadFont(s.TitleFont)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nestplot.WithTitleFont(f))
	}
	if s.XLabel != "" {
		opts = append(opts, nestplot.WithXLabel(s.XLabel))
	}
	if s.YLabel != "" {
		opts = append(opts, nestplot.WithYLabel(s.YLabel))
	}

	if len(s.Colors) > 0 {
		cs := make([]drawing.Color, len(s.Colors))
		for i, name := range s.Colors {
			c, err := render.ParseColor(name)
			if err != nil {
				return nil, err
			}
			cs[i] = c
		}
		opts = append(opts, nestplot.WithColors(cs...))
	}
	if len(s.LineTypes) > 0 {
		ls := make([]render.LineType, len(s.LineTypes))
		for i, name := range s.LineTypes {
			l, err := render.ParseLineType(name)
			if err != nil {
				return nil, err
			}
			ls[i] = l
		}
		opts = append(opts, nestplot.WithLineTypes(ls...))
	}
	if len(s.Markers) > 0 {
		ms := make([]render.Marker, len(s.Markers))
		for i, name := range s.Markers {
			m, err := render.ParseMarker(name)
			if err != nil {
				return nil, err
			}
			ms[i] = m
		}
		opts = append(opts, nestplot.WithMarkers(ms...))
	}

	if s.LineWidth != 0 {
		if s.LineWidth < 0 {
			return nil, fmt.Errorf("line width %g: must be positive", s.LineWidth)
		}
		opts = append(opts, nestplot.WithLineWidth(s.LineWidth))
	}
	if s.PointSize != 0 {
		if s.PointSize < 0 {
			return nil, fmt.Errorf("point size %g: must be positive", s.PointSize)
		}
		opts = append(opts, nestplot.WithPointSize(s.PointSize))
	}
	if s.ConnectPoints {
		opts = append(opts, nestplot.WithConnectPoints(true))
	}
	if s.BandAlpha != nil {
		if a := *s.BandAlpha; !(a > 0 && a <= 1) {
			return nil, fmt.Errorf("band alpha %g: need a value in (0, 1]", a)
		}
		opts = append(opts, nestplot.WithBandAlpha(*s.BandAlpha))
	}

	lg := s.Legend
	if lg.Show != nil {
		opts = append(opts, nestplot.WithLegend(*lg.Show))
	}
	if lg.Position != "" {
		p, err := render.ParsePosition(lg.Position)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nestplot.WithLegendPosition(p))
	}
	if lg.Inset != nil {
		if !(*lg.Inset > -1 && *lg.Inset < 1) {
			return nil, fmt.Errorf("legend inset %g: need -1 < inset < 1", *lg.Inset)
		}
		opts = append(opts, nestplot.WithLegendInset(*lg.Inset))
	}
	if lg.Border != nil {
		opts = append(opts, nestplot.WithLegendBorder(*lg.Border))
	}
	if lg.Alpha != nil {
		if err := unit("legend alpha", *lg.Alpha); err != nil {
			return nil, err
		}
		opts = append(opts, nestplot.WithLegendAlpha(*lg.Alpha))
	}
	return opts, nil
}

func unit(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%s %g: need a value in [0, 1]", name, v)
	}
	return nil
}

// loadFont parses a TrueType file.
func loadFont(path string) (*truetype.Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("title font: %w", err)
	}
	f, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("title font %s: %w", path, err)
	}
	return f, nil
}

// surfaceOptions converts the output section into surface options.
func surfaceOptions(o OutputConfig) ([]render.SurfaceOption, error) {
	format := render.PNG
	var err error
	switch {
	case o.Format != "":
		format, err = render.ParseFormat(o.Format)
	case o.Path != "":
		format, err = render.FormatFromPath(o.Path)
	}
	if err != nil {
		return nil, err
	}
	opts := []render.SurfaceOption{render.WithFormat(format)}

	if o.Width != 0 || o.Height != 0 {
		w, h := o.Width, o.Height
		if w == 0 {
			w = render.DefaultWidth
		}
		if h == 0 {
			h = render.DefaultHeight
		}
		if w < 0 || h < 0 {
			return nil, fmt.Errorf("size %dx%d: must be positive", w, h)
		}
		opts = append(opts, render.WithSize(w, h))
	}
	if o.DPI != 0 {
		if o.DPI < 0 {
			return nil, fmt.Errorf("dpi %g: must be positive", o.DPI)
		}
		opts = append(opts, render.WithDPI(o.DPI))
	}
	if o.Note != "" {
		opts = append(opts, render.WithFootnote(o.Note))
	}
	return opts, nil
}
