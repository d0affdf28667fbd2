package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Recorder is a Surface that keeps every call for inspection.
// Fail makes the named operation ("Axis", "Series", ...) return an error.
type Recorder struct {
	Ops      []string
	Axes     []AxisSpec
	Paths    []Path
	Polygons []Polygon
	Segs     []Segments
	Frames   int
	Titles   []TitleSpec
	Legends  []LegendSpec

	Fail map[string]error

	palette []drawing.Color
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns a Recorder using DefaultPalette.
func NewRecorder() *Recorder {
	return &Recorder{palette: DefaultPalette}
}

func (r *Recorder) record(op string) error {
	if err := r.Fail[op]; err != nil {
		return err
	}
	r.Ops = append(r.Ops, op)
	return nil
}

// Palette returns the current color sequence.
func (r *Recorder) Palette() []drawing.Color { return append([]drawing.Color(nil), r.palette...) }

// SetPalette replaces the color sequence.
func (r *Recorder) SetPalette(cs []drawing.Color) { r.palette = append([]drawing.Color(nil), cs...) }

// Axis implements Surface.
func (r *Recorder) Axis(a AxisSpec) error {
	if err := r.record("Axis"); err != nil {
		return err
	}
	r.Axes = append(r.Axes, a)
	return nil
}

// Series implements Surface.
func (r *Recorder) Series(p Path) error {
	if err := r.record("Series"); err != nil {
		return err
	}
	r.Paths = append(r.Paths, p)
	return nil
}

// Polygon implements Surface.
func (r *Recorder) Polygon(p Polygon) error {
	if err := r.record("Polygon"); err != nil {
		return err
	}
	r.Polygons = append(r.Polygons, p)
	return nil
}

// Segments implements Surface.
func (r *Recorder) Segments(s Segments) error {
	if err := r.record("Segments"); err != nil {
		return err
	}
	r.Segs = append(r.Segs, s)
	return nil
}

// Frame implements Surface.
func (r *Recorder) Frame() error {
	if err := r.record("Frame"); err != nil {
		return err
	}
	r.Frames++
	return nil
}

// Title implements Surface.
func (r *Recorder) Title(t TitleSpec) error {
	if err := r.record("Title"); err != nil {
		return err
	}
	r.Titles = append(r.Titles, t)
	return nil
}

// Legend implements Surface.
func (r *Recorder) Legend(l LegendSpec) error {
	if err := r.record("Legend"); err != nil {
		return err
	}
	r.Legends = append(r.Legends, l)
	return nil
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, o := range r.Ops {
		if o == op {
			n++
		}
	}
	return n
}
