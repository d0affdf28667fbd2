package frame

// Frame is an ordered collection of equally long columns.
type Frame struct {
	order []string
	cols  map[string]*Column
	rows  int
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{cols: make(map[string]*Column)}
}

// Add appends a column. The first column fixes the row count.
func (f *Frame) Add(c *Column) error {
	const op = "Frame.Add"
	if c == nil || c.Name() == "" {
		return frameErrorf(op, "%w", ErrEmptyName)
	}
	if _, dup := f.cols[c.Name()]; dup {
		return frameErrorf(op, "column %q: %w", c.Name(), ErrDuplicateColumn)
	}
	if len(f.order) > 0 && c.Len() != f.rows {
		return frameErrorf(op, "column %q has %d rows, frame has %d: %w", c.Name(), c.Len(), f.rows, ErrLengthMismatch)
	}
	if len(f.order) == 0 {
		f.rows = c.Len()
	}
	f.order = append(f.order, c.Name())
	f.cols[c.Name()] = c

	return nil
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (*Column, bool) {
	c, ok := f.cols[name]
	return c, ok
}

// Names returns the column names in insertion order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return len(f.order) }

// Row returns row i as a name → Value map.
func (f *Frame) Row(i int) map[string]Value {
	out := make(map[string]Value, len(f.order))
	for _, n := range f.order {
		out[n] = f.cols[n].Value(i)
	}
	return out
}
