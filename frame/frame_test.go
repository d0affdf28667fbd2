package frame_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFactor_Validation covers level declarations and unknown values.
func TestNewFactor_Validation(t *testing.T) {
	_, err := frame.NewFactor("children", []string{"absent", "maybe"}, []string{"absent", "present"})
	assert.ErrorIs(t, err, frame.ErrUnknownLevel)

	_, err = frame.NewFactor("children", []string{"absent"}, []string{"absent", "absent"})
	assert.ErrorIs(t, err, frame.ErrDuplicateLevel)

	c, err := frame.NewFactor("children", []string{"present", "absent"}, []string{"present", "absent"})
	require.NoError(t, err)
	assert.Equal(t, []string{"present", "absent"}, c.Levels(), "declared order is kept")
	assert.True(t, c.IsFactor())
}

// TestNewText_SortsBytewise pins the collation rule for unleveled text.
func TestNewText_SortsBytewise(t *testing.T) {
	c := frame.NewText("region", []string{"Ontario", "BC", "atlantic", "Quebec", "BC"})
	assert.Equal(t, []string{"BC", "Ontario", "Quebec", "atlantic"}, c.Levels())
	assert.False(t, c.IsFactor())
	assert.Equal(t, frame.Categorical, c.Kind())
}

// TestColumn_Stats checks Mean and Range on numeric and categorical columns.
func TestColumn_Stats(t *testing.T) {
	c := frame.NewNumeric("x", []float64{3, -1, 4, 2})
	assert.InDelta(t, 2.0, c.Mean(), 1e-12)
	lo, hi := c.Range()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 4.0, hi)

	txt := frame.NewText("t", []string{"a"})
	assert.True(t, math.IsNaN(txt.Mean()))
	assert.Nil(t, txt.Floats())
}

// TestFrame_Add enforces unique names and equal lengths.
func TestFrame_Add(t *testing.T) {
	f := frame.New()
	require.NoError(t, f.Add(frame.NewNumeric("a", []float64{1, 2})))
	assert.ErrorIs(t, f.Add(frame.NewNumeric("a", []float64{1, 2})), frame.ErrDuplicateColumn)
	assert.ErrorIs(t, f.Add(frame.NewNumeric("b", []float64{1})), frame.ErrLengthMismatch)
	assert.ErrorIs(t, f.Add(frame.NewNumeric("", []float64{1, 2})), frame.ErrEmptyName)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, []string{"a"}, f.Names())
}

// TestConstant builds constant grid columns of both kinds.
func TestConstant(t *testing.T) {
	c, err := frame.Constant("children", frame.Level("present"), 3, []string{"absent", "present"})
	require.NoError(t, err)
	assert.Equal(t, []string{"present", "present", "present"}, c.Strings())
	assert.Equal(t, []string{"absent", "present"}, c.Levels())

	n, err := frame.Constant("hincome", frame.Num(14.8), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{14.8, 14.8}, n.Floats())

	_, err = frame.Constant("x", frame.Value{}, 2, nil)
	assert.ErrorIs(t, err, frame.ErrKindMismatch)
}

// TestValue_Conversions covers AsNumber and ParseValue.
func TestValue_Conversions(t *testing.T) {
	v, ok := frame.Level(" 12.5").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, frame.Num(12.5), v)

	_, ok = frame.Level("present").AsNumber()
	assert.False(t, ok)

	_, err := frame.ParseValue("abc", frame.Numeric)
	assert.ErrorIs(t, err, frame.ErrKindMismatch)

	assert.Equal(t, "3.25", frame.Num(3.25).String())
	assert.Equal(t, "present", frame.Level("present").String())
}

// TestReadCSV_Inference reads numeric, text, logical and declared-factor columns.
func TestReadCSV_Inference(t *testing.T) {
	in := `partic,hincome,children,region,owner
not.work,15,present,Ontario,TRUE
fulltime,13,absent,BC,FALSE
parttime,45,present,Ontario,TRUE
`
	f, err := frame.ReadCSV(strings.NewReader(in),
		frame.WithLevels("partic", "not.work", "parttime", "fulltime"),
		frame.WithLevels("children", "absent", "present"),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, []string{"partic", "hincome", "children", "region", "owner"}, f.Names())

	inc, _ := f.Column("hincome")
	assert.Equal(t, frame.Numeric, inc.Kind())

	partic, _ := f.Column("partic")
	assert.Equal(t, []string{"not.work", "parttime", "fulltime"}, partic.Levels())

	region, _ := f.Column("region")
	assert.Equal(t, []string{"BC", "Ontario"}, region.Levels())

	owner, _ := f.Column("owner")
	assert.Equal(t, []string{"FALSE", "TRUE"}, owner.Levels())
}

// TestReadCSV_Errors covers the malformed-input classes.
func TestReadCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []frame.CSVOption
		want error
	}{
		{"empty", "", nil, frame.ErrBadCSV},
		{"ragged", "a,b\n1,2\n3\n", nil, frame.ErrBadCSV},
		{"empty cell", "a,b\n1,\n", nil, frame.ErrBadCSV},
		{"undeclared level", "a\nx\n", []frame.CSVOption{frame.WithLevels("a", "y")}, frame.ErrUnknownLevel},
		{"NaN cell", "a,b\n10,x\nNaN,y\n30,z\n", nil, frame.ErrNonFinite},
		{"Inf cell", "a\n+Inf\n2\n", nil, frame.ErrNonFinite},
		{"negative Inf cell", "a\n1\n-inf\n", nil, frame.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := frame.ReadCSV(strings.NewReader(tc.in), tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestReadCSV_ForcedFactor keeps numeric-looking codes categorical.
func TestReadCSV_ForcedFactor(t *testing.T) {
	f, err := frame.ReadCSV(strings.NewReader("code;y\n2;1\n10;2\n"), frame.WithComma(';'), frame.WithFactor("code"))
	require.NoError(t, err)
	code, _ := f.Column("code")
	assert.Equal(t, frame.Categorical, code.Kind())
	assert.Equal(t, []string{"10", "2"}, code.Levels(), "byte-wise order, not numeric")
}

// TestCSVOptions_Panic verifies option constructors reject meaningless input.
func TestCSVOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { frame.WithLevels("") })
	assert.Panics(t, func() { frame.WithLevels("a") })
	assert.Panics(t, func() { frame.WithFactor("") })
	assert.Panics(t, func() { frame.WithComma('"') })
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	f := frame.New()
	kids, err := frame.NewFactor("children", []string{"present", "absent"}, []string{"absent", "present"})
	require.NoError(t, err)
	require.NoError(t, f.Add(frame.NewNumeric("hincome", []float64{15, 0.1})))
	require.NoError(t, f.Add(kids))

	var buf bytes.Buffer
	require.NoError(t, frame.WriteCSV(&buf, f))
	assert.Equal(t, "hincome,children\n15,present\n0.1,absent\n", buf.String())

	back, err := frame.ReadCSV(&buf, frame.WithLevels("children", "absent", "present"))
	require.NoError(t, err)
	c, _ := back.Column("hincome")
	assert.Equal(t, []float64{15, 0.1}, c.Floats())
	c, _ = back.Column("children")
	assert.Equal(t, []string{"absent", "present"}, c.Levels())
}
