// SPDX-License-Identifier: MIT
// Package: nestplot/effect
//
// resolve.go — Axis Resolver.
//
// Contract:
//   • Checks run in a fixed order: sweep name, then value counts, then key
//     names; keys are scanned sorted so the reported name is deterministic.
//   • Axis.Fixed holds exactly one Setting per non-swept predictor, in
//     formula order.
//   • Every default that was filled in produces one Note and one Info log.

package effect

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/katalvlaran/nestplot/frame"
	"github.com/katalvlaran/nestplot/model"
)

// DefaultDigits is the number of significant digits used for numeric
// defaults and for auto-generated titles.
const DefaultDigits = 3

// Request is what the caller asks for. Zero values mean "choose for me".
type Request struct {
	// Sweep names the predictor to vary; empty selects the first predictor.
	Sweep string
	// Fixed pins predictors to values; each entry must hold exactly one value.
	Fixed map[string][]frame.Value
	// Digits rounds numeric defaults to this many significant digits
	// (0 means DefaultDigits).
	Digits int
}

// Setting is one pinned predictor.
type Setting struct {
	Name  string
	Value frame.Value
}

// NoteKind classifies an advisory.
type NoteKind uint8

const (
	// NoteSweep reports that the sweep variable was chosen automatically.
	NoteSweep NoteKind = iota + 1
	// NoteDefault reports that a predictor was pinned to its default.
	NoteDefault
	// NoteIgnored reports a fixed value given for the sweep variable itself.
	NoteIgnored
)

// Note is a non-fatal advisory produced by Resolve.
type Note struct {
	Kind      NoteKind
	Predictor string
	Value     frame.Value // zero for NoteSweep
}

// String renders the advisory as a sentence.
func (n Note) String() string {
	switch n.Kind {
	case NoteSweep:
		return fmt.Sprintf("sweep variable not given, using %s", n.Predictor)
	case NoteDefault:
		return fmt.Sprintf("%s not given, fixed at %s", n.Predictor, n.Value)
	case NoteIgnored:
		return fmt.Sprintf("fixed value for sweep variable %s ignored", n.Predictor)
	default:
		return "unknown note"
	}
}

// Axis is the resolved sweep and fixed-value assignment.
type Axis struct {
	Sweep     string
	Kind      frame.Kind
	Predictor model.Predictor // descriptor of the sweep variable
	Fixed     []Setting
	Notes     []Note
}

// Resolve validates req against m and fills in every missing choice.
// A nil logger discards the advisories; they are still returned in Axis.Notes.
func Resolve(m model.Model, req Request, log *slog.Logger) (Axis, error) {
	const op = "Resolve"
	if m == nil {
		return Axis{}, effectErrorf(op, "%w", ErrNilModel)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	digits := req.Digits
	if digits <= 0 {
		digits = DefaultDigits
	}
	preds := m.Predictors()
	if len(preds) == 0 {
		return Axis{}, effectErrorf(op, "model has no predictors: %w", ErrInvalidPredictor)
	}

	var ax Axis

	// Stage 1: sweep variable.
	if req.Sweep == "" {
		ax.Predictor = preds[0]
		ax.Notes = append(ax.Notes, Note{Kind: NoteSweep, Predictor: preds[0].Name})
	} else {
		p, ok := model.Lookup(preds, req.Sweep)
		if !ok {
			return Axis{}, effectErrorf(op, "sweep %q: %w", req.Sweep, ErrInvalidPredictor)
		}
		ax.Predictor = p
	}
	ax.Sweep = ax.Predictor.Name
	ax.Kind = ax.Predictor.Kind

	// Stage 2: supplied values, counts before names.
	keys := make([]string, 0, len(req.Fixed))
	for k := range req.Fixed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if n := len(req.Fixed[k]); n != 1 {
			return Axis{}, effectErrorf(op, "predictor %q has %d values: %w", k, n, ErrMultiValuedFixedInput)
		}
	}
	for _, k := range keys {
		if _, ok := model.Lookup(preds, k); !ok {
			return Axis{}, effectErrorf(op, "predictor %q: %w", k, ErrUnknownPredictor)
		}
	}
	if _, ok := req.Fixed[ax.Sweep]; ok {
		ax.Notes = append(ax.Notes, Note{Kind: NoteIgnored, Predictor: ax.Sweep})
	}

	// Stage 3: one setting per remaining predictor, formula order.
	for _, p := range preds {
		if p.Name == ax.Sweep {
			continue
		}
		if vs, ok := req.Fixed[p.Name]; ok {
			ax.Fixed = append(ax.Fixed, Setting{Name: p.Name, Value: coerce(p, vs[0])})
			continue
		}
		v := defaultValue(p, digits)
		ax.Fixed = append(ax.Fixed, Setting{Name: p.Name, Value: v})
		ax.Notes = append(ax.Notes, Note{Kind: NoteDefault, Predictor: p.Name, Value: v})
	}

	for _, n := range ax.Notes {
		attrs := []any{"predictor", n.Predictor}
		if !n.Value.IsZero() {
			attrs = append(attrs, "value", n.Value.String())
		}
		log.Info(n.String(), attrs...)
	}

	return ax, nil
}

// Setting returns the pinned value of name.
func (a Axis) Setting(name string) (frame.Value, bool) {
	for _, s := range a.Fixed {
		if s.Name == name {
			return s.Value, true
		}
	}
	return frame.Value{}, false
}

// defaultValue is the rounded mean for numeric predictors and the first
// natural-order level for categorical ones.
func defaultValue(p model.Predictor, digits int) frame.Value {
	if p.Kind == frame.Numeric {
		return frame.Num(Signif(p.Mean, digits))
	}
	if len(p.Levels) == 0 {
		return frame.Level("")
	}
	return frame.Level(p.Levels[0])
}

// coerce turns number-like levels into numbers for numeric predictors and
// numbers into levels for categorical ones. Anything else passes through
// unchanged for the model to accept or reject.
func coerce(p model.Predictor, v frame.Value) frame.Value {
	switch p.Kind {
	case frame.Numeric:
		if n, ok := v.AsNumber(); ok {
			return n
		}
	case frame.Categorical:
		if v.Kind() == frame.Numeric {
			return frame.Level(v.String())
		}
	}
	return v
}
