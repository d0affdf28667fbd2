// SPDX-License-Identifier: MIT
// Package: nestplot/nested
//
// spec.go — YAML model description.
//
// Example:
//
//	response: partic
//	predictors: [hincome, children]
//	dichotomies:
//	  - name: work
//	    left: [not.work]
//	    right: [parttime, fulltime]
//	    terms: ["(Intercept)", hincome, childrenpresent]
//	    coef: [1.3358, -0.0423, -1.5756]
//	    vcov: [[...], [...], [...]]
//
// Environment references (${VAR}) are expanded before parsing.

package nested

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/nestplot/frame"
	"gopkg.in/yaml.v3"
)

// Spec is the serializable description of a fitted nested-dichotomies model.
type Spec struct {
	Response    string          `yaml:"response"`
	Categories  []string        `yaml:"categories,omitempty"`
	Predictors  []string        `yaml:"predictors"`
	Dichotomies []DichotomySpec `yaml:"dichotomies"`
}

// DichotomySpec is one binary logit: P(right | left ∪ right) = logistic(terms·coef).
type DichotomySpec struct {
	Name  string      `yaml:"name"`
	Left  []string    `yaml:"left"`
	Right []string    `yaml:"right"`
	Terms []string    `yaml:"terms"`
	Coef  []float64   `yaml:"coef"`
	Vcov  [][]float64 `yaml:"vcov,omitempty"`
}

// ParseSpec decodes a YAML spec, rejecting unknown fields.
func ParseSpec(r io.Reader) (Spec, error) {
	const op = "ParseSpec"
	raw, err := io.ReadAll(r)
	if err != nil {
		return Spec{}, nestedErrorf(op, "read: %w", err)
	}
	expanded := os.ExpandEnv(string(raw))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var s Spec
	if err = dec.Decode(&s); err != nil {
		return Spec{}, nestedErrorf(op, "%v: %w", err, ErrBadSpec)
	}
	return s, nil
}

// WriteSpec encodes s as YAML.
func WriteSpec(w io.Writer, s Spec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("WriteSpec: %w", err)
	}
	return enc.Close()
}

// Load parses a spec from r and binds it to the training data.
func Load(r io.Reader, data *frame.Frame) (*Model, error) {
	s, err := ParseSpec(r)
	if err != nil {
		return nil, err
	}
	return New(s, data)
}

// LoadFile is Load on a file path.
func LoadFile(path string, data *frame.Frame) (*Model, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return nil, nestedErrorf("LoadFile", "%w", err)
	}
	defer f.Close()

	return Load(f, data)
}
