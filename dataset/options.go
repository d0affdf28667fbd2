// SPDX-License-Identifier: MIT
// Package: nestplot/dataset
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit via WithSeed or WithRand.

package dataset

import "math/rand"

// DatasetOption customizes a generator before any row is drawn.
type DatasetOption func(*datasetConfig)

// WithSeed seeds a fresh *rand.Rand (reproducible output).
func WithSeed(seed int64) DatasetOption {
	return func(c *datasetConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) DatasetOption {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *datasetConfig) {
		c.rng = r
	}
}

// WithIncome sets the normal distribution of husband's income before
// clipping to [min, max]. Panics unless sd > 0 and min < max.
func WithIncome(mean, sd, min, max float64) DatasetOption {
	if sd <= 0 || min >= max {
		panic("dataset: WithIncome requires sd > 0 and min < max")
	}
	return func(c *datasetConfig) {
		c.incomeMean, c.incomeSD = mean, sd
		c.incomeMin, c.incomeMax = min, max
	}
}

// WithChildrenRate sets P(children = present). Panics outside [0, 1].
func WithChildrenRate(p float64) DatasetOption {
	if p < 0 || p > 1 {
		panic("dataset: WithChildrenRate(p) requires 0 <= p <= 1")
	}
	return func(c *datasetConfig) {
		c.childrenRate = p
	}
}
