// SPDX-License-Identifier: MIT
// Package: nestplot/dataset
//
// config.go — generator configuration and documented defaults.
//
// Deterministic defaults:
//   • rng          = nil   (generators refuse to run without one)
//   • incomeMean   = 14.8  (thousands)
//   • incomeSD     = 7.6
//   • incomeMin/Max = 1 / 45, values rounded to integers
//   • childrenRate = 0.68  (share of rows with children present)

package dataset

import "math/rand"

type datasetConfig struct {
	rng          *rand.Rand
	incomeMean   float64
	incomeSD     float64
	incomeMin    float64
	incomeMax    float64
	childrenRate float64
}

const (
	defaultIncomeMean   = 14.8
	defaultIncomeSD     = 7.6
	defaultIncomeMin    = 1.0
	defaultIncomeMax    = 45.0
	defaultChildrenRate = 0.68
)

// newDatasetConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)).
func newDatasetConfig(opts ...DatasetOption) datasetConfig {
	cfg := datasetConfig{
		incomeMean:   defaultIncomeMean,
		incomeSD:     defaultIncomeSD,
		incomeMin:    defaultIncomeMin,
		incomeMax:    defaultIncomeMax,
		childrenRate: defaultChildrenRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
