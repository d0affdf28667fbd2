// Package dataset generates deterministic synthetic training data for
// nested-dichotomies models.
//
// 🚀 What is dataset?
//
// Fixtures for examples, tests and the CLI demo: a women's labour-force
// style table (husband's income, presence of children, participation in
// {not.work, parttime, fulltime}) whose response is drawn from a known
// nested model, plus that model's spec.
//
// ⚙️ Usage
//
//	data, err := dataset.Womenlf(263, dataset.WithSeed(1))
//	m, err := dataset.WomenlfModel(data)
//
// Randomness is explicit: every generator requires WithSeed or WithRand
// and returns ErrNeedRandSource otherwise.
package dataset
