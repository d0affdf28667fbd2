// Package model defines the contracts between the plotting pipeline and a
// fitted polytomous-response model.
//
// A Model exposes its training data, its predictors in formula order, its
// ordered response categories, and two evaluation operations:
//
//	Predict(newdata)        → per-category fitted probability columns
//	ConfInt(pred, level)    → per-category pointwise (lower, upper) columns
//
// How the model was estimated, and how its intervals are computed, is the
// implementation's business (see package nested for one implementation).
//
// Predictor descriptors are computed once from the training data by Describe,
// so downstream stages never re-inspect raw column types.
package model
