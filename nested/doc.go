// Package nested implements model.Model for nested-dichotomies logit models.
//
// 🚀 What is a nested dichotomy?
//
//	A polytomous response with k categories is decomposed into k−1 binary
//	splits arranged as a tree. Each split ("dichotomy") is an ordinary
//	logit model for P(right side | left ∪ right). The probability of a
//	category is the product of the branch probabilities on its path:
//
//	               {not.work | parttime, fulltime}        ← "work"
//	                          /            \
//	                    not.work   {parttime | fulltime}  ← "full"
//
//	P(fulltime) = P(work: right) · P(full: right)
//
// ✨ Key features:
//   - Spec loaded from YAML (coefficients + covariance per dichotomy)
//   - Tree validation: one root, every multi-category side split exactly once
//   - Treatment-coded factors: term "childrenpresent" = 1{children == present}
//   - Pointwise intervals by the delta method, clamped to [0, 1]
//
// Estimation is out of scope: coefficients come from an external fit.
//
// ⚙️ Usage:
//
//	m, err := nested.LoadFile("womenlf.yaml", data)
//	pred, err := m.Predict(grid)
//	ci, err := m.ConfInt(pred, 0.95)
package nested
