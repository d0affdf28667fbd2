// Package matrix provides the small dense linear-algebra kernel used by
// interval estimation: a row-major Dense type, matrix–vector products,
// quadratic forms xᵀAx, and validators for covariance matrices.
//
// Determinism & Performance:
//   - Fixed i→j traversal in every loop; results are bit-for-bit reproducible.
//   - Storage is one flat slice; no per-row allocations.
//
// Errors are package sentinels (errors.go) wrapped with the operation name;
// match them with errors.Is. No exported function panics on user input.
package matrix
