// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major float64 matrix and the direct
// linear-algebra kernels built on it.
//
// The matrix package provides:
//
//   - Dense, the canonical Matrix implementation, with bounds-checked At/Set and
//     exclusive ownership of its storage.
//   - Elementwise and structural kernels: Add, Sub, Scale, Mul, Transpose.
//   - Scalar properties: Det (cofactor expansion), IsSingular, Norm1, NormInf.
//   - Factorizations: LU, LUPartialPivot (P·A = L·U), Cholesky (A = L·Lᵀ) and the
//     elementary elimination matrix of Gaussian elimination.
//   - ForwardSubstitution and BackwardSubstitution for triangular systems.
//   - Equal (exact) and AllClose (tolerance) comparators.
//
// Every kernel validates its operands first and returns a sentinel error wrapped
// with the operation name, e.g. "LU: matrix: singular matrix"; use errors.Is to
// match. No function mutates its inputs and no result shares storage with an
// input.
//
// The package is intended for small and medium dense systems: loops run in a
// fixed order so results are reproducible bit-for-bit, and Det is exponential.
//
// Debug events (row swaps, zero pivots) are emitted through the "matrix"
// go-log logger.
package matrix
