// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the solver/lstsq packages built on it. All kernels MUST return
// these sentinels (possibly wrapped) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Kernels wrap with their operation tag via matrixErrorf ("LU: matrix: singular matrix");
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (square/vector/triangular) -> dimension mismatch -> numeric (singular, not SPD).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when supplied data does not fit the requested shape
	// (wrong slice length, ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, or a right-hand
	// side whose length differs from the system size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotLowerTriangular signals that forward substitution received a matrix
	// with a non-zero entry above the diagonal.
	ErrNotLowerTriangular = errors.New("matrix: matrix is not lower triangular")

	// ErrNotUpperTriangular signals that backward substitution received a matrix
	// with a non-zero entry below the diagonal.
	ErrNotUpperTriangular = errors.New("matrix: matrix is not upper triangular")

	// ErrNotVector signals that a single-column matrix was required.
	ErrNotVector = errors.New("matrix: matrix is not a column vector")

	// ErrSingular is returned when an exactly zero pivot is met during elimination
	// or substitution.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive value
	// would be passed to the square root.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required by
	// the numeric policy (Set under WithValidateNaNInf, AllClose tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
