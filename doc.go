// SPDX-License-Identifier: MIT

// Package densela is a small dense linear-algebra toolkit for float64 matrices.
//
// Everything lives in subpackages:
//
//	matrix  Dense storage, arithmetic, norms, determinant, LU, pivoted LU,
//	        Cholesky and triangular substitution
//	solver  factor-once, solve-many linear system solvers (LU, PLU, Cholesky)
//	lstsq   least squares via normal equations or the augmented system
//	roots   scalar root finding: bisection, Newton, secant
//	codec   protobuf wire encoding of matrices
//	store   memory-mapped matrix files
//
// The command cmd/densela exposes the common operations over matrix files.
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 3}, {6, 3}})
//	b, _ := matrix.NewVector([]float64{1, 2})
//	s, _ := solver.NewPivotLUSolver(a)
//	x, _ := s.Solve(b) // [0.5, -0.333…]
//
// Errors are sentinel values (matrix.ErrSingular, matrix.ErrNonSquare, ...)
// wrapped with the failing operation and matched with errors.Is. Library code
// logs at debug level only, through github.com/ipfs/go-log/v2.
package densela
