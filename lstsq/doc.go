// SPDX-License-Identifier: MIT

// Package lstsq solves linear least-squares problems min ‖A·x - b‖₂ for an m×n
// matrix A (typically m ≥ n, full column rank) by reduction to a square system.
//
// Two reductions are offered:
//
//   - NormalEquation forms AᵀA·x = Aᵀb. The system is small (n×n) but its
//     condition number is the square of A's. The n×n system is solved with a
//     pivoted LU solver by default or with Cholesky via WithMethod(MethodCholesky).
//   - AugmentedSystem solves the (m+n)×(m+n) saddle-point system
//     [[I, A], [Aᵀ, 0]]·[r; x] = [b; 0] with a pivoted LU solver. It is larger
//     but better conditioned.
//
// Rank-deficient A makes both reductions singular; the error is matrix.ErrSingular
// (or matrix.ErrNotPositiveDefinite for the Cholesky method).
package lstsq
