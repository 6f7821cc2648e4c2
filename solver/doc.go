// SPDX-License-Identifier: MIT

// Package solver provides reusable direct solvers for square linear systems A·x = b.
//
// A solver factors A exactly once at construction and then answers any number of
// Solve calls with two O(n²) triangular substitutions, amortising the O(n³)
// factorization across right-hand sides:
//
//   - LUSolver       A = L·U, no pivoting; fails at construction on a zero pivot.
//   - PivotLUSolver  P·A = L·U with partial pivoting; singularity surfaces in Solve.
//   - CholeskySolver A = L·Lᵀ for symmetric positive definite A.
//
// Solvers never mutate their factors after construction, so one solver may be
// shared by concurrent callers. Factors() hands out deep copies.
//
// Errors are the sentinels of package matrix (ErrSingular, ErrDimensionMismatch, ...),
// wrapped with the solver and method name, e.g. "PivotLUSolver.Solve: ...".
package solver
