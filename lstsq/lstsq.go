// SPDX-License-Identifier: MIT

package lstsq

import (
	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/solver"
)

// validateProblem checks A non-nil and b an m×1 vector matching A's rows.
func validateProblem(a, b matrix.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}

	return matrix.ValidateSystem(b, a.Rows())
}

// NormalEquation returns the n×1 least-squares solution of A·x ≈ b by solving
// AᵀA·x = Aᵀb.
//
// Implementation:
//   - Stage 1: validate A (non-nil) and b (m×1, m = A.Rows()).
//   - Stage 2: At = Aᵀ, AtA = At·A, Atb = At·b.
//   - Stage 3: solve the n×n system with the configured Method.
//
// Errors (wrapped "NormalEquation: ..."):
//   - matrix.ErrNilMatrix, matrix.ErrNotVector, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular (MethodPivotedLU) or matrix.ErrNotPositiveDefinite
//     (MethodCholesky) when A is rank deficient.
//
// Complexity:
//   - Time O(m·n² + n³), Space O(n² + m·n).
func NormalEquation(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	if err := validateProblem(a, b); err != nil {
		return nil, lstsqErrorf(tagNormal, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, lstsqErrorf(tagNormal, err)
	}
	ata, err := matrix.Mul(at, a)
	if err != nil {
		return nil, lstsqErrorf(tagNormal, err)
	}
	atb, err := matrix.Mul(at, b)
	if err != nil {
		return nil, lstsqErrorf(tagNormal, err)
	}
	log.Debugf("NormalEquation: %dx%d problem, method %s", a.Rows(), a.Cols(), o.method)

	var s solver.Solver
	switch o.method {
	case MethodCholesky:
		s, err = solver.NewCholeskySolver(ata)
	default:
		s, err = solver.NewPivotLUSolver(ata)
	}
	if err != nil {
		return nil, lstsqErrorf(tagNormal, err)
	}
	x, err := s.Solve(atb)
	if err != nil {
		return nil, lstsqErrorf(tagNormal, err)
	}

	return x, nil
}

// AugmentedSystem returns the n×1 least-squares solution of A·x ≈ b by solving
//
//	[ I_m  A ] [ r ]   [ b ]
//	[ Aᵀ   0 ] [ x ] = [ 0 ]
//
// with a pivoted LU solver and extracting the last n entries. r = b - A·x is
// the residual.
//
// Errors (wrapped "AugmentedSystem: ..."):
//   - matrix.ErrNilMatrix, matrix.ErrNotVector, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular when A is rank deficient.
//
// Complexity:
//   - Time O((m+n)³), Space O((m+n)²).
func AugmentedSystem(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := validateProblem(a, b); err != nil {
		return nil, lstsqErrorf(tagAugmented, err)
	}

	m, n := a.Rows(), a.Cols()
	aug, rhs, err := buildAugmented(a, b)
	if err != nil {
		return nil, lstsqErrorf(tagAugmented, err)
	}
	log.Debugf("AugmentedSystem: %dx%d problem, %dx%d saddle-point system", m, n, m+n, m+n)

	s, err := solver.NewPivotLUSolver(aug)
	if err != nil {
		return nil, lstsqErrorf(tagAugmented, err)
	}
	sol, err := s.Solve(rhs)
	if err != nil {
		return nil, lstsqErrorf(tagAugmented, err)
	}

	vals := sol.Values()
	x, err := matrix.NewVector(vals[m : m+n])
	if err != nil {
		return nil, lstsqErrorf(tagAugmented, err)
	}

	return x, nil
}

// buildAugmented assembles the (m+n)×(m+n) saddle-point matrix and the
// zero-padded right-hand side.
func buildAugmented(a, b matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	m, n := a.Rows(), a.Cols()
	size := m + n

	aug, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := matrix.NewDense(size, 1)
	if err != nil {
		return nil, nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m; i++ {
		if err = aug.Set(i, i, 1); err != nil {
			return nil, nil, err
		}
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, nil, err
			}
			// Upper-right block A, lower-left block Aᵀ.
			if err = aug.Set(i, m+j, v); err != nil {
				return nil, nil, err
			}
			if err = aug.Set(m+j, i, v); err != nil {
				return nil, nil, err
			}
		}
		if v, err = b.At(i, 0); err != nil {
			return nil, nil, err
		}
		if err = rhs.Set(i, 0, v); err != nil {
			return nil, nil, err
		}
	}

	return aug, rhs, nil
}
