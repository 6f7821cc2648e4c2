// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/densela/matrix"

// LUSolver solves A·x = b through A = L·U computed without pivoting.
type LUSolver struct {
	n    int
	l, u *matrix.Dense
}

// NewLUSolver factors a once with matrix.LU.
//
// Errors (wrapped): matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrSingular.
// A matrix that is non-singular but needs row exchanges (zero leading pivot) is
// rejected here; use NewPivotLUSolver for general input.
func NewLUSolver(a matrix.Matrix) (*LUSolver, error) {
	l, u, err := matrix.LU(a)
	if err != nil {
		return nil, solverErrorf(tagLUNew, err)
	}
	log.Debugf("LUSolver: factored %dx%d system", l.Rows(), l.Rows())

	return &LUSolver{n: l.Rows(), l: l, u: u}, nil
}

// Solve returns x with L·U·x = b.
// Complexity: O(n²).
func (s *LUSolver) Solve(b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSystem(b, s.n); err != nil {
		return nil, solverErrorf(tagLUSolve, err)
	}
	x, err := substitute(s.l, s.u, b)
	if err != nil {
		return nil, solverErrorf(tagLUSolve, err)
	}

	return x, nil
}

// Size returns the order n of the factored system.
func (s *LUSolver) Size() int { return s.n }

// Factors returns deep copies of L and U.
func (s *LUSolver) Factors() (l, u *matrix.Dense) {
	return s.l.Copy(), s.u.Copy()
}

// PivotLUSolver solves A·x = b through P·A = L·U with partial pivoting.
type PivotLUSolver struct {
	n       int
	l, u, p *matrix.Dense
}

// NewPivotLUSolver factors a once with matrix.LUPartialPivot.
//
// Construction never fails on singular input; a zero pivot is reported by
// Solve as matrix.ErrSingular.
//
// Errors (wrapped): matrix.ErrNilMatrix, matrix.ErrNonSquare.
func NewPivotLUSolver(a matrix.Matrix) (*PivotLUSolver, error) {
	l, u, p, err := matrix.LUPartialPivot(a)
	if err != nil {
		return nil, solverErrorf(tagPivotNew, err)
	}
	log.Debugf("PivotLUSolver: factored %dx%d system", l.Rows(), l.Rows())

	return &PivotLUSolver{n: l.Rows(), l: l, u: u, p: p}, nil
}

// Solve returns x with A·x = b by solving L·U·x = P·b.
//
// Implementation:
//   - Stage 1: validate b against n.
//   - Stage 2: b' = P·b.
//   - Stage 3: forward substitution on L, backward substitution on U.
//
// Errors (wrapped): matrix.ErrNilMatrix, matrix.ErrNotVector,
// matrix.ErrDimensionMismatch, matrix.ErrSingular.
func (s *PivotLUSolver) Solve(b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSystem(b, s.n); err != nil {
		return nil, solverErrorf(tagPivotSolve, err)
	}
	pb, err := matrix.Mul(s.p, b)
	if err != nil {
		return nil, solverErrorf(tagPivotSolve, err)
	}
	x, err := substitute(s.l, s.u, pb)
	if err != nil {
		return nil, solverErrorf(tagPivotSolve, err)
	}

	return x, nil
}

// Size returns the order n of the factored system.
func (s *PivotLUSolver) Size() int { return s.n }

// Factors returns deep copies of L, U and P.
func (s *PivotLUSolver) Factors() (l, u, p *matrix.Dense) {
	return s.l.Copy(), s.u.Copy(), s.p.Copy()
}
