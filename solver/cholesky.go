// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/densela/matrix"

// CholeskySolver solves A·x = b for symmetric positive definite A through A = L·Lᵀ.
// Lᵀ is formed once at construction so Solve is two substitutions.
type CholeskySolver struct {
	n     int
	l, lt *matrix.Dense
}

// NewCholeskySolver factors a once with matrix.Cholesky.
// Symmetry of a is a precondition and is not checked.
//
// Errors (wrapped): matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrNotPositiveDefinite.
func NewCholeskySolver(a matrix.Matrix) (*CholeskySolver, error) {
	l, err := matrix.Cholesky(a)
	if err != nil {
		return nil, solverErrorf(tagCholeskyNew, err)
	}
	lt, err := matrix.Transpose(l)
	if err != nil {
		return nil, solverErrorf(tagCholeskyNew, err)
	}
	log.Debugf("CholeskySolver: factored %dx%d system", l.Rows(), l.Rows())

	return &CholeskySolver{n: l.Rows(), l: l, lt: lt}, nil
}

// Solve returns x with L·Lᵀ·x = b.
func (s *CholeskySolver) Solve(b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSystem(b, s.n); err != nil {
		return nil, solverErrorf(tagCholeskySolv, err)
	}
	x, err := substitute(s.l, s.lt, b)
	if err != nil {
		return nil, solverErrorf(tagCholeskySolv, err)
	}

	return x, nil
}

// Size returns the order n of the factored system.
func (s *CholeskySolver) Size() int { return s.n }

// Factor returns a deep copy of L.
func (s *CholeskySolver) Factor() *matrix.Dense {
	return s.l.Copy()
}
