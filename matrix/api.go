// SPDX-License-Identifier: MIT
// Convenience constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices.
//   - Avoid logic duplication: each constructor delegates to NewDense/NewDenseFrom.
//   - Every constructor copies its input; callers keep ownership of their slices.

package matrix

import "fmt"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a matrix from a slice of rows.
// All rows must have the same length, otherwise ErrBadShape is returned.
// An empty slice yields a 0×0 matrix.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), c, ErrBadShape)
		}
		data = append(data, row...)
	}

	return NewDenseFrom(r, c, data, opts...)
}

// NewVector returns a len(vals)×1 column vector holding a copy of vals.
func NewVector(vals []float64, opts ...Option) (*Dense, error) {
	return NewDenseFrom(len(vals), 1, vals, opts...)
}

// ZerosLike returns a zero matrix with the shape of m.
// When m is a *Dense the numeric policy is inherited as well.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return newDenseLike(d, d.r, d.c), nil
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m, or nil when m is nil
// (including a typed-nil implementation).
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
