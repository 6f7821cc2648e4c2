// SPDX-License-Identifier: MIT
// Package matrix - triangular factorizations (LU, pivoted LU, Cholesky) and
// the elementary elimination matrix.
//
// Purpose:
//   - Produce factors the substitution kernels consume directly.
//   - Keep loop orders fixed so factors are reproducible bit-for-bit.
//
// Contract:
//   - Inputs are never mutated; every factor is a fresh *Dense owned by the caller.
//   - Factors inherit the numeric policy of the input when it is a *Dense.

package matrix

import "math"

// LU factors a square matrix A into unit lower-triangular L and upper-triangular U
// with A = L·U, using Gaussian elimination without pivoting.
//
// Implementation:
//   - Stage 1: validate non-nil and square; L = I, U = copy(A).
//   - Stage 2: for k = 0..n-2 fail on U[k][k] == 0, then
//     L[i][k] = U[i][k]/U[k][k] (i>k) and U[i][j] -= L[i][k]·U[k][j] (i,j>k).
//   - Stage 3: clear the strict lower triangle of U and check the last pivot.
//
// Behavior highlights:
//   - Any zero pivot, including U[n-1][n-1], yields ErrSingular, so the returned
//     factors are always usable by BackwardSubstitution.
//   - A matrix needing row exchanges (e.g. a zero leading entry) fails here;
//     use LUPartialPivot for those.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(a Matrix) (l, u *Dense, err error) {
	if err = ValidateSquareNonNil(a); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := src.r
	l = identityLike(src, n)
	u = src.Copy()

	var pivot float64
	for k := 0; k < n-1; k++ {
		pivot = u.data[k*n+k]
		if pivot == ZeroPivot {
			log.Debugf("LU: zero pivot at column %d", k)

			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		eliminateColumn(l, u, n, k, pivot)
	}
	clearStrictLower(u, n)

	if n > 0 && u.data[(n-1)*n+(n-1)] == ZeroPivot {
		log.Debugf("LU: zero pivot at column %d", n-1)

		return nil, nil, matrixErrorf(opLU, ErrSingular)
	}

	return l, u, nil
}

// LUPartialPivot factors a square matrix so that P·A = L·U, choosing as pivot the
// entry of largest magnitude in the current column (first maximum wins).
//
// Implementation:
//   - Stage 1: validate non-nil and square; L = I, U = copy(A), P = I.
//   - Stage 2: for k = 0..n-2: find p = argmax_{i≥k} |U[i][k]|; if p != k swap rows
//     k and p of U and P (all columns) and of L (columns < k). Eliminate as in LU
//     when U[k][k] != 0, otherwise skip the column.
//   - Stage 3: clear the strict lower triangle of U.
//
// Behavior highlights:
//   - Never fails on singular input: a zero column is skipped and the zero pivot
//     surfaces later as ErrSingular from BackwardSubstitution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUPartialPivot(a Matrix) (l, u, p *Dense, err error) {
	if err = ValidateSquareNonNil(a); err != nil {
		return nil, nil, nil, matrixErrorf(opLUPivot, err)
	}
	src, err := asDense(a)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUPivot, err)
	}

	n := src.r
	l = identityLike(src, n)
	u = src.Copy()
	p = identityLike(src, n)

	var (
		i, k, piv int
		best, v   float64
	)
	for k = 0; k < n-1; k++ {
		// Pivot search: strict > keeps the first maximum.
		piv = k
		best = math.Abs(u.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(u.data[i*n+k]); v > best {
				piv, best = i, v
			}
		}

		if piv != k {
			swapRows(u, k, piv, n)
			swapRows(p, k, piv, n)
			swapRows(l, k, piv, k)
			log.Debugf("LUPartialPivot: swap rows %d and %d", k, piv)
		}

		if u.data[k*n+k] == ZeroPivot {
			log.Debugf("LUPartialPivot: zero column %d skipped", k)
			continue
		}
		eliminateColumn(l, u, n, k, u.data[k*n+k])
	}
	clearStrictLower(u, n)

	return l, u, p, nil
}

// Cholesky factors a symmetric positive definite matrix A into lower-triangular L
// with A = L·Lᵀ.
//
// Symmetry is a precondition and is not checked: only the lower triangle and the
// diagonal take part in the result.
//
// Implementation:
//   - C = copy(A); for k = 0..n-1: require C[k][k] > 0, C[k][k] = sqrt(C[k][k]),
//     C[i][k] /= C[k][k] (i>k), C[i][j] -= C[i][k]·C[j][k] (i,j>k).
//   - Finally clear the strict upper triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotPositiveDefinite (non-positive or NaN pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Cholesky(a Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := src.r
	c := src.Copy()
	var (
		i, j, k int
		diag    float64
	)
	for k = 0; k < n; k++ {
		diag = c.data[k*n+k]
		// Negated form so NaN is rejected as well.
		if !(diag > 0) {
			log.Debugf("Cholesky: non-positive pivot %g at column %d", diag, k)

			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		diag = math.Sqrt(diag)
		c.data[k*n+k] = diag
		for i = k + 1; i < n; i++ {
			c.data[i*n+k] /= diag
		}
		for j = k + 1; j < n; j++ {
			for i = k + 1; i < n; i++ {
				c.data[i*n+j] -= c.data[i*n+k] * c.data[j*n+k]
			}
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c.data[i*n+j] = 0
		}
	}

	return c, nil
}

// EliminationMatrix returns the elementary Gauss transformation M_k for the column
// vector b: M is the identity with M[i][k] = -b[i]/b[k] for i>k, so that M·b has
// zeros below row k and leaves rows 0..k unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrOutOfRange (k outside [0, rows)),
//     ErrSingular (b[k] == 0).
func EliminationMatrix(b Matrix, k int) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opElimMatrix, err)
	}
	if err := ValidateVector(b); err != nil {
		return nil, matrixErrorf(opElimMatrix, err)
	}
	vec, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opElimMatrix, err)
	}

	n := vec.r
	if k < 0 || k >= n {
		return nil, matrixErrorf(opElimMatrix, ErrOutOfRange)
	}
	pivot := vec.data[k]
	if pivot == ZeroPivot {
		return nil, matrixErrorf(opElimMatrix, ErrSingular)
	}

	m := identityLike(vec, n)
	for i := k + 1; i < n; i++ {
		m.data[i*n+k] = -vec.data[i] / pivot
	}

	return m, nil
}

// identityLike returns I_n carrying the numeric policy of src.
func identityLike(src *Dense, n int) *Dense {
	id := newDenseLike(src, n, n)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id
}

// eliminateColumn performs one outer-product elimination step at column k.
// j runs in the outer loop and i in the inner one; the order is part of the
// reproducibility contract.
func eliminateColumn(l, u *Dense, n, k int, pivot float64) {
	var i, j int
	for i = k + 1; i < n; i++ {
		l.data[i*n+k] = u.data[i*n+k] / pivot
	}
	for j = k + 1; j < n; j++ {
		for i = k + 1; i < n; i++ {
			u.data[i*n+j] -= l.data[i*n+k] * u.data[k*n+j]
		}
	}
}

// swapRows exchanges the first width entries of rows r1 and r2 in an n-column matrix.
func swapRows(m *Dense, r1, r2, width int) {
	a, b := r1*m.c, r2*m.c
	for j := 0; j < width; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}
}

// clearStrictLower zeroes every entry below the diagonal of an n×n matrix.
func clearStrictLower(m *Dense, n int) {
	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			m.data[i*n+j] = 0
		}
	}
}
