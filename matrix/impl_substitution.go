// SPDX-License-Identifier: MIT
// Package matrix - triangular substitution kernels.
//
// Purpose:
//   - Solve L·x = b (forward) and U·x = b (backward) for a single right-hand side.
//   - Validate everything up front so a failure never leaves a partial result.
//
// Check order (both kernels):
//   nil → square → triangular → vector → size, then ErrSingular on a zero diagonal.

package matrix

// validateTriangularSystem runs the shared pre-checks of the substitution kernels.
// upper selects the triangular shape required of t.
func validateTriangularSystem(t, b Matrix, upper bool) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(t); err != nil {
		return nil, nil, err
	}
	tri, err := asDense(t)
	if err != nil {
		return nil, nil, err
	}
	if upper {
		if !tri.IsUpperTriangular() {
			return nil, nil, validatorErrorf("ValidateUpperTriangular", ErrNotUpperTriangular)
		}
	} else if !tri.IsLowerTriangular() {
		return nil, nil, validatorErrorf("ValidateLowerTriangular", ErrNotLowerTriangular)
	}
	if err = ValidateSystem(b, tri.r); err != nil {
		return nil, nil, err
	}
	rhs, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return tri, rhs, nil
}

// ForwardSubstitution solves L·x = b for lower-triangular L and column vector b.
//
// Implementation:
//   - Stage 1: validate (see file header); copy b into a private work vector.
//   - Stage 2: for j = 0..n-1: x[j] = w[j]/L[j][j]; w[i] -= L[i][j]·x[j] for i>j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotLowerTriangular, ErrNotVector,
//     ErrDimensionMismatch, ErrSingular (L[j][j] == 0).
//
// Complexity:
//   - Time O(n²), Space O(n).
func ForwardSubstitution(l, b Matrix) (*Dense, error) {
	tri, rhs, err := validateTriangularSystem(l, b, false)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	n := tri.r
	work := rhs.Values()
	x := newDenseLike(rhs, n, 1)
	var (
		i, j int
		diag float64
	)
	for j = 0; j < n; j++ {
		diag = tri.data[j*n+j]
		if diag == ZeroPivot {
			return nil, matrixErrorf(opForward, ErrSingular)
		}
		x.data[j] = work[j] / diag
		for i = j + 1; i < n; i++ {
			work[i] -= tri.data[i*n+j] * x.data[j]
		}
	}

	return x, nil
}

// BackwardSubstitution solves U·x = b for upper-triangular U and column vector b.
// Mirror image of ForwardSubstitution: j = n-1..0, updating rows i<j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotUpperTriangular, ErrNotVector,
//     ErrDimensionMismatch, ErrSingular (U[j][j] == 0).
func BackwardSubstitution(u, b Matrix) (*Dense, error) {
	tri, rhs, err := validateTriangularSystem(u, b, true)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	n := tri.r
	work := rhs.Values()
	x := newDenseLike(rhs, n, 1)
	var (
		i, j int
		diag float64
	)
	for j = n - 1; j >= 0; j-- {
		diag = tri.data[j*n+j]
		if diag == ZeroPivot {
			return nil, matrixErrorf(opBackward, ErrSingular)
		}
		x.data[j] = work[j] / diag
		for i = 0; i < j; i++ {
			work[i] -= tri.data[i*n+j] * x.data[j]
		}
	}

	return x, nil
}
