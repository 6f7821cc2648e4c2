// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, norms and the determinant. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel is non-mutating and returns a freshly allocated *Dense.
//   - Non-*Dense operands are materialised once via asDense; loops then run on flat slices.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for products and substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in elimination/substitution.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opDet        = "Det"
	opNorm1      = "Norm1"
	opNormInf    = "NormInf"
	opAllClose   = "AllClose"
	opLU         = "LU"
	opLUPivot    = "LUPartialPivot"
	opCholesky   = "Cholesky"
	opElimMatrix = "EliminationMatrix"
	opForward    = "ForwardSubstitution"
	opBackward   = "BackwardSubstitution"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); materialise both operands.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseLike(da, da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ in rows or columns).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: triple loop in the fixed order i → j → k, accumulating
//     A[i,k]*B[k,j] into C[i,j] starting from 0.0.
//
// Behavior highlights:
//   - Terms are summed in k order with no zero-skipping and no reordering, so results
//     are bit-for-bit reproducible (e.g. Identity × A == A exactly for finite A).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDenseLike(da, aRows, bCols)
	var (
		i, j, k    int
		rowA, rowR int
		sum        float64
	)
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				sum += da.data[rowA+k] * db.data[k*bCols+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Pure data movement: Transpose(Transpose(m)) equals m exactly.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newDenseLike(d, d.c, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDenseLike(d, d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Det computes the determinant by cofactor expansion along row 0.
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: 1×1 returns the single entry; otherwise
//     det = Σ_j (-1)^j · a[0][j] · det(minor(0,j)), j ascending.
//
// Behavior highlights:
//   - No pivoting or triangularization shortcut; the value is exactly what the
//     expansion produces in this summation order.
//   - The 0×0 determinant is 0: the expansion has no terms, so IsSingular
//     reports an empty matrix as singular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Intended for small matrices.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return cofactorDet(d.data, d.r), nil
}

// cofactorDet expands the n×n row-major block a along its first row.
// For n == 0 the sum is empty and the result is 0.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 0:
		return ZeroSum
	case 1:
		return a[0]
	}

	var (
		det   = ZeroSum
		sign  = 1.0
		minor = make([]float64, (n-1)*(n-1))
		i, j  int
		col   int
		dst   int
	)
	for col = 0; col < n; col++ {
		// Build minor(0, col): drop row 0 and column col.
		dst = 0
		for i = 1; i < n; i++ {
			for j = 0; j < n; j++ {
				if j == col {
					continue
				}
				minor[dst] = a[i*n+j]
				dst++
			}
		}
		det += sign * a[col] * cofactorDet(minor, n-1)
		sign = -sign
	}

	return det
}

// IsSingular reports Det(m) == 0 with exact comparison.
// Rounding noise can make a mathematically singular matrix report false;
// callers needing robustness should inspect pivots or condition estimates instead.
func IsSingular(m Matrix) (bool, error) {
	det, err := Det(m)
	if err != nil {
		return false, err
	}

	return det == 0, nil
}

// Norm1 returns the maximum absolute column sum, max_j Σ_i |m[i,j]|.
// Matrices without columns have norm 0.
func Norm1(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm1, err)
	}

	norm := NormZero
	var (
		i, j int
		sum  float64
	)
	for j = 0; j < d.c; j++ {
		sum = ZeroSum
		for i = 0; i < d.r; i++ {
			sum += math.Abs(d.data[i*d.c+j])
		}
		norm = math.Max(norm, sum)
	}

	return norm, nil
}

// NormInf returns the maximum absolute row sum, max_i Σ_j |m[i,j]|.
// Every row is summed over all Cols() entries, so rectangular inputs get the
// textbook infinity-norm. Matrices without rows have norm 0.
func NormInf(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}

	norm := NormZero
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < d.r; i++ {
		sum = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sum += math.Abs(d.data[base+j])
		}
		norm = math.Max(norm, sum)
	}

	return norm, nil
}

// Equal reports whether a and b have the same shape and exactly equal elements.
// Nil operands are never equal. No tolerance; see AllClose.
func Equal(a, b Matrix) bool {
	da, err := asDense(a)
	if err != nil {
		return false
	}

	return da.Equal(b)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never satisfies the relation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// This is the tolerance comparator that numerical tests should use for
// factorization and solve results.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		// Negated form so NaN differences fail the check.
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil
		}
	}

	return true, nil
}
