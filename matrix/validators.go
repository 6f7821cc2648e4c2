// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/structure checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Structural checks (triangularity) run O(n²) with early exit.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil pointer stored in the interface (*Dense or any other
// implementation) is treated as nil too.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
		return nil
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare. Assumes m is non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVector checks that m has exactly one column.
// Errors: ErrNotVector. Assumes m is non-nil.
func ValidateVector(m Matrix) error {
	if m.Cols() != 1 {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateMulCompatible ensures a, b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem checks a right-hand side against a square system of size n:
// NotNil(b) → Vector(b) → b.Rows == n.
// Used by the substitution kernels and the composite solvers.
func ValidateSystem(b Matrix, n int) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateVector(b); err != nil {
		return err
	}
	if b.Rows() != n {
		return validatorErrorf("ValidateSystem", ErrDimensionMismatch)
	}

	return nil
}

// ValidateLowerTriangular checks that every entry strictly above the diagonal is exactly zero.
func ValidateLowerTriangular(m Matrix) error {
	d, err := asDense(m)
	if err != nil {
		return err
	}
	if !d.IsLowerTriangular() {
		return validatorErrorf("ValidateLowerTriangular", ErrNotLowerTriangular)
	}

	return nil
}

// ValidateUpperTriangular checks that every entry strictly below the diagonal is exactly zero.
func ValidateUpperTriangular(m Matrix) error {
	d, err := asDense(m)
	if err != nil {
		return err
	}
	if !d.IsUpperTriangular() {
		return validatorErrorf("ValidateUpperTriangular", ErrNotUpperTriangular)
	}

	return nil
}
