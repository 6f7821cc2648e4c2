// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"
)

// Function is a differentiable scalar function.
// DF is only called by Newton.
type Function interface {
	F(x float64) float64
	DF(x float64) float64
}

// Sentinel errors.
var (
	// ErrNilFunction is returned when the function (or, for Newton, its derivative) is nil.
	ErrNilFunction = errors.New("roots: nil function")

	// ErrInvalidIterations is returned for a negative iteration budget.
	ErrInvalidIterations = errors.New("roots: maxIter must be >= 0")

	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("roots: tolerance must be >= 0")

	// ErrNoSignChange is returned by Bisection when f(a) and f(b) have the same sign.
	ErrNoSignChange = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative is returned by Newton when f'(x) == 0 at an iterate.
	ErrZeroDerivative = errors.New("roots: zero derivative")

	// ErrZeroDenominator is returned by Secant when f(x1) == f(x0).
	ErrZeroDenominator = errors.New("roots: secant slope is zero")
)

// funcPair adapts two plain functions to Function.
type funcPair struct {
	f, df func(float64) float64
}

func (p funcPair) F(x float64) float64  { return p.f(x) }
func (p funcPair) DF(x float64) float64 { return p.df(x) }

// FuncOf returns a Function backed by f and its derivative df.
// df may be nil when the Function is only used with Bisection or Secant.
func FuncOf(f, df func(float64) float64) Function {
	return funcPair{f: f, df: df}
}

// validateFunction rejects nil functions; needDF also requires a derivative.
func validateFunction(f Function, needDF bool) error {
	if f == nil {
		return ErrNilFunction
	}
	if p, ok := f.(funcPair); ok {
		if p.f == nil || (needDF && p.df == nil) {
			return ErrNilFunction
		}
	}

	return nil
}

func validateBudget(tol float64, maxIter int) error {
	if maxIter < 0 {
		return ErrInvalidIterations
	}
	if tol < 0 || math.IsNaN(tol) {
		return ErrInvalidTolerance
	}

	return nil
}

// Error context tags.
const (
	tagBisection = "Bisection"
	tagNewton    = "Newton"
	tagSecant    = "Secant"
)

func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
