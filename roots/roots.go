// SPDX-License-Identifier: MIT

package roots

import "math"

// Bisection returns an approximate root of f inside [a, b].
//
// Implementation:
//   - Stage 1: order the bracket so a <= b; an endpoint with f == 0 is returned as is.
//   - Stage 2: require f(a), f(b) of opposite signs.
//   - Stage 3: while iter < maxIter and b-a > tol, evaluate the midpoint and keep
//     the half whose endpoints still change sign.
//
// The result is the last midpoint evaluated (the initial midpoint when no
// iteration runs). A midpoint with f == 0 ends the search immediately.
//
// Errors (wrapped "Bisection: ..."):
//   - ErrNilFunction, ErrInvalidIterations, ErrInvalidTolerance, ErrNoSignChange.
func Bisection(f Function, a, b, tol float64, maxIter int) (float64, error) {
	if err := validateFunction(f, false); err != nil {
		return 0, rootsErrorf(tagBisection, err)
	}
	if err := validateBudget(tol, maxIter); err != nil {
		return 0, rootsErrorf(tagBisection, err)
	}
	if a > b {
		a, b = b, a
	}

	fa, fb := f.F(a), f.F(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa < 0) == (fb < 0) {
		return 0, rootsErrorf(tagBisection, ErrNoSignChange)
	}

	mid := a + (b-a)/2
	var (
		iter int
		fm   float64
	)
	for iter = 0; iter < maxIter && b-a > tol; iter++ {
		mid = a + (b-a)/2
		fm = f.F(mid)
		if fm == 0 {
			break
		}
		if (fm < 0) == (fa < 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}
	log.Debugf("Bisection: %d iterations, bracket width %g", iter, b-a)

	return mid, nil
}

// Newton runs exactly maxIter Newton steps x ← x - f(x)/f'(x) from x0, stopping
// early only when f(x) == 0.
//
// Errors (wrapped "Newton: ..."):
//   - ErrNilFunction, ErrInvalidIterations, ErrZeroDerivative.
func Newton(f Function, x0 float64, maxIter int) (float64, error) {
	if err := validateFunction(f, true); err != nil {
		return 0, rootsErrorf(tagNewton, err)
	}
	if maxIter < 0 {
		return 0, rootsErrorf(tagNewton, ErrInvalidIterations)
	}

	x := x0
	var (
		iter   int
		fx, dx float64
	)
	for iter = 0; iter < maxIter; iter++ {
		fx = f.F(x)
		if fx == 0 {
			break
		}
		dx = f.DF(x)
		if dx == 0 {
			log.Debugf("Newton: zero derivative at x=%g after %d iterations", x, iter)

			return x, rootsErrorf(tagNewton, ErrZeroDerivative)
		}
		x -= fx / dx
	}
	log.Debugf("Newton: %d iterations, x=%g", iter, x)

	return x, nil
}

// Secant iterates x2 = x1 - f(x1)·(x1-x0)/(f(x1)-f(x0)) while |x1-x0| > tol
// and fewer than maxIter steps were taken, and returns x1.
//
// Errors (wrapped "Secant: ..."):
//   - ErrNilFunction, ErrInvalidIterations, ErrInvalidTolerance, ErrZeroDenominator.
func Secant(f Function, x0, x1, tol float64, maxIter int) (float64, error) {
	if err := validateFunction(f, false); err != nil {
		return 0, rootsErrorf(tagSecant, err)
	}
	if err := validateBudget(tol, maxIter); err != nil {
		return 0, rootsErrorf(tagSecant, err)
	}

	var (
		iter     int
		f0, f1   float64
		denom, x float64
	)
	f0 = f.F(x0)
	for iter = 0; iter < maxIter && math.Abs(x1-x0) > tol; iter++ {
		f1 = f.F(x1)
		if f1 == 0 {
			break
		}
		denom = f1 - f0
		if denom == 0 {
			return x1, rootsErrorf(tagSecant, ErrZeroDenominator)
		}
		x = x1 - f1*(x1-x0)/denom
		x0, f0 = x1, f1
		x1 = x
	}
	log.Debugf("Secant: %d iterations, x=%g", iter, x1)

	return x1, nil
}
