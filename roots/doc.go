// SPDX-License-Identifier: MIT

// Package roots finds roots of scalar functions f(x) = 0.
//
// Three classic iterations are provided, each bounded by an explicit iteration
// budget:
//
//   - Bisection halves a sign-changing bracket [a, b] until it is narrower than tol.
//   - Newton follows the tangent x ← x - f(x)/f'(x) for exactly maxIter steps
//     (fewer if an exact root is hit).
//   - Secant replaces the derivative by the slope through the last two iterates.
//
// None of them reports non-convergence: the last iterate is returned when the
// budget runs out. Degenerate steps (zero derivative, flat secant, no sign
// change) are reported as errors instead of producing Inf or NaN.
package roots
