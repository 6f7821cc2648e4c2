// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/densela/matrix"
)

// Solver solves A·x = b for a fixed, already factored A.
//
// Solve returns a fresh n×1 vector x. b must be a non-nil column vector with
// exactly n rows (matrix.ErrNotVector / matrix.ErrDimensionMismatch otherwise).
type Solver interface {
	Solve(b matrix.Matrix) (*matrix.Dense, error)
}

// Compile-time conformance.
var (
	_ Solver = (*LUSolver)(nil)
	_ Solver = (*PivotLUSolver)(nil)
	_ Solver = (*CholeskySolver)(nil)
)

// Error context tags.
const (
	tagLUNew        = "NewLUSolver"
	tagLUSolve      = "LUSolver.Solve"
	tagPivotNew     = "NewPivotLUSolver"
	tagPivotSolve   = "PivotLUSolver.Solve"
	tagCholeskyNew  = "NewCholeskySolver"
	tagCholeskySolv = "CholeskySolver.Solve"
)

// solverErrorf wraps err with the solver/method tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// substitute runs the forward/backward chain L·y = b, U·x = y.
func substitute(l, u, b matrix.Matrix) (*matrix.Dense, error) {
	y, err := matrix.ForwardSubstitution(l, b)
	if err != nil {
		return nil, err
	}

	return matrix.BackwardSubstitution(u, y)
}
