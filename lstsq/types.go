// SPDX-License-Identifier: MIT

package lstsq

import (
	"errors"
	"fmt"
)

// Method selects how the square normal-equation system is solved.
type Method int

const (
	// MethodPivotedLU solves AᵀA·x = Aᵀb with an LU factorization with partial pivoting.
	MethodPivotedLU Method = iota

	// MethodCholesky solves AᵀA·x = Aᵀb with a Cholesky factorization.
	// AᵀA is symmetric positive definite whenever A has full column rank.
	MethodCholesky
)

// DefaultMethod is the normal-equation solver used when no option is given.
const DefaultMethod = MethodPivotedLU

// ErrUnknownMethod is the panic message of WithMethod for an undefined Method.
var ErrUnknownMethod = errors.New("lstsq: unknown method")

// String returns the method name used by the CLI and in log lines.
func (m Method) String() string {
	switch m {
	case MethodPivotedLU:
		return "plu"
	case MethodCholesky:
		return "cholesky"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Options holds the resolved configuration of NormalEquation.
type Options struct {
	method Method // solver for AᵀA·x = Aᵀb
}

// Method reports the normal-equation solver selected by the options.
func (o Options) Method() Method { return o.method }

// Option represents a functional option for configuring NormalEquation.
type Option func(*Options)

// WithMethod selects the solver for the normal equations.
// Passing a value outside the declared Method constants panics.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodPivotedLU && m != MethodCholesky {
			// Invalid configuration is a programmer error.
			panic(ErrUnknownMethod.Error())
		}
		o.method = m
	}
}

// DefaultOptions returns the configuration used when no Option is passed.
func DefaultOptions() Options {
	return Options{method: DefaultMethod}
}

// Error context tags.
const (
	tagNormal    = "NormalEquation"
	tagAugmented = "AugmentedSystem"
)

func lstsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
