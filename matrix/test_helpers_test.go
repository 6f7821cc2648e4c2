// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densela/matrix"
)

// Default tolerance for reconstruction checks (L·U vs A, A·x vs b).
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense path (materialisation via At).
// Prefer wrapping only the operand you want to de-opt.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense builds an r×c Dense from row-major vals.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return d
}

// Rows builds a Dense from literal rows.
func Rows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return d
}

// Vec builds an n×1 column vector.
func Vec(t testing.TB, vals ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewVector(vals)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}

	return d
}

// RandFilledDense returns an r×c Dense with values uniform in [-1, 1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}

	return NewFilledDense(t, r, c, vals)
}

// DiagDominant returns a random n×n matrix shifted by n+1 on the diagonal,
// so it is non-singular and safe for LU without pivoting.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n)+1)
	}

	return m
}

// SPD returns B·Bᵀ + n·I for a random B, which is symmetric positive definite.
func SPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	b := RandFilledDense(t, n, n, seed)
	bt, err := matrix.Transpose(b)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	a, err := matrix.Mul(b, bt)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	for i := 0; i < n; i++ {
		MustSet(t, a, i, i, MustAt(t, a, i, i)+float64(n))
	}

	return a
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustMul returns a·b or fails the test.
func MustMul(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	c, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return c
}

// CompareExact asserts m equals want element by element with ==.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts |m[i,j]-want[i][j]| <= delta everywhere.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareClose: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareClose: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			v = MustAt(t, m, i, j)
			if math.Abs(v-want[i][j]) > delta {
				t.Fatalf("m[%d,%d]=%.17g; want %.17g (±%g)", i, j, v, want[i][j], delta)
			}
		}
	}
}

// AssertClose asserts AllClose(got, want, 0, delta) holds.
func AssertClose(t testing.TB, want, got matrix.Matrix, delta float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, delta)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond %g:\nwant:\n%vgot:\n%v", delta, want, got)
	}
}

// propPermutation asserts each row and column of p holds exactly one 1 and zeros elsewhere.
func propPermutation(t testing.TB, p matrix.Matrix) {
	t.Helper()
	n := p.Rows()
	rowOnes := make([]int, n)
	colOnes := make([]int, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch v = MustAt(t, p, i, j); v {
			case 1:
				rowOnes[i]++
				colOnes[j]++
			case 0:
			default:
				t.Fatalf("P[%d,%d]=%v; want 0 or 1", i, j, v)
			}
		}
	}
	for i = 0; i < n; i++ {
		if rowOnes[i] != 1 || colOnes[i] != 1 {
			t.Fatalf("P row/col %d: ones = %d/%d; want 1/1", i, rowOnes[i], colOnes[i])
		}
	}
}

// propUnitLowerTriangular asserts L is lower triangular with a unit diagonal.
func propUnitLowerTriangular(t testing.TB, l *matrix.Dense) {
	t.Helper()
	if !l.IsLowerTriangular() {
		t.Fatalf("L is not lower triangular:\n%v", l)
	}
	for i := 0; i < l.Rows(); i++ {
		if v := MustAt(t, l, i, i); v != 1 {
			t.Fatalf("L[%d,%d]=%v; want 1", i, i, v)
		}
	}
}
