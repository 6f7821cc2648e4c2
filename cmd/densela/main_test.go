// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/store"
)

// invoke runs the CLI and returns stdout.
func invoke(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), err
}

func create(t *testing.T, dir, name, rows string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	_, err := invoke(t, "create", "-rows", rows, "-o", path)
	require.NoError(t, err)

	return path
}

func TestParseRows(t *testing.T) {
	m, err := parseRows(" 1, 2 ; 3,4.5 ")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, []float64{1, 2, 3, 4.5}, m.Values())

	m, err = parseRows("")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())

	_, err = parseRows("1,2;3")
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = parseRows("1,x")
	require.Error(t, err)
}

func TestShowDetEncode(t *testing.T) {
	dir := t.TempDir()
	a := create(t, dir, "a.mat", "1,2;3,4")

	out, err := invoke(t, "show", a)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", out)

	out, err = invoke(t, "det", a)
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)

	v := create(t, dir, "v.mat", "1.5;-2")
	out, err = invoke(t, "encode", v)
	require.NoError(t, err)
	assert.Equal(t, "08021001"+"1a10"+"000000000000f83f"+"00000000000000c0"+"\n", out)
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	a := create(t, dir, "a.mat", "4,0;0,16")
	b := create(t, dir, "b.mat", "4;8")

	for _, method := range []string{"lu", "plu", "cholesky"} {
		out, err := invoke(t, "solve", "-a", a, "-b", b, "-method", method)
		require.NoError(t, err, method)
		assert.Equal(t, "[1]\n[0.5]\n", out, method)
	}

	x := filepath.Join(dir, "x.mat")
	_, err := invoke(t, "solve", "-a", a, "-b", b, "-o", x)
	require.NoError(t, err)
	got, err := store.Load(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5}, got.Values())

	_, err = invoke(t, "solve", "-a", a, "-b", b, "-method", "qr")
	require.Error(t, err)
	_, err = invoke(t, "solve", "-a", a)
	require.Error(t, err)

	sing := create(t, dir, "s.mat", "1,2;2,4")
	_, err = invoke(t, "solve", "-a", sing, "-b", b, "-method", "lu")
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLstsq(t *testing.T) {
	dir := t.TempDir()
	a := create(t, dir, "a.mat", "1,0;1,1;1,2")
	b := create(t, dir, "b.mat", "1;2;2")

	for _, method := range []string{"normal", "normal-cholesky", "augmented"} {
		x := filepath.Join(dir, method+".mat")
		_, err := invoke(t, "lstsq", "-a", a, "-b", b, "-method", method, "-o", x)
		require.NoError(t, err, method)
		got, err := store.Load(x)
		require.NoError(t, err)
		vals := got.Values()
		require.Len(t, vals, 2)
		assert.InDelta(t, 7.0/6.0, vals[0], 1e-9, method)
		assert.InDelta(t, 0.5, vals[1], 1e-9, method)
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := invoke(t)
	require.ErrorIs(t, err, errUsage)
	_, err = invoke(t, "frobnicate")
	require.ErrorIs(t, err, errUsage)
	_, err = invoke(t, "-log-level", "loud", "show", "x")
	require.Error(t, err)
	_, err = invoke(t, "show")
	require.Error(t, err)
	_, err = invoke(t, "create", "-rows", "1")
	require.Error(t, err)
	_, err = invoke(t, "show", filepath.Join(t.TempDir(), "missing.mat"))
	require.Error(t, err)

	_, err = invoke(t, "-log-level", "debug", "det", create(t, t.TempDir(), "r.mat", "1,2,3"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLstsq_MethodReachesSolver(t *testing.T) {
	dir := t.TempDir()
	// Zero column: AᵀA = [[2,0],[0,0]] is singular and not positive definite.
	a := create(t, dir, "a.mat", "1,0;1,0")
	b := create(t, dir, "b.mat", "1;2")

	_, err := invoke(t, "lstsq", "-a", a, "-b", b, "-method", "normal")
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = invoke(t, "lstsq", "-a", a, "-b", b, "-method", "normal-cholesky")
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
	_, err = invoke(t, "lstsq", "-a", a, "-b", b, "-method", "qr")
	require.Error(t, err)
}
