// SPDX-License-Identifier: MIT

// Command densela works with matrices stored in densela matrix files.
//
// Usage:
//
//	densela [-log-level level] <command> [flags] [args]
//
// Commands:
//
//	create -rows "1,2;3,4" -o a.mat      write a matrix file
//	show a.mat                           print a matrix
//	det a.mat                            print the determinant
//	solve -a a.mat -b b.mat [-method lu|plu|cholesky] [-o x.mat]
//	lstsq -a a.mat -b b.mat [-method normal|normal-cholesky|augmented] [-o x.mat]
//	encode a.mat                         print the protobuf encoding as hex
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/densela/codec"
	"github.com/katalvlaran/densela/lstsq"
	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/solver"
	"github.com/katalvlaran/densela/store"
)

var log = logging.Logger("densela")

var errUsage = errors.New("usage: densela [-log-level level] create|show|det|solve|lstsq|encode [flags] [args]")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "densela: %v\n", err)
		os.Exit(1)
	}
}

// run executes one CLI invocation; output goes to stdout, flag diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("densela", flag.ContinueOnError)
	fs.SetOutput(stderr)
	level := fs.String("log-level", "error", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := logging.LevelFromString(*level)
	if err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}
	logging.SetAllLoggers(lvl)

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, cmdArgs := rest[0], rest[1:]
	log.Debugf("command %s %v", cmd, cmdArgs)

	switch cmd {
	case "create":
		return runCreate(cmdArgs, stderr)
	case "show":
		return runShow(cmdArgs, stdout, stderr)
	case "det":
		return runDet(cmdArgs, stdout, stderr)
	case "solve":
		return runSolve(cmdArgs, stdout, stderr)
	case "lstsq":
		return runLstsq(cmdArgs, stdout, stderr)
	case "encode":
		return runEncode(cmdArgs, stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

// singleFile parses a command that takes no flags and exactly one file argument.
func singleFile(name string, args []string, stderr io.Writer) (string, error) {
	fs := newFlagSet(name, stderr)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one matrix file, got %d arguments", name, fs.NArg())
	}

	return fs.Arg(0), nil
}

func runCreate(args []string, stderr io.Writer) error {
	fs := newFlagSet("create", stderr)
	rows := fs.String("rows", "", `matrix rows, values separated by ',' and rows by ';' (e.g. "1,2;3,4")`)
	out := fs.String("o", "", "output matrix file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("create: -o is required")
	}

	m, err := parseRows(*rows)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	return store.Save(*out, m)
}

func runShow(args []string, stdout, stderr io.Writer) error {
	path, err := singleFile("show", args, stderr)
	if err != nil {
		return err
	}
	m, err := store.Load(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, m.String())

	return err
}

func runDet(args []string, stdout, stderr io.Writer) error {
	path, err := singleFile("det", args, stderr)
	if err != nil {
		return err
	}
	f, err := store.OpenReadOnly(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := matrix.Det(f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, strconv.FormatFloat(d, 'g', -1, 64))

	return err
}

func runSolve(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("solve", stderr)
	aPath := fs.String("a", "", "coefficient matrix file")
	bPath := fs.String("b", "", "right-hand side vector file")
	method := fs.String("method", "plu", "factorization: lu, plu or cholesky")
	out := fs.String("o", "", "write the solution to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, b, err := loadSystem("solve", *aPath, *bPath)
	if err != nil {
		return err
	}

	var s solver.Solver
	switch *method {
	case "lu":
		s, err = solver.NewLUSolver(a)
	case "plu":
		s, err = solver.NewPivotLUSolver(a)
	case "cholesky":
		s, err = solver.NewCholeskySolver(a)
	default:
		return fmt.Errorf("solve: unknown method %q", *method)
	}
	if err != nil {
		return err
	}

	x, err := s.Solve(b)
	if err != nil {
		return err
	}

	return emit(stdout, *out, x)
}

func runLstsq(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("lstsq", stderr)
	aPath := fs.String("a", "", "design matrix file")
	bPath := fs.String("b", "", "observation vector file")
	method := fs.String("method", "normal", "normal (normal equations, pivoted LU), normal-cholesky (normal equations, Cholesky) or augmented (augmented system)")
	out := fs.String("o", "", "write the solution to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, b, err := loadSystem("lstsq", *aPath, *bPath)
	if err != nil {
		return err
	}

	var x *matrix.Dense
	switch *method {
	case "normal":
		x, err = lstsq.NormalEquation(a, b, lstsq.WithMethod(lstsq.MethodPivotedLU))
	case "normal-cholesky":
		x, err = lstsq.NormalEquation(a, b, lstsq.WithMethod(lstsq.MethodCholesky))
	case "augmented":
		x, err = lstsq.AugmentedSystem(a, b)
	default:
		return fmt.Errorf("lstsq: unknown method %q", *method)
	}
	if err != nil {
		return err
	}

	return emit(stdout, *out, x)
}

func runEncode(args []string, stdout, stderr io.Writer) error {
	path, err := singleFile("encode", args, stderr)
	if err != nil {
		return err
	}
	f, err := store.OpenReadOnly(path)
	if err != nil {
		return err
	}
	defer f.Close()

	raw, err := codec.Marshal(f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(raw))

	return err
}

func loadSystem(cmd, aPath, bPath string) (a, b *matrix.Dense, err error) {
	if aPath == "" || bPath == "" {
		return nil, nil, fmt.Errorf("%s: -a and -b are required", cmd)
	}
	if a, err = store.Load(aPath); err != nil {
		return nil, nil, err
	}
	if b, err = store.Load(bPath); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// emit saves x to path, or prints it when path is empty.
func emit(stdout io.Writer, path string, x *matrix.Dense) error {
	if path != "" {
		return store.Save(path, x)
	}
	_, err := fmt.Fprint(stdout, x.String())

	return err
}

// parseRows parses "1,2;3,4" into a 2×2 matrix. The empty string is a 0×0 matrix.
func parseRows(s string) (*matrix.Dense, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return matrix.NewDense(0, 0)
	}

	lines := strings.Split(s, ";")
	rows := make([][]float64, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, ",")
		rows[i] = make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d value %d: %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewFromRows(rows)
}
