// SPDX-License-Identifier: MIT

// Package store keeps matrices in memory-mapped files.
//
// File layout (all integers little-endian):
//
//	offset  size  field
//	0       8     magic "DNSLMAT1"
//	8       8     rows (uint64)
//	16      8     cols (uint64)
//	24      8     reserved, zero
//	32      8·r·c row-major float64 values (IEEE-754 bits)
//
// A *File implements matrix.Matrix directly on the mapping, so it can be passed
// to every kernel of package matrix; results are ordinary *matrix.Dense values.
// A File is not safe for concurrent use.
package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/densela/matrix"
)

const (
	headSize = 32
	elemSize = 8
)

var magic = [8]byte{'D', 'N', 'S', 'L', 'M', 'A', 'T', '1'}

var (
	// ErrBadHeader is returned when a file is too small, carries the wrong magic
	// or its size disagrees with the dimensions in its header.
	ErrBadHeader = errors.New("store: invalid matrix file header")

	// ErrReadOnly is returned by Set on a File opened with OpenReadOnly.
	ErrReadOnly = errors.New("store: file is read-only")

	// ErrClosed is returned by any access after Close.
	ErrClosed = errors.New("store: file is closed")
)

// File is a matrix backed by a memory-mapped file.
type File struct {
	data     mmap.MMap
	file     *os.File
	rows     int
	cols     int
	readOnly bool
}

var _ matrix.Matrix = (*File)(nil)

// Create creates (or truncates) path as a zero rows×cols matrix file and maps it
// read-write.
func Create(path string, rows, cols int) (f *File, err error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Create: %w", matrix.ErrInvalidDimensions)
	}
	if cols != 0 && rows > (math.MaxInt-headSize)/elemSize/cols {
		return nil, fmt.Errorf("Create: %dx%d: %w", rows, cols, matrix.ErrInvalidDimensions)
	}

	f = &File{rows: rows, cols: cols}
	if f.file, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644); err != nil {
		return nil, err
	}
	if err = f.file.Truncate(fileSize(rows, cols)); err != nil {
		_ = f.file.Close()
		return nil, err
	}
	if f.data, err = mmap.Map(f.file, mmap.RDWR, 0); err != nil {
		_ = f.file.Close()
		return nil, err
	}

	copy(f.data[:headSize], encodeHeader(rows, cols))
	if err = f.data.Flush(); err != nil {
		_ = f.Close()
		return nil, err
	}
	log.Debugf("created %s (%dx%d)", path, rows, cols)

	return f, nil
}

// Open maps an existing matrix file read-write.
func Open(path string) (*File, error) {
	return open(path, false)
}

// OpenReadOnly maps an existing matrix file read-only; Set returns ErrReadOnly.
func OpenReadOnly(path string) (*File, error) {
	return open(path, true)
}

func open(path string, readOnly bool) (f *File, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	flag, prot := os.O_RDWR, mmap.RDWR
	if readOnly {
		flag, prot = os.O_RDONLY, mmap.RDONLY
	}

	f = &File{readOnly: readOnly}
	if f.file, err = os.OpenFile(path, flag, 0); err != nil {
		return nil, err
	}
	if f.rows, f.cols, err = readHeader(f.file, info.Size()); err != nil {
		_ = f.file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.data, err = mmap.Map(f.file, prot, 0); err != nil {
		_ = f.file.Close()
		return nil, err
	}
	log.Debugf("mapped %s (%dx%d, read-only=%t)", path, f.rows, f.cols, readOnly)

	return f, nil
}

func fileSize(rows, cols int) int64 {
	return headSize + int64(rows)*int64(cols)*elemSize
}

func encodeHeader(rows, cols int) []byte {
	b := make([]byte, headSize)
	copy(b[:8], magic[:])
	binary.LittleEndian.PutUint64(b[8:16], uint64(rows))
	binary.LittleEndian.PutUint64(b[16:24], uint64(cols))

	return b
}

// readHeader validates the header against the on-disk size.
func readHeader(r io.ReadSeeker, size int64) (rows, cols int, err error) {
	if size < headSize {
		return 0, 0, fmt.Errorf("file too small: %w", ErrBadHeader)
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	b := make([]byte, headSize)
	if _, err = io.ReadFull(r, b); err != nil {
		return 0, 0, err
	}
	if !bytes.Equal(b[:8], magic[:]) {
		return 0, 0, fmt.Errorf("bad magic %q: %w", b[:8], ErrBadHeader)
	}

	r64 := binary.LittleEndian.Uint64(b[8:16])
	c64 := binary.LittleEndian.Uint64(b[16:24])
	payload := uint64(size - headSize)
	if r64 > math.MaxInt32 || c64 > math.MaxInt32 {
		return 0, 0, fmt.Errorf("dimensions %dx%d: %w", r64, c64, ErrBadHeader)
	}
	if (c64 != 0 && r64 > payload/elemSize/c64) || r64*c64*elemSize != payload {
		return 0, 0, fmt.Errorf("size %d does not fit %dx%d: %w", size, r64, c64, ErrBadHeader)
	}
	rows, cols = int(r64), int(c64)

	return rows, cols, nil
}

// Rows returns the row count.
func (f *File) Rows() int {
	if f == nil {
		return 0
	}

	return f.rows
}

// Cols returns the column count.
func (f *File) Cols() int {
	if f == nil {
		return 0
	}

	return f.cols
}

func (f *File) offset(method string, i, j int) (int, error) {
	if f == nil || f.data == nil {
		return 0, fmt.Errorf("File.%s(%d,%d): %w", method, i, j, ErrClosed)
	}
	if i < 0 || i >= f.rows || j < 0 || j >= f.cols {
		return 0, fmt.Errorf("File.%s(%d,%d): %w", method, i, j, matrix.ErrOutOfRange)
	}

	return headSize + (i*f.cols+j)*elemSize, nil
}

// At reads element (i, j) from the mapping.
func (f *File) At(i, j int) (float64, error) {
	off, err := f.offset("At", i, j)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(f.data[off : off+elemSize])), nil
}

// Set writes element (i, j) into the mapping. Changes reach the file on Flush or Close.
func (f *File) Set(i, j int, v float64) error {
	off, err := f.offset("Set", i, j)
	if err != nil {
		return err
	}
	if f.readOnly {
		return fmt.Errorf("File.Set(%d,%d): %w", i, j, ErrReadOnly)
	}
	binary.LittleEndian.PutUint64(f.data[off:off+elemSize], math.Float64bits(v))

	return nil
}

// Dense copies the mapped matrix into a fresh *matrix.Dense.
func (f *File) Dense() (*matrix.Dense, error) {
	if f == nil || f.data == nil {
		return nil, fmt.Errorf("File.Dense: %w", ErrClosed)
	}
	vals := make([]float64, f.rows*f.cols)
	for k := range vals {
		off := headSize + k*elemSize
		vals[k] = math.Float64frombits(binary.LittleEndian.Uint64(f.data[off : off+elemSize]))
	}

	return matrix.NewDenseFrom(f.rows, f.cols, vals)
}

// Clone returns an in-memory *matrix.Dense copy, or nil when f is closed.
func (f *File) Clone() matrix.Matrix {
	d, err := f.Dense()
	if err != nil {
		return nil
	}

	return d
}

// Flush writes dirty pages back to the file.
func (f *File) Flush() error {
	if f == nil || f.data == nil {
		return ErrClosed
	}
	if f.readOnly {
		return nil
	}

	return f.data.Flush()
}

// Close flushes (when writable), unmaps and closes the file.
// Any later access returns ErrClosed, as does any access through a nil *File.
func (f *File) Close() error {
	if f == nil || f.data == nil {
		return ErrClosed
	}

	var errs []error
	if !f.readOnly {
		errs = append(errs, f.data.Flush())
	}
	errs = append(errs, f.data.Unmap(), f.file.Close())
	f.data, f.file = nil, nil

	return errors.Join(errs...)
}

// Save writes m to path as a new matrix file.
func Save(path string, m matrix.Matrix) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	f, err := Create(path, m.Rows(), m.Cols())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("Save: %w", err)
			}
			if err = f.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Load reads the matrix stored at path into memory. The result never aliases the file.
func Load(path string) (d *matrix.Dense, err error) {
	f, err := OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return f.Dense()
}
