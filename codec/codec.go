// SPDX-License-Identifier: MIT

// Package codec serialises matrices in the protobuf wire format.
//
// A matrix is encoded as the proto3 message
//
//	message Matrix {
//	  uint64 rows = 1;
//	  uint64 cols = 2;
//	  repeated double data = 3 [packed = true]; // row-major, len = rows*cols
//	}
//
// so any protobuf runtime can read it with that schema. Zero-valued fields are
// omitted as proto3 does. Decoding accepts both packed and unpacked data and
// skips unknown fields.
package codec

import (
	"errors"
	"fmt"

	"github.com/gogo/protobuf/proto"

	"github.com/katalvlaran/densela/matrix"
)

const maxInt = int(^uint(0) >> 1)

// ErrMalformed is returned by Unmarshal for input that is not a valid Matrix message.
var ErrMalformed = errors.New("codec: malformed matrix message")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// pbMatrix is the Matrix message. The struct tags drive gogo/protobuf's
// reflection-based marshaler, so no generated code is involved.
type pbMatrix struct {
	Rows uint64    `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols uint64    `protobuf:"varint,2,opt,name=cols,proto3" json:"cols,omitempty"`
	Data []float64 `protobuf:"fixed64,3,rep,packed,name=data,proto3" json:"data,omitempty"`
}

func (m *pbMatrix) Reset()         { *m = pbMatrix{} }
func (m *pbMatrix) String() string { return proto.CompactTextString(m) }
func (*pbMatrix) ProtoMessage()    {}

var _ proto.Message = (*pbMatrix)(nil)

// Marshal encodes m as a Matrix message.
// Errors: matrix.ErrNilMatrix, or an At failure of a non-*Dense implementation.
func Marshal(m matrix.Matrix) ([]byte, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	vals, err := values(m)
	if err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	msg := &pbMatrix{
		Rows: uint64(m.Rows()),
		Cols: uint64(m.Cols()),
		Data: vals,
	}
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return b, nil
}

// values returns the row-major elements of m.
func values(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Values(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// Unmarshal decodes a Matrix message into a fresh *matrix.Dense.
//
// Errors: ErrMalformed for input the protobuf decoder rejects (truncation,
// bad lengths, unterminated groups), dimensions that overflow int, or a data
// length different from rows*cols.
func Unmarshal(data []byte) (*matrix.Dense, error) {
	var msg pbMatrix
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, malformed("%v", err)
	}

	if msg.Rows > uint64(maxInt) || msg.Cols > uint64(maxInt) {
		return nil, malformed("dimensions %dx%d overflow int", msg.Rows, msg.Cols)
	}
	r, c := int(msg.Rows), int(msg.Cols)
	if c != 0 && r > maxInt/c {
		return nil, malformed("dimensions %dx%d overflow int", msg.Rows, msg.Cols)
	}
	if len(msg.Data) != r*c {
		return nil, malformed("%dx%d matrix carries %d values", r, c, len(msg.Data))
	}

	m, err := matrix.NewDenseFrom(r, c, msg.Data)
	if err != nil {
		return nil, malformed("%v", err)
	}

	return m, nil
}
