// SPDX-License-Identifier: MIT
package codec_test

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/codec"
	"github.com/katalvlaran/densela/matrix"
)

type hide struct{ matrix.Matrix }

func dense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

func TestMarshal_WireLayout(t *testing.T) {
	m := dense(t, 2, 1, 1.5, -2)
	got, err := codec.Marshal(m)
	require.NoError(t, err)

	want := "0802" + // rows = 2
		"1001" + // cols = 1
		"1a10" + // data, 16 bytes packed
		"000000000000f83f" + // 1.5
		"00000000000000c0" // -2
	assert.Equal(t, want, hex.EncodeToString(got))

	// Same bytes through the interface path.
	viaIface, err := codec.Marshal(hide{m})
	require.NoError(t, err)
	assert.Equal(t, got, viaIface)
}

func TestRoundTrip_ExactBits(t *testing.T) {
	vals := []float64{0, math.Copysign(0, -1), 1e-310, math.MaxFloat64, math.Inf(1), math.Inf(-1), math.NaN(), math.Pi, -1.0 / 3.0}
	m := dense(t, 3, 3, vals...)

	b, err := codec.Marshal(m)
	require.NoError(t, err)
	out, err := codec.Unmarshal(b)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 3, out.Cols())
	for k, v := range out.Values() {
		assert.Equal(t, math.Float64bits(vals[k]), math.Float64bits(v), "element %d", k)
	}
}

func TestRoundTrip_EmptyShapes(t *testing.T) {
	for _, sh := range [][2]int{{0, 0}, {0, 4}, {5, 0}} {
		m, err := matrix.NewDense(sh[0], sh[1])
		require.NoError(t, err)
		b, err := codec.Marshal(m)
		require.NoError(t, err)
		out, err := codec.Unmarshal(b)
		require.NoError(t, err)
		assert.Equal(t, sh[0], out.Rows())
		assert.Equal(t, sh[1], out.Cols())
	}
}

func TestUnmarshal_UnpackedAndUnknownFields(t *testing.T) {
	buf := proto.NewBuffer(nil)
	// unknown varint field 15
	require.NoError(t, buf.EncodeVarint(15<<3|0))
	require.NoError(t, buf.EncodeVarint(99))
	require.NoError(t, buf.EncodeVarint(1<<3|0))
	require.NoError(t, buf.EncodeVarint(1))
	require.NoError(t, buf.EncodeVarint(2<<3|0))
	require.NoError(t, buf.EncodeVarint(2))
	// unpacked doubles
	for _, v := range []float64{7, 8} {
		require.NoError(t, buf.EncodeVarint(3<<3|1))
		require.NoError(t, buf.EncodeFixed64(math.Float64bits(v)))
	}
	// unknown bytes field 4 and fixed32 field 5
	require.NoError(t, buf.EncodeVarint(4<<3|2))
	require.NoError(t, buf.EncodeRawBytes([]byte("meta")))
	require.NoError(t, buf.EncodeVarint(5<<3|5))
	require.NoError(t, buf.EncodeFixed32(1))

	m, err := codec.Unmarshal(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, m.Values())
	assert.Equal(t, 1, m.Rows())
}

func TestUnmarshal_Malformed(t *testing.T) {
	valid, err := codec.Marshal(dense(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)

	tests := map[string][]byte{
		"truncated payload": valid[:len(valid)-3],
		"truncated key":     {0x80},
		"count mismatch":    mustHex(t, "0802"+"1002"+"1a08"+"000000000000f03f"),
		"ragged packed":     mustHex(t, "0801"+"1001"+"1a03"+"010203"),
		"group wire type":   mustHex(t, "0b"),
		"length overflow":   mustHex(t, "1aff01"),
		"huge dimensions":   mustHex(t, "08ffffffffffffffffff01"+"1002"),
	}
	for name, in := range tests {
		in := in
		t.Run(name, func(t *testing.T) {
			_, err := codec.Unmarshal(in)
			require.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

// wireMatrix mirrors the Matrix message the way generated code would declare it.
type wireMatrix struct {
	Rows uint64    `protobuf:"varint,1,opt,name=rows,proto3"`
	Cols uint64    `protobuf:"varint,2,opt,name=cols,proto3"`
	Data []float64 `protobuf:"fixed64,3,rep,packed,name=data,proto3"`
}

func (m *wireMatrix) Reset()         { *m = wireMatrix{} }
func (m *wireMatrix) String() string { return proto.CompactTextString(m) }
func (*wireMatrix) ProtoMessage()    {}

func TestInterop_SchemaMessage(t *testing.T) {
	vals := []float64{1, -2.5, math.Inf(1), 0, 1e-300, 6}
	m := dense(t, 2, 3, vals...)

	got, err := codec.Marshal(m)
	require.NoError(t, err)

	var decoded wireMatrix
	require.NoError(t, proto.Unmarshal(got, &decoded))
	assert.EqualValues(t, 2, decoded.Rows)
	assert.EqualValues(t, 3, decoded.Cols)
	assert.Equal(t, vals, decoded.Data)

	want, err := proto.Marshal(&wireMatrix{Rows: 2, Cols: 3, Data: vals})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	back, err := codec.Unmarshal(want)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(m, back))
}

func TestMarshal_Nil(t *testing.T) {
	_, err := codec.Marshal(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}
