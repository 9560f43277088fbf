package leb128

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUint32(t *testing.T) {
	for _, c := range []struct {
		input    uint32
		expected []byte
	}{
		{input: 0, expected: []byte{0x00}},
		{input: 127, expected: []byte{0x7F}},
		{input: 128, expected: []byte{0x80, 0x01}},
		{input: 16384, expected: []byte{0x80, 0x80, 0x01}},
		{input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{input: math.MaxUint32, expected: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	} {
		require.Equal(t, c.expected, EncodeUint32(c.input))
		require.Equal(t, len(c.expected), SizeUint32(c.input))

		decoded, n, err := DecodeUint32(bytes.NewReader(c.expected))
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestEncodeDecodeInt32(t *testing.T) {
	for _, c := range []struct {
		input    int32
		expected []byte
	}{
		{input: -1, expected: []byte{0x7F}},
		{input: -128, expected: []byte{0x80, 0x7F}},
		{input: 63, expected: []byte{0x3F}},
		{input: 64, expected: []byte{0xC0, 0x00}},
		{input: 0, expected: []byte{0x00}},
		{input: math.MaxInt32, expected: []byte{0xff, 0xff, 0xff, 0xff, 0x7}},
		{input: math.MinInt32, expected: []byte{0x80, 0x80, 0x80, 0x80, 0x78}},
	} {
		require.Equal(t, c.expected, EncodeInt32(c.input))
		require.Equal(t, len(c.expected), SizeInt32(c.input))

		decoded, n, err := DecodeInt32(bytes.NewReader(c.expected))
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestEncodeDecodeInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 64, -64, 127, -127, math.MaxInt64, math.MinInt64} {
		encoded := EncodeInt64(v)
		require.Equal(t, len(encoded), SizeInt64(v))
		decoded, n, err := DecodeInt64(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, uint64(len(encoded)), n)
	}
}

func TestEncodeDecodeUint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16384, math.MaxUint32, math.MaxUint64} {
		encoded := EncodeUint64(v)
		require.Equal(t, len(encoded), SizeUint64(v))
		decoded, n, err := DecodeUint64(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, uint64(len(encoded)), n)
	}
}

func TestDecodeI33Range(t *testing.T) {
	for _, v := range []int64{0, -1, -4294967296, 4294967295, -64} {
		encoded := EncodeI33(v)
		decoded, _, err := DecodeI33(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, v, decoded)
	}
}

func TestDecodeNonMinimal(t *testing.T) {
	// 0x80, 0x00 is a non-minimal (2-byte) encoding of zero; accepted on read.
	v, n, err := DecodeUint32(bytes.NewReader([]byte{0x80, 0x00}))
	require.NoError(t, err)
	require.Equal(t, uint32(0), v)
	require.Equal(t, uint64(2), n)
}

func TestDecodeOverflow(t *testing.T) {
	for _, c := range [][]byte{
		{0xff, 0xff, 0xff, 0xff, 0xff, 0x0f}, // u32: magnitude exceeds declared width
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, // shift guard
	} {
		_, _, err := DecodeUint32(bytes.NewReader(c))
		require.Error(t, err)
	}
}

func TestDecodeUnexpectedEnd(t *testing.T) {
	_, _, err := DecodeUint32(bytes.NewReader([]byte{0x80}))
	require.Error(t, err)
}
