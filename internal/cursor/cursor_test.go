package cursor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0x42)
	w.WriteU32LE(0xdeadbeef)
	w.WriteF32LE(1.5)
	w.WriteF64LE(-2.5)
	w.WriteBytes([]byte("hi"))

	r := NewReader(w.Bytes())
	b, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x42), b)

	u, err := r.ReadU32LE()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), u)

	f32, err := r.ReadF32LE()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := r.ReadF64LE()
	require.NoError(t, err)
	require.Equal(t, float64(-2.5), f64)

	bs, err := r.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, "hi", string(bs))

	require.Equal(t, 0, r.Remaining())
}

func TestReaderUnexpectedEnd(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadBytes(3)
	require.Error(t, err)
}

func TestFloatBitPatternsPreserved(t *testing.T) {
	w := NewWriter()
	nan := float32(math.NaN())
	w.WriteF32LE(nan)
	r := NewReader(w.Bytes())
	v, err := r.ReadF32LE()
	require.NoError(t, err)
	require.Equal(t, math.Float32bits(nan), math.Float32bits(v))
}
