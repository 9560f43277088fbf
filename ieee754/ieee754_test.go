package ieee754

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat32RoundTrip(t *testing.T) {
	for _, v := range []float32{0, -0, 1.5, -1.5, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.NaN())} {
		encoded := EncodeFloat32(v)
		require.Len(t, encoded, 4)
		decoded, err := DecodeFloat32(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, math.Float32bits(v), math.Float32bits(decoded))
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, -0, 1.5, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.NaN()} {
		encoded := EncodeFloat64(v)
		require.Len(t, encoded, 8)
		decoded, err := DecodeFloat64(bytes.NewReader(encoded))
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(v), math.Float64bits(decoded))
	}
}

func TestFloat32SignedZeroDistinctBits(t *testing.T) {
	pos := EncodeFloat32(0)
	neg := EncodeFloat32(float32(math.Copysign(0, -1)))
	require.NotEqual(t, pos, neg)
}
