// Package ieee754 reads and writes the little-endian IEEE-754 bit patterns
// used by the f32.const and f64.const instructions, and by other points in
// the WebAssembly binary format where an unencoded float is stored. Bit
// patterns, including NaN payloads and signed zero, round-trip exactly:
// these functions never normalize through a float operation that could
// collapse distinct NaN payloads.
package ieee754

import (
	"encoding/binary"
	"io"
	"math"
)

// DecodeFloat32 reads 4 little-endian bytes and returns their bit pattern
// reinterpreted as a float32.
func DecodeFloat32(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

// DecodeFloat64 reads 8 little-endian bytes and returns their bit pattern
// reinterpreted as a float64.
func DecodeFloat64(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// EncodeFloat32 returns v's bit pattern as 4 little-endian bytes.
func EncodeFloat32(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}

// EncodeFloat64 returns v's bit pattern as 8 little-endian bytes.
func EncodeFloat64(v float64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
	return buf
}
