// Package leb128 implements the LEB128 (Little-Endian Base-128) variable
// length integer encoding used throughout the WebAssembly binary format.
//
// Unsigned values are encoded 7 bits per byte, least significant group
// first, with the high bit of every byte except the last set. Signed
// values use the same layout, except the encoder stops once the remaining
// sign-extended value is redundant with the sign bit just written.
package leb128

import (
	"errors"
	"fmt"
	"io"
)

// maxShift bounds the number of continuation bytes a decoder will consume
// before giving up. 70 bits (10 bytes) is generous relative to every width
// this package decodes (up to 64 bits) and exists only to reject inputs
// that never terminate.
const maxShift = 70

// ErrOverflow is returned when a LEB128 sequence exceeds maxShift bits of
// accumulated shift without terminating, or when the decoded magnitude does
// not fit the declared width.
var ErrOverflow = errors.New("leb128: overflow")

func readByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("leb128: read byte: %w", err)
	}
	return b, nil
}

// DecodeUint32 reads an unsigned LEB128 value and returns it along with the
// number of bytes consumed. It fails if the value does not fit in 32 bits.
func DecodeUint32(r io.ByteReader) (uint32, uint64, error) {
	v, n, err := decodeUint64(r)
	if err != nil {
		return 0, n, err
	}
	if v > 0xffffffff {
		return 0, n, fmt.Errorf("%w: value %d exceeds u32 range", ErrOverflow, v)
	}
	return uint32(v), n, nil
}

// DecodeUint64 reads an unsigned LEB128 value and returns it along with the
// number of bytes consumed.
func DecodeUint64(r io.ByteReader) (uint64, uint64, error) {
	return decodeUint64(r)
}

func decodeUint64(r io.ByteReader) (uint64, uint64, error) {
	var ret uint64
	var shift uint
	var n uint64
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, n, err
		}
		n++
		if shift >= maxShift {
			return 0, n, fmt.Errorf("%w: shift %d without termination", ErrOverflow, shift)
		}
		if shift == 63 && b&0x7f > 1 {
			return 0, n, fmt.Errorf("%w: value exceeds u64 range", ErrOverflow)
		}
		ret |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return ret, n, nil
		}
	}
}

// DecodeInt32 reads a signed LEB128 value and returns it along with the
// number of bytes consumed. It fails if the value does not fit in the
// signed 32-bit range.
func DecodeInt32(r io.ByteReader) (int32, uint64, error) {
	v, n, err := decodeInt64(r)
	if err != nil {
		return 0, n, err
	}
	if v < -2147483648 || v > 2147483647 {
		return 0, n, fmt.Errorf("%w: value %d exceeds i32 range", ErrOverflow, v)
	}
	return int32(v), n, nil
}

// DecodeInt64 reads a signed LEB128 value and returns it along with the
// number of bytes consumed.
func DecodeInt64(r io.ByteReader) (int64, uint64, error) {
	return decodeInt64(r)
}

// DecodeI33 reads a signed LEB128 value accepted in a 33-bit signed range
// ([-2^32, 2^32-1]), as used for blocktype immediates. The result is
// returned as int64 since Go has no 33-bit integer type.
func DecodeI33(r io.ByteReader) (int64, uint64, error) {
	v, n, err := decodeInt64(r)
	if err != nil {
		return 0, n, err
	}
	if v < -4294967296 || v > 4294967295 {
		return 0, n, fmt.Errorf("%w: value %d exceeds i33 range", ErrOverflow, v)
	}
	return v, n, nil
}

// decodeInt64 decodes a generic signed LEB128 value, sign-extending from
// the final byte's bit 6. Overflow beyond 64 bits of accumulated shift is
// always rejected; narrower-width range checks are done by the callers.
func decodeInt64(r io.ByteReader) (int64, uint64, error) {
	var ret int64
	var shift uint
	var n uint64
	var b byte
	var err error
	for {
		b, err = readByte(r)
		if err != nil {
			return 0, n, err
		}
		n++
		if shift >= maxShift {
			return 0, n, fmt.Errorf("%w: shift %d without termination", ErrOverflow, shift)
		}
		if shift == 63 && b&0x7f != 0 && b&0x7f != 0x7f {
			return 0, n, fmt.Errorf("%w: value exceeds i64 range", ErrOverflow)
		}
		ret |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 64 && b&0x40 != 0 {
		ret |= -1 << shift
	}
	return ret, n, nil
}

// EncodeUint32 returns u encoded as an unsigned LEB128.
func EncodeUint32(u uint32) []byte {
	return EncodeUint64(uint64(u))
}

// EncodeUint64 returns u encoded as an unsigned LEB128.
func EncodeUint64(u uint64) []byte {
	var out []byte
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if b&0x80 == 0 {
			break
		}
	}
	return out
}

// EncodeInt32 returns v encoded as a signed LEB128.
func EncodeInt32(v int32) []byte {
	return EncodeInt64(int64(v))
}

// EncodeInt64 returns v encoded as a signed LEB128.
func EncodeInt64(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			out = append(out, b)
			break
		}
		out = append(out, b|0x80)
	}
	return out
}

// EncodeI33 returns v, interpreted as a signed 33-bit integer, encoded as a
// signed LEB128. The caller is responsible for ensuring v is within
// [-2^32, 2^32-1].
func EncodeI33(v int64) []byte {
	return EncodeInt64(v)
}

// SizeUint32 returns the number of bytes EncodeUint32 would emit for u.
func SizeUint32(u uint32) int {
	return SizeUint64(uint64(u))
}

// SizeUint64 returns the number of bytes EncodeUint64 would emit for u.
func SizeUint64(u uint64) int {
	n := 1
	for u >>= 7; u != 0; u >>= 7 {
		n++
	}
	return n
}

// SizeInt32 returns the number of bytes EncodeInt32 would emit for v.
func SizeInt32(v int32) int {
	return SizeInt64(int64(v))
}

// SizeInt64 returns the number of bytes EncodeInt64 would emit for v.
func SizeInt64(v int64) int {
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		n++
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			break
		}
	}
	return n
}

// SizeI33 returns the number of bytes EncodeI33 would emit for v.
func SizeI33(v int64) int {
	return SizeInt64(v)
}
