// Package binary implements the module-framing, section, and instruction
// codecs: the decode and encode halves of the round trip between a .wasm
// byte stream and the wasm package's structured Module.
package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/leb128"
	"github.com/hazae41/wasm/wasm"
)

// decodeU32 reads a LEB128 U32, the width every vector count and index
// immediate uses.
func decodeU32(r *cursor.Reader) (uint32, error) {
	v, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("binary: decode u32 at offset %d: %w", r.Offset(), err)
	}
	return v, nil
}

func encodeU32(w *cursor.Writer, v uint32) {
	w.WriteBytes(leb128.EncodeUint32(v))
}

func sizeU32(v uint32) int {
	return leb128.SizeUint32(v)
}

// decodeBytes reads a U32-length-prefixed byte run: the common shape
// behind names and data-segment payloads.
func decodeBytes(r *cursor.Reader) ([]byte, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, fmt.Errorf("binary: decode byte vector at offset %d: %w", r.Offset(), err)
	}
	return b, nil
}

func encodeBytes(w *cursor.Writer, b []byte) {
	encodeU32(w, uint32(len(b)))
	w.WriteBytes(b)
}

func sizeBytes(b []byte) int {
	return sizeU32(uint32(len(b))) + len(b)
}

// decodeName reads a length-prefixed UTF-8 string.
func decodeName(r *cursor.Reader) (string, error) {
	b, err := decodeBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeName(w *cursor.Writer, s string) {
	encodeBytes(w, []byte(s))
}

func sizeName(s string) int {
	return sizeBytes([]byte(s))
}

// decodeValueTypes reads a U32-counted vector of single-byte value types,
// the shape of FuncType params and results.
func decodeValueTypes(r *cursor.Reader) ([]wasm.ValueType, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make([]wasm.ValueType, n)
	for i := range out {
		b, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("binary: decode value type %d at offset %d: %w", i, r.Offset(), err)
		}
		out[i] = b
	}
	return out, nil
}

func encodeValueTypes(w *cursor.Writer, ts []wasm.ValueType) {
	encodeU32(w, uint32(len(ts)))
	for _, t := range ts {
		w.WriteU8(t)
	}
}

func sizeValueTypes(ts []wasm.ValueType) int {
	return sizeU32(uint32(len(ts))) + len(ts)
}

// decodeIndices reads a U32-counted vector of U32 indices, the shape
// shared by the Function section and every index list inside element
// segments.
func decodeIndices(r *cursor.Reader) ([]wasm.Index, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make([]wasm.Index, n)
	for i := range out {
		v, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode index %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func encodeIndices(w *cursor.Writer, idx []wasm.Index) {
	encodeU32(w, uint32(len(idx)))
	for _, v := range idx {
		encodeU32(w, v)
	}
}

func sizeIndices(idx []wasm.Index) int {
	n := sizeU32(uint32(len(idx)))
	for _, v := range idx {
		n += sizeU32(v)
	}
	return n
}

func decodeBool(r *cursor.Reader) (bool, error) {
	b, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func encodeBool(w *cursor.Writer, b bool) {
	if b {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}
