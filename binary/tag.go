package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

func decodeTagDescriptor(r *cursor.Reader) (wasm.TagDescriptor, error) {
	attr, err := r.ReadU8()
	if err != nil {
		return wasm.TagDescriptor{}, fmt.Errorf("binary: read tag attribute at offset %d: %w", r.Offset(), err)
	}
	typeIdx, err := decodeU32(r)
	if err != nil {
		return wasm.TagDescriptor{}, fmt.Errorf("binary: decode tag type index: %w", err)
	}
	return wasm.TagDescriptor{Attribute: attr, TypeIndex: typeIdx}, nil
}

func encodeTagDescriptor(w *cursor.Writer, t wasm.TagDescriptor) {
	w.WriteU8(t.Attribute)
	encodeU32(w, t.TypeIndex)
}

func sizeTagDescriptor(t wasm.TagDescriptor) int {
	return 1 + sizeU32(t.TypeIndex)
}
