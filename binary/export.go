package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

func decodeExportDescriptor(r *cursor.Reader) (wasm.ExportDescriptor, error) {
	name, err := decodeName(r)
	if err != nil {
		return wasm.ExportDescriptor{}, fmt.Errorf("binary: decode export name: %w", err)
	}
	kind, err := r.ReadU8()
	if err != nil {
		return wasm.ExportDescriptor{}, fmt.Errorf("binary: read export kind at offset %d: %w", r.Offset(), err)
	}
	idx, err := decodeU32(r)
	if err != nil {
		return wasm.ExportDescriptor{}, fmt.Errorf("binary: decode export index: %w", err)
	}
	return wasm.ExportDescriptor{Name: name, Kind: kind, Index: idx}, nil
}

func encodeExportDescriptor(w *cursor.Writer, d wasm.ExportDescriptor) {
	encodeName(w, d.Name)
	w.WriteU8(d.Kind)
	encodeU32(w, d.Index)
}

func sizeExportDescriptor(d wasm.ExportDescriptor) int {
	return sizeName(d.Name) + 1 + sizeU32(d.Index)
}
