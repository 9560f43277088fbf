package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

func decodeGlobalDescriptor(r *cursor.Reader) (wasm.GlobalDescriptor, error) {
	gt, err := decodeGlobalType(r)
	if err != nil {
		return wasm.GlobalDescriptor{}, fmt.Errorf("binary: decode global type: %w", err)
	}
	init, err := decodeConstExpr(r)
	if err != nil {
		return wasm.GlobalDescriptor{}, fmt.Errorf("binary: decode global init: %w", err)
	}
	return wasm.GlobalDescriptor{Type: gt, Init: init}, nil
}

func encodeGlobalDescriptor(w *cursor.Writer, g wasm.GlobalDescriptor) {
	encodeGlobalType(w, g.Type)
	encodeInstructions(w, g.Init)
}

func sizeGlobalDescriptor(g wasm.GlobalDescriptor) int {
	return sizeGlobalType(g.Type) + sizeInstructions(g.Init)
}
