package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

func decodeHeader(r *cursor.Reader) (wasm.Header, error) {
	magic, err := r.ReadU32LE()
	if err != nil {
		return wasm.Header{}, fmt.Errorf("binary: read magic: %w", err)
	}
	if magic != wasm.Magic {
		return wasm.Header{}, fmt.Errorf("binary: magic %#x: %w", magic, wasm.ErrInvalidMagic)
	}
	version, err := r.ReadU32LE()
	if err != nil {
		return wasm.Header{}, fmt.Errorf("binary: read version: %w", err)
	}
	if version != wasm.Version {
		return wasm.Header{}, fmt.Errorf("binary: version %d: %w", version, wasm.ErrUnsupportedVersion)
	}
	return wasm.Header{Magic: magic, Version: version}, nil
}

func encodeHeader(w *cursor.Writer, h wasm.Header) {
	w.WriteU32LE(h.Magic)
	w.WriteU32LE(h.Version)
}
