package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

func decodeDataSegment(r *cursor.Reader) (wasm.DataSegment, error) {
	flag, err := r.ReadU8()
	if err != nil {
		return wasm.DataSegment{}, fmt.Errorf("binary: read data flag at offset %d: %w", r.Offset(), err)
	}

	seg := wasm.DataSegment{Flag: flag}

	switch flag {
	case 0:
		offset, err := decodeConstExpr(r)
		if err != nil {
			return wasm.DataSegment{}, fmt.Errorf("binary: decode data offset: %w", err)
		}
		seg.Offset = offset
	case 1:
		// no memory index, no offset
	case 2:
		idx, err := decodeU32(r)
		if err != nil {
			return wasm.DataSegment{}, fmt.Errorf("binary: decode data memory index: %w", err)
		}
		seg.MemoryIndex = idx
		offset, err := decodeConstExpr(r)
		if err != nil {
			return wasm.DataSegment{}, fmt.Errorf("binary: decode data offset: %w", err)
		}
		seg.Offset = offset
	default:
		return wasm.DataSegment{}, fmt.Errorf("binary: data flag %#x at offset %d: %w", flag, r.Offset(), wasm.ErrUnknownDataFlag)
	}

	data, err := decodeBytes(r)
	if err != nil {
		return wasm.DataSegment{}, fmt.Errorf("binary: decode data bytes: %w", err)
	}
	seg.Data = data
	return seg, nil
}

func encodeDataSegment(w *cursor.Writer, seg wasm.DataSegment) {
	w.WriteU8(seg.Flag)
	switch seg.Flag {
	case 0:
		encodeInstructions(w, seg.Offset)
	case 2:
		encodeU32(w, seg.MemoryIndex)
		encodeInstructions(w, seg.Offset)
	}
	encodeBytes(w, seg.Data)
}

func sizeDataSegment(seg wasm.DataSegment) int {
	n := 1
	switch seg.Flag {
	case 0:
		n += sizeInstructions(seg.Offset)
	case 2:
		n += sizeU32(seg.MemoryIndex) + sizeInstructions(seg.Offset)
	}
	n += sizeBytes(seg.Data)
	return n
}
