package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// decodeElementSegment reads one Element section entry per the
// flag-discriminated layout: flag selects which of an explicit table
// index, a const-expr offset, a reftype byte, and an item kind
// (func indices or const-exprs) are present.
func decodeElementSegment(r *cursor.Reader) (wasm.ElementSegment, error) {
	flag, err := r.ReadU8()
	if err != nil {
		return wasm.ElementSegment{}, fmt.Errorf("binary: read element flag at offset %d: %w", r.Offset(), err)
	}
	if flag > 7 {
		return wasm.ElementSegment{}, fmt.Errorf("binary: element flag %#x at offset %d: %w", flag, r.Offset(), wasm.ErrUnknownElementFlag)
	}

	seg := wasm.NewElementSegment(flag)

	if seg.HasExplicitTableIndex() {
		idx, err := decodeU32(r)
		if err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("binary: decode element table index: %w", err)
		}
		seg.TableIndex = idx
	}

	if seg.HasOffset() {
		offset, err := decodeConstExpr(r)
		if err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("binary: decode element offset: %w", err)
		}
		seg.Offset = offset
	}

	if seg.HasRefType() {
		reftype, err := r.ReadU8()
		if err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("binary: read element reftype at offset %d: %w", r.Offset(), err)
		}
		seg.RefType = reftype
	}

	if seg.UsesFuncIndices() {
		idx, err := decodeIndices(r)
		if err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("binary: decode element func indices: %w", err)
		}
		seg.FuncIndices = idx
	} else {
		exprs, err := decodeConstExprVector(r)
		if err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("binary: decode element init exprs: %w", err)
		}
		seg.Exprs = exprs
	}

	return seg, nil
}

func decodeConstExprVector(r *cursor.Reader) ([][]wasm.Instruction, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make([][]wasm.Instruction, n)
	for i := range out {
		expr, err := decodeConstExpr(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode const-expr %d: %w", i, err)
		}
		out[i] = expr
	}
	return out, nil
}

func encodeElementSegment(w *cursor.Writer, seg wasm.ElementSegment) {
	w.WriteU8(seg.Flag)
	if seg.HasExplicitTableIndex() {
		encodeU32(w, seg.TableIndex)
	}
	if seg.HasOffset() {
		encodeInstructions(w, seg.Offset)
	}
	if seg.HasRefType() {
		w.WriteU8(seg.RefType)
	}
	if seg.UsesFuncIndices() {
		encodeIndices(w, seg.FuncIndices)
	} else {
		encodeConstExprVector(w, seg.Exprs)
	}
}

func encodeConstExprVector(w *cursor.Writer, exprs [][]wasm.Instruction) {
	encodeU32(w, uint32(len(exprs)))
	for _, e := range exprs {
		encodeInstructions(w, e)
	}
}

func sizeElementSegment(seg wasm.ElementSegment) int {
	n := 1
	if seg.HasExplicitTableIndex() {
		n += sizeU32(seg.TableIndex)
	}
	if seg.HasOffset() {
		n += sizeInstructions(seg.Offset)
	}
	if seg.HasRefType() {
		n++
	}
	if seg.UsesFuncIndices() {
		n += sizeIndices(seg.FuncIndices)
	} else {
		n += sizeConstExprVector(seg.Exprs)
	}
	return n
}

func sizeConstExprVector(exprs [][]wasm.Instruction) int {
	n := sizeU32(uint32(len(exprs)))
	for _, e := range exprs {
		n += sizeInstructions(e)
	}
	return n
}
