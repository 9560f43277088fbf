package binary

import (
	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// decodeLimits reads a flag byte followed by a min and, if flag&1, a max:
// the shape shared by table and memory types, whether they arrive via the
// Table/Memory sections or an import.
func decodeLimits(r *cursor.Reader) (wasm.Limits, error) {
	flag, err := r.ReadU8()
	if err != nil {
		return wasm.Limits{}, err
	}
	min, err := decodeU32(r)
	if err != nil {
		return wasm.Limits{}, err
	}
	lim := wasm.Limits{Min: min}
	if flag&1 != 0 {
		max, err := decodeU32(r)
		if err != nil {
			return wasm.Limits{}, err
		}
		lim.Max = &max
	}
	return lim, nil
}

func encodeLimits(w *cursor.Writer, lim wasm.Limits) {
	if lim.Max != nil {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
	encodeU32(w, lim.Min)
	if lim.Max != nil {
		encodeU32(w, *lim.Max)
	}
}

func sizeLimits(lim wasm.Limits) int {
	n := 1 + sizeU32(lim.Min)
	if lim.Max != nil {
		n += sizeU32(*lim.Max)
	}
	return n
}

func decodeTableType(r *cursor.Reader) (wasm.TableType, error) {
	reftype, err := r.ReadU8()
	if err != nil {
		return wasm.TableType{}, err
	}
	lim, err := decodeLimits(r)
	if err != nil {
		return wasm.TableType{}, err
	}
	return wasm.TableType{RefType: reftype, Limits: lim}, nil
}

func encodeTableType(w *cursor.Writer, t wasm.TableType) {
	w.WriteU8(t.RefType)
	encodeLimits(w, t.Limits)
}

func sizeTableType(t wasm.TableType) int {
	return 1 + sizeLimits(t.Limits)
}

func decodeMemoryType(r *cursor.Reader) (wasm.MemoryType, error) {
	lim, err := decodeLimits(r)
	if err != nil {
		return wasm.MemoryType{}, err
	}
	return wasm.MemoryType{Limits: lim}, nil
}

func encodeMemoryType(w *cursor.Writer, t wasm.MemoryType) {
	encodeLimits(w, t.Limits)
}

func sizeMemoryType(t wasm.MemoryType) int {
	return sizeLimits(t.Limits)
}

func decodeGlobalType(r *cursor.Reader) (wasm.GlobalType, error) {
	valType, err := r.ReadU8()
	if err != nil {
		return wasm.GlobalType{}, err
	}
	mutable, err := decodeBool(r)
	if err != nil {
		return wasm.GlobalType{}, err
	}
	return wasm.GlobalType{ValType: valType, Mutable: mutable}, nil
}

func encodeGlobalType(w *cursor.Writer, t wasm.GlobalType) {
	w.WriteU8(t.ValType)
	encodeBool(w, t.Mutable)
}

func sizeGlobalType(t wasm.GlobalType) int {
	return 2
}
