package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// decodeTypeDescriptor reads one Type section entry. When prefix is
// wasm.TypePrefixFunc the body is a FuncType with no subtypes and no
// further kind byte. When prefix is one of the two GC sub-type prefixes, a
// count-prefixed list of supertype indices precedes the kind byte and
// body. For any other prefix value, the source still reads a kind byte and
// body with an empty subtype list — that branch is preserved here exactly
// as the grammar defines it, even though no known producer emits it.
func decodeTypeDescriptor(r *cursor.Reader) (wasm.TypeDescriptor, error) {
	prefix, err := r.ReadU8()
	if err != nil {
		return wasm.TypeDescriptor{}, fmt.Errorf("binary: read type prefix at offset %d: %w", r.Offset(), err)
	}

	if prefix == wasm.TypePrefixFunc {
		body, err := decodeFuncType(r)
		if err != nil {
			return wasm.TypeDescriptor{}, err
		}
		return wasm.TypeDescriptor{Prefix: prefix, Body: body}, nil
	}

	var subtypes []wasm.Index
	if prefix == wasm.TypePrefixSub1 || prefix == wasm.TypePrefixSub2 {
		subtypes, err = decodeIndices(r)
		if err != nil {
			return wasm.TypeDescriptor{}, err
		}
	}

	kind, err := r.ReadU8()
	if err != nil {
		return wasm.TypeDescriptor{}, fmt.Errorf("binary: read type kind at offset %d: %w", r.Offset(), err)
	}
	body, err := decodeTypeBody(r, kind)
	if err != nil {
		return wasm.TypeDescriptor{}, err
	}
	return wasm.TypeDescriptor{Prefix: prefix, Subtypes: subtypes, Body: body}, nil
}

func decodeTypeBody(r *cursor.Reader, kind byte) (wasm.TypeBody, error) {
	switch kind {
	case wasm.TypeKindByteFunc:
		ft, err := decodeFuncType(r)
		if err != nil {
			return wasm.TypeBody{}, err
		}
		return ft, nil
	case wasm.TypeKindByteStruct:
		st, err := decodeStructType(r)
		if err != nil {
			return wasm.TypeBody{}, err
		}
		return wasm.TypeBody{Kind: wasm.TypeKindStruct, Struct: &st}, nil
	case wasm.TypeKindByteArray:
		at, err := decodeArrayType(r)
		if err != nil {
			return wasm.TypeBody{}, err
		}
		return wasm.TypeBody{Kind: wasm.TypeKindArray, Array: &at}, nil
	}
	return wasm.TypeBody{}, fmt.Errorf("binary: type kind %#x at offset %d: %w", kind, r.Offset(), wasm.ErrUnknownTypeKind)
}

func decodeFuncType(r *cursor.Reader) (wasm.TypeBody, error) {
	params, err := decodeValueTypes(r)
	if err != nil {
		return wasm.TypeBody{}, fmt.Errorf("binary: decode func params: %w", err)
	}
	results, err := decodeValueTypes(r)
	if err != nil {
		return wasm.TypeBody{}, fmt.Errorf("binary: decode func results: %w", err)
	}
	return wasm.TypeBody{Kind: wasm.TypeKindFunc, Func: &wasm.FuncType{Params: params, Results: results}}, nil
}

func decodeStructType(r *cursor.Reader) (wasm.StructType, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.StructType{}, err
	}
	fields := make([]wasm.StructField, n)
	for i := range fields {
		vt, err := r.ReadU8()
		if err != nil {
			return wasm.StructType{}, fmt.Errorf("binary: decode struct field %d: %w", i, err)
		}
		mutable, err := decodeBool(r)
		if err != nil {
			return wasm.StructType{}, fmt.Errorf("binary: decode struct field %d mutability: %w", i, err)
		}
		fields[i] = wasm.StructField{ValType: vt, Mutable: mutable}
	}
	return wasm.StructType{Fields: fields}, nil
}

func decodeArrayType(r *cursor.Reader) (wasm.ArrayType, error) {
	vt, err := r.ReadU8()
	if err != nil {
		return wasm.ArrayType{}, err
	}
	mutable, err := decodeBool(r)
	if err != nil {
		return wasm.ArrayType{}, err
	}
	return wasm.ArrayType{ValType: vt, Mutable: mutable}, nil
}

func encodeTypeDescriptor(w *cursor.Writer, t wasm.TypeDescriptor) {
	w.WriteU8(t.Prefix)
	if t.Prefix == wasm.TypePrefixFunc {
		encodeFuncType(w, *t.Body.Func)
		return
	}
	if t.Prefix == wasm.TypePrefixSub1 || t.Prefix == wasm.TypePrefixSub2 {
		encodeIndices(w, t.Subtypes)
	}
	w.WriteU8(typeBodyKindByte(t.Body))
	encodeTypeBody(w, t.Body)
}

func typeBodyKindByte(b wasm.TypeBody) byte {
	switch b.Kind {
	case wasm.TypeKindFunc:
		return wasm.TypeKindByteFunc
	case wasm.TypeKindStruct:
		return wasm.TypeKindByteStruct
	case wasm.TypeKindArray:
		return wasm.TypeKindByteArray
	}
	return 0
}

func encodeTypeBody(w *cursor.Writer, b wasm.TypeBody) {
	switch b.Kind {
	case wasm.TypeKindFunc:
		encodeFuncType(w, *b.Func)
	case wasm.TypeKindStruct:
		encodeStructType(w, *b.Struct)
	case wasm.TypeKindArray:
		encodeArrayType(w, *b.Array)
	}
}

func encodeFuncType(w *cursor.Writer, ft wasm.FuncType) {
	encodeValueTypes(w, ft.Params)
	encodeValueTypes(w, ft.Results)
}

func encodeStructType(w *cursor.Writer, st wasm.StructType) {
	encodeU32(w, uint32(len(st.Fields)))
	for _, f := range st.Fields {
		w.WriteU8(f.ValType)
		encodeBool(w, f.Mutable)
	}
}

func encodeArrayType(w *cursor.Writer, at wasm.ArrayType) {
	w.WriteU8(at.ValType)
	encodeBool(w, at.Mutable)
}

// sizeTypeDescriptor agrees with encodeTypeDescriptor byte for byte; the
// GC-subtype branch adds one size_of(u32) per subtype index the same way
// the write path emits one, so the two stay self-consistent even though
// it's a separate loop (see the design notes on this pairing).
func sizeTypeDescriptor(t wasm.TypeDescriptor) int {
	n := 1 // prefix
	if t.Prefix == wasm.TypePrefixFunc {
		return n + sizeFuncType(*t.Body.Func)
	}
	if t.Prefix == wasm.TypePrefixSub1 || t.Prefix == wasm.TypePrefixSub2 {
		n += sizeIndices(t.Subtypes)
	}
	n++ // kind byte
	n += sizeTypeBody(t.Body)
	return n
}

func sizeTypeBody(b wasm.TypeBody) int {
	switch b.Kind {
	case wasm.TypeKindFunc:
		return sizeFuncType(*b.Func)
	case wasm.TypeKindStruct:
		return sizeStructType(*b.Struct)
	case wasm.TypeKindArray:
		return 2
	}
	return 0
}

func sizeFuncType(ft wasm.FuncType) int {
	return sizeValueTypes(ft.Params) + sizeValueTypes(ft.Results)
}

func sizeStructType(st wasm.StructType) int {
	return sizeU32(uint32(len(st.Fields))) + 2*len(st.Fields)
}
