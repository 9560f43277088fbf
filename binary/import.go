package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

func decodeImportDescriptor(r *cursor.Reader) (wasm.ImportDescriptor, error) {
	module, err := decodeName(r)
	if err != nil {
		return wasm.ImportDescriptor{}, fmt.Errorf("binary: decode import module: %w", err)
	}
	name, err := decodeName(r)
	if err != nil {
		return wasm.ImportDescriptor{}, fmt.Errorf("binary: decode import name: %w", err)
	}
	kind, err := r.ReadU8()
	if err != nil {
		return wasm.ImportDescriptor{}, fmt.Errorf("binary: read import kind at offset %d: %w", r.Offset(), err)
	}
	body, err := decodeImportBody(r, kind)
	if err != nil {
		return wasm.ImportDescriptor{}, err
	}
	return wasm.ImportDescriptor{Module: module, Name: name, Body: body}, nil
}

func decodeImportBody(r *cursor.Reader, kind byte) (wasm.ImportBody, error) {
	switch kind {
	case wasm.ExternKindFunc:
		idx, err := decodeU32(r)
		if err != nil {
			return wasm.ImportBody{}, err
		}
		return wasm.ImportBody{Kind: kind, Function: &wasm.FunctionImport{TypeIndex: idx}}, nil
	case wasm.ExternKindTable:
		t, err := decodeTableType(r)
		if err != nil {
			return wasm.ImportBody{}, err
		}
		return wasm.ImportBody{Kind: kind, Table: &wasm.TableImport{Table: t}}, nil
	case wasm.ExternKindMemory:
		m, err := decodeMemoryType(r)
		if err != nil {
			return wasm.ImportBody{}, err
		}
		return wasm.ImportBody{Kind: kind, Memory: &wasm.MemoryImport{Memory: m}}, nil
	case wasm.ExternKindGlobal:
		g, err := decodeGlobalType(r)
		if err != nil {
			return wasm.ImportBody{}, err
		}
		return wasm.ImportBody{Kind: kind, Global: &wasm.GlobalImport{Global: g}}, nil
	}
	return wasm.ImportBody{}, fmt.Errorf("binary: import kind %#x at offset %d: %w", kind, r.Offset(), wasm.ErrUnknownImportKind)
}

func encodeImportDescriptor(w *cursor.Writer, d wasm.ImportDescriptor) {
	encodeName(w, d.Module)
	encodeName(w, d.Name)
	w.WriteU8(d.Body.Kind)
	switch d.Body.Kind {
	case wasm.ExternKindFunc:
		encodeU32(w, d.Body.Function.TypeIndex)
	case wasm.ExternKindTable:
		encodeTableType(w, d.Body.Table.Table)
	case wasm.ExternKindMemory:
		encodeMemoryType(w, d.Body.Memory.Memory)
	case wasm.ExternKindGlobal:
		encodeGlobalType(w, d.Body.Global.Global)
	}
}

func sizeImportDescriptor(d wasm.ImportDescriptor) int {
	n := sizeName(d.Module) + sizeName(d.Name) + 1
	switch d.Body.Kind {
	case wasm.ExternKindFunc:
		n += sizeU32(d.Body.Function.TypeIndex)
	case wasm.ExternKindTable:
		n += sizeTableType(d.Body.Table.Table)
	case wasm.ExternKindMemory:
		n += sizeMemoryType(d.Body.Memory.Memory)
	case wasm.ExternKindGlobal:
		n += sizeGlobalType(d.Body.Global.Global)
	}
	return n
}
