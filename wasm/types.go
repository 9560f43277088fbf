package wasm

// Index is an unsigned index into one of a module's index spaces
// (function, type, table, memory, global, tag).
type Index = uint32

// ValueType is the binary encoding of a type such as i32.
// See https://webassembly.github.io/spec/core/binary/types.html#value-types
type ValueType = byte

const (
	ValueTypeI32       ValueType = 0x7F
	ValueTypeI64       ValueType = 0x7E
	ValueTypeF32       ValueType = 0x7D
	ValueTypeF64       ValueType = 0x7C
	ValueTypeV128      ValueType = 0x7B
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6F
)

// ValueTypeName returns the WebAssembly text format name of t, or
// "unknown" if t isn't a value type this module recognizes.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return "unknown"
}

// RefType is the subset of ValueType legal as a table's element type or a
// ref.null immediate.
type RefType = byte

// ExternKind indicates which index space an Import or Export refers into.
// The same byte values are used by both ImportDescriptor and
// ExportDescriptor.
type ExternKind = byte

const (
	ExternKindFunc   ExternKind = 0x00
	ExternKindTable  ExternKind = 0x01
	ExternKindMemory ExternKind = 0x02
	ExternKindGlobal ExternKind = 0x03
)

// ExternKindName returns the canonical name of k, or "unknown".
func ExternKindName(k ExternKind) string {
	switch k {
	case ExternKindFunc:
		return "func"
	case ExternKindTable:
		return "table"
	case ExternKindMemory:
		return "memory"
	case ExternKindGlobal:
		return "global"
	}
	return "unknown"
}

// Limits describes the size range of a table or memory.
type Limits struct {
	Min uint32
	Max *uint32 // nil if the limit has no declared maximum
}

// TableType describes the element type and size limits of a table.
type TableType struct {
	RefType RefType
	Limits  Limits
}

// MemoryType describes the size limits of a memory, in units of 64KiB
// pages.
type MemoryType struct {
	Limits Limits
}

// GlobalType describes the value type and mutability of a global.
type GlobalType struct {
	ValType ValueType
	Mutable bool
}
