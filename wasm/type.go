package wasm

// TypeKind discriminates the shape of a TypeBody following a composite type
// prefix byte.
type TypeKind byte

const (
	TypeKindFunc TypeKind = iota
	TypeKindStruct
	TypeKindArray
)

// Composite type prefixes and body kind bytes, per the binary grammar.
const (
	TypePrefixFunc byte = 0x60
	TypePrefixSub1 byte = 0x4E // subtype form carrying a supertype list
	TypePrefixSub2 byte = 0x4D // subtype form carrying a supertype list

	TypeKindByteFunc   byte = 0x60
	TypeKindByteStruct byte = 0x5E
	TypeKindByteArray  byte = 0x5F
)

// FuncType is a function signature: an ordered list of parameter types
// followed by an ordered list of result types.
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

// StructField is one field of a StructType.
type StructField struct {
	ValType ValueType
	Mutable bool
}

// StructType is an ordered list of fields, introduced by the GC proposal.
type StructType struct {
	Fields []StructField
}

// ArrayType is a single element field, introduced by the GC proposal.
type ArrayType struct {
	ValType ValueType
	Mutable bool
}

// TypeBody is the sum of the three shapes a composite type can take.
// Exactly one field is non-nil, selected by Kind.
type TypeBody struct {
	Kind   TypeKind
	Func   *FuncType
	Struct *StructType
	Array  *ArrayType
}

// TypeDescriptor is one entry of the Type section. When Prefix is
// TypePrefixFunc, Subtypes is empty and Body holds a FuncType directly with
// no further kind byte. When Prefix is TypePrefixSub1 or TypePrefixSub2,
// Subtypes holds the declared supertype indices of a GC recursive subtype
// and a kind byte precedes Body. For any other prefix value, Subtypes is
// empty but a kind byte and Body are still read — preserved exactly as the
// format defines it even though no known producer emits such a prefix
// (see the design notes on this branch).
type TypeDescriptor struct {
	Prefix   byte
	Subtypes []Index
	Body     TypeBody
}
