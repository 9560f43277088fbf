package wasm

// ImportKind discriminates the four shapes an ImportDescriptor's body can
// take, keyed by the same byte values as ExternKind.
type ImportKind = ExternKind

// FunctionImport names the type index of an imported function.
type FunctionImport struct {
	TypeIndex Index
}

// TableImport names the type of an imported table.
type TableImport struct {
	Table TableType
}

// MemoryImport names the type of an imported memory.
type MemoryImport struct {
	Memory MemoryType
}

// GlobalImport names the type of an imported global.
type GlobalImport struct {
	Global GlobalType
}

// ImportBody is the sum of the four import shapes. Exactly one field is
// non-nil, selected by Kind.
type ImportBody struct {
	Kind     ImportKind
	Function *FunctionImport
	Table    *TableImport
	Memory   *MemoryImport
	Global   *GlobalImport
}

// ImportDescriptor is one entry of the Import section: the two-part
// module/name path an embedder resolves the import against, plus its typed
// body.
type ImportDescriptor struct {
	Module string
	Name   string
	Body   ImportBody
}
