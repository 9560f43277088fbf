package wasm

// ExportDescriptor is one entry of the Export section: a name visible to
// the host, and the index-space entry it refers to.
type ExportDescriptor struct {
	Name  string
	Kind  ExternKind
	Index Index
}
