package wasm

// Magic and Version are the two little-endian u32 fields every module
// begins with. Version is the only value this codec accepts; there is no
// other defined binary version.
const (
	Magic   uint32 = 0x6D736100
	Version uint32 = 0x00000001
)

// Header is a module's fixed-size preamble.
type Header struct {
	Magic   uint32
	Version uint32
}

// Module is a fully decoded Wasm binary: a header and its ordered section
// sequence. Sections may be inspected, added, removed, or mutated in place;
// binary.EncodeModule recomputes every size prefix from the current contents, so the
// original bytes a Module was decoded from are never consulted again.
type Module struct {
	Header   Header
	Sections []Section
}

// NewModule returns an empty Module with a valid header and no sections.
func NewModule() *Module {
	return &Module{Header: Header{Magic: Magic, Version: Version}}
}

// Custom returns the module's custom sections with the given name, in
// order. A module may carry more than one custom section under the same
// name; this codec does not deduplicate them.
func (m *Module) Custom(name string) []CustomSection {
	var out []CustomSection
	for _, s := range m.Sections {
		if cs, ok := s.(CustomSection); ok && cs.Name == name {
			out = append(out, cs)
		}
	}
	return out
}

// Start returns the module's StartSection and true, or the zero value and
// false if the module has none.
func (m *Module) Start() (StartSection, bool) {
	for _, s := range m.Sections {
		if ss, ok := s.(StartSection); ok {
			return ss, true
		}
	}
	return StartSection{}, false
}
