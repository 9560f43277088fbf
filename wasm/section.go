package wasm

// SectionID is the single byte that identifies a section's kind on the
// wire, immediately preceding its size.
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0x00
	SectionIDType      SectionID = 0x01
	SectionIDImport    SectionID = 0x02
	SectionIDFunction  SectionID = 0x03
	SectionIDTable     SectionID = 0x04
	SectionIDMemory    SectionID = 0x05
	SectionIDGlobal    SectionID = 0x06
	SectionIDExport    SectionID = 0x07
	SectionIDStart     SectionID = 0x08
	SectionIDElement   SectionID = 0x09
	SectionIDCode      SectionID = 0x0A
	SectionIDData      SectionID = 0x0B
	SectionIDDataCount SectionID = 0x0C
	SectionIDTag       SectionID = 0x0D
)

// SectionIDName returns the canonical name of id, or "unknown".
func SectionIDName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "data count"
	case SectionIDTag:
		return "tag"
	}
	return "unknown"
}

// Section is implemented by every section value a Module's Sections may
// hold. SectionID reports the wire kind byte; for UnknownSection it is whatever byte
// the producer used, even if it collides with no recognized kind.
type Section interface {
	SectionID() SectionID
}

// CustomSection holds a name and an opaque, uninterpreted data payload.
type CustomSection struct {
	Name string
	Data []byte
}

func (CustomSection) SectionID() SectionID { return SectionIDCustom }

// TypeSection lists the module's composite type definitions.
type TypeSection struct {
	Types []TypeDescriptor
}

func (TypeSection) SectionID() SectionID { return SectionIDType }

// ImportSection lists everything the module expects its host to provide.
type ImportSection struct {
	Imports []ImportDescriptor
}

func (ImportSection) SectionID() SectionID { return SectionIDImport }

// FunctionSection lists the type index of each function defined (not
// imported) by the module, in the same order as CodeSection.Bodies.
type FunctionSection struct {
	TypeIndices []Index
}

func (FunctionSection) SectionID() SectionID { return SectionIDFunction }

// TableSection lists the module's locally defined tables.
type TableSection struct {
	Tables []TableType
}

func (TableSection) SectionID() SectionID { return SectionIDTable }

// MemorySection lists the module's locally defined memories.
type MemorySection struct {
	Memories []MemoryType
}

func (MemorySection) SectionID() SectionID { return SectionIDMemory }

// GlobalSection lists the module's locally defined globals.
type GlobalSection struct {
	Globals []GlobalDescriptor
}

func (GlobalSection) SectionID() SectionID { return SectionIDGlobal }

// ExportSection lists everything the module makes visible to its host.
type ExportSection struct {
	Exports []ExportDescriptor
}

func (ExportSection) SectionID() SectionID { return SectionIDExport }

// StartSection names the function to invoke automatically on
// instantiation, if any.
type StartSection struct {
	FuncIndex Index
}

func (StartSection) SectionID() SectionID { return SectionIDStart }

// ElementSection lists the module's table initializer segments.
type ElementSection struct {
	Segments []ElementSegment
}

func (ElementSection) SectionID() SectionID { return SectionIDElement }

// CodeSection lists the body of each locally defined function, in the same
// order as FunctionSection.TypeIndices.
type CodeSection struct {
	Bodies []FunctionBody
}

func (CodeSection) SectionID() SectionID { return SectionIDCode }

// DataSection lists the module's memory initializer segments.
type DataSection struct {
	Segments []DataSegment
}

func (DataSection) SectionID() SectionID { return SectionIDData }

// DataCountSection declares, ahead of the Code section, how many data
// segments the module has. It lets a single-pass engine validate
// memory.init and data.drop without a lookahead.
type DataCountSection struct {
	Count uint32
}

func (DataCountSection) SectionID() SectionID { return SectionIDDataCount }

// TagSection lists the module's locally defined exception tags.
type TagSection struct {
	Tags []TagDescriptor
}

func (TagSection) SectionID() SectionID { return SectionIDTag }

// UnknownSection preserves the kind and raw payload of a section whose
// kind byte this module doesn't recognize, so a round trip re-emits it
// unchanged.
type UnknownSection struct {
	Kind    SectionID
	Payload []byte
}

func (u UnknownSection) SectionID() SectionID { return u.Kind }
