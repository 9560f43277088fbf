package wasm

// ElementMode classifies how an ElementSegment initializes a table, derived
// from its flag byte. Active segments copy into a table at instantiation
// time; passive segments sit inert until a table.init instruction draws
// from them; declarative segments exist only to satisfy validation of
// ref.func and are never copied anywhere.
type ElementMode int

const (
	ElementModeActive ElementMode = iota
	ElementModePassive
	ElementModeDeclarative
)

// elementMode derives the Mode of an element segment from its flag byte,
// per the flag table in the element-segment grammar: even flags are
// active, and among odd flags, the bit-1 (value 2) distinguishes passive
// from declarative.
func elementMode(flag byte) ElementMode {
	if flag%2 == 0 {
		return ElementModeActive
	}
	if flag&2 == 0 {
		return ElementModePassive
	}
	return ElementModeDeclarative
}

// ElementSegment is one entry of the Element section. Its shape on the
// wire depends on Flag (0..=7); which of TableIndex, Offset, RefType,
// FuncIndices, and Exprs are meaningful is determined by Flag, not by
// which fields happen to be non-zero. See the element-segment flag-layout
// table for the full grammar.
type ElementSegment struct {
	Flag  byte
	Mode  ElementMode
	RefType RefType

	// TableIndex is meaningful only when Flag has an explicit table index
	// (flags 2 and 6); other active segments target table 0 implicitly.
	TableIndex Index

	// Offset is the const-expr instruction sequence giving the segment's
	// starting table offset; present only for active segments (flags
	// 0, 2, 4, 6).
	Offset []Instruction

	// FuncIndices holds the segment's items when they are encoded as bare
	// function indices (flags 0, 4, 5, 6, 7).
	FuncIndices []Index

	// Exprs holds the segment's items when they are encoded as
	// const-expr instruction sequences (flags 1, 2, 3).
	Exprs [][]Instruction
}

// NewElementSegment builds an ElementSegment and derives Mode from flag.
func NewElementSegment(flag byte) ElementSegment {
	return ElementSegment{Flag: flag, Mode: elementMode(flag)}
}

// UsesFuncIndices reports whether this segment's items are plain function
// indices rather than const-expr sequences.
func (e ElementSegment) UsesFuncIndices() bool {
	switch e.Flag {
	case 0, 4, 5, 6, 7:
		return true
	default:
		return false
	}
}

// HasExplicitTableIndex reports whether Flag carries a table index on the
// wire (as opposed to implying table 0).
func (e ElementSegment) HasExplicitTableIndex() bool {
	return e.Flag == 2 || e.Flag == 6
}

// HasOffset reports whether this segment is active and therefore carries a
// const-expr offset.
func (e ElementSegment) HasOffset() bool {
	return e.Mode == ElementModeActive
}

// HasRefType reports whether Flag carries an explicit reftype/elemkind byte
// on the wire. Flags 0 and 4 omit it; the items are implicitly funcref.
func (e ElementSegment) HasRefType() bool {
	return e.Flag != 0 && e.Flag != 4
}
