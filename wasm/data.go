package wasm

// DataSegment is one entry of the Data section. Its shape on the wire
// depends on Flag (0, 1, or 2): flag 0 is active against memory 0, flag 1
// is passive, flag 2 is active with an explicit memory index.
type DataSegment struct {
	Flag byte

	// MemoryIndex is meaningful only when Flag == 2; an active segment
	// with Flag == 0 implicitly targets memory 0.
	MemoryIndex Index

	// Offset is the const-expr instruction sequence giving the segment's
	// starting memory offset; present for active segments (flags 0, 2).
	Offset []Instruction

	Data []byte
}

// IsActive reports whether this segment is copied into memory at
// instantiation time, as opposed to sitting inert for memory.init.
func (d DataSegment) IsActive() bool {
	return d.Flag == 0 || d.Flag == 2
}
