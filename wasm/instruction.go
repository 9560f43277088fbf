package wasm

// Opcode is the binary encoding of an instruction's primary byte. See also
// InstructionName.
type Opcode = byte

// Control instructions and the handful of others whose immediate shape
// matters to the codec. Opcodes in the large numeric/comparison range
// (0x45-0xC4) carry no immediates and are not named individually: the
// instruction decoder (decodeInstructionBody in binary/instruction.go)
// dispatches on them as a contiguous range, the way the format itself
// groups them.
const (
	OpcodeUnreachable Opcode = 0x00
	OpcodeNop         Opcode = 0x01
	OpcodeBlock       Opcode = 0x02
	OpcodeLoop        Opcode = 0x03
	OpcodeIf          Opcode = 0x04
	OpcodeElse        Opcode = 0x05

	OpcodeThrow Opcode = 0x08

	OpcodeEnd     Opcode = 0x0B
	OpcodeBr      Opcode = 0x0C
	OpcodeBrIf    Opcode = 0x0D
	OpcodeBrTable Opcode = 0x0E
	OpcodeReturn  Opcode = 0x0F

	OpcodeCall               Opcode = 0x10
	OpcodeCallIndirect       Opcode = 0x11
	OpcodeReturnCall         Opcode = 0x12
	OpcodeReturnCallIndirect Opcode = 0x13

	OpcodeDrop        Opcode = 0x1A
	OpcodeSelect      Opcode = 0x1B
	OpcodeSelectTyped Opcode = 0x1C

	OpcodeTryTable Opcode = 0x1F

	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24

	OpcodeMemorySize Opcode = 0x3F
	OpcodeMemoryGrow Opcode = 0x40

	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44

	OpcodeRefNull   Opcode = 0xD0
	OpcodeRefIsNull Opcode = 0xD1
	OpcodeRefFunc   Opcode = 0xD2

	OpcodeMiscPrefix Opcode = 0xFC
)

// InstructionName returns a best-effort mnemonic for op, for diagnostics
// only; it is never consulted by the codec itself.
func InstructionName(op Opcode) string {
	switch op {
	case OpcodeUnreachable:
		return "unreachable"
	case OpcodeNop:
		return "nop"
	case OpcodeBlock:
		return "block"
	case OpcodeLoop:
		return "loop"
	case OpcodeIf:
		return "if"
	case OpcodeElse:
		return "else"
	case OpcodeThrow:
		return "throw"
	case OpcodeEnd:
		return "end"
	case OpcodeBr:
		return "br"
	case OpcodeBrIf:
		return "br_if"
	case OpcodeBrTable:
		return "br_table"
	case OpcodeReturn:
		return "return"
	case OpcodeCall:
		return "call"
	case OpcodeCallIndirect:
		return "call_indirect"
	case OpcodeReturnCall:
		return "return_call"
	case OpcodeReturnCallIndirect:
		return "return_call_indirect"
	case OpcodeDrop:
		return "drop"
	case OpcodeSelect:
		return "select"
	case OpcodeSelectTyped:
		return "select (typed)"
	case OpcodeTryTable:
		return "try_table"
	case OpcodeLocalGet:
		return "local.get"
	case OpcodeLocalSet:
		return "local.set"
	case OpcodeLocalTee:
		return "local.tee"
	case OpcodeGlobalGet:
		return "global.get"
	case OpcodeGlobalSet:
		return "global.set"
	case OpcodeMemorySize:
		return "memory.size"
	case OpcodeMemoryGrow:
		return "memory.grow"
	case OpcodeI32Const:
		return "i32.const"
	case OpcodeI64Const:
		return "i64.const"
	case OpcodeF32Const:
		return "f32.const"
	case OpcodeF64Const:
		return "f64.const"
	case OpcodeRefNull:
		return "ref.null"
	case OpcodeRefIsNull:
		return "ref.is_null"
	case OpcodeRefFunc:
		return "ref.func"
	case OpcodeMiscPrefix:
		return "misc-prefixed"
	}
	return "unknown"
}

// ImmediateKind identifies the wire shape of one Instruction immediate.
type ImmediateKind byte

const (
	ImmU8 ImmediateKind = iota
	ImmU32
	ImmI32
	ImmI33
	ImmU64
	ImmI64
	ImmF32
	ImmF64
)

// Immediate is a single typed operand of an Instruction. Only the field
// matching Kind is meaningful; this is the flat tagged-union form the
// source representation uses (a common serialize interface over a small set
// of wire types), chosen over a typed enum-per-opcode so that every opcode,
// whatever its shape, decodes into the same Params list (see
// decodeInstructionBody in binary/instruction.go).
type Immediate struct {
	Kind ImmediateKind
	U8   uint8
	U32  uint32
	I32  int32
	I33  int64 // holds a signed value in [-2^32, 2^32-1]
	U64  uint64
	I64  int64
	F32  float32
	F64  float64
}

func ImmediateU8(v uint8) Immediate    { return Immediate{Kind: ImmU8, U8: v} }
func ImmediateU32(v uint32) Immediate  { return Immediate{Kind: ImmU32, U32: v} }
func ImmediateI32(v int32) Immediate   { return Immediate{Kind: ImmI32, I32: v} }
func ImmediateI33(v int64) Immediate   { return Immediate{Kind: ImmI33, I33: v} }
func ImmediateU64(v uint64) Immediate  { return Immediate{Kind: ImmU64, U64: v} }
func ImmediateI64(v int64) Immediate   { return Immediate{Kind: ImmI64, I64: v} }
func ImmediateF32(v float32) Immediate { return Immediate{Kind: ImmF32, F32: v} }
func ImmediateF64(v float64) Immediate { return Immediate{Kind: ImmF64, F64: v} }

// Instruction is one decoded opcode and its ordered immediates.
type Instruction struct {
	Opcode Opcode
	Params []Immediate
}

// IsEnd reports whether i terminates a const-expr or function body, i.e.
// whether its opcode is OpcodeEnd.
func (i Instruction) IsEnd() bool {
	return i.Opcode == OpcodeEnd
}
