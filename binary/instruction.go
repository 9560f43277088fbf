package binary

import (
	"fmt"

	"github.com/hazae41/wasm/ieee754"
	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/leb128"
	"github.com/hazae41/wasm/wasm"
)

// decodeInstruction reads one opcode byte and its immediates, dispatching
// on the opcode the way the instruction table describes. This is a switch
// rather than a literal array of function pointers because several
// opcodes need count-driven loops (br_table, select-typed, try_table) that
// a flat table of immediate-kind lists can't express directly; the switch
// arms are grouped by shape to keep the table readable.
func decodeInstruction(r *cursor.Reader) (wasm.Instruction, error) {
	op, err := r.ReadU8()
	if err != nil {
		return wasm.Instruction{}, fmt.Errorf("binary: read opcode at offset %d: %w", r.Offset(), err)
	}
	return decodeInstructionBody(r, op)
}

func decodeInstructionBody(r *cursor.Reader, op byte) (wasm.Instruction, error) {
	ins := wasm.Instruction{Opcode: op}

	switch {
	case op == wasm.OpcodeUnreachable, op == wasm.OpcodeNop:
		// none

	case op == wasm.OpcodeBlock, op == wasm.OpcodeLoop, op == wasm.OpcodeIf:
		blockType, err := decodeI33(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateI33(blockType)}

	case op == wasm.OpcodeElse:
		// none; accepted even outside an if block, structured control flow
		// is not enforced here.

	case op == wasm.OpcodeThrow:
		tagIdx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(tagIdx)}

	case op == 0x0A:
		// reserved, no immediates

	case op == wasm.OpcodeEnd, op == wasm.OpcodeReturn:
		// none

	case op == wasm.OpcodeBr, op == wasm.OpcodeBrIf:
		label, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(label)}

	case op == wasm.OpcodeBrTable:
		params, err := decodeBrTable(r)
		if err != nil {
			return ins, err
		}
		ins.Params = params

	case op == wasm.OpcodeCall, op == wasm.OpcodeReturnCall:
		idx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(idx)}

	case op == wasm.OpcodeCallIndirect, op == wasm.OpcodeReturnCallIndirect:
		typeIdx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		tableIdx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(typeIdx), wasm.ImmediateU32(tableIdx)}

	case op == 0x14, op == 0x15:
		v, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(v)}

	case op == wasm.OpcodeDrop, op == wasm.OpcodeSelect:
		// none

	case op == wasm.OpcodeSelectTyped:
		params, err := decodeSelectTyped(r)
		if err != nil {
			return ins, err
		}
		ins.Params = params

	case op == wasm.OpcodeTryTable:
		params, err := decodeTryTable(r)
		if err != nil {
			return ins, err
		}
		ins.Params = params

	case op >= wasm.OpcodeLocalGet && op <= wasm.OpcodeGlobalSet:
		idx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(idx)}

	case op >= 0x28 && op <= 0x3E:
		align, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		offset, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(align), wasm.ImmediateU32(offset)}

	case op == wasm.OpcodeMemorySize, op == wasm.OpcodeMemoryGrow:
		idx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(idx)}

	case op == wasm.OpcodeI32Const:
		v, _, err := leb128.DecodeInt32(r)
		if err != nil {
			return ins, fmt.Errorf("binary: decode i32.const at offset %d: %w", r.Offset(), err)
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateI32(v)}

	case op == wasm.OpcodeI64Const:
		v, _, err := leb128.DecodeInt64(r)
		if err != nil {
			return ins, fmt.Errorf("binary: decode i64.const at offset %d: %w", r.Offset(), err)
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateI64(v)}

	case op == wasm.OpcodeF32Const:
		v, err := ieee754.DecodeFloat32(r)
		if err != nil {
			return ins, fmt.Errorf("binary: decode f32.const at offset %d: %w", r.Offset(), err)
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateF32(v)}

	case op == wasm.OpcodeF64Const:
		v, err := ieee754.DecodeFloat64(r)
		if err != nil {
			return ins, fmt.Errorf("binary: decode f64.const at offset %d: %w", r.Offset(), err)
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateF64(v)}

	case op >= 0x45 && op <= 0xC4:
		// none: numeric comparison/arithmetic/sign-extension ops

	case op == wasm.OpcodeRefNull:
		v, err := decodeI33(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateI33(v)}

	case op == wasm.OpcodeRefIsNull:
		// none

	case op == wasm.OpcodeRefFunc:
		idx, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(idx)}

	case op == 0xD3, op == 0xD4:
		// none

	case op == 0xD5, op == 0xD6:
		v, err := decodeU32(r)
		if err != nil {
			return ins, err
		}
		ins.Params = []wasm.Immediate{wasm.ImmediateU32(v)}

	case op == wasm.OpcodeMiscPrefix:
		params, err := decodeMiscPrefixed(r)
		if err != nil {
			return ins, err
		}
		ins.Params = params

	default:
		return ins, fmt.Errorf("binary: opcode %#x at offset %d: %w", op, r.Offset(), wasm.ErrUnknownOpcode)
	}

	return ins, nil
}

func decodeI33(r *cursor.Reader) (int64, error) {
	v, _, err := leb128.DecodeI33(r)
	if err != nil {
		return 0, fmt.Errorf("binary: decode blocktype at offset %d: %w", r.Offset(), err)
	}
	return v, nil
}

func decodeBrTable(r *cursor.Reader) ([]wasm.Immediate, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	params := make([]wasm.Immediate, 0, n+2)
	params = append(params, wasm.ImmediateU32(n))
	for i := uint32(0); i < n; i++ {
		label, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode br_table label %d: %w", i, err)
		}
		params = append(params, wasm.ImmediateU32(label))
	}
	fallback, err := decodeU32(r)
	if err != nil {
		return nil, fmt.Errorf("binary: decode br_table fallback: %w", err)
	}
	params = append(params, wasm.ImmediateU32(fallback))
	return params, nil
}

func decodeSelectTyped(r *cursor.Reader) ([]wasm.Immediate, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	params := make([]wasm.Immediate, 0, n+1)
	params = append(params, wasm.ImmediateU32(n))
	for i := uint32(0); i < n; i++ {
		vt, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode select type %d: %w", i, err)
		}
		params = append(params, wasm.ImmediateU32(vt))
	}
	return params, nil
}

// decodeTryTable reads a try_table's blocktype, catch-clause count, and
// each clause's (kind, optional tag index, label index) trio.
func decodeTryTable(r *cursor.Reader) ([]wasm.Immediate, error) {
	blockType, err := decodeI33(r)
	if err != nil {
		return nil, err
	}
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	params := make([]wasm.Immediate, 0, 2+3*n)
	params = append(params, wasm.ImmediateI33(blockType), wasm.ImmediateU32(n))
	for i := uint32(0); i < n; i++ {
		kind, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("binary: decode try_table clause %d kind: %w", i, err)
		}
		params = append(params, wasm.ImmediateU8(kind))
		if kind < 2 {
			tagIdx, err := decodeU32(r)
			if err != nil {
				return nil, fmt.Errorf("binary: decode try_table clause %d tag index: %w", i, err)
			}
			params = append(params, wasm.ImmediateU32(tagIdx))
		}
		label, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode try_table clause %d label: %w", i, err)
		}
		params = append(params, wasm.ImmediateU32(label))
	}
	return params, nil
}

// miscSubopcodeShape gives the U32-immediate count for each 0xFC
// sub-opcode, per the instruction table's misc-prefix row.
func miscSubopcodeShape(sub uint32) (int, bool) {
	switch {
	case sub <= 0x07:
		return 0, true
	case sub == 0x08:
		return 2, true
	case sub == 0x09:
		return 1, true
	case sub == 0x0A:
		return 2, true
	case sub == 0x0B:
		return 1, true
	case sub == 0x0C:
		return 2, true
	case sub == 0x0D:
		return 1, true
	case sub == 0x0E:
		return 2, true
	case sub == 0x0F:
		return 1, true
	case sub == 0x10:
		return 1, true
	case sub == 0x11:
		return 1, true
	}
	return 0, false
}

func decodeMiscPrefixed(r *cursor.Reader) ([]wasm.Immediate, error) {
	sub, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	count, ok := miscSubopcodeShape(sub)
	if !ok {
		return nil, fmt.Errorf("binary: misc subopcode %#x at offset %d: %w", sub, r.Offset(), wasm.ErrUnknownOpcode)
	}
	params := make([]wasm.Immediate, 0, count+1)
	params = append(params, wasm.ImmediateU32(sub))
	for i := 0; i < count; i++ {
		v, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode misc subopcode %#x operand %d: %w", sub, i, err)
		}
		params = append(params, wasm.ImmediateU32(v))
	}
	return params, nil
}

// decodeConstExpr reads instructions until and including one with opcode
// wasm.OpcodeEnd, the shape shared by global initializers and element/data
// segment offsets.
func decodeConstExpr(r *cursor.Reader) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	for {
		ins, err := decodeInstruction(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
		if ins.IsEnd() {
			return out, nil
		}
	}
}

// decodeInstructionsToEnd reads instructions until the reader is exhausted,
// the shape a FunctionBody's instruction stream uses: it occupies exactly
// the remainder of its size-prefixed frame.
func decodeInstructionsToEnd(r *cursor.Reader) ([]wasm.Instruction, error) {
	var out []wasm.Instruction
	for r.Remaining() > 0 {
		ins, err := decodeInstruction(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, nil
}

func encodeInstruction(w *cursor.Writer, ins wasm.Instruction) {
	w.WriteU8(ins.Opcode)
	for _, p := range ins.Params {
		encodeImmediate(w, p)
	}
}

func encodeInstructions(w *cursor.Writer, ins []wasm.Instruction) {
	for _, i := range ins {
		encodeInstruction(w, i)
	}
}

func sizeInstruction(ins wasm.Instruction) int {
	n := 1
	for _, p := range ins.Params {
		n += sizeImmediate(p)
	}
	return n
}

func sizeInstructions(ins []wasm.Instruction) int {
	n := 0
	for _, i := range ins {
		n += sizeInstruction(i)
	}
	return n
}

func encodeImmediate(w *cursor.Writer, imm wasm.Immediate) {
	switch imm.Kind {
	case wasm.ImmU8:
		w.WriteU8(imm.U8)
	case wasm.ImmU32:
		w.WriteBytes(leb128.EncodeUint32(imm.U32))
	case wasm.ImmI32:
		w.WriteBytes(leb128.EncodeInt32(imm.I32))
	case wasm.ImmI33:
		w.WriteBytes(leb128.EncodeI33(imm.I33))
	case wasm.ImmU64:
		w.WriteBytes(leb128.EncodeUint64(imm.U64))
	case wasm.ImmI64:
		w.WriteBytes(leb128.EncodeInt64(imm.I64))
	case wasm.ImmF32:
		w.WriteF32LE(imm.F32)
	case wasm.ImmF64:
		w.WriteF64LE(imm.F64)
	}
}

func sizeImmediate(imm wasm.Immediate) int {
	switch imm.Kind {
	case wasm.ImmU8:
		return 1
	case wasm.ImmU32:
		return leb128.SizeUint32(imm.U32)
	case wasm.ImmI32:
		return leb128.SizeInt32(imm.I32)
	case wasm.ImmI33:
		return leb128.SizeI33(imm.I33)
	case wasm.ImmU64:
		return leb128.SizeUint64(imm.U64)
	case wasm.ImmI64:
		return leb128.SizeInt64(imm.I64)
	case wasm.ImmF32:
		return 4
	case wasm.ImmF64:
		return 8
	}
	return 0
}
