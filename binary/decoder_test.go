package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazae41/wasm/wasm"
)

var magic = []byte{0x00, 0x61, 0x73, 0x6D}
var version = []byte{0x01, 0x00, 0x00, 0x00}

// TestDecodeModule relies on unit tests for EncodeModule, specifically
// that the encoding is both known and correct: this avoids having to
// copy/paste or share variables to assert against byte arrays.
func TestDecodeModule(t *testing.T) {
	i32, f32 := wasm.ValueTypeI32, wasm.ValueTypeF32

	tests := []struct {
		name  string
		input *wasm.Module // round trip test!
	}{
		{
			name:  "empty",
			input: wasm.NewModule(),
		},
		{
			name: "only custom section",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.CustomSection{Name: "meme", Data: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}},
				},
			},
		},
		{
			name: "type section",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.TypeSection{Types: []wasm.TypeDescriptor{
						{Prefix: wasm.TypePrefixFunc, Body: wasm.TypeBody{Kind: wasm.TypeKindFunc, Func: &wasm.FuncType{
							Params: []wasm.ValueType{}, Results: []wasm.ValueType{},
						}}},
						{Prefix: wasm.TypePrefixFunc, Body: wasm.TypeBody{Kind: wasm.TypeKindFunc, Func: &wasm.FuncType{
							Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32},
						}}},
					}},
				},
			},
		},
		{
			name: "type and import section",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.TypeSection{Types: []wasm.TypeDescriptor{
						{Prefix: wasm.TypePrefixFunc, Body: wasm.TypeBody{Kind: wasm.TypeKindFunc, Func: &wasm.FuncType{
							Params: []wasm.ValueType{i32, i32}, Results: []wasm.ValueType{i32},
						}}},
						{Prefix: wasm.TypePrefixFunc, Body: wasm.TypeBody{Kind: wasm.TypeKindFunc, Func: &wasm.FuncType{
							Params: []wasm.ValueType{f32, f32}, Results: []wasm.ValueType{f32},
						}}},
					}},
					wasm.ImportSection{Imports: []wasm.ImportDescriptor{
						{Module: "Math", Name: "Mul", Body: wasm.ImportBody{Kind: wasm.ExternKindFunc, Function: &wasm.FunctionImport{TypeIndex: 1}}},
						{Module: "Math", Name: "Add", Body: wasm.ImportBody{Kind: wasm.ExternKindFunc, Function: &wasm.FunctionImport{TypeIndex: 0}}},
					}},
				},
			},
		},
		{
			name: "table, memory, global, export, start",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.TableSection{Tables: []wasm.TableType{
						{RefType: wasm.ValueTypeFuncref, Limits: wasm.Limits{Min: 1}},
					}},
					wasm.MemorySection{Memories: []wasm.MemoryType{
						{Limits: wasm.Limits{Min: 1, Max: u32ptr(2)}},
					}},
					wasm.GlobalSection{Globals: []wasm.GlobalDescriptor{
						{Type: wasm.GlobalType{ValType: i32, Mutable: true}, Init: []wasm.Instruction{
							{Opcode: wasm.OpcodeI32Const, Params: []wasm.Immediate{wasm.ImmediateI32(42)}},
							{Opcode: wasm.OpcodeEnd},
						}},
					}},
					wasm.ExportSection{Exports: []wasm.ExportDescriptor{
						{Name: "mem", Kind: wasm.ExternKindMemory, Index: 0},
					}},
					wasm.StartSection{FuncIndex: 3},
				},
			},
		},
		{
			name: "element and data segments, every flag",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.ElementSection{Segments: []wasm.ElementSegment{
						elemSeg(0, func(s *wasm.ElementSegment) { s.Offset = endExpr(); s.FuncIndices = []wasm.Index{0, 1} }),
						elemSeg(1, func(s *wasm.ElementSegment) { s.RefType = wasm.ValueTypeFuncref; s.Exprs = [][]wasm.Instruction{refFuncExpr(0)} }),
						elemSeg(2, func(s *wasm.ElementSegment) {
							s.TableIndex = 1
							s.Offset = endExpr()
							s.RefType = wasm.ValueTypeFuncref
							s.Exprs = [][]wasm.Instruction{refFuncExpr(1)}
						}),
						elemSeg(3, func(s *wasm.ElementSegment) { s.RefType = wasm.ValueTypeFuncref; s.Exprs = [][]wasm.Instruction{refFuncExpr(2)} }),
						elemSeg(4, func(s *wasm.ElementSegment) { s.Offset = endExpr(); s.FuncIndices = []wasm.Index{2} }),
						elemSeg(5, func(s *wasm.ElementSegment) { s.RefType = wasm.ValueTypeFuncref; s.FuncIndices = []wasm.Index{3} }),
						elemSeg(6, func(s *wasm.ElementSegment) {
							s.TableIndex = 2
							s.Offset = endExpr()
							s.RefType = wasm.ValueTypeFuncref
							s.FuncIndices = []wasm.Index{4}
						}),
						elemSeg(7, func(s *wasm.ElementSegment) { s.RefType = wasm.ValueTypeFuncref; s.FuncIndices = []wasm.Index{5} }),
					}},
					wasm.DataSection{Segments: []wasm.DataSegment{
						{Flag: 0, Offset: endExpr(), Data: []byte{0xAA, 0xBB}},
						{Flag: 1, Data: []byte{0xCC}},
						{Flag: 2, MemoryIndex: 1, Offset: endExpr(), Data: []byte{0xDD, 0xEE, 0xFF}},
					}},
					wasm.DataCountSection{Count: 3},
				},
			},
		},
		{
			name: "code section with locals and a control-flow body",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.CodeSection{Bodies: []wasm.FunctionBody{
						{
							Locals: []wasm.Local{{Count: 2, ValType: i32}},
							Instructions: []wasm.Instruction{
								{Opcode: wasm.OpcodeBlock, Params: []wasm.Immediate{wasm.ImmediateI33(-64)}},
								{Opcode: wasm.OpcodeLocalGet, Params: []wasm.Immediate{wasm.ImmediateU32(0)}},
								{Opcode: wasm.OpcodeBrIf, Params: []wasm.Immediate{wasm.ImmediateU32(0)}},
								{Opcode: wasm.OpcodeEnd},
								{Opcode: wasm.OpcodeEnd},
							},
						},
					}},
				},
			},
		},
		{
			name: "tag section",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.TagSection{Tags: []wasm.TagDescriptor{{Attribute: 0, TypeIndex: 2}}},
				},
			},
		},
		{
			name: "GC struct and array types",
			input: &wasm.Module{
				Header: wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{
					wasm.TypeSection{Types: []wasm.TypeDescriptor{
						{Prefix: wasm.TypePrefixSub1, Subtypes: []wasm.Index{0}, Body: wasm.TypeBody{
							Kind: wasm.TypeKindStruct, Struct: &wasm.StructType{Fields: []wasm.StructField{{ValType: i32, Mutable: true}}},
						}},
						{Prefix: wasm.TypePrefixSub2, Subtypes: []wasm.Index{}, Body: wasm.TypeBody{
							Kind: wasm.TypeKindArray, Array: &wasm.ArrayType{ValType: i32, Mutable: false},
						}},
					}},
				},
			},
		},
		{
			name: "unknown section preserved verbatim",
			input: &wasm.Module{
				Header:   wasm.Header{Magic: wasm.Magic, Version: wasm.Version},
				Sections: []wasm.Section{wasm.UnknownSection{Kind: 0x3F, Payload: []byte{1, 2, 3}}},
			},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := EncodeModule(tc.input)
			require.NoError(t, err)

			m, err := DecodeModule(encoded)
			require.NoError(t, err)
			require.Equal(t, tc.input, m)

			reencoded, err := EncodeModule(m)
			require.NoError(t, err)
			require.Equal(t, encoded, reencoded)
		})
	}
}

func TestDecodeModule_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr string
	}{
		{
			name:        "wrong magic",
			input:       []byte("wasm\x01\x00\x00\x00"),
			expectedErr: "binary: magic 0x6d736177: invalid magic number",
		},
		{
			name:        "wrong version",
			input:       append(append([]byte{}, magic...), 0x02, 0x00, 0x00, 0x00),
			expectedErr: "binary: version 2: unsupported version",
		},
		{
			name:        "truncated after magic",
			input:       magic,
			expectedErr: "binary: read version: cursor: read 4 bytes at offset 4: unexpected EOF",
		},
		{
			name: "section length mismatch",
			input: append(append(append([]byte{}, magic...), version...),
				wasm.SectionIDStart, 0x02, 0x00, 0x00, // claims 2 bytes but function index 0x00 consumes 1
			),
			expectedErr: "binary: section start consumed 1 of 2 bytes: section length mismatch",
		},
		{
			name: "unknown opcode in a function body",
			input: append(append(append([]byte{}, magic...), version...),
				wasm.SectionIDCode, 0x05,
				0x01,       // one function body
				0x03,       // body size
				0x00,       // zero locals
				0xFF, 0x0B, // unknown opcode, then end (never reached)
			),
			expectedErr: "binary: decode function body 0: binary: decode function instructions: binary: opcode 0xff at offset 2: unknown opcode",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeModule(tc.input)
			require.EqualError(t, err, tc.expectedErr)
		})
	}
}

// TestBoundaryScenarios exercises the byte-exact boundary cases: a minimal
// empty module, a mutate-and-reencode start section rewrite, and a custom
// section round trip.
func TestBoundaryScenarios(t *testing.T) {
	t.Run("S1 minimal empty module", func(t *testing.T) {
		input := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
		m, err := DecodeModule(input)
		require.NoError(t, err)
		require.Equal(t, wasm.NewModule(), m)

		out, err := EncodeModule(m)
		require.NoError(t, err)
		require.Equal(t, input, out)
	})

	t.Run("S2 start-section rewrite", func(t *testing.T) {
		input := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, 0x08, 0x01, 0x03}
		m, err := DecodeModule(input)
		require.NoError(t, err)
		require.Equal(t, []wasm.Section{wasm.StartSection{FuncIndex: 3}}, m.Sections)

		m.Sections[0] = wasm.StartSection{FuncIndex: 0}
		out, err := EncodeModule(m)
		require.NoError(t, err)
		require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, 0x08, 0x01, 0x00}, out)

		m2, err := DecodeModule(out)
		require.NoError(t, err)
		require.Equal(t, m, m2)
	})

	t.Run("S3 custom section", func(t *testing.T) {
		input := []byte{
			0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
			0x00, 0x07, 0x04, 'n', 'a', 'm', 'e', 0xAA, 0xBB,
		}
		m, err := DecodeModule(input)
		require.NoError(t, err)
		require.Equal(t, []wasm.Section{wasm.CustomSection{Name: "name", Data: []byte{0xAA, 0xBB}}}, m.Sections)

		out, err := EncodeModule(m)
		require.NoError(t, err)
		require.Equal(t, input, out)
	})

	t.Run("S6 unreachable opcode", func(t *testing.T) {
		input := append(append(append([]byte{}, magic...), version...),
			wasm.SectionIDCode, 0x05,
			0x01,
			0x03,
			0x00,
			0xFE, 0x0B,
		)
		_, err := DecodeModule(input)
		require.ErrorIs(t, err, wasm.ErrUnknownOpcode)
	})
}

func u32ptr(v uint32) *uint32 { return &v }

func endExpr() []wasm.Instruction {
	return []wasm.Instruction{{Opcode: wasm.OpcodeEnd}}
}

func refFuncExpr(idx wasm.Index) []wasm.Instruction {
	return []wasm.Instruction{
		{Opcode: wasm.OpcodeRefFunc, Params: []wasm.Immediate{wasm.ImmediateU32(idx)}},
		{Opcode: wasm.OpcodeEnd},
	}
}

func elemSeg(flag byte, mutate func(*wasm.ElementSegment)) wasm.ElementSegment {
	s := wasm.NewElementSegment(flag)
	mutate(&s)
	return s
}
