package wasm

import "testing"

func TestValueTypeName(t *testing.T) {
	cases := map[ValueType]string{
		ValueTypeI32:       "i32",
		ValueTypeF64:       "f64",
		ValueTypeFuncref:   "funcref",
		ValueTypeExternref: "externref",
		0x00:               "unknown",
	}
	for in, want := range cases {
		if got := ValueTypeName(in); got != want {
			t.Errorf("ValueTypeName(%#x) = %q, want %q", in, got, want)
		}
	}
}

func TestExternKindName(t *testing.T) {
	cases := map[ExternKind]string{
		ExternKindFunc:   "func",
		ExternKindGlobal: "global",
		0xFF:             "unknown",
	}
	for in, want := range cases {
		if got := ExternKindName(in); got != want {
			t.Errorf("ExternKindName(%#x) = %q, want %q", in, got, want)
		}
	}
}

func TestInstructionName(t *testing.T) {
	if got := InstructionName(OpcodeCallIndirect); got != "call_indirect" {
		t.Errorf("InstructionName(call_indirect) = %q", got)
	}
	if got := InstructionName(0xFE); got != "unknown" {
		t.Errorf("InstructionName(0xFE) = %q, want unknown", got)
	}
}

func TestElementSegmentModes(t *testing.T) {
	cases := map[byte]ElementMode{
		0: ElementModeActive,
		1: ElementModePassive,
		2: ElementModeActive,
		3: ElementModeDeclarative,
		4: ElementModeActive,
		5: ElementModePassive,
		6: ElementModeActive,
		7: ElementModeDeclarative,
	}
	for flag, want := range cases {
		e := NewElementSegment(flag)
		if e.Mode != want {
			t.Errorf("flag %d: mode = %v, want %v", flag, e.Mode, want)
		}
	}

	if !NewElementSegment(2).HasExplicitTableIndex() {
		t.Error("flag 2 should carry an explicit table index")
	}
	if NewElementSegment(0).HasExplicitTableIndex() {
		t.Error("flag 0 should not carry an explicit table index")
	}
	if NewElementSegment(0).HasRefType() {
		t.Error("flag 0 should not carry a reftype byte")
	}
	if !NewElementSegment(1).HasRefType() {
		t.Error("flag 1 should carry a reftype byte")
	}
	if !NewElementSegment(0).UsesFuncIndices() {
		t.Error("flag 0 items should be func indices")
	}
	if NewElementSegment(1).UsesFuncIndices() {
		t.Error("flag 1 items should be const-exprs, not func indices")
	}
}

func TestDataSegmentIsActive(t *testing.T) {
	if !(DataSegment{Flag: 0}).IsActive() {
		t.Error("flag 0 should be active")
	}
	if (DataSegment{Flag: 1}).IsActive() {
		t.Error("flag 1 should be passive")
	}
	if !(DataSegment{Flag: 2}).IsActive() {
		t.Error("flag 2 should be active")
	}
}

func TestModuleCustomAndStart(t *testing.T) {
	m := NewModule()
	m.Sections = []Section{
		CustomSection{Name: "name", Data: []byte{0xAA}},
		StartSection{FuncIndex: 3},
		CustomSection{Name: "name", Data: []byte{0xBB}},
	}

	custom := m.Custom("name")
	if len(custom) != 2 {
		t.Fatalf("Custom(name) returned %d sections, want 2", len(custom))
	}
	if custom[0].Data[0] != 0xAA || custom[1].Data[0] != 0xBB {
		t.Error("Custom(name) returned sections out of order")
	}

	start, ok := m.Start()
	if !ok || start.FuncIndex != 3 {
		t.Errorf("Start() = %+v, %v, want FuncIndex=3, true", start, ok)
	}

	if _, ok := m.Start(); !ok {
		t.Error("Start() should still report ok on a second call")
	}
	other := NewModule()
	if _, ok := other.Start(); ok {
		t.Error("empty module should report no start section")
	}
}
