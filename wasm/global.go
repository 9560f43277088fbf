package wasm

// GlobalDescriptor is one entry of the Global section: a typed, mutable-or-
// not global variable together with the const-expr instruction sequence
// that computes its initial value. Init always ends with (and includes) an
// OpcodeEnd instruction.
type GlobalDescriptor struct {
	Type GlobalType
	Init []Instruction
}
