package wasm

// Local is one run-length-encoded group of same-typed local variables
// declared at the head of a FunctionBody.
type Local struct {
	Count   uint32
	ValType ValueType
}

// FunctionBody is one entry of the Code section: a function's locals
// followed by its instruction stream. Instructions consume exactly the
// remainder of the body's size-prefixed frame, including the terminating
// end instruction.
type FunctionBody struct {
	Locals       []Local
	Instructions []Instruction
}
