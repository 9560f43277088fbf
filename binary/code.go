package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// decodeFunctionBody reads one Code section entry: the body's own
// size prefix, its locals, and its instruction stream, which consumes
// exactly the remainder of the size-prefixed frame including the
// terminating end instruction.
func decodeFunctionBody(r *cursor.Reader) (wasm.FunctionBody, error) {
	size, err := decodeU32(r)
	if err != nil {
		return wasm.FunctionBody{}, fmt.Errorf("binary: read function body size: %w", err)
	}
	body, err := r.ReadBytes(int(size))
	if err != nil {
		return wasm.FunctionBody{}, fmt.Errorf("binary: read function body payload: %w", err)
	}

	br := cursor.NewReader(body)
	locals, err := decodeLocals(br)
	if err != nil {
		return wasm.FunctionBody{}, fmt.Errorf("binary: decode function locals: %w", err)
	}
	ins, err := decodeInstructionsToEnd(br)
	if err != nil {
		return wasm.FunctionBody{}, fmt.Errorf("binary: decode function instructions: %w", err)
	}
	return wasm.FunctionBody{Locals: locals, Instructions: ins}, nil
}

func decodeLocals(r *cursor.Reader) ([]wasm.Local, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make([]wasm.Local, n)
	for i := range out {
		count, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: decode local group %d count: %w", i, err)
		}
		vt, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("binary: read local group %d value type: %w", i, err)
		}
		out[i] = wasm.Local{Count: count, ValType: vt}
	}
	return out, nil
}

func encodeFunctionBody(w *cursor.Writer, fb wasm.FunctionBody) {
	body := cursor.NewWriter()
	encodeLocals(body, fb.Locals)
	encodeInstructions(body, fb.Instructions)

	encodeU32(w, uint32(body.Len()))
	w.WriteBytes(body.Bytes())
}

func encodeLocals(w *cursor.Writer, locals []wasm.Local) {
	encodeU32(w, uint32(len(locals)))
	for _, l := range locals {
		encodeU32(w, l.Count)
		w.WriteU8(l.ValType)
	}
}

func sizeFunctionBody(fb wasm.FunctionBody) int {
	payload := sizeLocals(fb.Locals) + sizeInstructions(fb.Instructions)
	return sizeU32(uint32(payload)) + payload
}

func sizeLocals(locals []wasm.Local) int {
	n := sizeU32(uint32(len(locals)))
	for _, l := range locals {
		n += sizeU32(l.Count) + 1
	}
	return n
}
