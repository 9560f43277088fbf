package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// DecodeModule parses a complete .wasm byte stream into a wasm.Module: the
// magic+version header followed by zero or more (kind, size, payload)
// section frames. No bytes may trail the last section.
func DecodeModule(data []byte) (*wasm.Module, error) {
	r := cursor.NewReader(data)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	m := &wasm.Module{Header: header}
	for r.Remaining() > 0 {
		kind, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("binary: read section kind at offset %d: %w", r.Offset(), err)
		}
		size, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("binary: read section size at offset %d: %w", r.Offset(), err)
		}
		payload, err := r.ReadBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("binary: read section %s payload: %w", wasm.SectionIDName(kind), err)
		}

		sec, err := decodeSection(kind, payload)
		if err != nil {
			return nil, err
		}
		m.Sections = append(m.Sections, sec)
	}

	return m, nil
}
