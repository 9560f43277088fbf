package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// EncodeModule serializes m back to a complete .wasm byte stream. Every
// section's size prefix is recomputed from its current contents; nothing
// is read back from the bytes m may have originally been decoded from.
func EncodeModule(m *wasm.Module) ([]byte, error) {
	w := cursor.NewWriter()
	encodeHeader(w, m.Header)

	for i, sec := range m.Sections {
		size, err := sizeSectionPayload(sec)
		if err != nil {
			return nil, fmt.Errorf("binary: size section %d: %w", i, err)
		}

		w.WriteU8(sec.SectionID())
		encodeU32(w, uint32(size))

		before := w.Len()
		if err := encodeSectionPayload(w, sec); err != nil {
			return nil, fmt.Errorf("binary: encode section %d: %w", i, err)
		}
		if written := w.Len() - before; written != size {
			return nil, fmt.Errorf("binary: section %d: size() reported %d but write produced %d bytes", i, size, written)
		}
	}

	return w.Bytes(), nil
}
