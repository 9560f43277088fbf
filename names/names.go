// Package names decodes and encodes the "name" custom section: the
// optional module/function/local debug-name subsections a producer (or
// toolchain) may attach to a module for tooling to display. It is not
// part of the core module codec — a CustomSection's Data is always
// opaque bytes to the core decoder/encoder (see wasm.CustomSection) — this
// package is an independent projection callers opt into when they want to
// read or rewrite debug names without that interpretation happening
// unconditionally on every decode.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-namesec
package names

import (
	"fmt"
	"sort"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/leb128"
	"github.com/hazae41/wasm/wasm"
)

// SectionName is the conventional CustomSection.Name a module uses to
// carry a Names value, i.e. the key a caller checks for before calling
// Decode on a wasm.CustomSection's Data.
const SectionName = "name"

const (
	subsectionModuleName   = uint8(0)
	subsectionFunctionName = uint8(1)
	subsectionLocalName    = uint8(2)
)

// Names holds the decoded contents of a name custom section. Any field
// may be empty if the producer omitted that subsection.
type Names struct {
	ModuleName string
	// FunctionNames maps a function index to its debug name.
	FunctionNames map[wasm.Index]string
	// LocalNames maps a function index to a map of local index to debug
	// name, for functions that carry local names.
	LocalNames map[wasm.Index]map[wasm.Index]string
}

// Decode parses the raw Data of a "name" CustomSection. Unrecognized
// subsection IDs are skipped using their declared size, the way an
// unrecognized module section is never encountered here (this package only
// ever sees the inside of one already-isolated custom section).
func Decode(data []byte) (*Names, error) {
	r := cursor.NewReader(data)
	out := &Names{}

	for r.Remaining() > 0 {
		id, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("names: read subsection id: %w", err)
		}
		size, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("names: read subsection %d size: %w", id, err)
		}
		body, err := r.ReadBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("names: read subsection %d body: %w", id, err)
		}
		br := cursor.NewReader(body)

		switch id {
		case subsectionModuleName:
			name, err := decodeName(br)
			if err != nil {
				return nil, fmt.Errorf("names: decode module name: %w", err)
			}
			out.ModuleName = name
		case subsectionFunctionName:
			m, err := decodeNameMap(br)
			if err != nil {
				return nil, fmt.Errorf("names: decode function names: %w", err)
			}
			out.FunctionNames = m
		case subsectionLocalName:
			m, err := decodeLocalNames(br)
			if err != nil {
				return nil, fmt.Errorf("names: decode local names: %w", err)
			}
			out.LocalNames = m
		default:
			// Unknown subsection: already fully consumed via ReadBytes above.
		}
	}

	return out, nil
}

func decodeNameMap(r *cursor.Reader) (map[wasm.Index]string, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make(map[wasm.Index]string, n)
	for i := uint32(0); i < n; i++ {
		idx, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d index: %w", i, err)
		}
		name, err := decodeName(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d name: %w", i, err)
		}
		out[idx] = name
	}
	return out, nil
}

func decodeLocalNames(r *cursor.Reader) (map[wasm.Index]map[wasm.Index]string, error) {
	n, err := decodeU32(r)
	if err != nil {
		return nil, err
	}
	out := make(map[wasm.Index]map[wasm.Index]string, n)
	for i := uint32(0); i < n; i++ {
		funcIdx, err := decodeU32(r)
		if err != nil {
			return nil, fmt.Errorf("function %d index: %w", i, err)
		}
		locals, err := decodeNameMap(r)
		if err != nil {
			return nil, fmt.Errorf("function %d locals: %w", funcIdx, err)
		}
		out[funcIdx] = locals
	}
	return out, nil
}

// Encode serializes n back into a "name" CustomSection's Data. Subsections
// are only emitted when non-empty, matching the source's behavior of
// never writing a subsection a producer wouldn't have populated.
func Encode(n *Names) []byte {
	w := cursor.NewWriter()

	if n.ModuleName != "" {
		writeSubsection(w, subsectionModuleName, func(body *cursor.Writer) {
			encodeName(body, n.ModuleName)
		})
	}
	if len(n.FunctionNames) > 0 {
		writeSubsection(w, subsectionFunctionName, func(body *cursor.Writer) {
			encodeNameMap(body, n.FunctionNames)
		})
	}
	if len(n.LocalNames) > 0 {
		writeSubsection(w, subsectionLocalName, func(body *cursor.Writer) {
			encodeU32(body, uint32(len(n.LocalNames)))
			for _, funcIdx := range sortedKeys(n.LocalNames) {
				encodeU32(body, funcIdx)
				encodeNameMap(body, n.LocalNames[funcIdx])
			}
		})
	}

	return w.Bytes()
}

func writeSubsection(w *cursor.Writer, id uint8, write func(*cursor.Writer)) {
	body := cursor.NewWriter()
	write(body)
	w.WriteU8(id)
	encodeU32(w, uint32(body.Len()))
	w.WriteBytes(body.Bytes())
}

func encodeNameMap(w *cursor.Writer, m map[wasm.Index]string) {
	encodeU32(w, uint32(len(m)))
	for _, idx := range sortedKeys(m) {
		encodeU32(w, idx)
		encodeName(w, m[idx])
	}
}

func sortedKeys[V any](m map[wasm.Index]V) []wasm.Index {
	keys := make([]wasm.Index, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func decodeU32(r *cursor.Reader) (uint32, error) {
	v, _, err := leb128.DecodeUint32(r)
	return v, err
}

func encodeU32(w *cursor.Writer, v uint32) {
	w.WriteBytes(leb128.EncodeUint32(v))
}

func decodeName(r *cursor.Reader) (string, error) {
	n, err := decodeU32(r)
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeName(w *cursor.Writer, s string) {
	encodeU32(w, uint32(len(s)))
	w.WriteBytes([]byte(s))
}
