package binary

import (
	"fmt"

	"github.com/hazae41/wasm/internal/cursor"
	"github.com/hazae41/wasm/wasm"
)

// decodeSection decodes the payload of one section frame, already isolated
// to exactly `size` bytes by the caller, into a typed wasm.Section. kind
// selects which grammar applies; an unrecognized kind falls back to
// wasm.UnknownSection, preserving the payload verbatim.
func decodeSection(kind wasm.SectionID, payload []byte) (wasm.Section, error) {
	r := cursor.NewReader(payload)

	var (
		sec wasm.Section
		err error
	)

	switch kind {
	case wasm.SectionIDCustom:
		sec, err = decodeCustomSection(r)
	case wasm.SectionIDType:
		sec, err = decodeTypeSection(r)
	case wasm.SectionIDImport:
		sec, err = decodeImportSection(r)
	case wasm.SectionIDFunction:
		sec, err = decodeFunctionSection(r)
	case wasm.SectionIDTable:
		sec, err = decodeTableSection(r)
	case wasm.SectionIDMemory:
		sec, err = decodeMemorySection(r)
	case wasm.SectionIDGlobal:
		sec, err = decodeGlobalSection(r)
	case wasm.SectionIDExport:
		sec, err = decodeExportSection(r)
	case wasm.SectionIDStart:
		sec, err = decodeStartSection(r)
	case wasm.SectionIDElement:
		sec, err = decodeElementSection(r)
	case wasm.SectionIDCode:
		sec, err = decodeCodeSection(r)
	case wasm.SectionIDData:
		sec, err = decodeDataSection(r)
	case wasm.SectionIDDataCount:
		sec, err = decodeDataCountSection(r)
	case wasm.SectionIDTag:
		sec, err = decodeTagSection(r)
	default:
		return wasm.UnknownSection{Kind: kind, Payload: payload}, nil
	}
	if err != nil {
		return nil, err
	}

	// Custom sections are defined to consume the remainder of their slice
	// (the data tail), so they're exempt from the exact-consumption check
	// the module framer otherwise enforces.
	if kind != wasm.SectionIDCustom && r.Remaining() != 0 {
		return nil, fmt.Errorf("binary: section %s consumed %d of %d bytes: %w",
			wasm.SectionIDName(kind), len(payload)-r.Remaining(), len(payload), wasm.ErrSectionLengthMismatch)
	}

	return sec, nil
}

func decodeCustomSection(r *cursor.Reader) (wasm.CustomSection, error) {
	name, err := decodeName(r)
	if err != nil {
		return wasm.CustomSection{}, fmt.Errorf("binary: decode custom section name: %w", err)
	}
	data, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return wasm.CustomSection{}, fmt.Errorf("binary: read custom section data: %w", err)
	}
	return wasm.CustomSection{Name: name, Data: data}, nil
}

func decodeTypeSection(r *cursor.Reader) (wasm.TypeSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.TypeSection{}, err
	}
	types := make([]wasm.TypeDescriptor, n)
	for i := range types {
		td, err := decodeTypeDescriptor(r)
		if err != nil {
			return wasm.TypeSection{}, fmt.Errorf("binary: decode type %d: %w", i, err)
		}
		types[i] = td
	}
	return wasm.TypeSection{Types: types}, nil
}

func decodeImportSection(r *cursor.Reader) (wasm.ImportSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.ImportSection{}, err
	}
	imports := make([]wasm.ImportDescriptor, n)
	for i := range imports {
		id, err := decodeImportDescriptor(r)
		if err != nil {
			return wasm.ImportSection{}, fmt.Errorf("binary: decode import %d: %w", i, err)
		}
		imports[i] = id
	}
	return wasm.ImportSection{Imports: imports}, nil
}

func decodeFunctionSection(r *cursor.Reader) (wasm.FunctionSection, error) {
	idx, err := decodeIndices(r)
	if err != nil {
		return wasm.FunctionSection{}, fmt.Errorf("binary: decode function type indices: %w", err)
	}
	return wasm.FunctionSection{TypeIndices: idx}, nil
}

func decodeTableSection(r *cursor.Reader) (wasm.TableSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.TableSection{}, err
	}
	tables := make([]wasm.TableType, n)
	for i := range tables {
		tt, err := decodeTableType(r)
		if err != nil {
			return wasm.TableSection{}, fmt.Errorf("binary: decode table %d: %w", i, err)
		}
		tables[i] = tt
	}
	return wasm.TableSection{Tables: tables}, nil
}

func decodeMemorySection(r *cursor.Reader) (wasm.MemorySection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.MemorySection{}, err
	}
	mems := make([]wasm.MemoryType, n)
	for i := range mems {
		mt, err := decodeMemoryType(r)
		if err != nil {
			return wasm.MemorySection{}, fmt.Errorf("binary: decode memory %d: %w", i, err)
		}
		mems[i] = mt
	}
	return wasm.MemorySection{Memories: mems}, nil
}

func decodeGlobalSection(r *cursor.Reader) (wasm.GlobalSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.GlobalSection{}, err
	}
	globals := make([]wasm.GlobalDescriptor, n)
	for i := range globals {
		gd, err := decodeGlobalDescriptor(r)
		if err != nil {
			return wasm.GlobalSection{}, fmt.Errorf("binary: decode global %d: %w", i, err)
		}
		globals[i] = gd
	}
	return wasm.GlobalSection{Globals: globals}, nil
}

func decodeExportSection(r *cursor.Reader) (wasm.ExportSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.ExportSection{}, err
	}
	exports := make([]wasm.ExportDescriptor, n)
	for i := range exports {
		ed, err := decodeExportDescriptor(r)
		if err != nil {
			return wasm.ExportSection{}, fmt.Errorf("binary: decode export %d: %w", i, err)
		}
		exports[i] = ed
	}
	return wasm.ExportSection{Exports: exports}, nil
}

func decodeStartSection(r *cursor.Reader) (wasm.StartSection, error) {
	idx, err := decodeU32(r)
	if err != nil {
		return wasm.StartSection{}, fmt.Errorf("binary: decode start function index: %w", err)
	}
	return wasm.StartSection{FuncIndex: idx}, nil
}

func decodeElementSection(r *cursor.Reader) (wasm.ElementSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.ElementSection{}, err
	}
	segs := make([]wasm.ElementSegment, n)
	for i := range segs {
		seg, err := decodeElementSegment(r)
		if err != nil {
			return wasm.ElementSection{}, fmt.Errorf("binary: decode element segment %d: %w", i, err)
		}
		segs[i] = seg
	}
	return wasm.ElementSection{Segments: segs}, nil
}

func decodeCodeSection(r *cursor.Reader) (wasm.CodeSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.CodeSection{}, err
	}
	bodies := make([]wasm.FunctionBody, n)
	for i := range bodies {
		fb, err := decodeFunctionBody(r)
		if err != nil {
			return wasm.CodeSection{}, fmt.Errorf("binary: decode function body %d: %w", i, err)
		}
		bodies[i] = fb
	}
	return wasm.CodeSection{Bodies: bodies}, nil
}

func decodeDataSection(r *cursor.Reader) (wasm.DataSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.DataSection{}, err
	}
	segs := make([]wasm.DataSegment, n)
	for i := range segs {
		seg, err := decodeDataSegment(r)
		if err != nil {
			return wasm.DataSection{}, fmt.Errorf("binary: decode data segment %d: %w", i, err)
		}
		segs[i] = seg
	}
	return wasm.DataSection{Segments: segs}, nil
}

func decodeDataCountSection(r *cursor.Reader) (wasm.DataCountSection, error) {
	count, err := decodeU32(r)
	if err != nil {
		return wasm.DataCountSection{}, fmt.Errorf("binary: decode data count: %w", err)
	}
	return wasm.DataCountSection{Count: count}, nil
}

func decodeTagSection(r *cursor.Reader) (wasm.TagSection, error) {
	n, err := decodeU32(r)
	if err != nil {
		return wasm.TagSection{}, err
	}
	tags := make([]wasm.TagDescriptor, n)
	for i := range tags {
		td, err := decodeTagDescriptor(r)
		if err != nil {
			return wasm.TagSection{}, fmt.Errorf("binary: decode tag %d: %w", i, err)
		}
		tags[i] = td
	}
	return wasm.TagSection{Tags: tags}, nil
}

// encodeSectionPayload writes just the section's payload bytes (not its
// kind or size prefix, which the module framer owns) to w.
func encodeSectionPayload(w *cursor.Writer, s wasm.Section) error {
	switch sec := s.(type) {
	case wasm.CustomSection:
		encodeName(w, sec.Name)
		w.WriteBytes(sec.Data)
	case wasm.TypeSection:
		encodeU32(w, uint32(len(sec.Types)))
		for _, t := range sec.Types {
			encodeTypeDescriptor(w, t)
		}
	case wasm.ImportSection:
		encodeU32(w, uint32(len(sec.Imports)))
		for _, i := range sec.Imports {
			encodeImportDescriptor(w, i)
		}
	case wasm.FunctionSection:
		encodeIndices(w, sec.TypeIndices)
	case wasm.TableSection:
		encodeU32(w, uint32(len(sec.Tables)))
		for _, t := range sec.Tables {
			encodeTableType(w, t)
		}
	case wasm.MemorySection:
		encodeU32(w, uint32(len(sec.Memories)))
		for _, m := range sec.Memories {
			encodeMemoryType(w, m)
		}
	case wasm.GlobalSection:
		encodeU32(w, uint32(len(sec.Globals)))
		for _, g := range sec.Globals {
			encodeGlobalDescriptor(w, g)
		}
	case wasm.ExportSection:
		encodeU32(w, uint32(len(sec.Exports)))
		for _, e := range sec.Exports {
			encodeExportDescriptor(w, e)
		}
	case wasm.StartSection:
		encodeU32(w, sec.FuncIndex)
	case wasm.ElementSection:
		encodeU32(w, uint32(len(sec.Segments)))
		for _, seg := range sec.Segments {
			encodeElementSegment(w, seg)
		}
	case wasm.CodeSection:
		encodeU32(w, uint32(len(sec.Bodies)))
		for _, b := range sec.Bodies {
			encodeFunctionBody(w, b)
		}
	case wasm.DataSection:
		encodeU32(w, uint32(len(sec.Segments)))
		for _, seg := range sec.Segments {
			encodeDataSegment(w, seg)
		}
	case wasm.DataCountSection:
		encodeU32(w, sec.Count)
	case wasm.TagSection:
		encodeU32(w, uint32(len(sec.Tags)))
		for _, t := range sec.Tags {
			encodeTagDescriptor(w, t)
		}
	case wasm.UnknownSection:
		w.WriteBytes(sec.Payload)
	default:
		return fmt.Errorf("binary: encode: unrecognized section type %T", s)
	}
	return nil
}

// sizeSectionPayload computes the payload size sizeof(encodeSectionPayload)
// would write, without allocating a writer.
func sizeSectionPayload(s wasm.Section) (int, error) {
	switch sec := s.(type) {
	case wasm.CustomSection:
		return sizeName(sec.Name) + len(sec.Data), nil
	case wasm.TypeSection:
		n := sizeU32(uint32(len(sec.Types)))
		for _, t := range sec.Types {
			n += sizeTypeDescriptor(t)
		}
		return n, nil
	case wasm.ImportSection:
		n := sizeU32(uint32(len(sec.Imports)))
		for _, i := range sec.Imports {
			n += sizeImportDescriptor(i)
		}
		return n, nil
	case wasm.FunctionSection:
		return sizeIndices(sec.TypeIndices), nil
	case wasm.TableSection:
		n := sizeU32(uint32(len(sec.Tables)))
		for _, t := range sec.Tables {
			n += sizeTableType(t)
		}
		return n, nil
	case wasm.MemorySection:
		n := sizeU32(uint32(len(sec.Memories)))
		for _, m := range sec.Memories {
			n += sizeMemoryType(m)
		}
		return n, nil
	case wasm.GlobalSection:
		n := sizeU32(uint32(len(sec.Globals)))
		for _, g := range sec.Globals {
			n += sizeGlobalDescriptor(g)
		}
		return n, nil
	case wasm.ExportSection:
		n := sizeU32(uint32(len(sec.Exports)))
		for _, e := range sec.Exports {
			n += sizeExportDescriptor(e)
		}
		return n, nil
	case wasm.StartSection:
		return sizeU32(sec.FuncIndex), nil
	case wasm.ElementSection:
		n := sizeU32(uint32(len(sec.Segments)))
		for _, seg := range sec.Segments {
			n += sizeElementSegment(seg)
		}
		return n, nil
	case wasm.CodeSection:
		n := sizeU32(uint32(len(sec.Bodies)))
		for _, b := range sec.Bodies {
			n += sizeFunctionBody(b)
		}
		return n, nil
	case wasm.DataSection:
		n := sizeU32(uint32(len(sec.Segments)))
		for _, seg := range sec.Segments {
			n += sizeDataSegment(seg)
		}
		return n, nil
	case wasm.DataCountSection:
		return sizeU32(sec.Count), nil
	case wasm.TagSection:
		n := sizeU32(uint32(len(sec.Tags)))
		for _, t := range sec.Tags {
			n += sizeTagDescriptor(t)
		}
		return n, nil
	case wasm.UnknownSection:
		return len(sec.Payload), nil
	}
	return 0, fmt.Errorf("binary: size: unrecognized section type %T", s)
}
