package wasm

import "errors"

// Sentinel errors naming the failure kinds a decoder distinguishes. Decode
// errors for a wrong magic number or version, an unknown opcode, import
// kind, element flag, data flag or type kind, and a section length mismatch
// wrap one of these with fmt.Errorf("...: %w", ...) so callers can match
// with errors.Is while still getting a human-readable offset/value in the
// message. Truncated input and malformed LEB128 values are reported through
// other sentinels; see ErrUnexpectedEnd and ErrLebOverflow.
var (
	// ErrInvalidMagic means the first 4 bytes were not "\0asm".
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrUnsupportedVersion means the version field was not 1.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrUnexpectedEnd names a read that ran past the end of its payload or
	// the input as a whole. The decoder does not return it: such failures
	// wrap io.EOF or io.ErrUnexpectedEOF from the cursor.
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	// ErrLebOverflow names a LEB128 value that either never terminated within
	// the shift guard, or whose decoded magnitude exceeds the declared width.
	// The decoder does not return it: such failures wrap leb128.ErrOverflow.
	ErrLebOverflow = errors.New("leb128 overflow")
	// ErrUnknownOpcode means a primary opcode or 0xFC sub-opcode was not
	// recognized.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrUnknownImportKind means an import body kind was not in {0,1,2,3}.
	ErrUnknownImportKind = errors.New("unknown import kind")
	// ErrUnknownElementFlag means an element segment flag was not in 0..=7.
	ErrUnknownElementFlag = errors.New("unknown element segment flag")
	// ErrUnknownDataFlag means a data segment flag was not in {0,1,2}.
	ErrUnknownDataFlag = errors.New("unknown data segment flag")
	// ErrUnknownTypeKind means a type body kind following a GC prefix was
	// not FuncType, StructType, or ArrayType.
	ErrUnknownTypeKind = errors.New("unknown type kind")
	// ErrSectionLengthMismatch means a section codec consumed a number of
	// bytes different from the size the frame declared.
	ErrSectionLengthMismatch = errors.New("section length mismatch")
)
