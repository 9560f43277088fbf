// Package cursor implements the buffered, position-tracking byte reader and
// writer that the rest of this module's decoders and encoders build on. It
// is the "Cursor" primitive described by the format's external interface:
// little-endian fixed-width integer and float reads, byte-slice reads, and
// their write-side counterparts, plus a read position a decoder can report
// in errors.
//
// This generalizes the []byte-plus-running-read-count pattern section
// codecs would otherwise each keep inline, wrapping a *bytes.Reader (and a
// bytes.Buffer on the write side), into
// a standalone type so every section codec shares one implementation
// instead of threading io.Reader and re-deriving offsets.
package cursor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader reads little-endian primitives from an in-memory byte slice,
// tracking how many bytes have been consumed so failures can report an
// offset.
type Reader struct {
	buf    *bytes.Reader
	offset int
}

// NewReader returns a Reader over b. b is not copied; the Reader only
// reads it.
func NewReader(b []byte) *Reader {
	return &Reader{buf: bytes.NewReader(b)}
}

// Offset returns the number of bytes read so far.
func (r *Reader) Offset() int { return r.offset }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return r.buf.Len() }

// ReadByte implements io.ByteReader, letting a Reader be passed directly to
// the leb128 package.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.buf.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("cursor: read byte at offset %d: %w", r.offset, err)
	}
	r.offset++
	return b, nil
}

// Read implements io.Reader, letting a Reader be passed directly to the
// ieee754 package.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.buf.Read(p)
	r.offset += n
	return n, err
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	return r.ReadByte()
}

// ReadBytes reads and returns exactly n bytes. The returned slice is a copy;
// it does not alias the Reader's backing array.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > r.buf.Len() {
		return nil, fmt.Errorf("cursor: read %d bytes at offset %d: %w", n, r.offset, io.ErrUnexpectedEOF)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(r.buf, out); err != nil {
		return nil, fmt.Errorf("cursor: read %d bytes at offset %d: %w", n, r.offset, err)
	}
	r.offset += n
	return out, nil
}

// ReadU32LE reads a 4-byte little-endian unsigned integer.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadF32LE reads a 4-byte little-endian IEEE-754 float.
func (r *Reader) ReadF32LE() (float32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// ReadF64LE reads an 8-byte little-endian IEEE-754 float.
func (r *Reader) ReadF64LE() (float64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// Writer accumulates little-endian primitives into a growable buffer.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytes written so far. The slice aliases the Writer's
// internal buffer and is only valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteByte implements io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// WriteU8 writes a single byte.
func (w *Writer) WriteU8(b uint8) {
	w.buf.WriteByte(b)
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteU32LE writes v as 4 little-endian bytes.
func (w *Writer) WriteU32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteF32LE writes v's bit pattern as 4 little-endian bytes.
func (w *Writer) WriteF32LE(v float32) {
	w.WriteU32LE(math.Float32bits(v))
}

// WriteF64LE writes v's bit pattern as 8 little-endian bytes.
func (w *Writer) WriteF64LE(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.buf.Write(b[:])
}
