// Package binary provides bounds-checked big-endian reading primitives for
// PNG chunk data.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/simonhull/pngme/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking. Reads that would cross
// the end of the data fail with *types.UnexpectedEOFError.
type SafeReader struct {
	r    io.ReaderAt
	size int64
}

// NewSafeReader creates a new SafeReader over size bytes of r.
func NewSafeReader(r io.ReaderAt, size int64) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
	}
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt fills b from the given offset. what names the field for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if len(b) == 0 {
		return nil
	}

	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.UnexpectedEOFError{
			What:   what,
			Offset: off,
			Length: int64(len(b)),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read %s at offset %d: %w", what, off, err)
	}

	if n < len(b) {
		return &types.UnexpectedEOFError{
			What:   what,
			Offset: off + int64(n),
			Length: int64(len(b) - n),
			Size:   sr.size,
		}
	}

	return nil
}

// Read reads a big-endian value of type T from the given offset.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 1
	}
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a big-endian value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes reads n bytes into a freshly allocated slice and advances the offset.
// The offset is left unchanged on failure.
func (r *Reader) ReadBytes(n int64, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, &types.UnexpectedEOFError{
			What:   what,
			Offset: r.offset,
			Length: n,
			Size:   r.size,
		}
	}

	buf := make([]byte, n)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}

	r.offset += n
	return buf, nil
}

// Remaining returns the number of bytes left after the current offset.
func (r *Reader) Remaining() int64 {
	if r.offset >= r.size {
		return 0
	}
	return r.size - r.offset
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}
