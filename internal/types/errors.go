// Package types provides the error taxonomy shared by the PNG chunk codec,
// the file layer, and the command layer.
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrInvalidChunkType = errors.New("invalid chunk type")
	ErrUnexpectedEOF    = errors.New("unexpected end of data")
	ErrCRCMismatch      = errors.New("crc mismatch")
	ErrBadSignature     = errors.New("bad png signature")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrInvalidUTF8      = errors.New("invalid utf-8")
	ErrUnsafeChunkType  = errors.New("unsafe chunk type")
	ErrChunkTooLarge    = errors.New("chunk too large")
	ErrFileTooLarge     = errors.New("file too large")
)

// InvalidChunkTypeError is returned when a chunk type is not four ASCII letters.
type InvalidChunkTypeError struct {
	Value  string
	Reason string
}

func (e *InvalidChunkTypeError) Error() string {
	return fmt.Sprintf("invalid chunk type %q: %s", e.Value, e.Reason)
}

func (e *InvalidChunkTypeError) Is(target error) bool { return target == ErrInvalidChunkType }

// UnexpectedEOFError is returned when a read would run past the end of the data.
type UnexpectedEOFError struct {
	What   string
	Offset int64
	Length int64
	Size   int64
}

func (e *UnexpectedEOFError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("unexpected end of data: offset %d out of bounds (size: %d) while reading %s",
			e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("unexpected end of data: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Length, e.Offset, e.Size, e.What)
}

func (e *UnexpectedEOFError) Is(target error) bool { return target == ErrUnexpectedEOF }

// CRCMismatchError is returned when a chunk's stored checksum does not match
// the checksum computed over its type and payload.
type CRCMismatchError struct {
	Type     string
	Stored   uint32
	Computed uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("crc mismatch in %s chunk: stored 0x%08x, computed 0x%08x",
		e.Type, e.Stored, e.Computed)
}

func (e *CRCMismatchError) Is(target error) bool { return target == ErrCRCMismatch }

// BadSignatureError is returned when data does not begin with the PNG magic bytes.
type BadSignatureError struct {
	Path string
	Got  []byte
}

func (e *BadSignatureError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: not a png file: signature % x", e.Path, e.Got)
	}
	return fmt.Sprintf("not a png file: signature % x", e.Got)
}

func (e *BadSignatureError) Is(target error) bool { return target == ErrBadSignature }

// ChunkNotFoundError is returned when no chunk of the requested type exists.
type ChunkNotFoundError struct {
	Type string
}

func (e *ChunkNotFoundError) Error() string {
	return fmt.Sprintf("no %s chunk found", e.Type)
}

func (e *ChunkNotFoundError) Is(target error) bool { return target == ErrChunkNotFound }

// InvalidUTF8Error is returned when a chunk payload is read as text but is
// not valid UTF-8.
type InvalidUTF8Error struct {
	Type   string
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%s chunk payload is not valid utf-8 (first bad byte at %d)", e.Type, e.Offset)
}

func (e *InvalidUTF8Error) Is(target error) bool { return target == ErrInvalidUTF8 }

// UnsafeChunkTypeError is returned when a payload is about to be written to a
// critical chunk type.
type UnsafeChunkTypeError struct {
	Type string
}

func (e *UnsafeChunkTypeError) Error() string {
	return fmt.Sprintf("refusing to write to critical chunk type %s", e.Type)
}

func (e *UnsafeChunkTypeError) Is(target error) bool { return target == ErrUnsafeChunkType }

// ChunkTooLargeError is returned when a payload length does not fit the
// 32-bit length field.
type ChunkTooLargeError struct {
	Type   string
	Length int
}

func (e *ChunkTooLargeError) Error() string {
	return fmt.Sprintf("%s chunk payload of %d bytes exceeds the 32-bit length field", e.Type, e.Length)
}

func (e *ChunkTooLargeError) Is(target error) bool { return target == ErrChunkTooLarge }

// FileTooLargeError is returned when a file exceeds the configured size limit.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d exceeds limit %d", e.Path, e.Size, e.Limit)
}

func (e *FileTooLargeError) Is(target error) bool { return target == ErrFileTooLarge }

// ChunkError reports which chunk of a container failed to parse.
type ChunkError struct {
	Err    error
	Index  int
	Offset int64
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error { return e.Err }
