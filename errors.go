package pngme

import (
	"github.com/simonhull/pngme/internal/types"
)

// Sentinel errors for use with errors.Is. Each typed error below matches
// exactly one of them.
var (
	ErrInvalidChunkType = types.ErrInvalidChunkType
	ErrUnexpectedEOF    = types.ErrUnexpectedEOF
	ErrCRCMismatch      = types.ErrCRCMismatch
	ErrBadSignature     = types.ErrBadSignature
	ErrChunkNotFound    = types.ErrChunkNotFound
	ErrInvalidUTF8      = types.ErrInvalidUTF8
	ErrUnsafeChunkType  = types.ErrUnsafeChunkType
	ErrChunkTooLarge    = types.ErrChunkTooLarge
	ErrFileTooLarge     = types.ErrFileTooLarge
)

// InvalidChunkTypeError is returned when a chunk type is not four ASCII letters.
type InvalidChunkTypeError = types.InvalidChunkTypeError

// UnexpectedEOFError is returned when a declared length runs past the end of the data.
type UnexpectedEOFError = types.UnexpectedEOFError

// CRCMismatchError is returned when a chunk fails checksum verification.
type CRCMismatchError = types.CRCMismatchError

// BadSignatureError is returned when data does not start with the PNG signature.
type BadSignatureError = types.BadSignatureError

// ChunkNotFoundError is returned when a chunk type is absent.
type ChunkNotFoundError = types.ChunkNotFoundError

// InvalidUTF8Error is returned when a payload is read as text but is not UTF-8.
type InvalidUTF8Error = types.InvalidUTF8Error

// UnsafeChunkTypeError is returned when embedding under a critical chunk type.
type UnsafeChunkTypeError = types.UnsafeChunkTypeError

// ChunkTooLargeError is returned when a payload does not fit the length field.
type ChunkTooLargeError = types.ChunkTooLargeError

// FileTooLargeError is returned when a file exceeds the Open size limit.
type FileTooLargeError = types.FileTooLargeError

// ChunkError identifies the chunk that failed while parsing a PNG.
type ChunkError = types.ChunkError
