package pngme

import (
	"github.com/simonhull/pngme/internal/types"
)

// ChunkType is the four-letter identifier of a PNG chunk.
//
// The case of each letter carries a property bit:
//
//	byte 0  uppercase = critical,   lowercase = ancillary
//	byte 1  uppercase = public,     lowercase = private
//	byte 2  uppercase = reserved bit valid
//	byte 3  lowercase = safe to copy
//
// ChunkType values are comparable with ==. A ChunkType obtained from
// ChunkTypeFromBytes or ParseChunkType is always valid.
type ChunkType struct {
	b [4]byte
}

// Well-known chunk types.
var (
	ChunkTypeIHDR = MustChunkType("IHDR")
	ChunkTypeIDAT = MustChunkType("IDAT")
	ChunkTypeIEND = MustChunkType("IEND")
)

// ChunkTypeFromBytes builds a ChunkType from raw bytes. Every byte must be an
// ASCII letter.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isLetter(c) {
			return ChunkType{}, &types.InvalidChunkTypeError{
				Value:  string(b[:]),
				Reason: "not ASCII alphabetic",
			}
		}
	}
	return ChunkType{b: b}, nil
}

// ParseChunkType builds a ChunkType from its four-character text form.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &types.InvalidChunkTypeError{
			Value:  s,
			Reason: "length must be 4",
		}
	}
	return ChunkTypeFromBytes([4]byte{s[0], s[1], s[2], s[3]})
}

// MustChunkType is like ParseChunkType but panics on invalid input.
// It is intended for package-level variables.
func MustChunkType(s string) ChunkType {
	t, err := ParseChunkType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Bytes returns the raw type bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.b
}

// String returns the four-character text form.
func (t ChunkType) String() string {
	return string(t.b[:])
}

// IsCritical reports whether decoders must understand the chunk to render the image.
func (t ChunkType) IsCritical() bool {
	return isUpper(t.b[0])
}

// IsPublic reports whether the type is part of the public PNG registry.
func (t ChunkType) IsPublic() bool {
	return isUpper(t.b[1])
}

// IsReservedBitValid reports whether the reserved bit is set as required.
func (t ChunkType) IsReservedBitValid() bool {
	return isUpper(t.b[2])
}

// IsSafeToCopy reports whether editors may copy the chunk into a modified image
// without understanding it.
func (t ChunkType) IsSafeToCopy() bool {
	return isLower(t.b[3])
}

// IsSafeToWrite reports whether a payload may be embedded under this type.
// Only ancillary chunk types qualify: repurposing a critical type produces
// files that standard readers reject.
func (t ChunkType) IsSafeToWrite() bool {
	return !t.IsCritical()
}

// IsZero reports whether t is the zero value, which no constructor returns on success.
func (t ChunkType) IsZero() bool {
	return t == ChunkType{}
}

// MarshalText implements encoding.TextMarshaler.
func (t ChunkType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ChunkType) UnmarshalText(text []byte) error {
	parsed, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
