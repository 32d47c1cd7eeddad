package pngme

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"unicode/utf8"

	"github.com/simonhull/pngme/internal/binary"
	"github.com/simonhull/pngme/internal/types"
)

// chunkOverhead is the length, type and CRC fields around a chunk payload.
const chunkOverhead = 12

// Chunk is a single length-prefixed, typed, checksummed PNG record.
//
// Length and CRC are derived from the type and payload and cannot be set
// independently. A Chunk is immutable; Data returns a copy of the payload.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk creates a chunk holding a copy of data.
//
// It fails only when the payload does not fit the 32-bit length field.
func NewChunk(t ChunkType, data []byte) (Chunk, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return Chunk{}, &types.ChunkTooLargeError{Type: t.String(), Length: len(data)}
	}

	owned := bytes.Clone(data)
	if owned == nil {
		owned = []byte{}
	}

	return Chunk{
		typ:  t,
		data: owned,
		crc:  checksum(t, owned),
	}, nil
}

// ParseChunk parses b as exactly one serialized chunk. Trailing bytes after
// the CRC are reported as an error.
func ParseChunk(b []byte) (Chunk, error) {
	c, n, err := ReadChunk(b)
	if err != nil {
		return Chunk{}, err
	}
	if n != len(b) {
		return Chunk{}, fmt.Errorf("%d trailing bytes after %s chunk", len(b)-n, c.typ)
	}
	return c, nil
}

// ReadChunk parses one chunk from the front of b and returns it together with
// the number of bytes consumed.
func ReadChunk(b []byte) (Chunk, int, error) {
	sr := binary.NewSafeReader(bytes.NewReader(b), int64(len(b)))
	r := binary.NewReader(sr, 0)

	length, err := binary.ReadValue[uint32](r, "chunk length")
	if err != nil {
		return Chunk{}, 0, err
	}

	raw, err := r.ReadBytes(4, "chunk type")
	if err != nil {
		return Chunk{}, 0, err
	}
	t, err := ChunkTypeFromBytes([4]byte(raw))
	if err != nil {
		return Chunk{}, 0, err
	}

	// Payload and CRC must both fit before anything is allocated.
	if int64(length)+4 > r.Remaining() {
		return Chunk{}, 0, &types.UnexpectedEOFError{
			What:   t.String() + " chunk data",
			Offset: r.Offset(),
			Length: int64(length) + 4,
			Size:   sr.Size(),
		}
	}

	data, err := r.ReadBytes(int64(length), "chunk data")
	if err != nil {
		return Chunk{}, 0, err
	}

	stored, err := binary.ReadValue[uint32](r, "chunk crc")
	if err != nil {
		return Chunk{}, 0, err
	}

	computed := checksum(t, data)
	if stored != computed {
		return Chunk{}, 0, &types.CRCMismatchError{
			Type:     t.String(),
			Stored:   stored,
			Computed: computed,
		}
	}

	return Chunk{typ: t, data: data, crc: stored}, int(r.Offset()), nil
}

// Length returns the payload length in bytes.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns the chunk type.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns a copy of the payload.
func (c Chunk) Data() []byte {
	return bytes.Clone(c.data)
}

// CRC returns the CRC-32 computed over the type and payload.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// Text returns the payload interpreted as UTF-8 text.
func (c Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", &types.InvalidUTF8Error{Type: c.typ.String(), Offset: firstInvalidUTF8(c.data)}
	}
	return string(c.data), nil
}

// Size returns the serialized size of the chunk including its framing.
func (c Chunk) Size() int {
	return len(c.data) + chunkOverhead
}

// Bytes returns the serialized chunk: length, type, payload, CRC.
func (c Chunk) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, c.Size()))
	_, _ = c.WriteTo(buf) //nolint:errcheck // bytes.Buffer writes do not fail
	return buf.Bytes()
}

// WriteTo writes the serialized chunk to w.
func (c Chunk) WriteTo(w io.Writer) (int64, error) {
	sw := binary.NewSafeWriter(w)
	if err := binary.Write[uint32](sw, c.Length()); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WriteBytes(c.typ.b[:]); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WriteBytes(c.data); err != nil {
		return sw.Offset(), err
	}
	if err := binary.Write[uint32](sw, c.crc); err != nil {
		return sw.Offset(), err
	}
	return sw.Offset(), nil
}

// Equal reports whether c and other have the same type and payload.
func (c Chunk) Equal(other Chunk) bool {
	return c.typ == other.typ && c.crc == other.crc && bytes.Equal(c.data, other.data)
}

// String returns a short human-readable summary.
func (c Chunk) String() string {
	return fmt.Sprintf("%s (length: %d, crc: 0x%08x)", c.typ, c.Length(), c.crc)
}

func checksum(t ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(t.b[:]) //nolint:errcheck // hash writes do not fail
	_, _ = h.Write(data)   //nolint:errcheck // hash writes do not fail
	return h.Sum32()
}

func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
