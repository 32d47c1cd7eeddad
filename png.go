package pngme

import (
	"bytes"
	"io"
	"iter"
	"slices"

	"github.com/simonhull/pngme/internal/binary"
	"github.com/simonhull/pngme/internal/types"
)

// Signature is the fixed 8-byte magic that begins every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// PNG is an ordered sequence of chunks behind the PNG signature.
//
// The container preserves chunk order exactly as parsed or appended and
// does not enforce the conventional IHDR-first, IEND-last layout.
type PNG struct {
	chunks []Chunk
}

// New creates a PNG from the given chunks, in order.
func New(chunks ...Chunk) *PNG {
	return &PNG{chunks: slices.Clone(chunks)}
}

// Parse parses a complete PNG byte stream.
//
// The signature is verified first, then chunks are read until the data is
// exhausted. A chunk failure is wrapped in *ChunkError carrying the index
// and offset of the failing chunk.
func Parse(b []byte) (*PNG, error) {
	if len(b) < len(Signature) || string(b[:len(Signature)]) != Signature {
		return nil, &types.BadSignatureError{Got: bytes.Clone(b[:min(len(b), len(Signature))])}
	}

	p := &PNG{}
	offset := len(Signature)
	for offset < len(b) {
		c, n, err := ReadChunk(b[offset:])
		if err != nil {
			return nil, &types.ChunkError{
				Index:  len(p.chunks),
				Offset: int64(offset),
				Err:    err,
			}
		}
		p.chunks = append(p.chunks, c)
		offset += n
	}

	return p, nil
}

// Bytes returns the serialized PNG: the signature followed by every chunk.
func (p *PNG) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, p.Size()))
	_, _ = p.WriteTo(buf) //nolint:errcheck // bytes.Buffer writes do not fail
	return buf.Bytes()
}

// WriteTo writes the serialized PNG to w.
func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	sw := binary.NewSafeWriter(w)
	if err := sw.WriteBytes([]byte(Signature)); err != nil {
		return sw.Offset(), err
	}
	for _, c := range p.chunks {
		if _, err := c.WriteTo(sw); err != nil {
			return sw.Offset(), err
		}
	}
	return sw.Offset(), nil
}

// Size returns the serialized size in bytes.
func (p *PNG) Size() int {
	n := len(Signature)
	for _, c := range p.chunks {
		n += c.Size()
	}
	return n
}

// Len returns the number of chunks.
func (p *PNG) Len() int {
	return len(p.chunks)
}

// AppendChunk adds c to the end of the chunk sequence.
//
// No position or duplicate checks are made; a chunk appended after IEND is
// kept there.
func (p *PNG) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// Chunks returns the chunks in order. The returned slice is a copy.
func (p *PNG) Chunks() []Chunk {
	return slices.Clone(p.chunks)
}

// All returns an iterator over index and chunk pairs in order.
func (p *PNG) All() iter.Seq2[int, Chunk] {
	return func(yield func(int, Chunk) bool) {
		for i, c := range p.chunks {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ChunkByType returns the first chunk of type t.
func (p *PNG) ChunkByType(t ChunkType) (Chunk, bool) {
	i := p.index(t)
	if i < 0 {
		return Chunk{}, false
	}
	return p.chunks[i], true
}

// RemoveChunk removes and returns the first chunk of type t. The remaining
// chunks keep their relative order. If no chunk matches, the PNG is left
// unchanged and *ChunkNotFoundError is returned.
func (p *PNG) RemoveChunk(t ChunkType) (Chunk, error) {
	i := p.index(t)
	if i < 0 {
		return Chunk{}, &types.ChunkNotFoundError{Type: t.String()}
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

// Trailing returns the chunks that follow the last IEND chunk. These are the
// places an embedded payload is expected to live.
//
// With no IEND chunk at all every chunk is returned; with IEND last the
// result is empty.
func (p *PNG) Trailing() []Chunk {
	last := -1
	for i, c := range p.chunks {
		if c.typ == ChunkTypeIEND {
			last = i
		}
	}
	return slices.Clone(p.chunks[last+1:])
}

// Equal reports whether p and other hold the same chunks in the same order.
func (p *PNG) Equal(other *PNG) bool {
	return slices.EqualFunc(p.chunks, other.chunks, Chunk.Equal)
}

func (p *PNG) index(t ChunkType) int {
	return slices.IndexFunc(p.chunks, func(c Chunk) bool { return c.typ == t })
}
