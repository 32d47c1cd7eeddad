package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/simonhull/pngme/internal/types"
)

// shortReader returns fewer bytes than requested to simulate truncated input.
type shortReader struct {
	data []byte
}

func (m *shortReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G'}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 1, "test read"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 'P' || buf[1] != 'N' {
		t.Errorf("expected \"PN\", got %q", buf)
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	tests := []struct {
		name   string
		offset int64
		length int
	}{
		{name: "offset past end", offset: 10, length: 2},
		{name: "read crosses end", offset: 3, length: 2},
		{name: "negative offset", offset: -1, length: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.length), tt.offset, "chunk length")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var eofErr *types.UnexpectedEOFError
			if !errors.As(err, &eofErr) {
				t.Fatalf("expected *UnexpectedEOFError, got %T: %v", err, err)
			}
			if eofErr.What != "chunk length" {
				t.Errorf("What = %q, want %q", eofErr.What, "chunk length")
			}
			if !errors.Is(err, types.ErrUnexpectedEOF) {
				t.Error("error should match ErrUnexpectedEOF")
			}
		})
	}
}

func TestSafeReader_ReadAt_Empty(t *testing.T) {
	sr := NewSafeReader(bytes.NewReader(nil), 0)

	if err := sr.ReadAt(nil, 0, "empty payload"); err != nil {
		t.Errorf("zero-length read should succeed, got %v", err)
	}
}

func TestSafeReader_ShortRead(t *testing.T) {
	// Size claims more than the reader holds.
	sr := NewSafeReader(&shortReader{data: []byte{0x01, 0x02}}, 4)

	err := sr.ReadAt(make([]byte, 4), 0, "crc")
	if !errors.Is(err, types.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestRead(t *testing.T) {
	data := make([]byte, 15)
	data[0] = 0x42
	binary.BigEndian.PutUint16(data[1:], 0x1234)
	binary.BigEndian.PutUint32(data[3:], 0x12345678)
	binary.BigEndian.PutUint64(data[7:], 0x123456789ABCDEF0)
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	u8, err := Read[uint8](sr, 0, "uint8")
	if err != nil || u8 != 0x42 {
		t.Errorf("Read[uint8] = 0x%02x, %v; want 0x42", u8, err)
	}

	u16, err := Read[uint16](sr, 1, "uint16")
	if err != nil || u16 != 0x1234 {
		t.Errorf("Read[uint16] = 0x%04x, %v; want 0x1234", u16, err)
	}

	u32, err := Read[uint32](sr, 3, "uint32")
	if err != nil || u32 != 0x12345678 {
		t.Errorf("Read[uint32] = 0x%08x, %v; want 0x12345678", u32, err)
	}

	u64, err := Read[uint64](sr, 7, "uint64")
	if err != nil || u64 != 0x123456789ABCDEF0 {
		t.Errorf("Read[uint64] = 0x%016x, %v; want 0x123456789ABCDEF0", u64, err)
	}
}

func TestReader_Sequential(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x02, 'r', 'u', 'S', 't', 'h', 'i'}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))
	r := NewReader(sr, 0)

	length, err := ReadValue[uint32](r, "chunk length")
	if err != nil {
		t.Fatalf("read length failed: %v", err)
	}
	if length != 2 {
		t.Errorf("expected length 2, got %d", length)
	}

	typ, err := r.ReadBytes(4, "chunk type")
	if err != nil {
		t.Fatalf("read type failed: %v", err)
	}
	if string(typ) != "ruSt" {
		t.Errorf("expected type ruSt, got %q", typ)
	}

	payload, err := r.ReadBytes(int64(length), "chunk data")
	if err != nil {
		t.Fatalf("read payload failed: %v", err)
	}
	if string(payload) != "hi" {
		t.Errorf("expected payload \"hi\", got %q", payload)
	}

	if r.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", r.Offset())
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.Remaining())
	}
}

func TestReader_ReadBytes_PastEnd(t *testing.T) {
	data := []byte("IEND")
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))
	r := NewReader(sr, 2)

	_, err := r.ReadBytes(4, "chunk data")
	if !errors.Is(err, types.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}

	// Failed reads leave the offset alone.
	if r.Offset() != 2 {
		t.Errorf("expected offset 2 after failed read, got %d", r.Offset())
	}
}

func TestReader_Skip(t *testing.T) {
	data := make([]byte, 100)
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))
	r := NewReader(sr, 10)

	r.Skip(20)
	if r.Offset() != 30 {
		t.Errorf("expected offset 30 after skip, got %d", r.Offset())
	}
	if r.Remaining() != 70 {
		t.Errorf("expected 70 remaining, got %d", r.Remaining())
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	data := make([]byte, 1024*1024) // 1MB
	for i := 0; i < len(data); i += 4 {
		binary.BigEndian.PutUint32(data[i:], uint32(i))
	}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := int64((i % (len(data) / 4)) * 4)
		_, _ = Read[uint32](sr, offset, "benchmark")
	}
}

func BenchmarkReader_Sequential(b *testing.B) {
	data := make([]byte, 1024*1024) // 1MB
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := NewReader(sr, 0)
		for j := 0; j < 1000; j++ {
			_, _ = ReadValue[uint32](r, "test")
		}
	}
}
