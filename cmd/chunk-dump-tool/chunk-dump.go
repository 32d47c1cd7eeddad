package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/simonhull/pngme"
	"github.com/simonhull/pngme/internal/digest"
	"github.com/simonhull/pngme/internal/registry"
)

// Debugging aid: walks the raw chunk framing and reports every chunk, including
// ones whose CRC does not verify.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: chunk-dump <file.png>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if len(data) < len(pngme.Signature) || string(data[:len(pngme.Signature)]) != pngme.Signature {
		fmt.Println("Error: not a PNG file")
		os.Exit(1)
	}

	dumpChunks(data, len(pngme.Signature))
}

func dumpChunks(data []byte, offset int) {
	for index := 0; offset < len(data); index++ {
		if offset+8 > len(data) {
			fmt.Printf("#%d truncated chunk header at offset %d\n", index, offset)
			return
		}

		length := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		chunkType := string(data[offset+4 : offset+8])
		end := offset + 12 + length
		if length < 0 || end > len(data) {
			fmt.Printf("#%d %s (length: %d, offset: %d) truncated\n", index, chunkType, length, offset)
			return
		}

		status := "ok"
		c, err := pngme.ParseChunk(data[offset:end])
		var crcErr *pngme.CRCMismatchError
		switch {
		case errors.As(err, &crcErr):
			status = fmt.Sprintf("bad crc (stored 0x%08x, computed 0x%08x)", crcErr.Stored, crcErr.Computed)
		case err != nil:
			status = err.Error()
		}

		fmt.Printf("#%d %s (length: %d, offset: %d) %s\n", index, chunkType, length, offset, status)
		if err == nil {
			t := c.Type()
			name := "custom"
			if d, ok := registry.Lookup(chunkType); ok {
				name = d.Name
			}
			fmt.Printf("    %s; critical=%t public=%t reserved=%t safe-to-copy=%t\n",
				name, t.IsCritical(), t.IsPublic(), t.IsReservedBitValid(), t.IsSafeToCopy())
			fmt.Printf("    crc: 0x%08x cid: %s\n", c.CRC(), digest.PayloadString(data[offset+8:offset+8+length]))
		}

		offset = end
	}
}
