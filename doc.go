// Package pngme hides text messages in PNG files.
//
// A PNG file is an 8-byte signature followed by a sequence of chunks. Each
// chunk has a four-letter type, a payload, and a CRC-32 over the type and
// payload. pngme parses that container, appends or removes ancillary chunks,
// and writes the file back byte for byte. Pixel data is never decoded.
//
// # Quick Start
//
// Embedding a message:
//
//	file, err := pngme.Open("cat.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := file.Embed("ruSt", "hidden message"); err != nil {
//		log.Fatal(err)
//	}
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// Reading it back:
//
//	msg, err := file.Message("ruSt")
//
// # Chunk Types
//
// The case of each letter in a chunk type is a property flag (see
// [ChunkType]). Messages may only be embedded under ancillary types, whose
// first letter is lowercase; Embed refuses critical types such as IHDR.
//
// # Working With Bytes
//
// [Parse], [NewChunk] and [PNG.Bytes] operate on in-memory data only and never
// touch the filesystem:
//
//	p, err := pngme.Parse(data)
//	c, err := pngme.NewChunk(pngme.MustChunkType("ruSt"), []byte("hi"))
//	p.AppendChunk(c)
//	out := p.Bytes()
//
// # Error Handling
//
// Every failure is a typed error that also matches a sentinel with errors.Is:
//
//	if errors.Is(err, pngme.ErrCRCMismatch) {
//		// chunk data was corrupted or tampered with
//	}
//
// Container parse failures are wrapped in [ChunkError], which records the
// index and offset of the chunk that failed. Operations either succeed or
// leave their receiver unchanged.
package pngme
