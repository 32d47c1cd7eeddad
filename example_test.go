package pngme_test

import (
	"errors"
	"fmt"

	"github.com/simonhull/pngme"
)

func ExampleParse() {
	ihdr, _ := pngme.NewChunk(pngme.ChunkTypeIHDR, make([]byte, 13))
	iend, _ := pngme.NewChunk(pngme.ChunkTypeIEND, nil)
	data := pngme.New(ihdr, iend).Bytes()

	p, err := pngme.Parse(data)
	if err != nil {
		fmt.Println(err)
		return
	}

	msg, _ := pngme.NewChunk(pngme.MustChunkType("ruSt"), []byte("hidden message"))
	p.AppendChunk(msg)

	for _, c := range p.Trailing() {
		text, _ := c.Text()
		fmt.Printf("%s: %s\n", c.Type(), text)
	}
	// Output:
	// ruSt: hidden message
}

func ExampleChunkType() {
	t := pngme.MustChunkType("RuSt")

	fmt.Println("critical:", t.IsCritical())
	fmt.Println("public:", t.IsPublic())
	fmt.Println("reserved bit valid:", t.IsReservedBitValid())
	fmt.Println("safe to copy:", t.IsSafeToCopy())
	fmt.Println("safe to write:", t.IsSafeToWrite())
	// Output:
	// critical: true
	// public: false
	// reserved bit valid: true
	// safe to copy: true
	// safe to write: false
}

func ExampleParseChunkType_invalid() {
	_, err := pngme.ParseChunkType("Ru1t")

	fmt.Println(errors.Is(err, pngme.ErrInvalidChunkType))
	fmt.Println(err)
	// Output:
	// true
	// invalid chunk type "Ru1t": not ASCII alphabetic
}
