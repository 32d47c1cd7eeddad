// Package registry describes the chunk types defined by the PNG
// specification and its registered extensions.
package registry

import (
	"maps"
	"slices"
)

// Descriptor describes a known chunk type.
type Descriptor struct {
	// Type is the four-letter chunk type.
	Type string
	// Name is a short human-readable description.
	Name string
	// Multiple reports whether the chunk may appear more than once.
	Multiple bool
}

var descriptors = make(map[string]Descriptor)

func init() {
	for _, d := range []Descriptor{
		{Type: "IHDR", Name: "image header"},
		{Type: "PLTE", Name: "palette"},
		{Type: "IDAT", Name: "image data", Multiple: true},
		{Type: "IEND", Name: "image trailer"},
		{Type: "tRNS", Name: "transparency"},
		{Type: "cHRM", Name: "primary chromaticities"},
		{Type: "gAMA", Name: "image gamma"},
		{Type: "iCCP", Name: "embedded ICC profile"},
		{Type: "sBIT", Name: "significant bits"},
		{Type: "sRGB", Name: "standard RGB colour space"},
		{Type: "cICP", Name: "coding-independent code points"},
		{Type: "mDCV", Name: "mastering display colour volume"},
		{Type: "cLLI", Name: "content light level"},
		{Type: "tEXt", Name: "textual data", Multiple: true},
		{Type: "zTXt", Name: "compressed textual data", Multiple: true},
		{Type: "iTXt", Name: "international textual data", Multiple: true},
		{Type: "bKGD", Name: "background colour"},
		{Type: "hIST", Name: "image histogram"},
		{Type: "pHYs", Name: "physical pixel dimensions"},
		{Type: "sPLT", Name: "suggested palette", Multiple: true},
		{Type: "eXIf", Name: "exchangeable image file profile"},
		{Type: "tIME", Name: "last-modification time"},
		{Type: "acTL", Name: "animation control"},
		{Type: "fcTL", Name: "frame control", Multiple: true},
		{Type: "fdAT", Name: "frame data", Multiple: true},
	} {
		Register(d)
	}
}

// Register adds or replaces the descriptor for d.Type.
func Register(d Descriptor) {
	descriptors[d.Type] = d
}

// Lookup returns the descriptor for a chunk type.
func Lookup(chunkType string) (Descriptor, bool) {
	d, ok := descriptors[chunkType]
	return d, ok
}

// IsStandard reports whether chunkType is a known standard chunk type.
func IsStandard(chunkType string) bool {
	_, ok := descriptors[chunkType]
	return ok
}

// Types returns every registered chunk type, sorted.
func Types() []string {
	return slices.Sorted(maps.Keys(descriptors))
}
