package registry

import (
	"slices"
	"testing"
)

func TestLookup_Standard(t *testing.T) {
	tests := []struct {
		chunkType string
		name      string
		multiple  bool
	}{
		{chunkType: "IHDR", name: "image header"},
		{chunkType: "IDAT", name: "image data", multiple: true},
		{chunkType: "IEND", name: "image trailer"},
		{chunkType: "tEXt", name: "textual data", multiple: true},
	}

	for _, tt := range tests {
		t.Run(tt.chunkType, func(t *testing.T) {
			d, ok := Lookup(tt.chunkType)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.chunkType)
			}
			if d.Name != tt.name {
				t.Errorf("Name = %q, want %q", d.Name, tt.name)
			}
			if d.Multiple != tt.multiple {
				t.Errorf("Multiple = %v, want %v", d.Multiple, tt.multiple)
			}
		})
	}
}

func TestLookup_Custom(t *testing.T) {
	if _, ok := Lookup("ruSt"); ok {
		t.Error("ruSt should not be a standard chunk type")
	}
	if IsStandard("ruSt") {
		t.Error("IsStandard(ruSt) = true, want false")
	}
	// Lookup is case sensitive: the case bits are part of the type.
	if IsStandard("ihdr") {
		t.Error("IsStandard(ihdr) = true, want false")
	}
}

func TestRegister(t *testing.T) {
	Register(Descriptor{Type: "zzTs", Name: "test chunk"})
	defer delete(descriptors, "zzTs")

	d, ok := Lookup("zzTs")
	if !ok {
		t.Fatal("registered descriptor not found")
	}
	if d.Name != "test chunk" {
		t.Errorf("Name = %q, want %q", d.Name, "test chunk")
	}
}

func TestTypes_Sorted(t *testing.T) {
	got := Types()
	if !slices.IsSorted(got) {
		t.Errorf("Types() not sorted: %v", got)
	}
	if !slices.Contains(got, "IEND") {
		t.Error("Types() missing IEND")
	}
}
