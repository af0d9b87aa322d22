package metrics

import (
	"math"

	"github.com/gogpu/fontatlas/atlas"
)

// Binary layout sizes in bytes.
const (
	HeaderSize      = 16
	LUTEntrySize    = 4
	GlyphRecordSize = 32
)

// Header is the fixed-size binary file header.
type Header struct {
	GlyphCount   uint32
	SpaceAdvance float32
	LUTOffset    uint32
	GlyphOffset  uint32
}

// NewHeader returns the header for n glyphs with the LUT directly after
// the header and the glyph records directly after the LUT.
func NewHeader(n int, spaceAdvance float32) Header {
	return Header{
		GlyphCount:   uint32(n),
		SpaceAdvance: spaceAdvance,
		LUTOffset:    HeaderSize,
		GlyphOffset:  HeaderSize + LUTEntrySize*uint32(n),
	}
}

// Size returns the total encoded size described by h.
func (h Header) Size() int64 {
	return int64(h.GlyphOffset) + GlyphRecordSize*int64(h.GlyphCount)
}

// glyphRecord mirrors one 32-byte binary glyph record.
type glyphRecord struct {
	Bearing [2]float32
	Advance [2]float32
	Size    [2]float32
	ST0     [2]uint16
	ST1     [2]uint16
}

// Quantize maps a texture coordinate in [0,1] to 16 bits by truncation.
// Values outside the unit interval are clamped.
func Quantize(v float64) uint16 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return math.MaxUint16
	}
	return uint16(v * math.MaxUint16)
}

// Dequantize is the inverse of Quantize, up to 1/65535.
func Dequantize(q uint16) float64 {
	return float64(q) / math.MaxUint16
}

// Entry is one glyph in a metrics file.
type Entry struct {
	Rune    rune
	Metrics atlas.Metrics
}

// File is the decoded content of a metrics file.
type File struct {
	SpaceAdvance float32
	Entries      []Entry
}

// FromGlyphs builds a File from packed glyphs in order. Glyphs that were
// not packed have no texture coordinates and are left out.
func FromGlyphs(glyphs []*atlas.Glyph, spaceAdvance float32) *File {
	f := &File{SpaceAdvance: spaceAdvance}
	for _, g := range glyphs {
		if !g.Packed {
			continue
		}
		f.Entries = append(f.Entries, Entry{Rune: g.Rune, Metrics: g.Metrics})
	}
	return f
}

// Len returns the number of entries.
func (f *File) Len() int {
	return len(f.Entries)
}

// Lookup returns the entry for r.
func (f *File) Lookup(r rune) (Entry, bool) {
	for _, e := range f.Entries {
		if e.Rune == r {
			return e, true
		}
	}
	return Entry{}, false
}
