// Package atlas collects rasterized glyphs and packs them into a single
// fixed-size grayscale atlas.
//
// The pipeline is strictly sequential: Collect asks a text.Engine for each
// requested code point and builds an ordered []*Glyph; Pack places those
// glyphs left-to-right on shelves, copies their pixels into the atlas,
// releases the per-glyph bitmaps and records normalized texture
// coordinates on each glyph.
package atlas

import (
	"unicode/utf8"

	"github.com/gogpu/fontatlas/bitmap"
)

// Metrics holds a glyph's placement metrics in pixels and, once packed,
// its texture rectangle in the unit square.
type Metrics struct {
	// Bearing is the offset from the pen to the glyph origin (x right, y up).
	Bearing [2]float32

	// Advance is the pen movement after drawing (horizontal, vertical).
	Advance [2]float32

	// Size is the glyph bounding box width and height.
	Size [2]float32

	// ST0 and ST1 are the top-left and bottom-right texture coordinates.
	// Valid only after packing.
	ST0 [2]float64
	ST1 [2]float64
}

// Glyph is one rasterized code point.
type Glyph struct {
	Rune    rune
	Bitmap  *bitmap.Bitmap
	Metrics Metrics

	// Packed is set once the glyph has been copied into an atlas.
	Packed bool

	// X and Y are the glyph's pixel position in the atlas once packed.
	X, Y int
}

// Width returns the glyph bitmap width in pixels.
func (g *Glyph) Width() int {
	if g.Bitmap == nil {
		return 0
	}
	return g.Bitmap.Width
}

// Height returns the glyph bitmap height in pixels.
func (g *Glyph) Height() int {
	if g.Bitmap == nil {
		return 0
	}
	return g.Bitmap.Height
}

// UTF8 returns the UTF-8 encoding of the glyph's code point.
func (g *Glyph) UTF8() []byte {
	return utf8.AppendRune(nil, g.Rune)
}

// Release frees the glyph bitmap if it is still held.
func (g *Glyph) Release() {
	if g.Bitmap != nil {
		g.Bitmap.Free()
	}
}

// Release frees every glyph bitmap still held by glyphs. Glyphs left
// unpacked after an atlas overflow keep their pixels until this is called.
func Release(glyphs []*Glyph) {
	for _, g := range glyphs {
		g.Release()
	}
}
