package text

import "golang.org/x/image/math/fixed"

// GlyphIndex is a glyph index within a font. Zero means the font has no
// glyph for the requested code point.
type GlyphIndex uint32

// PixelMode describes the layout of a rendered glyph buffer.
type PixelMode uint8

const (
	// PixelModeGray stores one coverage byte per pixel.
	PixelModeGray PixelMode = iota
	// PixelModeMono stores one bit per pixel, most significant bit first.
	PixelModeMono
)

// String returns the pixel mode name.
func (m PixelMode) String() string {
	switch m {
	case PixelModeGray:
		return "gray"
	case PixelModeMono:
		return "mono"
	default:
		return "unknown"
	}
}

// GlyphMetrics holds glyph metrics in 26.6 fixed point pixels.
// Bearings follow the usual convention: HoriBearingX is the distance from
// the pen to the left edge of the glyph box, HoriBearingY from the baseline
// up to its top edge.
type GlyphMetrics struct {
	HoriAdvance  fixed.Int26_6
	VertAdvance  fixed.Int26_6
	HoriBearingX fixed.Int26_6
	HoriBearingY fixed.Int26_6
	Width        fixed.Int26_6
	Height       fixed.Int26_6
}

// RenderedGlyph is a single rasterized code point.
//
// Buffer holds Height rows of Pitch bytes. For PixelModeGray each pixel is
// one byte; for PixelModeMono each row packs Width bits MSB first.
// A glyph without ink (e.g. a space) has zero Width or Height and no Buffer.
type RenderedGlyph struct {
	Width   int
	Height  int
	Pitch   int
	Mode    PixelMode
	Buffer  []byte
	Metrics GlyphMetrics
}

// Empty reports whether the glyph has no pixels.
func (g *RenderedGlyph) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Engine rasterizes single code points at a fixed pixel height.
//
// Engines are not safe for concurrent use; they reuse internal buffers
// between calls. The returned RenderedGlyph is owned by the caller.
type Engine interface {
	// GlyphIndex returns the glyph index for r, or 0 if the font has none.
	GlyphIndex(r rune) GlyphIndex

	// Render rasterizes r and returns its bitmap and metrics.
	Render(r rune) (*RenderedGlyph, error)

	// SpaceAdvance returns the horizontal advance of the space character.
	SpaceAdvance() (fixed.Int26_6, error)
}
