package atlas

import "github.com/gogpu/fontatlas/bitmap"

// Packer places rectangles on horizontal shelves in a fixed-size area.
//
// Items are placed left-to-right in the order they arrive. When an item
// does not fit in the remaining width the pen wraps to a new shelf below
// the tallest item of the current one. When an item does not fit in the
// remaining height the packer is full and rejects everything after it.
// There is no reordering and no search for gaps on earlier shelves, so the
// same input always yields the same layout.
type Packer struct {
	width   int // Total width of the atlas
	height  int // Total height of the atlas
	padding int // Padding around and between items

	penX       int
	penY       int
	lineHeight int // Tallest item on the current shelf
	full       bool

	// Tracking for utilization
	shelves  int
	usedArea int
}

// NewPacker creates a packer for a width x height area. The pen starts
// padding pixels from the top-left corner.
func NewPacker(width, height, padding int) *Packer {
	p := &Packer{
		width:   width,
		height:  height,
		padding: padding,
	}
	p.Reset()
	return p
}

// Place finds the position of a w x h item.
// Returns x, y and true on success, or -1, -1, false once the area is full.
func (p *Packer) Place(w, h int) (x, y int, ok bool) {
	if p.full {
		return -1, -1, false
	}

	if p.padding+w+p.padding > p.width {
		// Too wide even for an empty shelf; wrapping would never help.
		p.full = true
		return -1, -1, false
	}

	if p.penX+w+p.padding > p.width {
		p.penX = p.padding
		p.penY += p.lineHeight + p.padding
		p.lineHeight = 0
	}

	if p.penY+h+p.padding > p.height {
		p.full = true
		return -1, -1, false
	}

	if p.lineHeight == 0 {
		p.shelves++
	}
	p.lineHeight = max(p.lineHeight, h)

	x, y = p.penX, p.penY
	p.penX += w + p.padding
	p.usedArea += w * h
	return x, y, true
}

// Full reports whether an item has been rejected.
func (p *Packer) Full() bool {
	return p.full
}

// Reset clears all placements, allowing the packer to be reused.
func (p *Packer) Reset() {
	p.penX = p.padding
	p.penY = p.padding
	p.lineHeight = 0
	p.full = false
	p.shelves = 0
	p.usedArea = 0
}

// Utilization returns the fraction of the area covered by items (0.0 to 1.0).
func (p *Packer) Utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}

// UsedArea returns the total area of placed items.
func (p *Packer) UsedArea() int {
	return p.usedArea
}

// ShelfCount returns the number of shelves holding at least one item.
func (p *Packer) ShelfCount() int {
	return p.shelves
}

// Pack copies glyphs into dst in order until one does not fit and returns
// how many were packed. The packed glyphs are always a prefix of glyphs.
//
// Each packed glyph gets its atlas position and texture coordinates, and
// its bitmap is freed. Glyphs after the first one that does not fit are
// left untouched, bitmaps included; running out of space is not an error
// and callers compare the result with len(glyphs).
func Pack(dst *bitmap.Bitmap, glyphs []*Glyph, padding int) int {
	n, _ := PackWith(NewPacker(dst.Width, dst.Height, padding), dst, glyphs)
	return n
}

// PackWith is Pack with a caller-supplied packer, so its statistics can be
// inspected afterwards. It returns the packed count and the first blit
// error, if any; a blit error stops packing like an overflow does.
func PackWith(p *Packer, dst *bitmap.Bitmap, glyphs []*Glyph) (int, error) {
	log := slogger()
	for i, g := range glyphs {
		if g.Bitmap == nil || g.Bitmap.Released() {
			log.Warn("atlas: glyph has no pixels", "rune", g.Rune, "index", i)
			return i, bitmap.ErrReleased
		}

		x, y, ok := p.Place(g.Width(), g.Height())
		if !ok {
			log.Debug("atlas: atlas full",
				"packed", i,
				"remaining", len(glyphs)-i,
				"width", dst.Width,
				"height", dst.Height)
			return i, nil
		}

		if err := dst.Blit(g.Bitmap, x, y); err != nil {
			return i, err
		}
		g.Bitmap.Free()

		g.X, g.Y = x, y
		g.Metrics.ST0, g.Metrics.ST1 = Normalize(x, y, g.Bitmap.Width, g.Bitmap.Height, dst.Width, dst.Height)
		g.Packed = true
	}
	return len(glyphs), nil
}
