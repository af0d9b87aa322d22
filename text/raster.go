package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// segOp is a path command in pixel space.
type segOp uint8

const (
	segMoveTo segOp = iota
	segLineTo
	segQuadTo
	segCubeTo
)

// point is a pixel-space coordinate with y growing downwards.
type point struct{ X, Y float32 }

// segment is one path command. Only the first 1, 2 or 3 args are used
// depending on Op.
type segment struct {
	Op   segOp
	Args [3]point
}

func (s segment) nargs() int {
	switch s.Op {
	case segQuadTo:
		return 2
	case segCubeTo:
		return 3
	default:
		return 1
	}
}

// pathBounds returns the integer pixel rectangle covering every point of
// the path, control points included.
func pathBounds(segs []segment) image.Rectangle {
	if len(segs) == 0 {
		return image.Rectangle{}
	}
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, s := range segs {
		for _, p := range s.Args[:s.nargs()] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}

// fillPath rasterizes segs into a coverage mask covering bounds.
// The mask's origin corresponds to bounds.Min.
func fillPath(z *vector.Rasterizer, segs []segment, bounds image.Rectangle) *image.Alpha {
	w, h := bounds.Dx(), bounds.Dy()
	z.Reset(w, h)
	z.DrawOp = draw.Src

	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	open := false
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case segMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(a[0].X-ox, a[0].Y-oy)
			open = true
		case segLineTo:
			z.LineTo(a[0].X-ox, a[0].Y-oy)
		case segQuadTo:
			z.QuadTo(a[0].X-ox, a[0].Y-oy, a[1].X-ox, a[1].Y-oy)
		case segCubeTo:
			z.CubeTo(a[0].X-ox, a[0].Y-oy, a[1].X-ox, a[1].Y-oy, a[2].X-ox, a[2].Y-oy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// packMono thresholds an 8-bit coverage buffer into MSB-first 1-bit rows.
func packMono(pix []byte, width, height, stride int) (buf []byte, pitch int) {
	pitch = (width + 7) / 8
	buf = make([]byte, pitch*height)
	for y := 0; y < height; y++ {
		src := pix[y*stride : y*stride+width]
		dst := buf[y*pitch : (y+1)*pitch]
		for x, v := range src {
			if v >= 0x80 {
				dst[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return buf, pitch
}

// setBox sets the bearings and size of m to the pixel rectangle r of the
// rendered bitmap, given in y-down coordinates relative to the pen.
func setBox(m *GlyphMetrics, r image.Rectangle) {
	m.HoriBearingX = fixed.I(r.Min.X)
	m.HoriBearingY = fixed.I(-r.Min.Y)
	m.Width = fixed.I(r.Dx())
	m.Height = fixed.I(r.Dy())
}

// newRenderedGlyph wraps a coverage mask, converting it to mono if asked.
// The mask must have its origin at (0, 0).
func newRenderedGlyph(mask *image.Alpha, m GlyphMetrics, mono bool) *RenderedGlyph {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	g := &RenderedGlyph{
		Width:   w,
		Height:  h,
		Metrics: m,
	}
	if g.Empty() {
		return g
	}
	if mono {
		g.Mode = PixelModeMono
		g.Buffer, g.Pitch = packMono(mask.Pix, w, h, mask.Stride)
		return g
	}
	g.Mode = PixelModeGray
	g.Buffer = mask.Pix
	g.Pitch = mask.Stride
	return g
}
