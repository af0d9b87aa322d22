package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// goTextEngine reads cmap, metrics and outlines through go-text/typesetting
// and fills the outlines with the x/image/vector rasterizer.
type goTextEngine struct {
	face  *font.Face
	scale float32 // pixels per font unit
	mono  bool
	rast  vector.Rasterizer
	segs  []segment

	vertAdvance fixed.Int26_6
}

func newGoTextEngine(src *FontSource, pixelHeight int, mono bool) (Engine, error) {
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	upem := face.Upem()
	if upem == 0 {
		return nil, fmt.Errorf("text: set pixel size %d: font has zero units per em", pixelHeight)
	}

	e := &goTextEngine{
		face:  face,
		scale: float32(pixelHeight) / float32(upem),
		mono:  mono,
	}
	if ext, ok := face.FontHExtents(); ok {
		e.vertAdvance = floatToFixed((ext.Ascender - ext.Descender + ext.LineGap) * e.scale)
	} else {
		e.vertAdvance = fixed.I(pixelHeight)
	}
	return e, nil
}

func (e *goTextEngine) GlyphIndex(r rune) GlyphIndex {
	gid, ok := e.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphIndex(gid)
}

func (e *goTextEngine) Render(r rune) (*RenderedGlyph, error) {
	gid, ok := e.face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("%w: U+%04X", ErrGlyphNotFound, r)
	}

	m := GlyphMetrics{
		HoriAdvance: floatToFixed(e.face.HorizontalAdvance(gid) * e.scale),
		VertAdvance: e.vertAdvance,
	}

	outline, ok := e.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("%w: U+%04X: not an outline glyph", ErrRenderFailed, r)
	}

	e.segs = e.segs[:0]
	for _, s := range outline.Segments {
		seg := segment{}
		switch s.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = segMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = segLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = segQuadTo
		case ot.SegmentOpCubeTo:
			seg.Op = segCubeTo
		default:
			return nil, fmt.Errorf("%w: U+%04X: unexpected segment op %d", ErrRenderFailed, r, s.Op)
		}
		for i, n := 0, seg.nargs(); i < n; i++ {
			seg.Args[i] = point{s.Args[i].X * e.scale, -s.Args[i].Y * e.scale}
		}
		e.segs = append(e.segs, seg)
	}

	bounds := pathBounds(e.segs)
	if bounds.Empty() {
		return &RenderedGlyph{Metrics: m}, nil
	}
	setBox(&m, bounds)
	return newRenderedGlyph(fillPath(&e.rast, e.segs, bounds), m, e.mono), nil
}

func (e *goTextEngine) SpaceAdvance() (fixed.Int26_6, error) {
	gid, ok := e.face.NominalGlyph(' ')
	if !ok {
		return 0, fmt.Errorf("%w: U+0020", ErrGlyphNotFound)
	}
	return floatToFixed(e.face.HorizontalAdvance(gid) * e.scale), nil
}
