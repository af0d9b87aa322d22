package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// outlineEngine fills unhinted sfnt outlines with the x/image/vector
// rasterizer.
type outlineEngine struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
	mono bool
	rast vector.Rasterizer
	segs []segment

	vertAdvance fixed.Int26_6
}

func newOutlineEngine(src *FontSource, pixelHeight int, mono bool) (Engine, error) {
	e := &outlineEngine{
		font: src.font,
		ppem: fixed.I(pixelHeight),
		mono: mono,
	}
	m, err := e.font.Metrics(&e.buf, e.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: set pixel size %d: %w", pixelHeight, err)
	}
	e.vertAdvance = m.Height
	return e, nil
}

func (e *outlineEngine) GlyphIndex(r rune) GlyphIndex {
	idx, err := e.font.GlyphIndex(&e.buf, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(idx)
}

func (e *outlineEngine) Render(r rune) (*RenderedGlyph, error) {
	idx, err := e.font.GlyphIndex(&e.buf, r)
	if err != nil {
		return nil, fmt.Errorf("%w: U+%04X: %w", ErrRenderFailed, r, err)
	}

	advance, err := e.font.GlyphAdvance(&e.buf, idx, e.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: U+%04X: %w", ErrRenderFailed, r, err)
	}

	outline, err := e.font.LoadGlyph(&e.buf, idx, e.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: U+%04X: %w", ErrRenderFailed, r, err)
	}

	m := GlyphMetrics{
		HoriAdvance: advance,
		VertAdvance: e.vertAdvance,
	}

	// outline aliases e.buf; convert before the next font call.
	e.segs = e.segs[:0]
	for _, s := range outline {
		seg := segment{}
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = segMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = segLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = segQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = segCubeTo
		default:
			return nil, fmt.Errorf("%w: U+%04X: unexpected segment op %d", ErrRenderFailed, r, s.Op)
		}
		for i, n := 0, seg.nargs(); i < n; i++ {
			seg.Args[i] = point{ToFloat(s.Args[i].X), ToFloat(s.Args[i].Y)}
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

func (e *outlineEngine) SpaceAdvance() (fixed.Int26_6, error) {
	idx, err := e.font.GlyphIndex(&e.buf, ' ')
	if err != nil {
		return 0, fmt.Errorf("%w: U+0020: %w", ErrRenderFailed, err)
	}
	adv, err := e.font.GlyphAdvance(&e.buf, idx, e.ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("%w: U+0020: %w", ErrRenderFailed, err)
	}
	return adv, nil
}
