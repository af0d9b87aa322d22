package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// hintedEngine renders through an opentype font.Face with full hinting.
type hintedEngine struct {
	font *sfnt.Font
	face font.Face
	buf  sfnt.Buffer
	mono bool

	// vertAdvance is the line height; fonts without vertical metrics
	// advance by one line when laid out vertically.
	vertAdvance fixed.Int26_6
}

func newHintedEngine(src *FontSource, pixelHeight int, mono bool) (Engine, error) {
	// DPI 72 makes Size equal to pixels per em.
	face, err := opentype.NewFace(src.font, &opentype.FaceOptions{
		Size:    float64(pixelHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: set pixel size %d: %w", pixelHeight, err)
	}

	return &hintedEngine{
		font:        src.font,
		face:        face,
		mono:        mono,
		vertAdvance: face.Metrics().Height,
	}, nil
}

func (e *hintedEngine) GlyphIndex(r rune) GlyphIndex {
	idx, err := e.font.GlyphIndex(&e.buf, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(idx)
}

func (e *hintedEngine) Render(r rune) (*RenderedGlyph, error) {
	dr, src, sp, advance, ok := e.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, fmt.Errorf("%w: U+%04X", ErrRenderFailed, r)
	}
	// Size and bearings describe the emitted bitmap, not the outline.
	m := GlyphMetrics{
		HoriAdvance: advance,
		VertAdvance: e.vertAdvance,
	}
	if !dr.Empty() {
		setBox(&m, dr)
	}

	// The face reuses its mask between calls, so copy it out.
	mask := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	if !dr.Empty() {
		draw.Draw(mask, mask.Bounds(), src, sp, draw.Src)
	}
	return newRenderedGlyph(mask, m, e.mono), nil
}

func (e *hintedEngine) SpaceAdvance() (fixed.Int26_6, error) {
	adv, ok := e.face.GlyphAdvance(' ')
	if !ok {
		return 0, fmt.Errorf("%w: U+0020", ErrRenderFailed)
	}
	return adv, nil
}
