package atlas

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/fontatlas/bitmap"
	"github.com/gogpu/fontatlas/text"
)

// Skip reasons reported by Collect.
const (
	SkipUnavailable = "glyph unavailable"
	SkipRender      = "unable to load/render glyph"
	SkipEmpty       = "zero width/height"
	SkipDuplicate   = "duplicate code point"
	SkipSurrogate   = "surrogate code point"
)

// Skipped records a code point that produced no glyph.
type Skipped struct {
	Rune   rune
	Reason string
	Err    error
}

// Collection is the ordered result of Collect.
type Collection struct {
	// Glyphs lists the collected glyphs. Ranges appear in the order they
	// were supplied, code points ascending within each range.
	Glyphs []*Glyph

	// Skipped lists code points that were requested but not collected.
	Skipped []Skipped
}

// Len returns the number of collected glyphs.
func (c *Collection) Len() int {
	return len(c.Glyphs)
}

// Collect rasterizes every code point of ranges with e.
// Invalid ranges (see Range.Valid) are ignored.
//
// Code points the font does not map, that fail to render or that render to
// an empty bitmap are skipped with a warning. Surrogates inside a range
// are skipped at debug level. A code point already
// collected by an earlier range is skipped as a duplicate, so the result
// never holds the same code point twice.
func Collect(e text.Engine, ranges []Range) *Collection {
	log := slogger()
	c := &Collection{}
	seen := make(map[rune]struct{})

	skip := func(r rune, reason string, err error) {
		c.Skipped = append(c.Skipped, Skipped{Rune: r, Reason: reason, Err: err})
		level := slog.LevelWarn
		if reason == SkipDuplicate || reason == SkipSurrogate {
			level = slog.LevelDebug
		}
		attrs := []any{"rune", fmt.Sprintf("U+%04X", r), "reason", reason}
		if name := runenames.Name(r); name != "" {
			attrs = append(attrs, "name", name)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		log.Log(context.Background(), level, "atlas: skipping rune", attrs...)
	}

	for _, rg := range ranges {
		if !rg.Valid() {
			log.Warn("atlas: ignoring invalid range", "range", rg.String())
			continue
		}
		for r := rg.Lo; r <= rg.Hi; r++ {
			if Surrogates.Contains(r) {
				skip(r, SkipSurrogate, nil)
				continue
			}
			if _, dup := seen[r]; dup {
				skip(r, SkipDuplicate, nil)
				continue
			}

			g, reason, err := collectOne(e, r)
			if g == nil {
				skip(r, reason, err)
				continue
			}
			seen[r] = struct{}{}
			c.Glyphs = append(c.Glyphs, g)
		}
	}

	log.Debug("atlas: collected glyphs",
		"requested", Count(ranges),
		"collected", len(c.Glyphs),
		"skipped", len(c.Skipped))
	return c
}

// collectOne renders a single code point. A nil glyph comes with the
// reason it was skipped.
func collectOne(e text.Engine, r rune) (*Glyph, string, error) {
	if e.GlyphIndex(r) == 0 {
		return nil, SkipUnavailable, nil
	}

	rg, err := e.Render(r)
	if err != nil {
		return nil, SkipRender, err
	}
	if rg.Empty() {
		return nil, SkipEmpty, nil
	}

	bm, err := toBitmap(rg)
	if err != nil {
		return nil, SkipRender, err
	}

	m := rg.Metrics
	return &Glyph{
		Rune:   r,
		Bitmap: bm,
		Metrics: Metrics{
			Bearing: [2]float32{text.ToFloat(m.HoriBearingX), text.ToFloat(m.HoriBearingY)},
			Advance: [2]float32{text.ToFloat(m.HoriAdvance), text.ToFloat(m.VertAdvance)},
			Size:    [2]float32{text.ToFloat(m.Width), text.ToFloat(m.Height)},
		},
	}, "", nil
}

// toBitmap copies an engine buffer into a freshly allocated bitmap,
// expanding mono rows to one byte per pixel.
func toBitmap(rg *text.RenderedGlyph) (*bitmap.Bitmap, error) {
	switch rg.Mode {
	case text.PixelModeGray:
		return bitmap.FromGray(rg.Buffer, rg.Width, rg.Height, rg.Pitch)
	case text.PixelModeMono:
		return bitmap.FromMono(rg.Buffer, rg.Width, rg.Height, rg.Pitch)
	default:
		return nil, fmt.Errorf("atlas: unsupported pixel mode %v", rg.Mode)
	}
}
