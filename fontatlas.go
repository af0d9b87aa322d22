package fontatlas

import (
	"fmt"

	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/bitmap"
	"github.com/gogpu/fontatlas/metrics"
	"github.com/gogpu/fontatlas/text"
)

// Result is the outcome of a Generate run.
type Result struct {
	// Atlas holds the packed glyph pixels.
	Atlas *bitmap.Bitmap

	// Glyphs lists every collected glyph in collection order. The first
	// Packed entries are in the atlas; the rest did not fit.
	Glyphs []*atlas.Glyph

	// Packed is the number of glyphs copied into the atlas.
	Packed int

	// SpaceAdvance is the horizontal advance of U+0020 in pixels.
	SpaceAdvance float32

	// Skipped lists requested code points that produced no glyph.
	Skipped []atlas.Skipped

	// Utilization is the fraction of atlas area covered by glyph pixels.
	Utilization float64

	// Shelves is the number of shelves used by the packer.
	Shelves int
}

// Generate collects the configured code point ranges from e, packs them
// into a new atlas and returns the result.
//
// Code points that cannot be rendered are skipped and logged. An engine
// that cannot report the space advance yields a zero SpaceAdvance and a
// warning. Running out of atlas space is not an error: see
// Result.Truncated. Errors are returned only for an invalid configuration.
func Generate(e text.Engine, opts ...Option) (*Result, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := Logger()

	space, err := e.SpaceAdvance()
	if err != nil {
		log.Warn("fontatlas: unable to retrieve space advance", "err", err)
		space = 0
	}

	ranges := cfg.rangesOrDefault()
	coll := atlas.Collect(e, ranges)

	dst, err := bitmap.New(cfg.width, cfg.height)
	if err != nil {
		atlas.Release(coll.Glyphs)
		return nil, fmt.Errorf("fontatlas: allocate atlas: %w", err)
	}

	p := atlas.NewPacker(cfg.width, cfg.height, cfg.padding)
	n, err := atlas.PackWith(p, dst, coll.Glyphs)
	if err != nil {
		atlas.Release(coll.Glyphs)
		return nil, fmt.Errorf("fontatlas: pack: %w", err)
	}

	res := &Result{
		Atlas:        dst,
		Glyphs:       coll.Glyphs,
		Packed:       n,
		SpaceAdvance: text.ToFloat(space),
		Skipped:      coll.Skipped,
		Utilization:  p.Utilization(),
		Shelves:      p.ShelfCount(),
	}

	if res.Truncated() {
		log.Warn("fontatlas: atlas full, glyphs dropped",
			"packed", n,
			"dropped", len(coll.Glyphs)-n,
			"first_dropped", coll.Glyphs[n].Rune,
			"width", cfg.width,
			"height", cfg.height)
	}
	log.Info("fontatlas: atlas generated",
		"requested", atlas.Count(ranges),
		"collected", len(coll.Glyphs),
		"packed", n,
		"shelves", res.Shelves,
		"utilization", fmt.Sprintf("%.1f%%", res.Utilization*100))

	return res, nil
}

// PackedGlyphs returns the glyphs that made it into the atlas.
func (r *Result) PackedGlyphs() []*atlas.Glyph {
	return r.Glyphs[:r.Packed]
}

// Truncated reports whether some collected glyphs did not fit the atlas.
func (r *Result) Truncated() bool {
	return r.Packed < len(r.Glyphs)
}

// Metrics returns the metrics file content for the packed glyphs.
func (r *Result) Metrics() *metrics.File {
	return metrics.FromGlyphs(r.PackedGlyphs(), r.SpaceAdvance)
}

// WriteAtlas saves the atlas image to path. The image format follows the
// file extension; see bitmap.FormatFromPath.
func (r *Result) WriteAtlas(path string) error {
	return bitmap.SaveFile(path, r.Atlas)
}

// WriteMetrics saves the packed glyph metrics to path.
func (r *Result) WriteMetrics(path string, format metrics.Format) error {
	return metrics.WriteFile(path, r.PackedGlyphs(), r.SpaceAdvance, format)
}

// Release frees the bitmaps of glyphs that were not packed. The atlas and
// the glyph metrics stay valid.
func (r *Result) Release() {
	atlas.Release(r.Glyphs)
}
