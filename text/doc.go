// Package text is the font engine used by the atlas generator.
//
// It loads a TTF/OTF font once (FontSource) and produces an Engine bound to
// a pixel height. An Engine answers three questions for the atlas pipeline:
//
//   - GlyphIndex: does the font map this code point to a glyph (0 = no)?
//   - Render: the glyph's bitmap (8-bit gray or 1-bit mono) and metrics
//   - SpaceAdvance: the horizontal advance of U+0020
//
// Metrics are reported in 26.6 fixed point, the native unit of
// golang.org/x/image/math/fixed. ToFloat is the single place where they are
// converted to floating point.
//
// # Backends
//
// Rasterization is pluggable through a small registry:
//
//   - "hinted" (default): golang.org/x/image/font/opentype with full hinting
//   - "outline": unhinted golang.org/x/image/font/sfnt outlines, filled
//     with golang.org/x/image/vector
//   - "gotext": github.com/go-text/typesetting cmap, metrics and outlines,
//     filled with golang.org/x/image/vector
//
// Example:
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine, err := source.Engine(16, text.WithBackend(text.BackendOutline))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyph, err := engine.Render('A')
package text
