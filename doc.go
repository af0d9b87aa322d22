// Package fontatlas bakes a font into a single grayscale texture atlas and
// a per-glyph metrics file for real-time text renderers.
//
// # Overview
//
// A run rasterizes every code point of the requested ranges at a fixed
// pixel height, packs the glyph bitmaps left-to-right on shelves into one
// fixed-size atlas, and records for each packed glyph its bearing,
// advance, size and normalized texture rectangle.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontatlas"
//	    "github.com/gogpu/fontatlas/atlas"
//	    "github.com/gogpu/fontatlas/metrics"
//	    "github.com/gogpu/fontatlas/text"
//	)
//
//	src, _ := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	engine, _ := src.Engine(16)
//
//	res, err := fontatlas.Generate(engine,
//	    fontatlas.WithAtlasSize(256, 256),
//	    fontatlas.WithRanges(atlas.Range{Lo: 33, Hi: 126}),
//	)
//	if err != nil {
//	    return err
//	}
//	defer res.Release()
//
//	res.WriteAtlas("a.png")
//	res.WriteMetrics("a.bin", metrics.FormatBinary)
//
// # Capacity
//
// The atlas never grows. When a glyph does not fit, it and every glyph
// after it are left out; the run still succeeds and Result.Truncated
// reports the loss.
//
// # Architecture
//
// The library is organized into:
//   - text: font sources and rasterization engines
//   - atlas: glyph collection, shelf packing, texture coordinates
//   - bitmap: grayscale pixel buffers and image encoding
//   - metrics: text and binary metrics files
package fontatlas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
