package fontatlas

import (
	"fmt"

	"github.com/gogpu/fontatlas/atlas"
)

// Limits accepted by Generate.
const (
	// MaxAtlasSize is the largest accepted atlas width or height.
	MaxAtlasSize = 16384

	// DefaultAtlasSize is the default atlas width and height.
	DefaultAtlasSize = 256

	// DefaultPadding is the default gap around and between glyphs.
	DefaultPadding = 1
)

// DefaultRange is the printable ASCII range collected when no ranges are given.
var DefaultRange = atlas.Range{Lo: 33, Hi: 126}

// Option configures a Generate run.
//
// Example:
//
//	// Default 256x256 atlas of printable ASCII
//	res, err := fontatlas.Generate(engine)
//
//	// Larger atlas with Latin-1 and Greek
//	res, err := fontatlas.Generate(engine,
//	    fontatlas.WithAtlasSize(512, 512),
//	    fontatlas.WithRanges(atlas.Range{Lo: 0x21, Hi: 0xFF}, atlas.Range{Lo: 0x391, Hi: 0x3C9}),
//	)
type Option func(*config)

// config holds the settings of one run.
type config struct {
	width   int
	height  int
	padding int
	ranges  []atlas.Range
}

// defaultConfig returns the default run settings.
func defaultConfig() config {
	return config{
		width:   DefaultAtlasSize,
		height:  DefaultAtlasSize,
		padding: DefaultPadding,
	}
}

// WithAtlasSize sets the atlas dimensions in pixels.
func WithAtlasSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithPadding sets the number of empty pixels kept around every glyph
// and along the atlas edges.
func WithPadding(padding int) Option {
	return func(c *config) {
		c.padding = padding
	}
}

// WithRanges appends code point ranges to collect. Ranges are visited in
// the order given. Without any ranges, DefaultRange is used.
func WithRanges(ranges ...atlas.Range) Option {
	return func(c *config) {
		c.ranges = append(c.ranges, ranges...)
	}
}

// Validate checks if the configuration is valid.
func (c *config) Validate() error {
	if c.width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be at least 1"}
	}
	if c.width > MaxAtlasSize {
		return &ConfigError{Field: "Width", Reason: fmt.Sprintf("must be at most %d", MaxAtlasSize)}
	}
	if c.height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be at least 1"}
	}
	if c.height > MaxAtlasSize {
		return &ConfigError{Field: "Height", Reason: fmt.Sprintf("must be at most %d", MaxAtlasSize)}
	}
	if c.padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if 2*c.padding >= c.width || 2*c.padding >= c.height {
		return &ConfigError{Field: "Padding", Reason: "leaves no room for glyphs"}
	}
	for _, r := range c.ranges {
		if !r.Valid() {
			return &ConfigError{Field: "Ranges", Reason: "invalid range " + r.String()}
		}
	}
	return nil
}

// rangesOrDefault returns the configured ranges, or DefaultRange.
func (c *config) rangesOrDefault() []atlas.Range {
	if len(c.ranges) == 0 {
		return []atlas.Range{DefaultRange}
	}
	return c.ranges
}
