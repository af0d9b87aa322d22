// Package metrics writes and reads the per-glyph metrics file that
// accompanies a glyph atlas.
//
// Two encodings are supported. The text encoding is a line-oriented
// key=value listing meant for people and simple scripts. The binary
// encoding is a compact little-endian layout meant to be memory-mapped or
// read directly by a renderer:
//
//	Header (16 bytes): u32 glyph_count | f32 space_advance | u32 lut_offset | u32 glyph_offset
//	LUT:    u32 code point, glyph_count entries, at lut_offset
//	Glyphs: f32 bearing[2] | f32 advance[2] | f32 size[2] | u16 st0[2] | u16 st1[2]
//	        32 bytes each, glyph_count entries, at glyph_offset
//
// Texture coordinates are quantized to 16 bits in the binary encoding by
// multiplying by 65535 and truncating, so a decoded coordinate may be up
// to 1/65535 below the value that was written.
package metrics

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the encoders and decoders.
var (
	// ErrUnknownFormat is returned for a format name that is not "text" or "binary".
	ErrUnknownFormat = errors.New("metrics: unknown format")

	// ErrCorrupt is returned when a metrics file does not decode.
	ErrCorrupt = errors.New("metrics: corrupt file")
)

// Format selects the metrics encoding.
type Format int

const (
	// FormatText is the human-readable key=value encoding.
	FormatText Format = iota
	// FormatBinary is the little-endian binary encoding.
	FormatBinary
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the conventional file extension, including the dot.
func (f Format) Ext() string {
	if f == FormatBinary {
		return ".bin"
	}
	return ".txt"
}

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "binary", "bin":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
