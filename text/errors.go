package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when the requested pixel height is not positive.
	ErrInvalidSize = errors.New("text: invalid pixel size")

	// ErrUnknownBackend is returned when no backend is registered under the requested name.
	ErrUnknownBackend = errors.New("text: unknown backend")

	// ErrGlyphNotFound is returned when the font has no glyph for a code point.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrRenderFailed is returned when a glyph could not be loaded or rendered.
	ErrRenderFailed = errors.New("text: unable to load/render glyph")

	// ErrSourceClosed is returned when creating an engine from a closed FontSource.
	ErrSourceClosed = errors.New("text: font source closed")
)
