package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/fontatlas/atlas"
)

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, f)
	case FormatBinary:
		return WriteBinary(w, f)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Decode reads a metrics file of the given format from r.
func Decode(r io.Reader, format Format) (*File, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatBinary:
		return ReadBinary(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Write serializes the packed glyphs and the space advance to w.
// The glyph count written is the number of packed glyphs.
func Write(w io.Writer, glyphs []*atlas.Glyph, spaceAdvance float32, format Format) error {
	return Encode(w, FromGlyphs(glyphs, spaceAdvance), format)
}

// WriteFile is Write to a newly created file at path. Failures to create
// or write the file are returned; nothing is retried.
func WriteFile(path string, glyphs []*atlas.Glyph, spaceAdvance float32, format Format) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("metrics: create file: %w", err)
	}

	if err := Write(f, glyphs, spaceAdvance, format); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("metrics: close file: %w", err)
	}
	return nil
}

// ReadFile decodes the metrics file at path.
func ReadFile(path string, format Format) (*File, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("metrics: open file: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}
