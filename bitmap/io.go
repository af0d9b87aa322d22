package bitmap

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when an image format is not supported.
var ErrUnsupportedFormat = errors.New("bitmap: unsupported format")

// Format selects the image container used to persist a bitmap.
type Format int

const (
	// FormatPNG writes an 8-bit grayscale PNG.
	FormatPNG Format = iota
	// FormatBMP writes an 8-bit paletted grayscale BMP.
	FormatBMP
	// FormatTIFF writes a deflate-compressed 8-bit grayscale TIFF.
	FormatTIFF
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
// Unknown or missing extensions fall back to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}

// Encode writes b to w as a single-channel image.
func Encode(w io.Writer, b *Bitmap, format Format) error {
	if b.Pix == nil {
		return ErrReleased
	}
	img := b.Gray()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("bitmap: encode %s: %w", format, err)
	}
	return nil
}

// SaveFile writes b to path, choosing the container from the extension.
func SaveFile(path string, b *Bitmap) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("bitmap: create file: %w", err)
	}

	if err := Encode(f, b, FormatFromPath(path)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
