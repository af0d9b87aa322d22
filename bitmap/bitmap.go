// Package bitmap provides the 8-bit grayscale pixel buffer used for glyph
// bitmaps and for the atlas they are packed into.
//
// A Bitmap stores one intensity byte per pixel in row-major order with no
// row padding, so len(Pix) is always Width*Height while the buffer is live.
package bitmap

import (
	"errors"
	"image"
)

// Common errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrDataTooSmall is returned when source data is shorter than the rows it describes.
	ErrDataTooSmall = errors.New("bitmap: data buffer too small")

	// ErrOutOfBounds is returned when a blit would write outside the destination.
	ErrOutOfBounds = errors.New("bitmap: rectangle out of bounds")

	// ErrReleased is returned when operating on a bitmap whose pixels were freed.
	ErrReleased = errors.New("bitmap: pixels released")
)

// Bitmap is a rectangular grayscale pixel buffer.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a zero-filled bitmap with the given dimensions.
func New(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}, nil
}

// FromGray copies the rows of src (one byte per pixel, pitch bytes per row)
// into a new bitmap. The returned bitmap never aliases src.
func FromGray(src []byte, width, height, pitch int) (*Bitmap, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if pitch < width || len(src) < pitch*(height-1)+width {
		return nil, ErrDataTooSmall
	}
	for y := 0; y < height; y++ {
		copy(b.Pix[y*width:(y+1)*width], src[y*pitch:y*pitch+width])
	}
	return b, nil
}

// FromMono expands a 1-bit-per-pixel buffer into a new bitmap.
// Rows are pitch bytes long and bits are read most significant first;
// a set bit becomes 255 and a clear bit 0.
func FromMono(src []byte, width, height, pitch int) (*Bitmap, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if pitch < (width+7)/8 || len(src) < pitch*(height-1)+(width+7)/8 {
		return nil, ErrDataTooSmall
	}
	for y := 0; y < height; y++ {
		row := src[y*pitch:]
		dst := b.Pix[y*width : (y+1)*width]
		for x := range dst {
			if row[x>>3]&(0x80>>(x&7)) != 0 {
				dst[x] = 255
			}
		}
	}
	return b, nil
}

// Offset returns the index of pixel (x, y) in Pix.
func (b *Bitmap) Offset(x, y int) int {
	return y*b.Width + x
}

// At returns the intensity at (x, y), or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) byte {
	if b.Pix == nil || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[b.Offset(x, y)]
}

// Set writes the intensity at (x, y). Writes outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, v byte) {
	if b.Pix == nil || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[b.Offset(x, y)] = v
}

// Blit copies src into b with its top-left corner at (x, y).
// The destination rectangle must lie fully inside b.
func (b *Bitmap) Blit(src *Bitmap, x, y int) error {
	if b.Pix == nil || src.Pix == nil {
		return ErrReleased
	}
	if x < 0 || y < 0 || x+src.Width > b.Width || y+src.Height > b.Height {
		return ErrOutOfBounds
	}
	for row := 0; row < src.Height; row++ {
		d := b.Offset(x, y+row)
		s := row * src.Width
		copy(b.Pix[d:d+src.Width], src.Pix[s:s+src.Width])
	}
	return nil
}

// Free releases the pixel storage. Width and Height are kept so the
// glyph's size stays queryable after its pixels were copied elsewhere.
func (b *Bitmap) Free() {
	b.Pix = nil
}

// Released reports whether Free has been called.
func (b *Bitmap) Released() bool {
	return b.Pix == nil
}

// Gray returns an *image.Gray sharing the bitmap's pixels.
func (b *Bitmap) Gray() *image.Gray {
	return &image.Gray{
		Pix:    b.Pix,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
