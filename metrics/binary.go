package metrics

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteBinary encodes f in the binary layout.
func WriteBinary(w io.Writer, f *File) error {
	n := len(f.Entries)
	lut := make([]uint32, n)
	records := make([]glyphRecord, n)
	for i, e := range f.Entries {
		m := e.Metrics
		lut[i] = uint32(e.Rune)
		records[i] = glyphRecord{
			Bearing: m.Bearing,
			Advance: m.Advance,
			Size:    m.Size,
			ST0:     [2]uint16{Quantize(m.ST0[0]), Quantize(m.ST0[1])},
			ST1:     [2]uint16{Quantize(m.ST1[0]), Quantize(m.ST1[1])},
		}
	}

	bw := bufio.NewWriter(w)
	for _, v := range []any{NewHeader(n, f.SpaceAdvance), lut, records} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("metrics: write binary: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("metrics: write binary: %w", err)
	}
	return nil
}

// ReadBinary decodes a binary metrics file. The LUT and glyph records are
// located through the header offsets.
func ReadBinary(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("metrics: read binary: %w", err)
	}
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}

	var h Header
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	n := int64(h.GlyphCount)
	switch {
	case h.LUTOffset < HeaderSize:
		return nil, fmt.Errorf("%w: lut_offset %d inside header", ErrCorrupt, h.LUTOffset)
	case int64(h.LUTOffset)+LUTEntrySize*n > int64(len(data)):
		return nil, fmt.Errorf("%w: lookup table past end of file", ErrCorrupt)
	case h.Size() > int64(len(data)):
		return nil, fmt.Errorf("%w: glyph records past end of file", ErrCorrupt)
	}

	lut := make([]uint32, n)
	if err := binary.Read(bytes.NewReader(data[h.LUTOffset:]), binary.LittleEndian, lut); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	records := make([]glyphRecord, n)
	if err := binary.Read(bytes.NewReader(data[h.GlyphOffset:]), binary.LittleEndian, records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	f := &File{SpaceAdvance: h.SpaceAdvance, Entries: make([]Entry, n)}
	for i, rec := range records {
		e := &f.Entries[i]
		e.Rune = rune(lut[i])
		e.Metrics.Bearing = rec.Bearing
		e.Metrics.Advance = rec.Advance
		e.Metrics.Size = rec.Size
		e.Metrics.ST0 = [2]float64{Dequantize(rec.ST0[0]), Dequantize(rec.ST0[1])}
		e.Metrics.ST1 = [2]float64{Dequantize(rec.ST1[0]), Dequantize(rec.ST1[1])}
	}
	return f, nil
}
