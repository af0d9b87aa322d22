package metrics

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const textHeaderFormat = "space_advance=%f\nglyph_count=%d\n"

const textGlyphFormat = "\n# Glyph %d\n" +
	"rune=%d\n" +
	"utf8=%x\n" +
	"horizontal_bearing=%f\n" +
	"vertical_bearing=%f\n" +
	"horizontal_advance=%f\n" +
	"vertical_advance=%f\n" +
	"width=%f\n" +
	"height=%f\n" +
	"s0=%f\n" +
	"t0=%f\n" +
	"s1=%f\n" +
	"t1=%f\n"

// WriteText encodes f in the text layout.
func WriteText(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, textHeaderFormat, f.SpaceAdvance, len(f.Entries))
	for i, e := range f.Entries {
		m := e.Metrics
		fmt.Fprintf(bw, textGlyphFormat, i, e.Rune, utf8.AppendRune(nil, e.Rune),
			m.Bearing[0], m.Bearing[1],
			m.Advance[0], m.Advance[1],
			m.Size[0], m.Size[1],
			m.ST0[0], m.ST0[1],
			m.ST1[0], m.ST1[1])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("metrics: write text: %w", err)
	}
	return nil
}

// ReadText decodes a text metrics file. Values are read back at the six
// decimal places they were written with. Unknown keys are ignored.
func ReadText(r io.Reader) (*File, error) {
	f := &File{}
	count := -1
	var cur *Entry

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		if strings.HasPrefix(s, "#") {
			f.Entries = append(f.Entries, Entry{})
			cur = &f.Entries[len(f.Entries)-1]
			continue
		}

		key, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '='", ErrCorrupt, line)
		}
		if err := setField(f, cur, &count, key, val); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %v", ErrCorrupt, line, key, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("metrics: read text: %w", err)
	}

	if count >= 0 && count != len(f.Entries) {
		return nil, fmt.Errorf("%w: glyph_count=%d but %d glyph blocks", ErrCorrupt, count, len(f.Entries))
	}
	return f, nil
}

func setField(f *File, e *Entry, count *int, key, val string) error {
	switch key {
	case "space_advance":
		v, err := strconv.ParseFloat(val, 32)
		f.SpaceAdvance = float32(v)
		return err
	case "glyph_count":
		n, err := strconv.Atoi(val)
		*count = n
		return err
	}

	if e == nil {
		// Glyph fields before the first block header.
		return nil
	}
	m := &e.Metrics

	if key == "rune" {
		v, err := strconv.ParseInt(val, 10, 32)
		e.Rune = rune(v)
		return err
	}
	if key == "utf8" {
		_, err := hex.DecodeString(val)
		return err
	}

	f32 := map[string]*float32{
		"horizontal_bearing": &m.Bearing[0],
		"vertical_bearing":   &m.Bearing[1],
		"horizontal_advance": &m.Advance[0],
		"vertical_advance":   &m.Advance[1],
		"width":              &m.Size[0],
		"height":             &m.Size[1],
	}
	if p, ok := f32[key]; ok {
		v, err := strconv.ParseFloat(val, 32)
		*p = float32(v)
		return err
	}

	f64 := map[string]*float64{
		"s0": &m.ST0[0],
		"t0": &m.ST0[1],
		"s1": &m.ST1[0],
		"t1": &m.ST1[1],
	}
	if p, ok := f64[key]; ok {
		v, err := strconv.ParseFloat(val, 64)
		*p = v
		return err
	}
	return nil
}
