package metrics

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/bitmap"
)

// packedGlyphs packs n glyphs of varying size into a 64x64 atlas.
func packedGlyphs(t *testing.T, n int) []*atlas.Glyph {
	t.Helper()
	glyphs := make([]*atlas.Glyph, n)
	for i := range glyphs {
		bm, err := bitmap.New(3+i%5, 4+i%7)
		if err != nil {
			t.Fatal(err)
		}
		glyphs[i] = &atlas.Glyph{
			Rune:   rune('A' + i),
			Bitmap: bm,
			Metrics: atlas.Metrics{
				Bearing: [2]float32{float32(i) * 0.25, 10 - float32(i)/3},
				Advance: [2]float32{7.015625, 19},
				Size:    [2]float32{float32(3 + i%5), float32(4 + i%7)},
			},
		}
	}
	dst, err := bitmap.New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got := atlas.Pack(dst, glyphs, 1); got != n {
		t.Fatalf("Pack() = %d, want %d", got, n)
	}
	return glyphs
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"text", FormatText},
		{"TXT", FormatText},
		{"binary", FormatBinary},
		{" bin ", FormatBinary},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v, want ErrUnknownFormat", err)
	}
	if FormatText.Ext() != ".txt" || FormatBinary.Ext() != ".bin" {
		t.Error("Ext() wrong")
	}
	if FormatBinary.String() != "binary" {
		t.Errorf("String() = %q", FormatBinary.String())
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{0, 0},
		{1, 65535},
		{0.5, 32767},
		{-0.25, 0},
		{1.5, 65535},
		{1.0 / 65535, 1},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if Dequantize(65535) != 1 || Dequantize(0) != 0 {
		t.Error("Dequantize endpoints wrong")
	}
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(10, 4.5)
	want := Header{GlyphCount: 10, SpaceAdvance: 4.5, LUTOffset: 16, GlyphOffset: 56}
	if h != want {
		t.Errorf("NewHeader() = %+v, want %+v", h, want)
	}
	if h.Size() != 56+320 {
		t.Errorf("Size() = %d, want 376", h.Size())
	}
}

func TestBinary_RoundTrip(t *testing.T) {
	glyphs := packedGlyphs(t, 12)

	var buf bytes.Buffer
	if err := Write(&buf, glyphs, 4.25, FormatBinary); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("ReadBinary() error = %v", err)
	}

	if got.SpaceAdvance != 4.25 {
		t.Errorf("SpaceAdvance = %v, want 4.25", got.SpaceAdvance)
	}
	if got.Len() != len(glyphs) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(glyphs))
	}
	for i, g := range glyphs {
		e := got.Entries[i]
		if e.Rune != g.Rune {
			t.Errorf("entry %d rune = %q, want %q", i, e.Rune, g.Rune)
		}
		want, have := g.Metrics, e.Metrics
		if want.Bearing != have.Bearing || want.Advance != have.Advance || want.Size != have.Size {
			t.Errorf("entry %d metrics = %+v, want %+v", i, have, want)
		}
		for j, pair := range [][2]float64{
			{want.ST0[0], have.ST0[0]}, {want.ST0[1], have.ST0[1]},
			{want.ST1[0], have.ST1[0]}, {want.ST1[1], have.ST1[1]},
		} {
			if d := pair[0] - pair[1]; d < 0 || d > 1.0/65535 {
				t.Errorf("entry %d coord %d: wrote %v, read %v", i, j, pair[0], pair[1])
			}
		}
	}
}

func TestBinary_Layout(t *testing.T) {
	f := &File{
		SpaceAdvance: 5,
		Entries: []Entry{
			{Rune: 'A', Metrics: atlas.Metrics{Bearing: [2]float32{1, 2}, ST1: [2]float64{1, 0.5}}},
			{Rune: 0x1F600, Metrics: atlas.Metrics{Size: [2]float32{3, 4}}},
		},
	}
	var buf bytes.Buffer
	if err := WriteBinary(&buf, f); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) != HeaderSize+2*LUTEntrySize+2*GlyphRecordSize {
		t.Fatalf("len = %d, want %d", len(b), HeaderSize+2*LUTEntrySize+2*GlyphRecordSize)
	}

	le := binary.LittleEndian
	if le.Uint32(b[0:]) != 2 {
		t.Errorf("glyph_count = %d", le.Uint32(b[0:]))
	}
	if math.Float32frombits(le.Uint32(b[4:])) != 5 {
		t.Errorf("space_advance = %v", math.Float32frombits(le.Uint32(b[4:])))
	}
	if le.Uint32(b[8:]) != 16 || le.Uint32(b[12:]) != 24 {
		t.Errorf("offsets = %d, %d; want 16, 24", le.Uint32(b[8:]), le.Uint32(b[12:]))
	}
	if le.Uint32(b[16:]) != 'A' || le.Uint32(b[20:]) != 0x1F600 {
		t.Errorf("lut = %x %x", le.Uint32(b[16:]), le.Uint32(b[20:]))
	}

	rec := b[24:56]
	if math.Float32frombits(le.Uint32(rec[0:])) != 1 || math.Float32frombits(le.Uint32(rec[4:])) != 2 {
		t.Error("bearing not at record start")
	}
	if le.Uint16(rec[28:]) != 65535 || le.Uint16(rec[30:]) != 32767 {
		t.Errorf("st1 = %d, %d", le.Uint16(rec[28:]), le.Uint16(rec[30:]))
	}
	rec = b[56:88]
	if math.Float32frombits(le.Uint32(rec[16:])) != 3 || math.Float32frombits(le.Uint32(rec[20:])) != 4 {
		t.Error("size not at offset 16")
	}
}

func TestReadBinary_Corrupt(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, &File{Entries: make([]Entry, 3)}); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()

	for name, data := range map[string][]byte{
		"empty":       nil,
		"short":       full[:10],
		"no records":  full[:HeaderSize+3*LUTEntrySize],
		"cut record":  full[:len(full)-1],
		"bad offsets": append(append([]byte{}, full[:8]...), 0, 0, 0, 0, 0, 0, 0, 0),
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadBinary(bytes.NewReader(data)); !errors.Is(err, ErrCorrupt) {
				t.Errorf("ReadBinary() error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestWriteText_Format(t *testing.T) {
	f := &File{
		SpaceAdvance: 4,
		Entries: []Entry{{
			Rune: 'é',
			Metrics: atlas.Metrics{
				Bearing: [2]float32{1, 12},
				Advance: [2]float32{9.5, 19},
				Size:    [2]float32{8, 12},
				ST0:     [2]float64{0.25, 0.5},
				ST1:     [2]float64{0.375, 0.625},
			},
		}},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, f); err != nil {
		t.Fatal(err)
	}

	want := `space_advance=4.000000
glyph_count=1

# Glyph 0
rune=233
utf8=c3a9
horizontal_bearing=1.000000
vertical_bearing=12.000000
horizontal_advance=9.500000
vertical_advance=19.000000
width=8.000000
height=12.000000
s0=0.250000
t0=0.500000
s1=0.375000
t1=0.625000
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteText() mismatch (-want +got):\n%s", diff)
	}
}

func TestText_RoundTrip(t *testing.T) {
	glyphs := packedGlyphs(t, 8)
	var buf bytes.Buffer
	if err := Write(&buf, glyphs, 3.5, FormatText); err != nil {
		t.Fatal(err)
	}
	got, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}

	want := FromGlyphs(glyphs, 3.5)
	opts := []cmp.Option{
		cmpopts.EquateApprox(0, 1e-6),
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("ReadText() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadText_CountMismatch(t *testing.T) {
	in := "space_advance=1.0\nglyph_count=2\n\n# Glyph 0\nrune=65\n"
	if _, err := ReadText(strings.NewReader(in)); !errors.Is(err, ErrCorrupt) {
		t.Errorf("ReadText() error = %v, want ErrCorrupt", err)
	}
	if _, err := ReadText(strings.NewReader("space_advance\n")); !errors.Is(err, ErrCorrupt) {
		t.Errorf("ReadText() error = %v, want ErrCorrupt", err)
	}
}

func TestFromGlyphs_SkipsUnpacked(t *testing.T) {
	glyphs := []*atlas.Glyph{
		{Rune: 'a', Packed: true},
		{Rune: 'b'},
		{Rune: 'c', Packed: true},
	}
	f := FromGlyphs(glyphs, 1)
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if _, ok := f.Lookup('b'); ok {
		t.Error("unpacked glyph serialized")
	}
	if e, ok := f.Lookup('c'); !ok || e.Rune != 'c' {
		t.Error("Lookup('c') failed")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	glyphs := packedGlyphs(t, 5)

	for _, format := range []Format{FormatText, FormatBinary} {
		t.Run(format.String(), func(t *testing.T) {
			path := filepath.Join(dir, "a"+format.Ext())
			if err := WriteFile(path, glyphs, 2, format); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			f, err := ReadFile(path, format)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if f.Len() != 5 || f.SpaceAdvance != 2 {
				t.Errorf("ReadFile() = %d entries, space %v", f.Len(), f.SpaceAdvance)
			}
		})
	}
}

func TestWriteFile_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "a.txt")
	if err := WriteFile(path, nil, 0, FormatText); err == nil {
		t.Error("WriteFile() into a missing directory succeeded")
	}
}
