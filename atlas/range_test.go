package atlas

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func expand(r Range) []rune {
	var out []rune
	for c := r.Lo; c <= r.Hi; c++ {
		out = append(out, c)
	}
	return out
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		expr string
		want []rune
	}{
		{"65:67", []rune{65, 66, 67}},
		{"65+2", []rune{65, 66, 67}},
		{"65", []rune{65}},
		{" 65 ", []rune{65}},
		{"0x41:0x43", []rune{65, 66, 67}},
		{"0o101+1", []rune{65, 66}},
		{"65+0", []rune{65}},
		{"65:65", []rune{65}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			r, err := ParseRange(tt.expr)
			if err != nil {
				t.Fatalf("ParseRange(%q) error = %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, expand(r)); diff != "" {
				t.Errorf("ParseRange(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, expr := range []string{
		"",
		"abc",
		"67:65",
		"-1",
		"65:",
		"+5",
		"65x",
		"65-70",
		"0x110000",
		"0x10FFFF+1",
		"0xD800",
		"0xDFFF",
		"0xD7FF:0xDC00",
		"0xDC00+0x400",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseRange(expr)
			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("ParseRange(%q) error = %v, want *RangeError", expr, err)
			}
			if rerr.Expr != expr {
				t.Errorf("RangeError.Expr = %q, want %q", rerr.Expr, expr)
			}
		})
	}
}

func TestParseRanges(t *testing.T) {
	got, err := ParseRanges("65:67,0x20,48+9")
	if err != nil {
		t.Fatalf("ParseRanges() error = %v", err)
	}
	want := []Range{{65, 67}, {32, 32}, {48, 57}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRanges() mismatch (-want +got):\n%s", diff)
	}
	if n := Count(got); n != 3+1+10 {
		t.Errorf("Count() = %d, want 14", n)
	}

	if _, err := ParseRanges("65,bogus"); err == nil {
		t.Error("ParseRanges() accepted a bad element")
	}
}

func TestRange_Methods(t *testing.T) {
	r := Range{Lo: 'a', Hi: 'z'}
	if r.Len() != 26 {
		t.Errorf("Len() = %d, want 26", r.Len())
	}
	if !r.Contains('m') || r.Contains('A') {
		t.Error("Contains() wrong")
	}
	if !r.Valid() {
		t.Error("Valid() = false")
	}
	if (Range{Lo: 0xD800, Hi: 0xD800}).Valid() || (Range{Lo: 'a', Hi: 0xDFFF}).Valid() {
		t.Error("Valid() accepted a surrogate bound")
	}
	if !(Range{Lo: 0xD7FF, Hi: 0xE000}).Valid() {
		t.Error("Valid() rejected a range spanning the surrogates")
	}
	if (Range{Lo: 5, Hi: 4}).Valid() {
		t.Error("reversed range reported valid")
	}
	if (Range{Lo: 5, Hi: 4}).Len() != 0 {
		t.Error("reversed range has non-zero Len")
	}
	if got := r.String(); got != "U+0061..U+007A" {
		t.Errorf("String() = %q", got)
	}
	if got := (Range{Lo: 'A', Hi: 'A'}).String(); got != "U+0041" {
		t.Errorf("String() = %q", got)
	}
}
