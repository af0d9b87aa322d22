package atlas

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Range is an inclusive interval of code points.
type Range struct {
	Lo rune
	Hi rune
}

// Len returns the number of code points in the range.
func (r Range) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return int(r.Hi-r.Lo) + 1
}

// Contains reports whether c lies in the range.
func (r Range) Contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

// Surrogates is the UTF-16 surrogate block. Its code points are not
// scalar values and have no UTF-8 encoding.
var Surrogates = Range{Lo: 0xD800, Hi: 0xDFFF}

// Valid reports whether the range is ordered, within Unicode and does not
// start or end on a surrogate.
func (r Range) Valid() bool {
	return r.Lo >= 0 && r.Lo <= r.Hi && r.Hi <= unicode.MaxRune &&
		!Surrogates.Contains(r.Lo) && !Surrogates.Contains(r.Hi)
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("U+%04X", r.Lo)
	}
	return fmt.Sprintf("U+%04X..U+%04X", r.Lo, r.Hi)
}

// RangeError reports a malformed range expression.
type RangeError struct {
	Expr   string
	Reason string
}

func (e *RangeError) Error() string {
	return "atlas: invalid range " + strconv.Quote(e.Expr) + ": " + e.Reason
}

// ParseRange parses one range expression:
//
//	<n>          a single code point
//	<lo>:<hi>    lo through hi inclusive
//	<lo>+<n>     lo through lo+n inclusive
//
// Numbers use Go integer literal syntax, so 65, 0x41 and 0o101 are equal.
func ParseRange(expr string) (Range, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return Range{}, &RangeError{Expr: expr, Reason: "empty"}
	}

	head, tail, sep := s, "", byte(0)
	if i := strings.IndexAny(s, ":+"); i >= 0 {
		head, tail, sep = s[:i], s[i+1:], s[i]
	}

	lo, err := parseCodePoint(head)
	if err != nil {
		return Range{}, &RangeError{Expr: expr, Reason: err.Error()}
	}

	r := Range{Lo: lo, Hi: lo}
	switch sep {
	case ':':
		if r.Hi, err = parseCodePoint(tail); err != nil {
			return Range{}, &RangeError{Expr: expr, Reason: err.Error()}
		}
	case '+':
		n, err := parseCodePoint(tail)
		if err != nil {
			return Range{}, &RangeError{Expr: expr, Reason: err.Error()}
		}
		r.Hi = lo + n
	}

	if r.Lo > r.Hi {
		return Range{}, &RangeError{Expr: expr, Reason: "lower bound exceeds upper bound"}
	}
	if r.Hi > unicode.MaxRune {
		return Range{}, &RangeError{Expr: expr, Reason: "beyond U+10FFFF"}
	}
	if Surrogates.Contains(r.Lo) || Surrogates.Contains(r.Hi) {
		return Range{}, &RangeError{Expr: expr, Reason: "surrogate code point"}
	}
	return r, nil
}

// ParseRanges parses a comma separated list of range expressions.
func ParseRanges(list string) ([]Range, error) {
	var ranges []Range
	for _, expr := range strings.Split(list, ",") {
		r, err := ParseRange(expr)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing number")
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative number %q", s)
	}
	if n > unicode.MaxRune {
		return 0, fmt.Errorf("beyond U+10FFFF")
	}
	return rune(n), nil
}

// Count returns the total number of code points covered by ranges,
// counting overlaps once per range.
func Count(ranges []Range) int {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}
	return n
}
