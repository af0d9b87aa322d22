package text

import "golang.org/x/image/math/fixed"

// ToFloat converts a 26.6 fixed point value to pixels.
// All engine metrics pass through here before reaching the atlas.
func ToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// floatToFixed converts pixels to 26.6 fixed point, rounding to nearest.
func floatToFixed(v float32) fixed.Int26_6 {
	if v < 0 {
		return fixed.Int26_6(v*64 - 0.5)
	}
	return fixed.Int26_6(v*64 + 0.5)
}
