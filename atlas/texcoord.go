package atlas

// Normalize maps a pixel rectangle inside an atlasW x atlasH atlas to
// texture coordinates in [0,1]. st0 is the top-left corner, st1 the
// bottom-right one.
func Normalize(x, y, w, h, atlasW, atlasH int) (st0, st1 [2]float64) {
	aw, ah := float64(atlasW), float64(atlasH)

	st0[0] = float64(x) / aw
	st0[1] = float64(y) / ah
	st1[0] = float64(x+w) / aw
	st1[1] = float64(y+h) / ah
	return st0, st1
}
