package common

// TileSize is the side length of one map cell in world units.
const TileSize = 64

const (
	BaseWidth  = 800
	BaseHeight = 450
)

// ClampInt limits v to [lo, hi]. When hi < lo the result is lo.
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// CeilDiv divides a by positive b rounding toward positive infinity.
func CeilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// FloorDiv divides a by positive b rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
