package vmath

// WrapDegrees folds an angle into [0, 360)
// Subtracts whole turns one at a time
func WrapDegrees(deg float32) float32 {
	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}
	// float32 rounding can land exactly on 360 after adding to a tiny negative
	if deg >= 360 {
		deg = 0
	}
	return deg
}
