package vmath

// CalcVelocity returns the per-tick displacement for heading angle at speed
// Angle 0 moves up (-Y), QuarterTurn moves right (+X)
func CalcVelocity(angle, speed int) Vec2I {
	idx := lutIndex(angle)
	return Vec2I{
		X: mulOne(SinLUT[idx], speed),
		Y: -mulOne(CosLUT[idx], speed),
	}
}

// mulOne multiplies two One-scaled values, truncating toward zero so mirrored motion stays symmetric
func mulOne(a, b int) int {
	return a * b / One
}

// NormalizeAngle wraps angle into [-HalfTurn, HalfTurn)
func NormalizeAngle(angle int) int {
	return ((angle + HalfTurn) & (FullTurn - 1)) - HalfTurn
}

// DiffAngle returns the signed shortest rotation from b to a
func DiffAngle(a, b int) int {
	return NormalizeAngle(a - b)
}

// QuantizeAngle maps angle to one of div rotation buckets, 0 = up
func QuantizeAngle(angle, div int) int {
	if div <= 0 {
		return 0
	}
	step := FullTurn / div
	a := (angle + step/2) & (FullTurn - 1)
	return a / step
}

// AngleToDegrees converts a FullTurn-scaled angle to integer degrees in [0, 360)
func AngleToDegrees(angle int) int {
	return (angle & (FullTurn - 1)) * 360 / FullTurn
}

// DegreesToAngle converts degrees to a FullTurn-scaled angle
func DegreesToAngle(deg int) int {
	return deg * FullTurn / 360
}
