package vmath

import (
	"math"
)

func init() {
	// Sin/Cos LUT, one entry per angle unit, second half mirrored from the first
	for i := 0; i <= LUTSize/2; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int(math.Round(math.Sin(rad) * One))
		CosLUT[i] = int(math.Round(math.Cos(rad) * One))
	}
	for i := LUTSize/2 + 1; i < LUTSize; i++ {
		SinLUT[i] = -SinLUT[LUTSize-i]
		CosLUT[i] = CosLUT[LUTSize-i]
	}

	// Atan LUT: ratio [0,1] -> angle [0, FullTurn/8]
	for i := 0; i < atanLUTSize; i++ {
		ratio := float64(i) / float64(atanLUTMask)
		atanLUT[i] = int(math.Round(math.Atan(ratio) / (2 * math.Pi) * FullTurn))
	}
}

// SinLUT and CosLUT scaled by One
var (
	SinLUT [LUTSize]int
	CosLUT [LUTSize]int

	// atanLUT maps ratio [0,1] to angle [0, FullTurn/8] (one octant)
	atanLUT [atanLUTSize]int
)

// lutIndex rounds half away from zero so mirrored angles map to mirrored entries
func lutIndex(angle int) int {
	if angle >= 0 {
		return ((angle + One/2) >> OneBit) & LUTMask
	}
	return -((-angle + One/2) >> OneBit) & LUTMask
}

// Sin returns sine of a FullTurn-scaled angle, scaled by One
func Sin(angle int) int {
	return SinLUT[lutIndex(angle)]
}

func Cos(angle int) int {
	return CosLUT[lutIndex(angle)]
}

// atan2Std returns the standard counter-clockwise angle of (dx, dy) in [0, FullTurn)
func atan2Std(dy, dx int) int {
	if dx == 0 && dy == 0 {
		return 0
	}

	adx, ady := Abs(dx), Abs(dy)

	var base int
	if adx >= ady {
		idx := (ady * atanLUTMask) / adx
		base = atanLUT[idx]
	} else {
		idx := (adx * atanLUTMask) / ady
		base = QuarterTurn - atanLUT[idx]
	}

	switch {
	case dx >= 0 && dy >= 0:
		return base
	case dx < 0 && dy >= 0:
		return HalfTurn - base
	case dx < 0:
		return HalfTurn + base
	default:
		return (FullTurn - base) & (FullTurn - 1)
	}
}

// Atan2 returns the heading of vector (x, -y) in screen convention
// 0 is up, QuarterTurn is right; result in [-HalfTurn, HalfTurn)
// Callers pass y negated to get the heading toward a screen-space delta
func Atan2(y, x int) int {
	// Heading h satisfies (sin h, cos h) = (x, y)/|v|, which is atan2Std with swapped axes
	return NormalizeAngle(atan2Std(x, y))
}
