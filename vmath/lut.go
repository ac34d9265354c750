package vmath

import (
	"math"
)

func init() {
	// Sin/Cos LUT calculation
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Sin(rad) * ScaleF)
		CosLUT[i] = int64(math.Cos(rad) * ScaleF)
	}

	// Atan2 LUT: ratio [0,1] -> angle [0, π/4] in Q32.32
	for i := 0; i < LUTSize; i++ {
		ratio := float64(i) / float64(LUTMask)
		angle := math.Atan(ratio)
		atan2LUT[i] = int64(angle / (2 * math.Pi) * ScaleF)
	}
}

// SinLUT and CosLUT scaled by Q32.32
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64

	// atan2LUT maps ratio [0,1] to angle [0, Scale/8] (one octant)
	atan2LUT [LUTSize]int64
)

// Sin returns sine of an angle where angle 0..Scale maps to 0..2π
// Negative angles wrap through the mask; values between entries are interpolated
func Sin(angle int64) int64 {
	return lerpLUT(&SinLUT, angle)
}

func Cos(angle int64) int64 {
	return lerpLUT(&CosLUT, angle)
}

// lutFracBits is the angle precision below one LUT step
const lutFracBits = Shift - 10

// lerpLUT reads a periodic table at angle, blending adjacent entries
func lerpLUT(lut *[LUTSize]int64, angle int64) int64 {
	u := uint64(angle)
	idx := (u >> lutFracBits) & LUTMask
	frac := int64(u&(1<<lutFracBits-1)) << (Shift - lutFracBits)
	a, b := lut[idx], lut[(idx+1)&LUTMask]
	return a + Mul(b-a, frac)
}

// atanOctant returns atan(ratio) for ratio in [0,1] (Q32.32), interpolated
func atanOctant(ratio int64) int64 {
	pos := Mul(ratio, FromInt(LUTMask))
	idx := pos >> Shift
	if idx >= LUTMask {
		return atan2LUT[LUTMask]
	}
	frac := pos & Mask
	a, b := atan2LUT[idx], atan2LUT[idx+1]
	return a + Mul(b-a, frac)
}

// Atan2 returns angle in [0, Scale) for (dy, dx) using LUT
// Result is Q32.32 where Scale = full rotation (2π)
// Zero vector returns 0
func Atan2(dy, dx int64) int64 {
	if dx == 0 && dy == 0 {
		return 0
	}

	adx, ady := Abs(dx), Abs(dy)

	var baseAngle int64
	if adx >= ady {
		// |dy/dx| in [0,1]
		baseAngle = atanOctant(Div(ady, adx))
	} else {
		// |dx/dy| in [0,1], angle = π/2 - atan(ratio)
		baseAngle = Scale/4 - atanOctant(Div(adx, ady))
	}

	if dx > 0 {
		if dy >= 0 {
			return baseAngle
		}
		return Scale - baseAngle
	} else if dx < 0 {
		if dy >= 0 {
			return Scale/2 - baseAngle
		}
		return Scale/2 + baseAngle
	}
	if dy > 0 {
		return Scale / 4
	}
	return 3 * Scale / 4
}
