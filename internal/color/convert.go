package color

// U8ToF32 converts a U8 color to F32. Each uint8 component [0,255] is
// mapped to float32 [0,1].
func U8ToF32(c U8) F32 {
	return F32{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// F32ToU8 converts an F32 color to U8, rounding each channel with +0.5
// before truncation.
func F32ToU8(c F32) U8 {
	return U8{
		R: roundClamp(c.R),
		G: roundClamp(c.G),
		B: roundClamp(c.B),
		A: roundClamp(c.A),
	}
}

// roundClamp clamps a float32 to [0,1] and converts to uint8 with
// +0.5 rounding.
func roundClamp(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
