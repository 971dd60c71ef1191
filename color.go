package imguisw

import "github.com/gogpu/imguisw/internal/color"

// Channel shift positions within a packed 32-bit color word, low byte
// to high byte. These are a build-time configuration so the host can
// match its framebuffer's byte order; the default here is R,G,B,A
// (0xFF0000FF is opaque red in this layout).
const (
	shiftR = 0
	shiftG = 8
	shiftB = 16
	shiftA = 24
)

// Packed is a 32-bit color with channels at the shift positions above.
// It is the representation stored in vertex data and in the paint
// target's pixel buffer; see internal/color.F32 for the float
// representation used during per-pixel shading.
type Packed uint32

// PackRGBA builds a Packed color from individual 8-bit channels.
func PackRGBA(r, g, b, a uint8) Packed {
	return Packed(uint32(r)<<shiftR | uint32(g)<<shiftG | uint32(b)<<shiftB | uint32(a)<<shiftA)
}

// RGBA unpacks the four 8-bit channels.
func (p Packed) RGBA() (r, g, b, a uint8) {
	r = uint8(p >> shiftR)
	g = uint8(p >> shiftG)
	b = uint8(p >> shiftB)
	a = uint8(p >> shiftA)
	return
}

// U8 unpacks into an internal/color.U8.
func (p Packed) U8() color.U8 {
	r, g, b, a := p.RGBA()
	return color.U8{R: r, G: g, B: b, A: a}
}

// F32 unpacks into an internal/color.F32, used to seed per-pixel
// shading math.
func (p Packed) F32() color.F32 {
	return color.U8ToF32(p.U8())
}

// PackF32 rounds an internal/color.F32 back to a Packed color. Packing
// the unpacked value of any whole-byte Packed color must reproduce it
// exactly.
func PackF32(c color.F32) Packed {
	u := color.F32ToU8(c)
	return PackRGBA(u.R, u.G, u.B, u.A)
}
