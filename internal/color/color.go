// Package color provides the two color representations the rasterizer
// shades with: a packed byte color (as it lives in vertex data and the
// framebuffer) and a float color (as it lives in the per-pixel shading
// math). No color-space management is performed — conversions are
// straight linear scaling.
package color

// F32 is a color with float32 components in [0,1], used only inside
// per-pixel shading. Never stored.
type F32 struct {
	R, G, B, A float32
}

// U8 is a color with uint8 components in [0,255], the representation
// used for individual channels of a packed pixel.
type U8 struct {
	R, G, B, A uint8
}
