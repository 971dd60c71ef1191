package imguisw

import (
	"image"
	"image/png"
	"os"
)

// PaintTarget is the mutable pixel buffer Paint writes into, plus the
// point→pixel scale vector derived from the host's display size versus
// the buffer's pixel dimensions. It wraps a caller-owned Packed slice
// rather than owning its own storage, since Paint takes the buffer from
// the caller each frame. One packed word per pixel rather than four
// separate uint8 channel planes, matching the packed-pixel data model
// used throughout this package.
type PaintTarget struct {
	width, height int
	pixels        []Packed
	scale         Vec2
}

// newPaintTarget wraps pixels (row-major, width*height entries) with the
// given scale. Paint constructs one of these per call; it is not
// exported because its lifetime is scoped to a single frame.
func newPaintTarget(pixels []Packed, width, height int, scale Vec2) *PaintTarget {
	return &PaintTarget{width: width, height: height, pixels: pixels, scale: scale}
}

func (t *PaintTarget) Width() int   { return t.width }
func (t *PaintTarget) Height() int  { return t.height }
func (t *PaintTarget) Scale() Vec2  { return t.scale }

// At returns the packed color at (x,y). Callers are expected to bounds
// check before calling; rect.go and raster.go always clamp their pixel
// ranges to [0,width)x[0,height) before iterating.
func (t *PaintTarget) At(x, y int) Packed {
	return t.pixels[y*t.width+x]
}

// Set writes the packed color at (x,y).
func (t *PaintTarget) Set(x, y int, c Packed) {
	t.pixels[y*t.width+x] = c
}

// ToImage renders the target as a standard image.RGBA, useful for
// debugging and for SaveDebugPNG. Not part of the hot path.
func (t *PaintTarget) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			r, g, b, a := t.At(x, y).RGBA()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}

// SaveDebugPNG writes the target to a PNG file, for manual inspection
// while debugging a draw stream. Not used by Paint itself.
func (t *PaintTarget) SaveDebugPNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, t.ToImage())
}
