// Package atlasio loads alpha8 texture atlas fixtures from PNG or WebP
// image files, for tests and for the atlasdump inspection tool. It is
// pure dev/test tooling: nothing in the core rasterizer imports it.
//
// The WebP decoder is imported for its registration side effect only —
// image.Decode dispatches to it via the standard image.RegisterFormat
// mechanism, the same way the root package's PaintTarget.ToImage
// interoperates with Go's image ecosystem.
package atlasio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	_ "github.com/deepteams/webp"

	"github.com/gogpu/imguisw"
)

// Load decodes the image file at path and converts it to an alpha8
// imguisw.Texture by taking each pixel's alpha channel (or, for a
// decoded color model without alpha, its luminance — see toAlpha8).
func Load(path string) (*imguisw.Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("atlasio: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode converts an already-open image stream into an alpha8 texture.
func Decode(r io.Reader) (*imguisw.Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("atlasio: decode: %w", err)
	}
	return toAlpha8(img), nil
}

// toAlpha8 extracts one alpha8 byte per pixel. Images decoded into a
// model carrying a real alpha channel (RGBA/NRGBA and their 64-bit
// variants) contribute their alpha; anything else (Gray, YCbCr, ...)
// has no alpha of its own, so its luminance stands in for it — this
// lets a plain grayscale glyph-sheet fixture work as a texture just as
// well as a real RGBA font atlas PNG. The choice follows the decoded
// color model only: an RGB PNG decodes to an RGBA image, so it
// contributes its constant opaque alpha, not its luminance.
func toAlpha8(img image.Image) *imguisw.Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]uint8, w*h)

	useAlpha := hasAlphaChannel(img)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			var v uint8
			if useAlpha {
				v = uint8(a >> 8)
			} else {
				lum := (299*r + 587*g + 114*b) / 1000
				v = uint8(lum >> 8)
			}
			out[y*w+x] = v
		}
	}

	return imguisw.NewTexture(w, h, out)
}

// hasAlphaChannel reports whether img's color model carries a
// meaningful alpha channel, as opposed to always-opaque formats whose
// At().RGBA() alpha is a constant 0xffff.
func hasAlphaChannel(img image.Image) bool {
	switch img.ColorModel() {
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model:
		return true
	default:
		return false
	}
}
