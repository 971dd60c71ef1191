package imguisw

import "github.com/gogpu/imguisw/internal/blend"

// paintRect flat-fills [min,max) (point space) with color c via 8-bit
// SRC_OVER. Bounds are rounded to nearest pixel (+0.5 truncation) after
// scaling, then clamped.
//
// Bounds are exclusive at the max edge throughout, the same [min,max)
// convention as the triangle path in raster.go — this is what makes a
// scissor-clipped quad and its triangle-pair equivalent rasterize to
// bit-identical pixels.
func paintRect(t *PaintTarget, min, max Vec2, c Packed) {
	minPx, maxPx := scaledPixelBounds(t, min, max)
	if maxPx.x <= minPx.x || maxPx.y <= minPx.y {
		return
	}

	sr, sg, sb, sa := c.RGBA()
	for y := minPx.y; y < maxPx.y; y++ {
		for x := minPx.x; x < maxPx.x; x++ {
			dr, dg, db, _ := t.At(x, y).RGBA()
			r, g, b, a := blend.SourceOver8(sr, sg, sb, sa, dr, dg, db)
			t.Set(x, y, PackRGBA(r, g, b, a))
		}
	}
}

type pixelPoint struct{ x, y int }

// scaledPixelBounds converts a point-space [min,max) rectangle to a
// pixel-space exclusive integer range, clamped to the target's bounds.
func scaledPixelBounds(t *PaintTarget, min, max Vec2) (lo, hi pixelPoint) {
	s := t.Scale()
	lo = pixelPoint{
		x: clampInt(roundHalf(min.X*s.X), 0, t.Width()),
		y: clampInt(roundHalf(min.Y*s.Y), 0, t.Height()),
	}
	hi = pixelPoint{
		x: clampInt(roundHalf(max.X*s.X), 0, t.Width()),
		y: clampInt(roundHalf(max.Y*s.Y), 0, t.Height()),
	}
	return
}

func roundHalf(v float32) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
