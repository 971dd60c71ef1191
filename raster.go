package imguisw

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/imguisw/internal/blend"
	"github.com/gogpu/imguisw/internal/color"
	"github.com/gogpu/imguisw/internal/sample"
)

// edgeFunc is the 2D cross product (b-a) x (p-a): positive on one side
// of the directed edge a->b, negative on the other, zero on the line.
// See the glossary's "Edge function" entry.
func edgeFunc(a, b, p Vec2) float32 {
	return b.Sub(a).Cross(p.Sub(a))
}

// rasterizeTriangle transforms v0,v1,v2 to pixel space, computes the
// signed area, clips against the scissor rectangle, and fills covered
// pixels via incremental barycentric evaluation. scissorMin/scissorMax
// are in point space, matching the command block's scissor rectangle
// before the per-call scale is applied.
func rasterizeTriangle(t *PaintTarget, tex *Texture, scissorMin, scissorMax Vec2, v0, v1, v2 DrawVert, opts Options, stats *Stats) {
	scale := t.Scale()
	p0 := v0.Pos.Scale(scale)
	p1 := v1.Pos.Scale(scale)
	p2 := v2.Pos.Scale(scale)

	stats.NumTriangles++

	d := p1.Sub(p0).Cross(p2.Sub(p0))
	if d == 0 {
		logDegenerate("zero-area triangle")
		return
	}

	minX := math32.Min(p0.X, math32.Min(p1.X, p2.X))
	maxX := math32.Max(p0.X, math32.Max(p1.X, p2.X))
	minY := math32.Min(p0.Y, math32.Min(p1.Y, p2.Y))
	maxY := math32.Max(p0.Y, math32.Max(p1.Y, p2.Y))

	area := float64(math32.Abs(d)) / 2
	if maxX-minX < 1.5 || maxY-minY < 1.5 {
		stats.ThinTriangles++
		stats.ThinTriangleArea += area
	}

	sMin := scissorMin.Scale(scale)
	sMax := scissorMax.Scale(scale)
	minX = math32.Max(minX, sMin.X)
	maxX = math32.Min(maxX, sMax.X)
	minY = math32.Max(minY, sMin.Y)
	maxY = math32.Min(maxY, sMax.Y)

	x0 := clampInt(roundHalf(minX), 0, t.Width())
	x1 := clampInt(roundHalf(maxX), 0, t.Width())
	y0 := clampInt(roundHalf(minY), 0, t.Height())
	y1 := clampInt(roundHalf(maxY), 0, t.Height())

	if x1 <= x0 || y1 <= y0 {
		logDegenerate("empty clipped triangle bounding box")
		return
	}

	uniformColor := v0.Col == v1.Col && v1.Col == v2.Col
	textured := v0.UV != v1.UV || v0.UV != v2.UV

	switch {
	case uniformColor && !textured:
		stats.UniformTriangleArea += area
	case textured:
		stats.TexturedTriangleArea += area
	default:
		stats.OtherTriangleArea += area
	}

	center := Vec2{X: float32(x0) + 0.5, Y: float32(y0) + 0.5}
	e0 := edgeFunc(p1, p2, center) / d
	e1 := edgeFunc(p2, p0, center) / d
	e2 := edgeFunc(p0, p1, center) / d

	dx0 := (p1.Y - p2.Y) / d
	dx1 := (p2.Y - p0.Y) / d
	dx2 := (p0.Y - p1.Y) / d

	dy0 := (p2.X - p1.X) / d
	dy1 := (p0.X - p2.X) / d
	dy2 := (p1.X - p0.X) / d

	if uniformColor && !textured {
		sr, sg, sb, sa := v0.Col.RGBA()
		for y := y0; y < y1; y++ {
			w0, w1, w2 := e0, e1, e2
			for x := x0; x < x1; x++ {
				if w0 >= 0 && w1 >= 0 && w2 >= 0 {
					dr, dg, db, _ := t.At(x, y).RGBA()
					r, g, b, a := blend.SourceOver8(sr, sg, sb, sa, dr, dg, db)
					t.Set(x, y, PackRGBA(r, g, b, a))
				}
				w0 += dx0
				w1 += dx1
				w2 += dx2
			}
			e0 += dy0
			e1 += dy1
			e2 += dy2
		}
		return
	}

	c0, c1, c2 := v0.Col.F32(), v1.Col.F32(), v2.Col.F32()
	uv0, uv1, uv2 := v0.UV, v1.UV, v2.UV

	for y := y0; y < y1; y++ {
		w0, w1, w2 := e0, e1, e2
		for x := x0; x < x1; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				shadePixel(t, tex, x, y, w0, w1, w2, uniformColor, textured, c0, c1, c2, uv0, uv1, uv2, opts)
			}
			w0 += dx0
			w1 += dx1
			w2 += dx2
		}
		e0 += dy0
		e1 += dy1
		e2 += dy2
	}
}

// shadePixel is the general per-covered-pixel path: interpolate (or
// reuse the shared) color, optionally sample the texture into the
// fragment's alpha, then composite via float SRC_OVER with the two
// short-circuits on source alpha.
func shadePixel(t *PaintTarget, tex *Texture, x, y int, w0, w1, w2 float32, uniformColor, textured bool, c0, c1, c2 color.F32, uv0, uv1, uv2 Vec2, opts Options) {
	var src color.F32
	if uniformColor {
		src = c0
	} else {
		src = color.F32{
			R: w0*c0.R + w1*c1.R + w2*c2.R,
			G: w0*c0.G + w1*c1.G + w2*c2.G,
			B: w0*c0.B + w1*c1.B + w2*c2.B,
			A: w0*c0.A + w1*c1.A + w2*c2.A,
		}
	}

	if textured {
		u := w0*uv0.X + w1*uv1.X + w2*uv2.X
		v := w0*uv0.Y + w1*uv1.Y + w2*uv2.Y
		if opts.BilinearSample {
			src.A = sample.Bilinear(tex, u, v)
		} else {
			src.A *= sample.Nearest(tex, u, v)
		}
	}

	if src.A <= 0 {
		return
	}

	if src.A >= 1 {
		t.Set(x, y, PackF32(color.F32{R: src.R, G: src.G, B: src.B, A: 1}))
		return
	}

	dst := t.At(x, y).F32()
	r, g, b, a := blend.SourceOverF(src.R, src.G, src.B, src.A, dst.R, dst.G, dst.B, dst.A)
	t.Set(x, y, PackF32(color.F32{R: r, G: g, B: b, A: a}))
}
