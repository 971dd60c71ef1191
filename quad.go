package imguisw

// tryPaintQuad looks at the six index-stream elements starting at
// cursor and, if they describe an axis-aligned, uniformly-colored
// rectangle tagged with the white-pixel UV, paints it via paintRect and
// reports true so the caller advances the cursor by 6 instead of 3. The
// corner-membership check is against a bounding box, but unlike a
// tolerance-based shape fitter this requires bit-equal UVs and colors —
// no float slop.
func tryPaintQuad(t *PaintTarget, tex *Texture, cmd *DrawCmd, list *DrawList, cursor int, stats *Stats) bool {
	var verts [6]DrawVert
	for i := range verts {
		idx := vertexIndex(list, cursor+i)
		verts[i] = list.Vertices[idx]
	}

	box := boundingBox(verts[0].Pos, verts[1].Pos, verts[2].Pos)

	for _, v := range verts {
		if !onCorner(v.Pos.X, box.minX, box.maxX) || !onCorner(v.Pos.Y, box.minY, box.maxY) {
			logQuadDecision(false, "vertex not on rectangle corner")
			return false
		}
	}

	col := verts[0].Col
	uniformColor := true
	for _, v := range verts[1:] {
		if v.Col != col {
			uniformColor = false
			break
		}
	}
	if !uniformColor {
		logQuadDecision(false, "vertex colors not bit-equal")
		return false
	}

	whiteU, whiteV := tex.WhiteUV()
	isWhiteUV := true
	for _, v := range verts {
		if v.UV.X != whiteU || v.UV.Y != whiteV {
			isWhiteUV = false
			break
		}
	}

	clipMin := Vec2{X: max32(box.minX, cmd.ClipMin.X), Y: max32(box.minY, cmd.ClipMin.Y)}
	clipMax := Vec2{X: min32(box.maxX, cmd.ClipMax.X), Y: min32(box.maxY, cmd.ClipMax.Y)}

	if !isWhiteUV {
		// Forms a quad shape but isn't the untextured white-pixel case:
		// record the telemetry bucket, then decline so the two triangles
		// fall through to normal rasterization.
		lo, hi := scaledPixelBounds(t, clipMin, clipMax)
		if hi.x > lo.x && hi.y > lo.y {
			stats.TexturedRectangleArea += float64((hi.x - lo.x) * (hi.y - lo.y))
		}
		logQuadDecision(false, "quad UV is not the white pixel")
		return false
	}

	lo, hi := scaledPixelBounds(t, clipMin, clipMax)
	if hi.x > lo.x && hi.y > lo.y {
		paintRect(t, clipMin, clipMax, col)
		stats.UniformRectangleArea += float64((hi.x - lo.x) * (hi.y - lo.y))
	}
	logQuadDecision(true, "axis-aligned uniform white-pixel quad")
	return true
}

type box2 struct{ minX, maxX, minY, maxY float32 }

func boundingBox(a, b, c Vec2) box2 {
	return box2{
		minX: min32(a.X, min32(b.X, c.X)),
		maxX: max32(a.X, max32(b.X, c.X)),
		minY: min32(a.Y, min32(b.Y, c.Y)),
		maxY: max32(a.Y, max32(b.Y, c.Y)),
	}
}

// onCorner reports whether v is bit-equal to lo or hi — exact
// corner-membership, no tolerance.
func onCorner(v, lo, hi float32) bool {
	return v == lo || v == hi
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
