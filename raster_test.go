package imguisw

import "testing"

func newTarget(w, h int) (*PaintTarget, []Packed) {
	pixels := make([]Packed, w*h)
	return newPaintTarget(pixels, w, h, Vec2{X: 1, Y: 1}), pixels
}

// TestRasterizeTriangleHalfPlane checks a 10x10 target, one uniform
// white triangle (0,0)-(10,0)-(0,10), no texture; pixels with
// x+y < 10 at their centers should be painted.
func TestRasterizeTriangleHalfPlane(t *testing.T) {
	target, _ := newTarget(10, 10)
	white := PackRGBA(255, 255, 255, 255)
	v0 := DrawVert{Pos: Vec2{X: 0, Y: 0}, Col: white}
	v1 := DrawVert{Pos: Vec2{X: 10, Y: 0}, Col: white}
	v2 := DrawVert{Pos: Vec2{X: 0, Y: 10}, Col: white}

	stats := &Stats{}
	rasterizeTriangle(target, nil, Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 10}, v0, v1, v2, DefaultOptions(), stats)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := float64(x)+0.5+float64(y)+0.5 < 10
			got := target.At(x, y) == white
			if got != want {
				t.Errorf("pixel (%d,%d) painted=%v, want %v", x, y, got, want)
			}
		}
	}
	if stats.NumTriangles != 1 {
		t.Errorf("NumTriangles = %d, want 1", stats.NumTriangles)
	}
	if stats.UniformTriangleArea <= 0 {
		t.Error("UniformTriangleArea should be positive")
	}
}

// TestRasterizeDegenerateTriangleNoop checks that a zero-area
// triangle leaves the buffer untouched but still counts toward
// NumTriangles.
func TestRasterizeDegenerateTriangleNoop(t *testing.T) {
	target, pixels := newTarget(2, 2)
	v := DrawVert{Pos: Vec2{X: 1, Y: 1}, Col: PackRGBA(1, 2, 3, 4)}

	stats := &Stats{}
	rasterizeTriangle(target, nil, Vec2{X: 0, Y: 0}, Vec2{X: 2, Y: 2}, v, v, v, DefaultOptions(), stats)

	for _, p := range pixels {
		if p != 0 {
			t.Fatal("degenerate triangle modified a pixel")
		}
	}
	if stats.NumTriangles != 1 {
		t.Errorf("NumTriangles = %d, want 1 (counted even though zero-area)", stats.NumTriangles)
	}
	if stats.UniformTriangleArea != 0 {
		t.Error("degenerate triangle should not accumulate area")
	}
}

// TestRasterizeScissorContainment checks that no pixel outside the
// scissor rectangle is modified.
func TestRasterizeScissorContainment(t *testing.T) {
	target, _ := newTarget(10, 10)
	white := PackRGBA(255, 255, 255, 255)
	v0 := DrawVert{Pos: Vec2{X: 0, Y: 0}, Col: white}
	v1 := DrawVert{Pos: Vec2{X: 10, Y: 0}, Col: white}
	v2 := DrawVert{Pos: Vec2{X: 0, Y: 10}, Col: white}

	stats := &Stats{}
	rasterizeTriangle(target, nil, Vec2{X: 2, Y: 2}, Vec2{X: 5, Y: 5}, v0, v1, v2, DefaultOptions(), stats)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := target.At(x, y) == white
			if !inside && got {
				t.Errorf("pixel (%d,%d) outside scissor was painted", x, y)
			}
		}
	}
}

// TestRasterizeTexturedNearestSample checks nearest-neighbor sampling
// of a textured triangle.
func TestRasterizeTexturedNearestSample(t *testing.T) {
	target, _ := newTarget(2, 2)
	tex := NewTexture(2, 2, []uint8{255, 255, 255, 255})

	// Per-vertex UVs vary, so this triangle is "textured" even though the
	// uniform color below could otherwise take the untextured fast path;
	// the atlas is solid white so the sampled texel is always 1.0 and
	// doesn't itself perturb the result.
	col := PackRGBA(100, 200, 50, 200)
	v0 := DrawVert{Pos: Vec2{X: 0, Y: 0}, UV: Vec2{X: 0.1, Y: 0.1}, Col: col}
	v1 := DrawVert{Pos: Vec2{X: 2, Y: 0}, UV: Vec2{X: 0.9, Y: 0.1}, Col: col}
	v2 := DrawVert{Pos: Vec2{X: 0, Y: 2}, UV: Vec2{X: 0.1, Y: 0.9}, Col: col}

	opts := Options{OptimizeRectangles: false, BilinearSample: false}
	stats := &Stats{}
	rasterizeTriangle(target, tex, Vec2{X: 0, Y: 0}, Vec2{X: 2, Y: 2}, v0, v1, v2, opts, stats)

	// SRC_OVER of col (alpha 200/255) over a zero-cleared pixel: not a
	// raw copy, since source alpha is below 1.
	r, g, b, a := target.At(0, 0).RGBA()
	if r != 78 || g != 157 || b != 39 || a != 157 {
		t.Errorf("textured pixel = (%d,%d,%d,%d), want (78,157,39,157)", r, g, b, a)
	}
}
