package imguisw

import "testing"

// TestWalkDrawListDispatchesQuad covers S1 end-to-end through the
// walker (walkDrawList), exercising C6's quad/triangle dispatch.
func TestWalkDrawListDispatchesQuad(t *testing.T) {
	target, _ := newTarget(4, 4)
	reg := newTextureRegistry()
	tex := NewTexture(2, 2, []uint8{255, 255, 255, 255})
	handle := reg.register(tex)
	whiteU, whiteV := tex.WhiteUV()
	white := Vec2{X: whiteU, Y: whiteV}

	corners := [4]Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	col := PackRGBA(0, 255, 0, 255)
	verts := quadVerts(col, white, corners)

	list := &DrawList{
		Vertices: verts,
		Indices:  []uint16{0, 1, 2, 3, 4, 5},
		Cmds: []DrawCmd{
			{ClipMin: Vec2{X: 0, Y: 0}, ClipMax: Vec2{X: 4, Y: 4}, TextureID: handle, ElemCount: 6},
		},
	}

	stats := &Stats{}
	walkDrawList(target, reg, list, DefaultOptions(), stats)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := target.At(x, y); got != col {
				t.Errorf("At(%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(col))
			}
		}
	}
}

// TestWalkDrawListInvokesCallback checks that a callback command is
// invoked exactly once and rasterizes nothing itself.
func TestWalkDrawListInvokesCallback(t *testing.T) {
	target, _ := newTarget(4, 4)
	reg := newTextureRegistry()

	calls := 0
	list := &DrawList{
		Vertices: []DrawVert{},
		Indices:  []uint16{},
		Cmds: []DrawCmd{
			{ElemCount: 0, Callback: func(l *DrawList, c *DrawCmd) { calls++ }},
		},
	}

	stats := &Stats{}
	walkDrawList(target, reg, list, DefaultOptions(), stats)

	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
	if stats.NumTriangles != 0 {
		t.Errorf("NumTriangles = %d, want 0 for a callback-only command", stats.NumTriangles)
	}
}

// TestWalkDrawListPanicsOnNilTexture checks that a non-callback command
// with no bound texture is a contract violation.
func TestWalkDrawListPanicsOnNilTexture(t *testing.T) {
	target, _ := newTarget(2, 2)
	reg := newTextureRegistry()

	list := &DrawList{
		Vertices: []DrawVert{{}, {}, {}},
		Indices:  []uint16{0, 1, 2},
		Cmds:     []DrawCmd{{ElemCount: 3}},
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil texture handle")
		}
	}()
	walkDrawList(target, reg, list, DefaultOptions(), &Stats{})
}

// TestWalkDrawListPanicsOnBadElementCount checks that an element count
// not a multiple of 3 is a contract violation.
func TestWalkDrawListPanicsOnBadElementCount(t *testing.T) {
	target, _ := newTarget(2, 2)
	reg := newTextureRegistry()
	tex := NewTexture(1, 1, []uint8{255})
	handle := reg.register(tex)

	list := &DrawList{
		Vertices: []DrawVert{{}, {}},
		Indices:  []uint16{0, 1},
		Cmds:     []DrawCmd{{TextureID: handle, ElemCount: 2}},
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for bad element count")
		}
	}()
	walkDrawList(target, reg, list, DefaultOptions(), &Stats{})
}
