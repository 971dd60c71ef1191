package imguisw

// DrawVert is one vertex of a command list's mesh: a position in
// GUI-point coordinates, a texture coordinate normalized to [0,1], and
// a packed color.
type DrawVert struct {
	Pos Vec2
	UV  Vec2
	Col Packed
}

// DrawCallback is a user escape hatch: invoked with the command list
// and command it was attached to, exactly once, at its position in the
// command sequence. The core never inspects what it does.
type DrawCallback func(list *DrawList, cmd *DrawCmd)

// DrawCmd is one command block: a scissor rectangle in point space, a
// texture handle, the count of indices it consumes from the command
// list's index array, and an optional callback. Command blocks of a
// command list consume the index array consecutively in declaration
// order.
type DrawCmd struct {
	ClipMin, ClipMax Vec2
	TextureID        TextureHandle
	ElemCount         int
	Callback          DrawCallback
}

// DrawList is one command list: a vertex array, an index array, and an
// ordered slice of command blocks walked by C6.
type DrawList struct {
	Vertices []DrawVert
	Indices  []uint16
	Cmds     []DrawCmd
}

// DrawData is a frame's full draw stream: the command lists C7 hands
// to C6, one at a time, plus the display size in GUI points used to
// derive the frame's point→pixel scale.
type DrawData struct {
	Lists              []DrawList
	DisplayW, DisplayH float32
}

// walkDrawList is C6: it iterates list's command blocks, honoring
// callbacks, and dispatches triangles to the quad detector (C5) or the
// triangle rasterizer (C4) as appropriate.
func walkDrawList(t *PaintTarget, reg *TextureRegistry, list *DrawList, opts Options, stats *Stats) {
	cursor := 0
	for ci := range list.Cmds {
		cmd := &list.Cmds[ci]

		if cmd.ElemCount%3 != 0 {
			panic(newContractViolation(errBadElementCount))
		}

		if cmd.Callback != nil {
			cmd.Callback(list, cmd)
			cursor += cmd.ElemCount
			continue
		}

		tex := reg.lookup(cmd.TextureID)
		if tex == nil {
			panic(newContractViolation(errNilTexture))
		}

		end := cursor + cmd.ElemCount
		for cursor < end {
			remaining := end - cursor
			if opts.OptimizeRectangles && remaining >= 6 {
				if ok := tryPaintQuad(t, tex, cmd, list, cursor, stats); ok {
					cursor += 6
					continue
				}
			}
			paintTriangleAt(t, tex, cmd, list, cursor, opts, stats)
			cursor += 3
		}
	}
}

// paintTriangleAt reads three consecutive indices starting at cursor
// and rasterizes the triangle they describe.
func paintTriangleAt(t *PaintTarget, tex *Texture, cmd *DrawCmd, list *DrawList, cursor int, opts Options, stats *Stats) {
	i0, i1, i2 := vertexIndex(list, cursor), vertexIndex(list, cursor+1), vertexIndex(list, cursor+2)
	v0, v1, v2 := list.Vertices[i0], list.Vertices[i1], list.Vertices[i2]
	rasterizeTriangle(t, tex, cmd.ClipMin, cmd.ClipMax, v0, v1, v2, opts, stats)
}

// vertexIndex resolves index list.Indices[cursor], panicking with a
// ContractViolationError if it falls outside the vertex array.
func vertexIndex(list *DrawList, cursor int) uint16 {
	if cursor < 0 || cursor >= len(list.Indices) {
		panic(newContractViolation(errIndexOutOfRange))
	}
	idx := list.Indices[cursor]
	if int(idx) >= len(list.Vertices) {
		panic(newContractViolation(errIndexOutOfRange))
	}
	return idx
}
