// Package imguisw is a CPU software rasterizer for an immediate-mode
// GUI's draw-command stream.
//
// # Overview
//
// The host GUI builds, per frame, a list of command lists — each an
// indexed triangle mesh (DrawVert positions/UVs/colors, a uint16 index
// buffer) plus an ordered list of DrawCmd blocks, each naming a scissor
// rectangle, a bound texture, and a slice of the index buffer. imguisw
// walks that stream and writes blended pixels into a caller-owned packed
// framebuffer — no window, no event loop, no font rasterization: those
// stay the host's job.
//
// # Quick start
//
//	imguisw.Bind(atlasWidth, atlasHeight, atlasAlphaBytes)
//	// ... each frame:
//	imguisw.Paint(pixels, width, height, drawData, imguisw.DefaultOptions())
//	// ... at shutdown:
//	imguisw.Unbind()
//
// # Fast paths
//
// Two optimizations dominate the time budget: six-vertex axis-aligned
// quads are detected and routed to a flat scanline fill instead of two
// triangle rasterizations (see tryPaintQuad), and triangles whose three
// vertex colors are bit-equal and whose three UVs are bit-equal (no
// texture variation to sample) skip per-pixel float shading entirely
// (see raster.go).
//
// # Coordinate system
//
// Vertex positions arrive in GUI points; PaintTarget carries a
// (ScaleX, ScaleY) vector that converts point space to the pixel space
// of the output buffer. Origin is top-left, X increases right, Y
// increases down.
//
// # Concurrency
//
// Paint is synchronous and single-threaded: it returns once every pixel
// for the frame has been written. The bound texture and the Stats record
// are not safe for concurrent Paint calls — see Stats.
package imguisw
