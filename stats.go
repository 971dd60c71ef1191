package imguisw

import "log/slog"

// Stats accumulates per-frame counters, reset at the start of every
// Paint call. It carries no min/max-area histogram — just the area and
// count buckets that cost nothing extra to track during rasterization.
//
// Stats is not itself a package-level global; Paint owns a single
// package-level instance since there is exactly one bound renderer at a
// time (see paint.go), making the lack of concurrency-safety explicit
// rather than hidden behind a mutex. Callers needing per-frame isolation
// should read Stats immediately after Paint returns, before the next
// Paint call.
type Stats struct {
	// Area, in pixels, attributed to each path. Triangle buckets add the
	// triangle's full area before scissor clipping; rectangle buckets add
	// the clipped rectangle area. TexturedRectangleArea counts quads the
	// detector declined, which are then rasterized as triangles.
	UniformTriangleArea  float64
	TexturedTriangleArea float64
	OtherTriangleArea    float64
	UniformRectangleArea float64
	TexturedRectangleArea float64

	// NumTriangles counts every triangle the rasterizer was invoked for,
	// including zero-determinant ones: a degenerate triangle still
	// increments this counter even though it contributes no area and no
	// pixels to the area buckets below.
	NumTriangles int

	// ThinTriangles and ThinTriangleArea track triangles spanning less
	// than 1.5 pixels in either axis — statistics only, does not change
	// rasterization behavior.
	ThinTriangles  int
	ThinTriangleArea float64
}

// Reset zeroes every counter. Called at the start of Paint.
func (s *Stats) Reset() {
	*s = Stats{}
}

// LogAttrs returns the stats as slog attributes, for a caller that
// wants to log a frame summary at Debug level.
func (s *Stats) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Float64("uniform_triangle_area", s.UniformTriangleArea),
		slog.Float64("textured_triangle_area", s.TexturedTriangleArea),
		slog.Float64("other_triangle_area", s.OtherTriangleArea),
		slog.Float64("uniform_rectangle_area", s.UniformRectangleArea),
		slog.Float64("textured_rectangle_area", s.TexturedRectangleArea),
		slog.Int("num_triangles", s.NumTriangles),
		slog.Int("thin_triangles", s.ThinTriangles),
		slog.Float64("thin_triangle_area", s.ThinTriangleArea),
	}
}
