package imguisw

// Options configures a single Paint call. Paint takes no long-lived
// object to configure — Options is a plain comparable struct passed by
// value each frame, so callers can toggle optimizations frame-to-frame
// without retaining anything.
type Options struct {
	// OptimizeRectangles enables the six-vertex axis-aligned quad
	// detector (see tryPaintQuad). When false every triangle pair is
	// rasterized individually even when it forms an axis-aligned rect.
	OptimizeRectangles bool

	// BilinearSample selects bilinear texture sampling over
	// nearest-neighbor when a DrawCmd's texture is bound. Nearest is
	// cheaper and is what most font atlases want; bilinear is smoother
	// for scaled images.
	BilinearSample bool
}

// DefaultOptions returns the recommended Options: the quad detector on,
// nearest-neighbor texture sampling (the font-atlas case).
func DefaultOptions() Options {
	return Options{
		OptimizeRectangles: true,
		BilinearSample:     false,
	}
}
