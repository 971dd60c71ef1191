package imguisw

import (
	"context"
	"log/slog"
)

// Package-level render state: the bound font texture, its registry, and
// the accumulating stats record. Bind/Paint/Unbind are documented as
// single-threaded by contract rather than made safe for concurrent use.
var (
	registry    = newTextureRegistry()
	fontHandle  TextureHandle
	bound       bool
	frameStats  Stats
)

// Bind acquires the font atlas from GUI-provided alpha8 data and
// registers it with the texture registry. alpha must have length
// width*height.
func Bind(width, height int, alpha []uint8) (TextureHandle, error) {
	if bound {
		return 0, ErrAlreadyBound
	}
	tex := NewTexture(width, height, alpha)
	fontHandle = registry.register(tex)
	bound = true

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("imguisw: bound font atlas", "width", width, "height", height, "handle", fontHandle)
	}
	return fontHandle, nil
}

// Unbind releases the font atlas acquired by Bind.
func Unbind() error {
	if !bound {
		return ErrNotBound
	}
	registry.release(fontHandle)
	fontHandle = 0
	bound = false

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("imguisw: unbound font atlas")
	}
	return nil
}

// BindTexture registers an additional alpha8 texture beyond the font
// atlas. In practice the font atlas is the only texture most GUIs ever
// bind, but nothing here forbids others.
func BindTexture(width, height int, alpha []uint8) TextureHandle {
	return registry.register(NewTexture(width, height, alpha))
}

// ReleaseTexture releases a texture registered via BindTexture.
func ReleaseTexture(h TextureHandle) {
	registry.release(h)
}

// Paint derives the point→pixel scale from data's display size versus
// the caller's pixel dimensions, resets the stats record, and walks
// each command list in data. pixels must have length widthPx*heightPx
// and is assumed already cleared by the host.
func Paint(pixels []Packed, widthPx, heightPx int, data *DrawData, opts Options) {
	scale := Vec2{
		X: float32(widthPx) / data.DisplayW,
		Y: float32(heightPx) / data.DisplayH,
	}

	target := newPaintTarget(pixels, widthPx, heightPx, scale)
	frameStats.Reset()

	for i := range data.Lists {
		walkDrawList(target, registry, &data.Lists[i], opts, &frameStats)
	}
}

// CurrentStats returns a copy of the stats accumulated by the most
// recent Paint call.
func CurrentStats() Stats {
	return frameStats
}

// StyleHints is the data RecommendedStyle returns: booleans the host
// applies to its own GUI style object. This package has no compile-time
// dependency on a GUI's style type, so rather than mutating a style
// object directly, the recommendation is exposed as data the host
// applies itself.
type StyleHints struct {
	// DisableEdgeAA requests the GUI disable its own edge anti-aliasing:
	// this backend does no coverage AA, so the GUI's AA geometry only
	// produces thin triangles that rasterize inefficiently here.
	DisableEdgeAA bool
	// DisableRounding requests the GUI disable corner rounding on
	// widgets, for the same reason.
	DisableRounding bool
}

// RecommendedStyle returns the style adjustments that make this backend
// render fastest: no edge AA and no corner rounding, since this
// rasterizer has no coverage AA to spend on smooth edges.
func RecommendedStyle() StyleHints {
	return StyleHints{DisableEdgeAA: true, DisableRounding: true}
}
