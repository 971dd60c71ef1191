package imguisw

import "github.com/gogpu/imguisw/internal/sample"

// TextureHandle is an opaque token identifying a bound texture. The GUI
// layer stores it inside a DrawCmd and never dereferences it, avoiding
// a raw-pointer-cast pattern while keeping the handle opaque to the
// caller.
type TextureHandle uint32

// zeroHandle is never issued by register; a DrawCmd carrying it is the
// nil-texture contract violation.
const zeroHandle TextureHandle = 0

// Texture is an immutable alpha8 atlas: width*height bytes, one alpha
// value per texel. The GUI's font atlas is the texture bound in
// practice; its top-left texel is conventionally opaque white (255),
// used to paint untextured geometry through the same textured pipeline.
type Texture struct {
	width, height int
	alpha         []uint8
}

// NewTexture wraps caller-owned alpha8 pixel data. len(alpha) must equal
// width*height; callers that violate this will see AlphaAt panic on an
// out-of-range access, which is itself evidence of a broken bind call.
func NewTexture(width, height int, alpha []uint8) *Texture {
	return &Texture{width: width, height: height, alpha: alpha}
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// AlphaAt returns the alpha byte at (x,y). Satisfies sample.Atlas.
func (t *Texture) AlphaAt(x, y int) uint8 {
	return t.alpha[y*t.width+x]
}

// WhiteUV returns the GUI's canonical "white pixel" UV for this
// texture: the texel-center coordinate of (0,0), used to paint
// untextured geometry through the textured pipeline.
func (t *Texture) WhiteUV() (u, v float32) {
	return 0.5 / float32(t.width), 0.5 / float32(t.height)
}

var _ sample.Atlas = (*Texture)(nil)

// TextureRegistry maps opaque handles to bound textures. One instance
// backs Bind/Unbind/BindTexture/ReleaseTexture; the font atlas occupies
// the handle returned by Bind, and BindTexture lets a host register
// additional alpha8 textures beyond the font atlas.
type TextureRegistry struct {
	next     uint32
	textures map[TextureHandle]*Texture
}

func newTextureRegistry() *TextureRegistry {
	return &TextureRegistry{textures: make(map[TextureHandle]*Texture)}
}

// register allocates a fresh handle for tex and stores it.
func (r *TextureRegistry) register(tex *Texture) TextureHandle {
	r.next++
	h := TextureHandle(r.next)
	r.textures[h] = tex
	return h
}

// release removes a handle from the registry.
func (r *TextureRegistry) release(h TextureHandle) {
	delete(r.textures, h)
}

// lookup resolves a handle to its texture, or nil if the handle is
// zero or unknown. A nil result on a non-callback command is the
// contract violation Paint panics on.
func (r *TextureRegistry) lookup(h TextureHandle) *Texture {
	if h == zeroHandle {
		return nil
	}
	return r.textures[h]
}
