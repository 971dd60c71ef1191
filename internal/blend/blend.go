// Package blend implements the Porter-Duff SRC_OVER compositing operator:
// in 8-bit fixed point for the rasterizer's fast paths (SourceOver8), and
// in float for the general per-pixel shading path (SourceOverF). Unlike a
// general blend library, this package intentionally implements only
// SRC_OVER — the GUI draw stream never needs another mode — and the
// division is exact integer truncation (no +0.5 rounding term) so
// output is bit reproducible across platforms.
package blend

// SourceOver8 composites source S over destination D, both (r,g,b,a) in
// [0,255], using integer truncating division:
//
//	out.c = (S.c*S.a + D.c*(255-S.a)) / 255   for c in {r,g,b}
//	out.a = S.a
func SourceOver8(sr, sg, sb, sa, dr, dg, db byte) (r, g, b, a byte) {
	invSa := 255 - uint16(sa)
	r = byte((uint16(sr)*uint16(sa) + uint16(dr)*invSa) / 255)
	g = byte((uint16(sg)*uint16(sa) + uint16(dg)*invSa) / 255)
	b = byte((uint16(sb)*uint16(sa) + uint16(db)*invSa) / 255)
	a = sa
	return
}

// SourceOverF composites source over destination in float:
// out = s.a*s + (1-s.a)*d. Callers are expected to
// apply the two short-circuits themselves (skip when s.a <= 0, write
// raw source when s.a >= 1) since those are decided once per fragment
// alongside texture sampling, not inside this helper.
func SourceOverF(sr, sg, sb, sa, dr, dg, db, da float32) (r, g, b, a float32) {
	inv := 1 - sa
	r = sa*sr + inv*dr
	g = sa*sg + inv*dg
	b = sa*sb + inv*db
	a = sa*sa + inv*da
	return
}
