package imguisw

import "testing"

// TestPackUnpackIdempotence checks that for every packed color P,
// pack(unpack(P)) == P when channels are whole bytes.
func TestPackUnpackIdempotence(t *testing.T) {
	samples := []Packed{
		PackRGBA(0, 0, 0, 0),
		PackRGBA(255, 255, 255, 255),
		PackRGBA(128, 64, 32, 200),
		PackRGBA(1, 254, 17, 99),
	}
	for _, p := range samples {
		got := PackF32(p.F32())
		if got != p {
			t.Errorf("PackF32(F32(%#08x)) = %#08x, want %#08x", uint32(p), uint32(got), uint32(p))
		}
	}
}

func TestPackRGBAShiftOrder(t *testing.T) {
	p := PackRGBA(0x11, 0x22, 0x33, 0x44)
	if uint32(p) != 0x44332211 {
		t.Errorf("PackRGBA = %#08x, want 0x44332211 (R,G,B,A low-to-high)", uint32(p))
	}
}
