package imguisw

import "testing"

func TestVec2Cross(t *testing.T) {
	a := Vec2{X: 1, Y: 0}
	b := Vec2{X: 0, Y: 1}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := b.Cross(a); got != -1 {
		t.Errorf("Cross = %v, want -1", got)
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{X: 10, Y: 20}
	got := v.Scale(Vec2{X: 2, Y: 0.5})
	want := Vec2{X: 20, Y: 10}
	if got != want {
		t.Errorf("Scale = %+v, want %+v", got, want)
	}
}
