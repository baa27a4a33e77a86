package vmath

import "testing"

func TestV3FOps(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}

	if got := V3FAdd(a, b); got != (Vec3F{5, 7, 9}) {
		t.Errorf("V3FAdd: got %v", got)
	}
	if got := V3FScale(a, 2); got != (Vec3F{2, 4, 6}) {
		t.Errorf("V3FScale: got %v", got)
	}
}

func TestV3FPredicates(t *testing.T) {
	if !V3FIsZero(Zero) || V3FIsZero(PosX) {
		t.Error("V3FIsZero mismatch")
	}
	if !V3FApproxEqual(Vec3F{X: 1}, Vec3F{X: 1 + 1e-10}, 1e-9) {
		t.Error("Expected vectors within eps to compare equal")
	}
	if V3FApproxEqual(Vec3F{Z: 1}, Vec3F{Z: 1.1}, 1e-9) {
		t.Error("Expected vectors outside eps to differ")
	}
}

func TestVec3FString(t *testing.T) {
	if s := (Vec3F{X: -0.001, Y: 0.25, Z: -5}).String(); s != "(0.00, 0.25, -5.00)" {
		t.Errorf("Unexpected format %q", s)
	}
}
