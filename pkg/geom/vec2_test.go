package geom

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Cross(t *testing.T) {
	a := Vec2{1, 0}
	b := Vec2{0, 1}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := b.Cross(a); got != -1 {
		t.Errorf("Vec2.Cross() reversed = %v, want -1", got)
	}
}

func TestVec2Perp(t *testing.T) {
	// Travelling along +X, the right-hand normal points to -Y.
	got := Vec2{1, 0}.Perp()
	want := Vec2{0, -1}
	if got != want {
		t.Errorf("Vec2.Perp() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec2{}.Normalize()
	if zero != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero vector", zero)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 20}
	got := a.Lerp(b, 0.5)
	want := Vec2{5, 10}
	if got != want {
		t.Errorf("Vec2.Lerp(0.5) = %v, want %v", got, want)
	}
}
