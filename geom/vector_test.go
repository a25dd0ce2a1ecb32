package geom

import "testing"

func TestVector3Add(t *testing.T) {
	a := NewVector3S(1, 2, 3)
	b := NewVector3S(4, 5, 6)
	got := NewVector3().Add(a, b)
	want := NewVector3S(5, 7, 9)
	if !got.Eq(want) {
		t.Errorf("Add(%v,%v) = %v, want %v", a, b, got, want)
	}
}

func TestVector3Sub(t *testing.T) {
	a := NewVector3S(4, 5, 6)
	b := NewVector3S(1, 2, 3)
	got := NewVector3().Sub(a, b)
	want := NewVector3S(3, 3, 3)
	if !got.Eq(want) {
		t.Errorf("Sub(%v,%v) = %v, want %v", a, b, got, want)
	}
}

func TestVector3Cross(t *testing.T) {
	x := NewVector3S(1, 0, 0)
	y := NewVector3S(0, 1, 0)
	got := NewVector3().Cross(x, y)
	want := NewVector3S(0, 0, 1)
	if !got.Eq(want) {
		t.Errorf("Cross(x,y) = %v, want %v", got, want)
	}
}

func TestVector3DotLen(t *testing.T) {
	v := NewVector3S(3, 4, 0)
	if got := v.Len(); got != 5 {
		t.Errorf("Len() = %v, want 5", got)
	}
	if got := v.Dot(v); got != 25 {
		t.Errorf("Dot(v,v) = %v, want 25", got)
	}
}

func TestVector3UnitZero(t *testing.T) {
	tol := DefaultTolerances()
	v := NewVector3S(0, 0, 0)
	v.Unit(tol)
	want := NewVector3S(0, 0, 0)
	if !v.Eq(want) {
		t.Errorf("Unit() of zero vector = %v, want zero", v)
	}
}

func TestVector3UnitNormalizes(t *testing.T) {
	tol := DefaultTolerances()
	v := NewVector3S(3, 0, 4)
	v.Unit(tol)
	if diff := v.Len() - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Unit() length = %v, want 1", v.Len())
	}
}

func TestVector3Lerp(t *testing.T) {
	a := NewVector3S(0, 0, 0)
	b := NewVector3S(10, 10, 10)
	var mid Vector3
	mid.Lerp(a, b, 0.5)
	want := NewVector3S(5, 5, 5)
	if !mid.Eq(want) {
		t.Errorf("Lerp at 0.5 = %v, want %v", mid, want)
	}
}

func TestVector3DistSqr(t *testing.T) {
	a := NewVector3S(0, 0, 0)
	b := NewVector3S(3, 4, 0)
	if got := a.DistSqr(b); got != 25 {
		t.Errorf("DistSqr = %v, want 25", got)
	}
}
