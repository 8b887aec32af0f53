package engine

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func xyzEq(a, b Xyz) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestXyzArithmetic(t *testing.T) {
	a := Xyz{1, 2, 3}
	b := Xyz{4, -2, 1}

	if got := a.Add(b); got != (Xyz{5, 0, 4}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Xyz{-3, 4, 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Xyz{4, -4, 3}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Midpoint(b); got != (Xyz{2.5, 0, 2}) {
		t.Errorf("Midpoint = %v", got)
	}
}

func TestXyzRotate(t *testing.T) {
	tests := []struct {
		name    string
		in      Xyz
		degrees float64
		want    Xyz
	}{
		{"zero angle", Xyz{3, 4, 5}, 0, Xyz{3, 4, 5}},
		{"quarter turn", Xyz{1, 0, 0}, 90, Xyz{0, 1, 0}},
		{"half turn", Xyz{1, 0, 7}, 180, Xyz{-1, 0, 7}},
		{"negative quarter", Xyz{0, 1, 0}, -90, Xyz{1, 0, 0}},
		{"z passthrough", Xyz{2, 0, 9}, 90, Xyz{0, 2, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.degrees)
			if !xyzEq(got, tt.want) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.degrees, got, tt.want)
			}
		})
	}
}

func TestXyzDistance(t *testing.T) {
	a := Xyz{0, 0, 0}
	b := Xyz{3, 4, 100}
	if got := a.DistanceTo(b); !approxEq(got, 5) {
		t.Errorf("DistanceTo = %v, want 5 (z must not contribute)", got)
	}
}

func TestBoundsUnionContains(t *testing.T) {
	b := BoundsAround(Xyz{0, 0, 0}, Xyz{10, 10, 0})
	o := BoundsAround(Xyz{5, 5, 0}, Xyz{20, 8, 0})
	u := b.Union(o)

	if u.Min != (Xyz{0, 0, 0}) || u.Max.X != 20 || u.Max.Y != 10 {
		t.Errorf("Union = %+v", u)
	}
	if !u.Contains(Xyz{15, 9, 0}) {
		t.Error("Union should contain (15,9)")
	}
	if u.Contains(Xyz{21, 5, 0}) {
		t.Error("Union should exclude (21,5)")
	}
	if c := u.Center(); c != (Xyz{10, 5, 0}) {
		t.Errorf("Center = %v", c)
	}
}
