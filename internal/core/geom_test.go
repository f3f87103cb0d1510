package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point2D
		expected float64
	}{
		{"same point", Point2D{3, 4}, Point2D{3, 4}, 0},
		{"3-4-5 triangle", Point2D{}, Point2D{3, 4}, 5},
		{"negative coordinates", Point2D{-1, -1}, Point2D{2, 3}, 5},
		{"horizontal", Point2D{10, 0}, Point2D{-5, 0}, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Distance(tc.b); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Distance(tc.a); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p        Point2D
		v        Vector2D
		elapsed  int64
		expected Point2D
	}{
		{"null vector", Point2D{5, 5}, NullVector(), 1000, Point2D{5, 5}},
		{"zero elapsed", Point2D{5, 5}, Vector2D{1, 1}, 0, Point2D{5, 5}},
		{"unit per ms", Point2D{}, Vector2D{1, -1}, 16, Point2D{16, -16}},
		{"fractional speed", Point2D{100, 200}, Vector2D{0.5, 0.25}, 40, Point2D{120, 210}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.Add(tc.v, tc.elapsed)
			if math.Abs(got.X-tc.expected.X) > eps || math.Abs(got.Y-tc.expected.Y) > eps {
				t.Errorf("Add() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVectorOps(t *testing.T) {
	v := Vector2D{3, 4}

	if got := v.Scale(2); got != (Vector2D{6, 8}) {
		t.Errorf("Scale(2) = %+v, expected {6 8}", got)
	}
}

func TestBoundsInsetAndClamp(t *testing.T) {
	b := NewBounds(1600, 900)

	in := b.Inset(75)
	if in.MinX != 75 || in.MaxX != 1525 || in.MinY != 75 || in.MaxY != 825 {
		t.Errorf("Inset(75) = %+v", in)
	}

	// Oversized margins collapse to the centre instead of inverting
	collapsed := NewBounds(100, 50).Inset(60)
	if collapsed.MinX != 50 || collapsed.MaxX != 50 || collapsed.MinY != 25 || collapsed.MaxY != 25 {
		t.Errorf("Inset(60) = %+v, expected collapsed centre", collapsed)
	}

	if got := b.Clamp(Point2D{-10, 1000}); got != (Point2D{0, 900}) {
		t.Errorf("Clamp() = %+v, expected {0 900}", got)
	}
	if !b.Contains(Point2D{1600, 0}) {
		t.Error("Contains should include edges")
	}
	if b.Contains(Point2D{1600.5, 0}) {
		t.Error("Contains should exclude points past the edge")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 {
		t.Errorf("Right() = %d, expected 30", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := Orange().Hex(); got != "#ffa500" {
		t.Errorf("Orange().Hex() = %q, expected #ffa500", got)
	}
	if got := Black().Hex(); got != "#000000" {
		t.Errorf("Black().Hex() = %q, expected #000000", got)
	}
}
