package geometry

import (
	"math"
	"testing"
)

// rect is a 100x50 rectangle used across the package tests.
var rect = Polygon{{0, 0}, {100, 0}, {100, 50}, {0, 50}}

// uShape is non-convex with its centroid inside the notch (outside the ring).
var uShape = Polygon{
	{0, 0}, {10, 0}, {10, 10}, {8, 10}, {8, 2}, {2, 2}, {2, 10}, {0, 10},
}

func TestValidate(t *testing.T) {
	if err := rect.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if err := (Polygon{{0, 0}, {1, 1}}).Validate(); err != ErrInvalidPolygon {
		t.Fatalf("Validate() = %v, want ErrInvalidPolygon", err)
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		name string
		poly Polygon
		p    Point
		want bool
	}{
		{"interior", rect, Point{50, 25}, true},
		{"exterior", rect, Point{150, 25}, false},
		{"vertex excluded", rect, Point{0, 0}, false},
		{"edge excluded", rect, Point{50, 0}, false},
		{"notch excluded", uShape, Point{5, 6}, false},
		{"arm interior", uShape, Point{1, 6}, true},
	}
	for _, tc := range cases {
		if got := tc.poly.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestBounds(t *testing.T) {
	minX, minY, maxX, maxY := rect.Bounds()
	if minX != 0 || minY != 0 || maxX != 100 || maxY != 50 {
		t.Fatalf("Bounds() = %v,%v,%v,%v, want 0,0,100,50", minX, minY, maxX, maxY)
	}
}

func TestArea(t *testing.T) {
	if got := rect.Area(); math.Abs(got-5000) > 1e-9 {
		t.Fatalf("rect Area() = %v, want 5000", got)
	}
	// Clockwise winding must still come out positive.
	cw := Polygon{{0, 0}, {0, 50}, {100, 50}, {100, 0}}
	if got := cw.Area(); math.Abs(got-5000) > 1e-9 {
		t.Fatalf("clockwise Area() = %v, want 5000", got)
	}
	if got := uShape.Area(); math.Abs(got-52) > 1e-9 {
		t.Fatalf("uShape Area() = %v, want 52", got)
	}
}

func TestCentroid(t *testing.T) {
	c := rect.Centroid()
	if math.Abs(c.X-50) > 1e-9 || math.Abs(c.Y-25) > 1e-9 {
		t.Fatalf("rect Centroid() = %v, want (50, 25)", c)
	}

	// The U shape's centroid lands inside the notch, outside the ring.
	if c := uShape.Centroid(); uShape.Contains(c) {
		t.Fatalf("uShape centroid %v unexpectedly interior", c)
	}
}

func TestCentroidDegenerate(t *testing.T) {
	sliver := Polygon{{0, 0}, {10, 0}, {5, 1e-13}}
	c := sliver.Centroid()
	if math.IsNaN(c.X) || math.IsNaN(c.Y) {
		t.Fatalf("degenerate Centroid() = %v, want finite vertex average", c)
	}
	if math.Abs(c.X-5) > 1e-9 {
		t.Fatalf("degenerate Centroid().X = %v, want 5", c.X)
	}
}

func TestRepresentativePointInterior(t *testing.T) {
	polys := []Polygon{
		rect,
		uShape,
		{{0, 0}, {10, 0}, {5, 8}},
		// Concave arrow head.
		{{0, 0}, {10, 5}, {0, 10}, {4, 5}},
	}
	for i, poly := range polys {
		p := poly.RepresentativePoint()
		if !poly.Contains(p) {
			t.Errorf("polygon %d: RepresentativePoint() = %v not interior", i, p)
		}
	}
}
