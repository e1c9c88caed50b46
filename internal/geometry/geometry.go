// Package geometry implements the coverage-planning core: polygon
// primitives, placement generation, coverage repair and verification.
//
// All coordinates are in a single linear unit chosen by the caller
// (the rest of the application works in feet); the package never
// converts units.
package geometry

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrInvalidPolygon is returned for polygons with fewer than 3 vertices.
	ErrInvalidPolygon = errors.New("polygon must have at least 3 vertices")

	// ErrInvalidRadius is returned for a non-positive coverage radius.
	ErrInvalidRadius = errors.New("coverage radius must be positive")
)

// boundaryEpsilon is the tolerance for treating a point as lying on a
// polygon edge. Boundary points are not considered contained.
const boundaryEpsilon = 1e-12

// Point is a 2D coordinate pair.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Polygon is a simple closed ring of vertices. The closing edge from the
// last vertex back to the first is implicit. The ring is assumed simple
// (non-self-intersecting); callers resolve self-intersections upstream.
type Polygon []Point

// Validate reports whether the polygon has enough vertices to be a ring.
func (poly Polygon) Validate() error {
	if len(poly) < 3 {
		return ErrInvalidPolygon
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (poly Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range poly {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Area returns the polygon area, always non-negative (shoelace formula).
func (poly Polygon) Area() float64 {
	return math.Abs(poly.signedArea())
}

func (poly Polygon) signedArea() float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}

// Contains reports whether p lies strictly inside the polygon (even-odd
// ray cast). Points on the boundary are not contained, so lattice points
// that land exactly on a wall are rejected and later re-covered by the
// repair step.
func (poly Polygon) Contains(p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	if poly.onBoundary(p) {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			cross := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < cross {
				inside = !inside
			}
		}
	}
	return inside
}

// onBoundary reports whether p lies on an edge of the ring.
func (poly Polygon) onBoundary(p Point) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if distanceToSegment(p, a, b) <= boundaryEpsilon {
			return true
		}
	}
	return false
}

func distanceToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.DistanceTo(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.DistanceTo(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// Centroid returns the area-weighted centroid. For near-degenerate
// polygons (vanishing area) it falls back to the vertex average to avoid
// dividing by zero. The centroid of a non-convex polygon can fall outside
// the ring; use RepresentativePoint when an interior point is required.
func (poly Polygon) Centroid() Point {
	n := len(poly)
	area := poly.signedArea()
	if n == 0 {
		return Point{}
	}
	if math.Abs(area) < 1e-12 {
		var sum Point
		for _, v := range poly {
			sum.X += v.X
			sum.Y += v.Y
		}
		return Point{X: sum.X / float64(n), Y: sum.Y / float64(n)}
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		f := poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
		cx += (poly[i].X + poly[j].X) * f
		cy += (poly[i].Y + poly[j].Y) * f
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// scanFractions is the ladder of bounding-box heights probed by
// RepresentativePoint, coarsest first.
var scanFractions = []float64{
	0.5, 0.25, 0.75, 0.125, 0.375, 0.625, 0.875,
	0.0625, 0.1875, 0.3125, 0.4375, 0.5625, 0.6875, 0.8125, 0.9375,
}

// RepresentativePoint returns a point guaranteed to lie inside the
// polygon. The centroid is used when it is interior; otherwise horizontal
// scanlines through the bounding box are probed and the midpoint of the
// widest interior span is returned.
func (poly Polygon) RepresentativePoint() Point {
	if c := poly.Centroid(); poly.Contains(c) {
		return c
	}

	_, minY, _, maxY := poly.Bounds()
	height := maxY - minY

	for _, f := range scanFractions {
		y := minY + height*f
		xs := poly.scanlineCrossings(y)
		var best Point
		bestWidth := -1.0
		for i := 0; i+1 < len(xs); i += 2 {
			mid := Point{X: (xs[i] + xs[i+1]) / 2, Y: y}
			if width := xs[i+1] - xs[i]; width > bestWidth && poly.Contains(mid) {
				best, bestWidth = mid, width
			}
		}
		if bestWidth > 0 {
			return best
		}
	}

	// Extremely thin polygons can defeat every scanline; the vertex
	// average is the closest thing to an interior point left.
	return poly.Centroid()
}

// scanlineCrossings returns the sorted x coordinates where the horizontal
// line at y crosses polygon edges.
func (poly Polygon) scanlineCrossings(y float64) []float64 {
	n := len(poly)
	xs := make([]float64, 0, n)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Y > y) != (vj.Y > y) {
			xs = append(xs, (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X)
		}
	}
	sort.Float64s(xs)
	return xs
}
