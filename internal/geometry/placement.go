package geometry

import "math"

// packingMargin shrinks the theoretical packing spacings slightly so the
// lattice overlaps rather than abuts at the coverage radius.
const packingMargin = 0.95

// insertionStep is the walk increment, in coordinate units, used by the
// point-insertion search.
const insertionStep = 2.0

// GridPlacement scans a rectangular lattice over the polygon's bounding
// box and keeps the interior points, then repairs the set so every
// polygon vertex is covered. offsetX/offsetY shift the lattice origin as
// fractions of the cell spacing (0 for the standard grid, 0.5 for the
// offset variant).
func GridPlacement(poly Polygon, radius, offsetX, offsetY float64) []Point {
	spacing := radius * math.Sqrt2 * packingMargin
	minX, minY, maxX, maxY := poly.Bounds()

	var points []Point
	startX := minX + spacing*offsetX
	startY := minY + spacing*offsetY
	for x := startX; x < maxX+spacing; x += spacing {
		for y := startY; y < maxY+spacing; y += spacing {
			if p := (Point{X: x, Y: y}); poly.Contains(p) {
				points = append(points, p)
			}
		}
	}
	return EnsureCoverage(poly, points, radius)
}

// HexPlacement scans a hexagonally staggered lattice (odd rows shifted by
// half a column) over the polygon's bounding box, then repairs the set.
func HexPlacement(poly Polygon, radius float64) []Point {
	spacingX := radius * math.Sqrt(3) * packingMargin
	spacingY := radius * 1.5 * packingMargin
	minX, minY, maxX, maxY := poly.Bounds()

	var points []Point
	row := 0
	for y := minY + radius/2; y < maxY+radius; y += spacingY {
		offset := 0.0
		if row%2 != 0 {
			offset = spacingX / 2
		}
		for x := minX + offset + radius/2; x < maxX+radius; x += spacingX {
			if p := (Point{X: x, Y: y}); poly.Contains(p) {
				points = append(points, p)
			}
		}
		row++
	}
	return EnsureCoverage(poly, points, radius)
}

// EnsureCoverage augments a placement set until every polygon vertex is
// within radius of some placement point. An empty input set is seeded
// with one interior point, so the result is never empty for a valid
// polygon. Only vertices are checked, not interior points of long edges,
// so the guarantee is per-corner rather than per-boundary-point.
//
// Inserted points are appended after the lattice points, and each vertex
// is checked against the set as augmented so far.
func EnsureCoverage(poly Polygon, points []Point, radius float64) []Point {
	final := make([]Point, len(points))
	copy(final, points)

	if len(final) == 0 {
		if c := poly.Centroid(); poly.Contains(c) {
			final = append(final, c)
		} else {
			final = append(final, poly.RepresentativePoint())
		}
	}

	for _, vertex := range poly {
		if nearestDistance(final, vertex) > radius {
			final = append(final, FindInternalSpot(poly, vertex))
		}
	}
	return final
}

// nearestDistance returns the distance from p to the closest point in the set.
func nearestDistance(points []Point, p Point) float64 {
	best := math.Inf(1)
	for _, q := range points {
		if d := p.DistanceTo(q); d < best {
			best = d
		}
	}
	return best
}

// FindInternalSpot walks from an uncovered vertex toward the polygon's
// representative interior point in fixed steps and returns the first
// strictly-interior point found. The walk always terminates: if no step
// lands inside, the representative point itself (interior by
// construction) is returned. Stepping toward the interior anchor is a
// placement heuristic, not a nearest-point search.
func FindInternalSpot(poly Polygon, vertex Point) Point {
	target := poly.RepresentativePoint()
	vecX := target.X - vertex.X
	vecY := target.Y - vertex.Y
	dist := math.Hypot(vecX, vecY)
	if dist == 0 {
		return target
	}

	steps := int(dist / insertionStep)
	for i := 1; i < steps; i++ {
		ratio := float64(i) * insertionStep / dist
		candidate := Point{X: vertex.X + vecX*ratio, Y: vertex.Y + vecY*ratio}
		if poly.Contains(candidate) {
			return candidate
		}
	}
	return target
}
