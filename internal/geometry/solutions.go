package geometry

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Solution is one named candidate placement layout.
type Solution struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Solution names, in display order.
const (
	NameStandardGrid = "Standard Grid"
	NameOffsetGrid   = "Offset Grid"
	NameHexPacking   = "Hexagonal Packing"
)

// GenerateSolutions produces the three candidate layouts for a polygon:
// standard grid, half-cell offset grid and hexagonal packing, always in
// that order. The effective coverage radius is baseDistance multiplied by
// the safety factor.
//
// The three strategies share no state and are computed concurrently; the
// result slice preserves the fixed display order.
func GenerateSolutions(poly Polygon, baseDistance, safetyFactor float64) ([]Solution, error) {
	if err := poly.Validate(); err != nil {
		return nil, err
	}
	radius := baseDistance * safetyFactor
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}

	solutions := make([]Solution, 3)
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		solutions[0] = Solution{Name: NameStandardGrid, Points: GridPlacement(poly, radius, 0, 0)}
	}()
	go func() {
		defer wg.Done()
		solutions[1] = Solution{Name: NameOffsetGrid, Points: GridPlacement(poly, radius, 0.5, 0.5)}
	}()
	go func() {
		defer wg.Done()
		solutions[2] = Solution{Name: NameHexPacking, Points: HexPlacement(poly, radius)}
	}()
	wg.Wait()

	for _, sol := range solutions {
		log.Debug().
			Str("solution", sol.Name).
			Int("points", len(sol.Points)).
			Float64("radius", radius).
			Msg("Placement computed")
	}

	return solutions, nil
}
