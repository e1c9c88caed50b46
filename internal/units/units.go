// Package units converts between the display unit system and the feet
// the planner computes in. The system is always passed explicitly; there
// is no ambient unit state.
package units

import "fmt"

// System selects a measurement system.
type System int

const (
	Imperial System = iota
	Metric
)

// Conversion constants.
const (
	ftToM     = 0.3048
	sqftToSqm = 0.092903
)

// Parse resolves a config string to a System. Empty defaults to imperial.
func Parse(name string) (System, error) {
	switch name {
	case "", "imperial":
		return Imperial, nil
	case "metric":
		return Metric, nil
	default:
		return Imperial, fmt.Errorf("unknown unit system %q", name)
	}
}

// ToFeet converts a distance in the given system to feet.
func ToFeet(sys System, val float64) float64 {
	if sys == Imperial {
		return val
	}
	return val / ftToM
}

// FromFeet converts a distance in feet to the given system.
func FromFeet(sys System, val float64) float64 {
	if sys == Imperial {
		return val
	}
	return val * ftToM
}

// ToSquareFeet converts an area in the given system to square feet.
func ToSquareFeet(sys System, val float64) float64 {
	if sys == Imperial {
		return val
	}
	return val / sqftToSqm
}

// FromSquareFeet converts an area in square feet to the given system.
func FromSquareFeet(sys System, val float64) float64 {
	if sys == Imperial {
		return val
	}
	return val * sqftToSqm
}

// DistanceLabel returns the display suffix for distances.
func DistanceLabel(sys System) string {
	if sys == Imperial {
		return "ft"
	}
	return "m"
}

// AreaLabel returns the display suffix for areas.
func AreaLabel(sys System) string {
	if sys == Imperial {
		return "ft²"
	}
	return "m²"
}
