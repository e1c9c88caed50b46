package nfpa

import (
	"fmt"
	"math"
	"strings"
)

// Hazard classes per NFPA 10.
const (
	ClassLight    = "Light"
	ClassOrdinary = "Ordinary"
	ClassExtra    = "Extra"
)

// Hazard types. The type string selects which rule set applies; matching
// is by substring ("Class A", "Spill", ...).
const (
	TypeClassA           = "Class A (Ordinary Combustibles)"
	TypeSpill            = "Class B (Flammable Liquid Spill)"
	TypeAppreciableDepth = "Class B (Appreciable Depth)"
	TypeClassC           = "Class C (Electrical)"
	TypeClassD           = "Class D (Combustible Metal)"
	TypeClassK           = "Class K (Cooking Media)"
)

// classARule holds the Class A area limits for one hazard class, in ft².
type classARule struct {
	MaxAreaPerUnitA float64
	MaxAreaPerExt   float64
}

// classATable is the NFPA 10 table 6.2.1.1 area rule data.
var classATable = map[string]classARule{
	ClassLight:    {MaxAreaPerUnitA: 3000, MaxAreaPerExt: 11250},
	ClassOrdinary: {MaxAreaPerUnitA: 1500, MaxAreaPerExt: 11250},
	ClassExtra:    {MaxAreaPerUnitA: 1000, MaxAreaPerExt: 11250},
}

// maxAppreciableDepthArea is the largest flammable-liquid surface, in
// ft², that portable extinguishers may protect alone.
const maxAppreciableDepthArea = 10.0

// Requirement is the outcome of a hazard classification: the base travel
// distance driving the coverage radius, the unit count demanded by the
// area rule, and any compliance warnings. The geometric core consumes
// TravelDistance as an opaque input.
type Requirement struct {
	TravelDistance    float64  `json:"travel_distance_ft"`
	MinQuantityByArea int      `json:"min_quantity_by_area"`
	Warnings          []string `json:"warnings,omitempty"`
}

// Evaluate applies the NFPA 10 rules for the given hazard class and type
// to a parsed rating and floor area (ft²). liquidArea is the flammable
// liquid surface for appreciable-depth hazards, in ft², ignored
// otherwise. An appreciable-depth surface above 10 ft² is a hard code
// violation and returns an error.
func Evaluate(hazardClass, hazardType string, rating Rating, areaSqFt, liquidAreaSqFt float64) (*Requirement, error) {
	req := &Requirement{TravelDistance: 75}

	switch {
	case strings.Contains(hazardType, "Class A"):
		rule, ok := classATable[hazardClass]
		if !ok {
			return nil, fmt.Errorf("unknown hazard class %q", hazardClass)
		}
		switch hazardClass {
		case ClassLight, ClassOrdinary:
			if rating.A < 2 {
				req.Warnings = append(req.Warnings, hazardClass+" Hazard requires 2-A min.")
			}
		case ClassExtra:
			if rating.A < 4 {
				req.Warnings = append(req.Warnings, "Extra Hazard requires 4-A min (or two 2.5 gal water units).")
			}
		}
		maxAreaPerUnit := math.Min(float64(rating.A)*rule.MaxAreaPerUnitA, rule.MaxAreaPerExt)
		if maxAreaPerUnit > 0 {
			req.MinQuantityByArea = int(math.Ceil(areaSqFt / maxAreaPerUnit))
		}

	case strings.Contains(hazardType, "Spill"):
		req.TravelDistance = 30
		switch hazardClass {
		case ClassLight:
			if rating.B >= 10 {
				req.TravelDistance = 50
			} else if rating.B < 5 {
				req.Warnings = append(req.Warnings, "Light Hazard Spill requires 5-B min.")
			}
		case ClassOrdinary:
			if rating.B >= 20 {
				req.TravelDistance = 50
			} else if rating.B < 10 {
				req.Warnings = append(req.Warnings, "Ordinary Hazard Spill requires 10-B min.")
			}
		case ClassExtra:
			if rating.B >= 80 {
				req.TravelDistance = 50
			} else if rating.B < 40 {
				req.Warnings = append(req.Warnings, "Extra Hazard Spill requires 40-B min.")
			}
		}

	case strings.Contains(hazardType, "Appreciable Depth"):
		req.TravelDistance = 50
		if liquidAreaSqFt > maxAppreciableDepthArea {
			return nil, fmt.Errorf(
				"portable fire extinguishers shall not be the sole protection for flammable liquid hazards of appreciable depth over %.0f ft² (surface is %.2f ft²)",
				maxAppreciableDepthArea, liquidAreaSqFt)
		}
		if reqB := liquidAreaSqFt * 2; float64(rating.B) < reqB {
			req.Warnings = append(req.Warnings,
				fmt.Sprintf("Rating too low. Need %.0f-B (Dry Chem). Foam allows less.", reqB))
		}

	case strings.Contains(hazardType, "Class C"):
		if !rating.C {
			req.Warnings = append(req.Warnings, "Must be Class C listed (Non-Conductive).")
		}
		if rating.A > 0 && rating.B > 0 && rating.C {
			req.Warnings = append(req.Warnings,
				"WARNING: Dry chemical extinguishers should not be used on sensitive electronic equipment (NFPA 10 5.5.4.6.2).")
		}

	case strings.Contains(hazardType, "Class K"):
		req.TravelDistance = 30
		if !rating.K {
			req.Warnings = append(req.Warnings, "Must be Class K listed.")
		}

	case strings.Contains(hazardType, "Class D"):
		if !rating.D {
			req.Warnings = append(req.Warnings, "Must be Class D listed.")
		}

	default:
		return nil, fmt.Errorf("unknown hazard type %q", hazardType)
	}

	return req, nil
}
