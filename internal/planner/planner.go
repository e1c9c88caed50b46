// Package planner ties the hazard classification and the geometric
// coverage engine together into one analysis run.
package planner

import (
	"fmt"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/config"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/geometry"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/nfpa"

	"github.com/rs/zerolog/log"
)

// Analysis is the result of one planning run: the classification outcome
// plus the three candidate layouts and their verification flags. It is
// immutable once built; a re-run replaces it wholesale.
type Analysis struct {
	Project     *config.Project
	Requirement *nfpa.Requirement

	// Floor is the polygon in feet, the unit every geometric value
	// below is expressed in.
	Floor     geometry.Polygon
	AreaSqFt  float64
	Solutions []geometry.Solution
	Covered   []bool
}

// Run classifies the hazard and computes all candidate placements for
// the project.
func Run(project *config.Project) (*Analysis, error) {
	floor := project.FloorFeet()
	areaSqFt := floor.Area()

	req, err := nfpa.Evaluate(
		project.Hazard.Class,
		project.Hazard.Type,
		project.ParsedRating(),
		areaSqFt,
		project.LiquidAreaSqFt(),
	)
	if err != nil {
		return nil, fmt.Errorf("hazard classification: %w", err)
	}

	log.Info().
		Str("project", project.Name).
		Str("class", project.Hazard.Class).
		Float64("area_sqft", areaSqFt).
		Float64("travel_distance_ft", req.TravelDistance).
		Float64("safety_factor", project.SafetyFactor).
		Msg("Hazard classified")

	solutions, err := geometry.GenerateSolutions(floor, req.TravelDistance, project.SafetyFactor)
	if err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}

	covered := make([]bool, len(solutions))
	for i, sol := range solutions {
		covered[i] = geometry.CheckCoverage(floor, sol.Points, req.TravelDistance, project.SafetyFactor)
		log.Info().
			Str("solution", sol.Name).
			Int("points", len(sol.Points)).
			Bool("covered", covered[i]).
			Msg("Solution computed")
	}

	return &Analysis{
		Project:     project,
		Requirement: req,
		Floor:       floor,
		AreaSqFt:    areaSqFt,
		Solutions:   solutions,
		Covered:     covered,
	}, nil
}

// EffectiveRadius returns the design radius in feet.
func (a *Analysis) EffectiveRadius() float64 {
	return a.Requirement.TravelDistance * a.Project.SafetyFactor
}

// QuantityByDistance returns the unit count the selected layout needs.
func (a *Analysis) QuantityByDistance(solution int) int {
	return len(a.Solutions[solution].Points)
}

// FinalQuantity returns the recommended unit count for the selected
// layout: the larger of the travel-distance and area-rule requirements.
func (a *Analysis) FinalQuantity(solution int) int {
	qty := a.QuantityByDistance(solution)
	if a.Requirement.MinQuantityByArea > qty {
		return a.Requirement.MinQuantityByArea
	}
	return qty
}

// SolutionWarnings returns the classification warnings plus, when the
// layout leaves coverage gaps, the critical placement warning.
func (a *Analysis) SolutionWarnings(solution int) []string {
	warnings := append([]string(nil), a.Requirement.Warnings...)
	if !a.Covered[solution] {
		warnings = append(warnings, fmt.Sprintf(
			"CRITICAL: Extinguisher placement does not fully cover the floor area (Safety Factor %v applied).",
			a.Project.SafetyFactor))
	}
	return warnings
}
