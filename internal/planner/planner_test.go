package planner

import (
	"strings"
	"testing"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/config"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/geometry"
)

func testProject() *config.Project {
	return &config.Project{
		Name: "Warehouse A",
		Hazard: config.Hazard{
			Class:  "Ordinary",
			Type:   "Class A (Ordinary Combustibles)",
			Rating: "4-A:60-B:C",
		},
		SafetyFactor: 0.9,
		Floor:        geometry.Polygon{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 50}},
		OutputDir:    "out",
	}
}

func TestRun(t *testing.T) {
	analysis, err := Run(testProject())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(analysis.Solutions) != 3 || len(analysis.Covered) != 3 {
		t.Fatalf("got %d solutions / %d flags, want 3 / 3", len(analysis.Solutions), len(analysis.Covered))
	}
	if analysis.AreaSqFt != 5000 {
		t.Errorf("AreaSqFt = %v, want 5000", analysis.AreaSqFt)
	}
	if analysis.Requirement.TravelDistance != 75 {
		t.Errorf("TravelDistance = %v, want 75", analysis.Requirement.TravelDistance)
	}
	if got := analysis.EffectiveRadius(); got < 67.49 || got > 67.51 {
		t.Errorf("EffectiveRadius = %v, want 67.5", got)
	}
	for i := range analysis.Solutions {
		if len(analysis.Solutions[i].Points) < 1 {
			t.Errorf("solution %d has no points", i)
		}
	}
}

func TestFinalQuantityUsesAreaRule(t *testing.T) {
	// A tiny rating makes the area rule dominate: 1-A in an Extra hazard
	// allows 1000 ft² per unit, so 5000 ft² needs 5 units even if the
	// travel-distance layout is smaller.
	p := testProject()
	p.Hazard.Class = "Extra"
	p.Hazard.Rating = "1-A:10-B:C"

	analysis, err := Run(p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range analysis.Solutions {
		if qty := analysis.FinalQuantity(i); qty < 5 {
			t.Errorf("solution %d FinalQuantity = %d, want >= 5", i, qty)
		}
	}
}

func TestSolutionWarningsIncludeCoverageGap(t *testing.T) {
	// Spill hazards use a 30 ft travel distance; on a 100x50 floor the
	// heuristic lattice leaves wall strips uncovered, which must surface
	// as a critical warning.
	p := testProject()
	p.Hazard.Type = "Class B (Flammable Liquid Spill)"
	p.Hazard.Rating = "10-B"

	analysis, err := Run(p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := range analysis.Solutions {
		warnings := analysis.SolutionWarnings(i)
		hasCritical := false
		for _, w := range warnings {
			if strings.HasPrefix(w, "CRITICAL") {
				hasCritical = true
			}
		}
		if analysis.Covered[i] == hasCritical {
			t.Errorf("solution %d: covered=%v but critical warning=%v", i, analysis.Covered[i], hasCritical)
		}
	}
}

func TestRunRejectsHazardViolation(t *testing.T) {
	p := testProject()
	p.Hazard.Type = "Class B (Appreciable Depth)"
	p.Hazard.LiquidArea = 25

	if _, err := Run(p); err == nil {
		t.Fatal("appreciable-depth violation accepted")
	}
}

func TestRunRejectsBadPolygon(t *testing.T) {
	p := testProject()
	p.Floor = geometry.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if _, err := Run(p); err == nil {
		t.Fatal("degenerate polygon accepted")
	}
}
