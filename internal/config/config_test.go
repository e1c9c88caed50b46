package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/units"
)

const sampleProject = `
project: Warehouse A
units: imperial
hazard:
  class: Ordinary
  type: Class A (Ordinary Combustibles)
  rating: 4-A:60-B:C
safety_factor: 0.9
floor:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
  - {x: 100, y: 50}
  - {x: 0, y: 50}
output: plans
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write project: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "Warehouse A" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.SafetyFactor != 0.9 {
		t.Errorf("SafetyFactor = %v, want 0.9", p.SafetyFactor)
	}
	if len(p.Floor) != 4 {
		t.Fatalf("Floor has %d vertices, want 4", len(p.Floor))
	}
	if p.OutputDir != "plans" {
		t.Errorf("OutputDir = %q, want plans", p.OutputDir)
	}
	if r := p.ParsedRating(); r.A != 4 || r.B != 60 || !r.C {
		t.Errorf("ParsedRating = %+v", r)
	}
}

func TestLoadDefaults(t *testing.T) {
	p, err := Load(writeProject(t, `
hazard:
  class: Light
  type: Class A (Ordinary Combustibles)
  rating: 2-A:10-B:C
floor:
  - {x: 0, y: 0}
  - {x: 10, y: 0}
  - {x: 10, y: 10}
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "Untitled Project" || p.SafetyFactor != 0.9 || p.OutputDir != "out" {
		t.Errorf("defaults = %q/%v/%q", p.Name, p.SafetyFactor, p.OutputDir)
	}
	if p.System() != units.Imperial {
		t.Errorf("default system = %v, want imperial", p.System())
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"too few vertices": `
hazard: {class: Light, type: Class A, rating: "2-A:10-B:C"}
floor:
  - {x: 0, y: 0}
  - {x: 10, y: 0}
`,
		"bad safety factor": `
safety_factor: 1.5
floor: [{x: 0, y: 0}, {x: 10, y: 0}, {x: 10, y: 10}]
`,
		"bad units": `
units: cubits
floor: [{x: 0, y: 0}, {x: 10, y: 0}, {x: 10, y: 10}]
`,
	}
	for name, content := range cases {
		if _, err := Load(writeProject(t, content)); err == nil {
			t.Errorf("%s: Load accepted invalid project", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}

func TestFloorFeetMetric(t *testing.T) {
	p, err := Load(writeProject(t, `
units: metric
hazard: {class: Light, type: Class A, rating: "2-A:10-B:C"}
floor: [{x: 0, y: 0}, {x: 30.48, y: 0}, {x: 30.48, y: 30.48}]
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	floor := p.FloorFeet()
	// 30.48 m is 100 ft.
	if got := floor[1].X; got < 99.999 || got > 100.001 {
		t.Fatalf("FloorFeet()[1].X = %v, want 100", got)
	}
}
