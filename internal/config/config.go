// Package config handles project file loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/geometry"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/nfpa"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/units"

	"gopkg.in/yaml.v3"
)

// Project represents the root project file structure. Distances and
// areas are given in the project's unit system; the floor polygon is the
// traced outline with self-intersections already resolved.
type Project struct {
	Name         string           `yaml:"project" json:"project"`
	Units        string           `yaml:"units,omitempty" json:"units,omitempty"`
	Hazard       Hazard           `yaml:"hazard" json:"hazard"`
	SafetyFactor float64          `yaml:"safety_factor,omitempty" json:"safety_factor"`
	Floor        geometry.Polygon `yaml:"floor" json:"floor"`
	OutputDir    string           `yaml:"output,omitempty" json:"-"`
}

// Hazard holds the hazard-classification inputs.
type Hazard struct {
	Class      string  `yaml:"class" json:"class"`
	Type       string  `yaml:"type" json:"type"`
	Rating     string  `yaml:"rating" json:"rating"`
	LiquidArea float64 `yaml:"liquid_area,omitempty" json:"liquid_area,omitempty"`
}

// Load reads and parses the YAML project file from the specified path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if p.Name == "" {
		p.Name = "Untitled Project"
	}
	if p.SafetyFactor == 0 {
		p.SafetyFactor = 0.9
	}
	if p.OutputDir == "" {
		p.OutputDir = "out"
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the project inputs that would otherwise surface as
// undefined behavior deep in the planner.
func (p *Project) Validate() error {
	if _, err := units.Parse(p.Units); err != nil {
		return err
	}
	if p.SafetyFactor <= 0 || p.SafetyFactor > 1 {
		return fmt.Errorf("safety_factor %v out of range (0, 1]", p.SafetyFactor)
	}
	if err := p.Floor.Validate(); err != nil {
		return fmt.Errorf("floor: %w", err)
	}
	return nil
}

// System returns the parsed unit system. Validate must have passed.
func (p *Project) System() units.System {
	sys, _ := units.Parse(p.Units)
	return sys
}

// FloorFeet returns the floor polygon converted to feet, the unit the
// planner computes in.
func (p *Project) FloorFeet() geometry.Polygon {
	sys := p.System()
	floor := make(geometry.Polygon, len(p.Floor))
	for i, v := range p.Floor {
		floor[i] = geometry.Point{X: units.ToFeet(sys, v.X), Y: units.ToFeet(sys, v.Y)}
	}
	return floor
}

// LiquidAreaSqFt returns the flammable-liquid surface in square feet.
func (p *Project) LiquidAreaSqFt() float64 {
	return units.ToSquareFeet(p.System(), p.Hazard.LiquidArea)
}

// ParsedRating returns the structured extinguisher rating.
func (p *Project) ParsedRating() nfpa.Rating {
	return nfpa.ParseRating(p.Hazard.Rating)
}
