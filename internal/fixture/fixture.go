// Copyright © 2024 Galvanized Logic Inc.

// Package fixture provides room-geometry construction helpers used only
// by this module's own tests: a parameterized shoebox room, a single
// blocking wall, and a YAML-loaded table of end-to-end scenarios. None
// of it is exported from the module's public surface.
package fixture

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/10log/beamtrace3d/geom"
)

// Shoebox builds the six walls of a width x height x depth rectangular
// room with inward-pointing normals, so an interior source and listener
// face every wall -- the orientation trace.NewSolver's first-order
// facing test (beam.facesPoint) requires to produce reflections at all.
func Shoebox(width, height, depth float64, tol geom.Tolerances) ([]geom.Polygon, error) {
	verts := [][]geom.Vector3{
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: depth}, {X: width, Y: 0, Z: depth}, {X: width, Y: 0, Z: 0}},             // floor
		{{X: 0, Y: height, Z: 0}, {X: width, Y: height, Z: 0}, {X: width, Y: height, Z: depth}, {X: 0, Y: height, Z: depth}}, // ceiling
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: height, Z: 0}, {X: 0, Y: height, Z: depth}, {X: 0, Y: 0, Z: depth}},           // left
		{{X: width, Y: 0, Z: 0}, {X: width, Y: 0, Z: depth}, {X: width, Y: height, Z: depth}, {X: width, Y: height, Z: 0}}, // right
		{{X: 0, Y: 0, Z: 0}, {X: width, Y: 0, Z: 0}, {X: width, Y: height, Z: 0}, {X: 0, Y: height, Z: 0}},           // back
		{{X: 0, Y: 0, Z: depth}, {X: 0, Y: height, Z: depth}, {X: width, Y: height, Z: depth}, {X: width, Y: 0, Z: depth}}, // front
	}
	materials := []string{"floor", "ceiling", "left", "right", "back", "front"}

	polys := make([]geom.Polygon, len(verts))
	for i, v := range verts {
		p, err := geom.NewPolygon(v, materials[i], tol)
		if err != nil {
			return nil, fmt.Errorf("fixture: wall %q: %w", materials[i], err)
		}
		polys[i] = p
	}
	return polys, nil
}

// BlockingWall returns a single polygon spanning the full y/z
// cross-section of a room at the given x, facing +x (toward larger x),
// for scenario S3's occluded line of sight.
func BlockingWall(x, height, depth float64, tol geom.Tolerances) (geom.Polygon, error) {
	verts := []geom.Vector3{
		{X: x, Y: 0, Z: depth},
		{X: x, Y: 0, Z: 0},
		{X: x, Y: height, Z: 0},
		{X: x, Y: height, Z: depth},
	}
	return geom.NewPolygon(verts, "blocker", tol)
}

//go:embed testdata/scenarios.yaml
var scenariosYAML embed.FS

// Scenario is one concrete end-to-end test case, loaded from
// testdata/scenarios.yaml rather than hardcoded so the parameter set
// reads as data, not as scattered literals.
type Scenario struct {
	Name               string  `yaml:"name"`
	Description        string  `yaml:"description"`
	RoomWidth          float64 `yaml:"roomWidth"`
	RoomHeight         float64 `yaml:"roomHeight"`
	RoomDepth          float64 `yaml:"roomDepth"`
	Source             [3]float64 `yaml:"source"`
	Listener           [3]float64 `yaml:"listener"`
	MaxReflectionOrder int     `yaml:"maxReflectionOrder"`
	BlockingWallX      *float64 `yaml:"blockingWallX,omitempty"`
}

// LoadScenarios parses the embedded scenarios.yaml fixture.
func LoadScenarios() ([]Scenario, error) {
	data, err := scenariosYAML.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return doc.Scenarios, nil
}

// Vector3 converts a [3]float64 as stored in YAML into a geom.Vector3.
func Vector3(v [3]float64) geom.Vector3 {
	return geom.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
