package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	gjk "github.com/RayzRazko/GJK"
)

// SceneConfig describes a set of placed polygons to run distance queries
// over. Tolerance and max_iterations are optional overrides of the library
// defaults.
type SceneConfig struct {
	Tolerance     float64         `yaml:"tolerance,omitempty"`
	MaxIterations int             `yaml:"max_iterations,omitempty"`
	Polygons      []PolygonConfig `yaml:"polygons"`
}

type PolygonConfig struct {
	Name     string       `yaml:"name"`
	Vertices [][2]float64 `yaml:"vertices"`
	Position [2]float64   `yaml:"position,omitempty"`
	Angle    float64      `yaml:"angle,omitempty"`
}

// LoadScene loads a scene config from a YAML reader.
func LoadScene(r io.Reader) (*SceneConfig, error) {
	var c SceneConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *SceneConfig) Validate() error {
	if len(c.Polygons) < 2 {
		return fmt.Errorf("scene needs at least two polygons, got %d", len(c.Polygons))
	}
	for i, p := range c.Polygons {
		if p.Name == "" {
			return fmt.Errorf("polygon %d has no name", i)
		}
		if len(p.Vertices) == 0 {
			return fmt.Errorf("polygon %q has no vertices", p.Name)
		}
	}
	return nil
}

// Params merges the scene overrides onto the library defaults.
func (c *SceneConfig) Params() gjk.DistanceParams {
	params := gjk.MakeDistanceParams()
	if c.Tolerance > 0 {
		params.Tolerance = c.Tolerance
	}
	if c.MaxIterations > 0 {
		params.MaxIterations = c.MaxIterations
	}
	return params
}

// Build instantiates the placed polygon shape.
func (p PolygonConfig) Build() *gjk.PolygonShape {
	vertices := make([]gjk.Vec2, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = gjk.MakeVec2(v[0], v[1])
	}

	poly := gjk.NewPolygonShape()
	poly.Set(vertices)
	poly.SetTransform(gjk.MakeVec2(p.Position[0], p.Position[1]), p.Angle)
	return poly
}
