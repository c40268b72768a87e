// Package pipeline assembles meshes from declarative scene descriptions and
// exports them for rendering.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshsculpt/pkg/geom"
)

// Scene is a declarative description of everything to build: extruded
// buildings, flat bands (roads, walls seen from above) and filled areas.
type Scene struct {
	Buildings []Building `yaml:"buildings"`
	Bands     []BandDef  `yaml:"bands"`
	Flats     []FlatDef  `yaml:"flats"`
}

// Building is a footprint centerline extruded into floors and roofed.
type Building struct {
	Name      string       `yaml:"name"`
	Footprint [][2]float32 `yaml:"footprint"` // centerline points
	Width     float32      `yaml:"width"`
	Elevation float32      `yaml:"elevation"`
	Floors    []Floor      `yaml:"floors"`
	Roof      *RoofDef     `yaml:"roof"`
}

// Floor is one extrusion step of a building.
type Floor struct {
	Height float32 `yaml:"height"`
	Outset float32 `yaml:"outset"` // widens the footprint, e.g. for eaves
}

// RoofDef describes the roof over the topmost floor.
type RoofDef struct {
	Height     float32 `yaml:"height"`
	GableFront float32 `yaml:"gable_front"`
	GableBack  float32 `yaml:"gable_back"`
}

// BandDef is a flat ribbon of constant width around a path.
type BandDef struct {
	Name       string       `yaml:"name"`
	Path       [][2]float32 `yaml:"path"`
	WidthLeft  float32      `yaml:"width_left"`
	WidthRight float32      `yaml:"width_right"`
	Elevation  float32      `yaml:"elevation"`
}

// FlatDef is a filled polygon at a fixed elevation.
type FlatDef struct {
	Name      string       `yaml:"name"`
	Boundary  [][2]float32 `yaml:"boundary"` // closed loop, first point not repeated
	Elevation float32      `yaml:"elevation"`
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &scene, nil
}

// Validate checks structural requirements that yaml parsing cannot express.
// Geometric feasibility is not checked here; that is decided during Build.
func (s *Scene) Validate() error {
	for i, b := range s.Buildings {
		if b.Name == "" {
			return fmt.Errorf("building %d: missing name", i)
		}
		if len(b.Footprint) < 2 {
			return fmt.Errorf("building %q: footprint needs at least 2 points", b.Name)
		}
		if b.Width <= 0 {
			return fmt.Errorf("building %q: width must be positive", b.Name)
		}
		for j, f := range b.Floors {
			if f.Height <= 0 {
				return fmt.Errorf("building %q: floor %d height must be positive", b.Name, j)
			}
		}
	}
	for i, band := range s.Bands {
		if band.Name == "" {
			return fmt.Errorf("band %d: missing name", i)
		}
		if len(band.Path) < 2 {
			return fmt.Errorf("band %q: path needs at least 2 points", band.Name)
		}
		if band.WidthLeft+band.WidthRight <= 0 {
			return fmt.Errorf("band %q: total width must be positive", band.Name)
		}
	}
	for i, flat := range s.Flats {
		if flat.Name == "" {
			return fmt.Errorf("flat %d: missing name", i)
		}
		if len(flat.Boundary) < 3 {
			return fmt.Errorf("flat %q: boundary needs at least 3 points", flat.Name)
		}
	}
	return nil
}

// pathFromPairs converts scene point pairs to a line path.
func pathFromPairs(pairs [][2]float32) (*geom.LinePath, bool) {
	points := make([]geom.Vec2, len(pairs))
	for i, p := range pairs {
		points[i] = geom.Vec2{X: p[0], Y: p[1]}
	}
	return geom.NewLinePath(points)
}
