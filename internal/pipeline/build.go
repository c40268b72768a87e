package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshsculpt/internal/logger"
	"github.com/Faultbox/meshsculpt/pkg/geom"
	"github.com/Faultbox/meshsculpt/pkg/mesh"
	"github.com/Faultbox/meshsculpt/pkg/sculpt"
)

// ErrImpossibleGeometry marks scene entries whose offsets or loops cannot be
// constructed, e.g. a building wider than its footprint's tightest bend.
// Such entries are skipped with a warning rather than failing the build.
var ErrImpossibleGeometry = errors.New("impossible geometry")

// BuiltMesh is one named mesh produced from a scene.
type BuiltMesh struct {
	Name string
	Mesh mesh.Mesh
}

// Build turns a scene into one mesh per entry, in scene order. Entries with
// impossible geometry are skipped and logged; fill-engine failures abort the
// build.
func Build(scene *Scene) ([]BuiltMesh, error) {
	built := make([]BuiltMesh, 0, len(scene.Buildings)+len(scene.Bands)+len(scene.Flats))

	for _, b := range scene.Buildings {
		m, err := buildBuilding(b)
		if errors.Is(err, ErrImpossibleGeometry) {
			logger.Warn("skipping building", zap.String("name", b.Name), zap.Error(err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("building %q: %w", b.Name, err)
		}
		logger.Debug("built building",
			zap.String("name", b.Name),
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("triangles", m.TriangleCount()))
		built = append(built, BuiltMesh{Name: b.Name, Mesh: m})
	}

	for _, band := range scene.Bands {
		path, ok := pathFromPairs(band.Path)
		if !ok {
			logger.Warn("skipping band with degenerate path", zap.String("name", band.Name))
			continue
		}
		m := sculpt.BandMeshAsymmetric(path, band.WidthLeft, band.WidthRight, band.Elevation)
		if len(m.Vertices) == 0 {
			logger.Warn("skipping band", zap.String("name", band.Name),
				zap.Error(ErrImpossibleGeometry))
			continue
		}
		built = append(built, BuiltMesh{Name: band.Name, Mesh: m})
	}

	for _, flat := range scene.Flats {
		boundary, ok := pathFromPairs(flat.Boundary)
		if !ok {
			logger.Warn("skipping flat with degenerate boundary", zap.String("name", flat.Name))
			continue
		}
		surface := sculpt.FlatSurfaceFromArea(geom.PrimitiveArea{Boundary: boundary}, flat.Elevation)
		m, err := sculpt.NewSculpture([]sculpt.Surface{surface}).ToMesh()
		if err != nil {
			return nil, fmt.Errorf("flat %q: %w", flat.Name, err)
		}
		built = append(built, BuiltMesh{Name: flat.Name, Mesh: m})
	}

	return built, nil
}

// buildBuilding extrudes one building: ground slab, one wall ring per floor,
// then either a roof with gables or a flat top.
func buildBuilding(b Building) (mesh.Mesh, error) {
	path, ok := pathFromPairs(b.Footprint)
	if !ok {
		return mesh.Mesh{}, fmt.Errorf("footprint: %w", ErrImpossibleGeometry)
	}
	center := sculpt.NewSculptLine(path, b.Elevation)
	spine, ok := sculpt.NewSkeletonSpine(center, b.Width)
	if !ok {
		return mesh.Mesh{}, fmt.Errorf("spine width %v: %w", b.Width, ErrImpossibleGeometry)
	}

	sculpture := sculpt.NewSculpture(nil)
	sculpture.Push(sculpt.FlatSurface{Boundary: spine.Boundary})

	current := spine
	for i, floor := range b.Floors {
		wall, upper, ok := current.Extrude(floor.Height, floor.Outset, 0)
		if !ok {
			return mesh.Mesh{}, fmt.Errorf("floor %d: %w", i, ErrImpossibleGeometry)
		}
		sculpture.Push(wall)
		current = upper
	}

	if b.Roof != nil {
		roof, gable := current.Roof(b.Roof.Height, b.Roof.GableFront, b.Roof.GableBack)
		sculpture.Push(roof)
		sculpture.Push(gable)
	} else {
		sculpture.Push(sculpt.FlatSurface{Boundary: current.Boundary})
	}

	return sculpture.ToMesh()
}
