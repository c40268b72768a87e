package sculpt

import (
	"fmt"

	"github.com/Faultbox/meshsculpt/pkg/geom"
	"github.com/Faultbox/meshsculpt/pkg/mesh"
)

// Sculpture is an ordered list of surfaces triangulated into one mesh.
// Surface order defines triangulation (and therefore draw) order and nothing
// else; surfaces do not interact.
type Sculpture struct {
	surfaces []Surface
}

// NewSculpture creates a sculpture from a surface list.
func NewSculpture(surfaces []Surface) *Sculpture {
	return &Sculpture{surfaces: surfaces}
}

// Push appends a surface.
func (s *Sculpture) Push(surface Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// ToMesh triangulates every surface in insertion order and combines the
// results into one mesh with index-safe concatenation. The only error source
// is the polygon-fill engine under a flat surface; all other surfaces are
// pure index arithmetic and cannot fail here (impossible geometry is
// rejected earlier, at construction time).
func (s *Sculpture) ToMesh() (mesh.Mesh, error) {
	result := mesh.Empty()
	for _, surface := range s.surfaces {
		var contribution mesh.Mesh
		switch sf := surface.(type) {
		case SpannedSurface:
			contribution = spannedMesh(sf)
		case FlatSurface:
			filled, err := mesh.FillLoop(sf.Boundary.Path.Points(), sf.Boundary.Z)
			if err != nil {
				return mesh.Mesh{}, fmt.Errorf("triangulating flat surface: %w", err)
			}
			contribution = filled
		case RoofSurface:
			contribution = roofMesh(sf)
		case GableSurface:
			contribution = gableMesh(sf)
		}
		result.Append(contribution)
	}
	return result, nil
}

func vertexAt(p geom.Vec2, z float32) mesh.Vertex {
	return mesh.Vertex{Position: [3]float32{p.X, p.Y, z}}
}

// spannedMesh lays the left line's points before the right line's in one
// vertex buffer and stitches them with a triangle strip.
func spannedMesh(s SpannedSurface) mesh.Mesh {
	leftPoints := s.Left.Path.Points()
	rightPoints := s.Right.Path.Points()

	vertices := make([]mesh.Vertex, 0, len(leftPoints)+len(rightPoints))
	for _, p := range leftPoints {
		vertices = append(vertices, vertexAt(p, s.Left.Z))
	}
	for _, p := range rightPoints {
		vertices = append(vertices, vertexAt(p, s.Right.Z))
	}

	indices := stripIndices(0, len(leftPoints), len(leftPoints), len(rightPoints), false)
	return mesh.New(vertices, indices)
}

// roofMesh connects the two halves of the boundary loop to the elevated
// ridge. The boundary stores the left side first and the reversed right side
// second, so the second strip walks the ridge backwards to keep the winding
// consistent.
func roofMesh(r RoofSurface) mesh.Mesh {
	boundaryPoints := r.Spine.Boundary.Path.Points()
	baseZ := r.Spine.Boundary.Z
	ridge := ridgePoints(&r.Spine, r.GableDepthFront, r.GableDepthBack)
	ridgeZ := r.Spine.Center.Z + r.Height

	vertices := make([]mesh.Vertex, 0, len(boundaryPoints)+len(ridge))
	for _, p := range boundaryPoints {
		vertices = append(vertices, vertexAt(p, baseZ))
	}
	for _, p := range ridge {
		vertices = append(vertices, vertexAt(p, ridgeZ))
	}

	boundaryLen := len(boundaryPoints)
	half := boundaryLen / 2
	ridgeStart := boundaryLen

	indices := stripIndices(0, half, ridgeStart, len(ridge), false)
	indices = append(indices, stripIndices(half, boundaryLen-half, ridgeStart, len(ridge), true)...)
	return mesh.New(vertices, indices)
}

// gableMesh emits the two triangular end walls: always six vertices and two
// triangles.
func gableMesh(g GableSurface) mesh.Mesh {
	left := g.Spine.Left.Path
	right := g.Spine.Right.Path
	center := g.Spine.Center.Path
	baseZ := g.Spine.Center.Z
	topZ := baseZ + g.Height

	ridgeBack := center.Along(g.GableDepthBack)
	ridgeFront := center.Along(center.Length() - g.GableDepthFront)

	vertices := []mesh.Vertex{
		vertexAt(left.Start(), baseZ),
		vertexAt(right.Start(), baseZ),
		vertexAt(ridgeBack, topZ),
		vertexAt(right.End(), baseZ),
		vertexAt(left.End(), baseZ),
		vertexAt(ridgeFront, topZ),
	}
	return mesh.New(vertices, []uint32{0, 1, 2, 3, 4, 5})
}
