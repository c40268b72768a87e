package mesh

import (
	"fmt"

	"github.com/hajimehoshi/go-libtess2"

	"github.com/Faultbox/meshsculpt/pkg/geom"
)

// FillLoop triangulates the interior of a closed 2-D loop and lifts every
// resulting vertex to the given elevation. The loop stores its first point
// only once; closure is implicit. Loops with fewer than three points have no
// interior and yield an empty mesh rather than an error.
func FillLoop(points []geom.Vec2, z float32) (Mesh, error) {
	if len(points) < 3 {
		return Empty(), nil
	}
	return fillContours([]libtess2.Contour{loopContour(points)}, z)
}

// FromArea triangulates a filled area. All primitive boundaries go into a
// single even-odd fill, so primitives wound opposite to the outer boundary
// cut holes. Elevation is zero; callers lift the result as needed.
func FromArea(area *geom.Area) (Mesh, error) {
	var contours []libtess2.Contour
	for _, primitive := range area.Primitives {
		points := primitive.Boundary.Points()
		if len(points) < 3 {
			continue
		}
		contours = append(contours, loopContour(points))
	}
	if len(contours) == 0 {
		return Empty(), nil
	}
	return fillContours(contours, 0)
}

func loopContour(points []geom.Vec2) libtess2.Contour {
	contour := make(libtess2.Contour, len(points))
	for i, p := range points {
		contour[i] = libtess2.Vertex{X: p.X, Y: p.Y}
	}
	return contour
}

func fillContours(contours []libtess2.Contour, z float32) (Mesh, error) {
	elements, tessVertices, err := libtess2.Tesselate(contours, libtess2.WindingRuleOdd)
	if err != nil {
		return Mesh{}, fmt.Errorf("polygon fill: %w", err)
	}

	vertices := make([]Vertex, len(tessVertices))
	for i, v := range tessVertices {
		vertices[i] = Vertex{Position: [3]float32{v.X, v.Y, z}}
	}
	indices := make([]uint32, len(elements))
	for i, e := range elements {
		indices[i] = uint32(e)
	}
	return New(vertices, indices), nil
}
