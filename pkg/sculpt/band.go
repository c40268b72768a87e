package sculpt

import (
	"github.com/Faultbox/meshsculpt/pkg/geom"
	"github.com/Faultbox/meshsculpt/pkg/mesh"
)

// BandMesh triangulates a constant-width band around a path as a horizontal
// ribbon at the given elevation. Returns an empty mesh when either side's
// offset is geometrically impossible.
func BandMesh(path *geom.LinePath, width, z float32) mesh.Mesh {
	return BandMeshAsymmetric(path, width/2, width/2, z)
}

// BandMeshAsymmetric is BandMesh with independent left and right widths.
func BandMeshAsymmetric(path *geom.LinePath, widthLeft, widthRight, z float32) mesh.Mesh {
	leftPath, ok := path.ShiftOrthogonally(-widthLeft)
	if !ok {
		return mesh.Empty()
	}
	rightPath, ok := path.ShiftOrthogonally(widthRight)
	if !ok {
		return mesh.Empty()
	}

	surface := NewSpannedSurface(NewSculptLine(leftPath, z), NewSculptLine(rightPath, z))
	m, err := NewSculpture([]Surface{surface}).ToMesh()
	if err != nil {
		return mesh.Empty()
	}
	return m
}
