package sculpt

import "github.com/Faultbox/meshsculpt/pkg/geom"

// RoofSurface is a hipped or gabled roof over a spine footprint: the
// boundary loop at the spine's base elevation, connected to a ridge running
// along the centerline at base + Height. The ridge ends are pulled inward
// from the path ends by the gable depths; with zero depths the roof is fully
// hipped, with positive depths the uncovered ends are closed by a
// GableSurface. Purely declarative - geometry is computed at triangulation
// time.
type RoofSurface struct {
	Spine           SkeletonSpine
	Height          float32
	GableDepthFront float32
	GableDepthBack  float32
}

// GableSurface is the pair of triangular end walls of a gabled roof, one at
// each end of the spine: boundary corner to boundary corner at the base
// elevation, up to the ridge end at base + Height. Always exactly six
// vertices and two triangles, regardless of path resolution.
type GableSurface struct {
	Spine           SkeletonSpine
	Height          float32
	GableDepthFront float32
	GableDepthBack  float32
}

// ridgePoints samples the roof ridge from the spine centerline: the first
// point at arc length gableDepthBack, the last at length-gableDepthFront,
// with the centerline's interior points kept verbatim between them.
func ridgePoints(spine *SkeletonSpine, gableDepthFront, gableDepthBack float32) []geom.Vec2 {
	center := spine.Center.Path
	points := center.Points()

	ridge := make([]geom.Vec2, 0, len(points))
	ridge = append(ridge, center.Along(gableDepthBack))
	ridge = append(ridge, points[1:len(points)-1]...)
	ridge = append(ridge, center.Along(center.Length()-gableDepthFront))
	return ridge
}
