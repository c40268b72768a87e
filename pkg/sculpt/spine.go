package sculpt

import "github.com/Faultbox/meshsculpt/pkg/geom"

// SkeletonSpine is a closed footprint loop generated from a centerline and a
// width: left and right are the centerline offset by half the width to
// either side, front and back are the straight connector segments at the
// path ends, and boundary is the loop left, front, reversed right, back with
// the closing duplicate point dropped. The directional sub-lines stay
// available for callers that need to treat the sides of a building
// differently.
type SkeletonSpine struct {
	Center   *SculptLine
	Width    float32
	Left     *SculptLine
	Right    *SculptLine
	Front    *SculptLine
	Back     *SculptLine
	Boundary *SculptLine
}

// NewSkeletonSpine derives a spine from a centerline and width. Returns
// false when either side offset is impossible, when a connector degenerates
// (zero width collapses front and back to points), or when the boundary loop
// cannot be assembled.
func NewSkeletonSpine(center *SculptLine, width float32) (*SkeletonSpine, bool) {
	leftPath, ok := center.Path.ShiftOrthogonally(-width / 2)
	if !ok {
		return nil, false
	}
	rightPath, ok := center.Path.ShiftOrthogonally(width / 2)
	if !ok {
		return nil, false
	}

	// Front connects the left end to the right end; back returns from the
	// right start to the left start, closing the loop onto left's first
	// point.
	frontPath, ok := geom.NewLinePath([]geom.Vec2{leftPath.End(), rightPath.End()})
	if !ok {
		return nil, false
	}
	backPath, ok := geom.NewLinePath([]geom.Vec2{rightPath.Start(), leftPath.Start()})
	if !ok {
		return nil, false
	}

	boundaryPath, ok := assembleLoop(leftPath, frontPath, rightPath.Reverse(), backPath)
	if !ok {
		return nil, false
	}

	z := center.Z
	return &SkeletonSpine{
		Center:   center,
		Width:    width,
		Left:     NewSculptLine(leftPath, z),
		Right:    NewSculptLine(rightPath, z),
		Front:    NewSculptLine(frontPath, z),
		Back:     NewSculptLine(backPath, z),
		Boundary: NewSculptLine(boundaryPath, z),
	}, true
}

// assembleLoop concatenates the loop pieces and drops the final point, which
// coincides with the first, so the stored boundary keeps first != last.
func assembleLoop(pieces ...*geom.LinePath) (*geom.LinePath, bool) {
	loop := pieces[0]
	for _, piece := range pieces[1:] {
		joined, err := loop.Concat(piece)
		if err != nil {
			return nil, false
		}
		loop = joined
	}
	points := loop.Points()
	if points[0].Distance(points[len(points)-1]) > geom.PointTolerance {
		return nil, false
	}
	return geom.NewLinePath(points[: len(points)-1 : len(points)-1])
}

// Extrude produces a new spine raised by up, widened by widenBy, and - when
// extendBy is not zero - lengthened at both ends along the centerline's own
// start and end tangents. The wall surface between the old and the new
// boundary is returned alongside. When up and extendBy are both zero the
// center line is reused as-is. Returns false when the new spine cannot be
// constructed.
func (s *SkeletonSpine) Extrude(up, widenBy, extendBy float32) (SpannedSurface, *SkeletonSpine, bool) {
	newCenter := s.Center
	if up != 0 || extendBy != 0 {
		path := s.Center.Path
		if extendBy != 0 {
			points := path.Points()
			extended := make([]geom.Vec2, 0, len(points)+2)
			extended = append(extended, path.Start().Sub(path.StartDirection().Scale(extendBy)))
			extended = append(extended, points...)
			extended = append(extended, path.End().Add(path.EndDirection().Scale(extendBy)))
			var ok bool
			path, ok = geom.NewLinePath(extended)
			if !ok {
				return SpannedSurface{}, nil, false
			}
		}
		newCenter = NewSculptLine(path, s.Center.Z+up)
	}

	newSpine, ok := NewSkeletonSpine(newCenter, s.Width+widenBy)
	if !ok {
		return SpannedSurface{}, nil, false
	}
	return NewSpannedSurface(s.Boundary, newSpine.Boundary), newSpine, true
}

// Roof pairs the spine with a hipped roof surface and its gable end walls.
// No geometry is computed here; both surfaces triangulate lazily.
func (s *SkeletonSpine) Roof(height, gableDepthFront, gableDepthBack float32) (RoofSurface, GableSurface) {
	roof := RoofSurface{
		Spine:           *s,
		Height:          height,
		GableDepthFront: gableDepthFront,
		GableDepthBack:  gableDepthBack,
	}
	gable := GableSurface{
		Spine:           *s,
		Height:          height,
		GableDepthFront: gableDepthFront,
		GableDepthBack:  gableDepthBack,
	}
	return roof, gable
}
