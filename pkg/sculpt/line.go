// Package sculpt turns declarative surface descriptions - walls, floors,
// roofs and gables extruded from footprint outlines - into triangle meshes.
//
// All types in this package are immutable once constructed. Lines are shared
// by pointer between surfaces (a line is typically the upper boundary of one
// surface and the lower boundary of the next); extrusion operations return
// new lines and spines instead of modifying existing ones, so sharing is
// always safe.
package sculpt

import "github.com/Faultbox/meshsculpt/pkg/geom"

// SculptLine is a planar path at a constant elevation, the atomic geometric
// unit all surfaces are built from.
type SculptLine struct {
	Path *geom.LinePath
	Z    float32
}

// NewSculptLine wraps a path at the given elevation.
func NewSculptLine(path *geom.LinePath, z float32) *SculptLine {
	return &SculptLine{Path: path, Z: z}
}

// ExtrudeLine offsets a line sideways by out, raises it by up, and returns
// the wall surface spanning the old and new line together with the new line.
// A zero out reuses the path unchanged, so straight-up extrusion can never
// fail. Returns false when the sideways offset is geometrically impossible
// for the path's curvature; that is a normal outcome for tight footprints,
// not an error.
func ExtrudeLine(line *SculptLine, up, out float32) (SpannedSurface, *SculptLine, bool) {
	upperPath := line.Path
	if out != 0 {
		shifted, ok := line.Path.ShiftOrthogonally(out)
		if !ok {
			return SpannedSurface{}, nil, false
		}
		upperPath = shifted
	}
	upper := NewSculptLine(upperPath, line.Z+up)
	return NewSpannedSurface(line, upper), upper, true
}

// Subdivide partitions the line into contiguous sub-lines whose lengths are
// proportional to the given weights (the weights need not sum to 1).
// Sub-lines whose underlying subsection degenerates are dropped from the
// result, so the returned slice may be shorter than the weight list.
func (l *SculptLine) Subdivide(weights []float32) []*SculptLine {
	var totalWeight float32
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight <= 0 {
		return nil
	}

	lines := make([]*SculptLine, 0, len(weights))
	length := l.Path.Length()
	var start float32
	for _, w := range weights {
		end := start + length*w/totalWeight
		if sub, ok := l.Path.Subsection(start, end); ok {
			lines = append(lines, NewSculptLine(sub, l.Z))
		}
		start = end
	}
	return lines
}
