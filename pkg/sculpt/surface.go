package sculpt

import "github.com/Faultbox/meshsculpt/pkg/geom"

// Surface is one triangulatable piece of a sculpture: a wall ribbon, a
// filled floor, a roof or a pair of gable walls.
type Surface interface {
	isSurface()
}

func (SpannedSurface) isSurface() {}
func (FlatSurface) isSurface()    {}
func (RoofSurface) isSurface()    {}
func (GableSurface) isSurface()   {}

// SpannedSurface is a ribbon of triangles between two lines. Both lines'
// points must be ordered consistently: index i on the left corresponds
// topologically to index i on the right. The constructor does not verify
// this; it is the caller's responsibility.
type SpannedSurface struct {
	Left  *SculptLine
	Right *SculptLine
}

// NewSpannedSurface pairs two lines into a surface.
func NewSpannedSurface(left, right *SculptLine) SpannedSurface {
	return SpannedSurface{Left: left, Right: right}
}

// FlatSurface is a filled region bounded by a single closed loop. The
// boundary stores its first point only once; closure is implicit.
type FlatSurface struct {
	Boundary *SculptLine
}

// FlatSurfaceFromArea builds a flat surface from an existing filled-area
// boundary at the given elevation.
func FlatSurfaceFromArea(area geom.PrimitiveArea, z float32) FlatSurface {
	return FlatSurface{Boundary: NewSculptLine(area.Boundary, z)}
}

// FlatSurfaceFromBand builds a flat surface around a center path, widthLeft
// to the left and widthRight to the right, such as a road footprint.
// Returns false when either side's offset is geometrically impossible.
func FlatSurfaceFromBand(path *geom.LinePath, widthLeft, widthRight, z float32) (FlatSurface, bool) {
	outline, ok := geom.NewBandAsymmetric(path, widthLeft, widthRight).Outline()
	if !ok {
		return FlatSurface{}, false
	}
	return FlatSurface{Boundary: NewSculptLine(outline, z)}, true
}

// Extrude raises the boundary by up and offsets it sideways by out,
// returning the wall surface between the two boundaries and the new upper
// flat surface. Returns false when the offset is impossible.
func (f FlatSurface) Extrude(up, out float32) (SpannedSurface, FlatSurface, bool) {
	wall, upper, ok := ExtrudeLine(f.Boundary, up, out)
	if !ok {
		return SpannedSurface{}, FlatSurface{}, false
	}
	return wall, FlatSurface{Boundary: upper}, true
}
