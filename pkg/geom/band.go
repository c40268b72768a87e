package geom

// Band is a constant-width corridor around a center path, such as a road or
// wall footprint. The two widths are measured from the center to either side.
type Band struct {
	Path       *LinePath
	WidthLeft  float32
	WidthRight float32
}

// NewBand builds a band of symmetric width around a path.
func NewBand(path *LinePath, width float32) Band {
	return NewBandAsymmetric(path, width/2, width/2)
}

// NewBandAsymmetric builds a band with independent left and right widths.
func NewBandAsymmetric(path *LinePath, widthLeft, widthRight float32) Band {
	return Band{Path: path, WidthLeft: widthLeft, WidthRight: widthRight}
}

// Outline returns the closed boundary loop of the band: the left offset
// followed by the reversed right offset, with end caps implied by the
// connecting segments. The first point is not repeated at the end. Returns
// false when either offset is geometrically impossible.
func (b Band) Outline() (*LinePath, bool) {
	left, ok := b.Path.ShiftOrthogonally(-b.WidthLeft)
	if !ok {
		return nil, false
	}
	right, ok := b.Path.ShiftOrthogonally(b.WidthRight)
	if !ok {
		return nil, false
	}

	leftPoints := left.Points()
	rightPoints := right.Points()
	outline := make([]Vec2, 0, len(leftPoints)+len(rightPoints))
	outline = append(outline, leftPoints...)
	for i := len(rightPoints) - 1; i >= 0; i-- {
		outline = append(outline, rightPoints[i])
	}
	return NewLinePath(outline)
}
