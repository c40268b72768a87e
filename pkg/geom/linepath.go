package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// PointTolerance is the distance below which two points are considered the
// same, both when deduplicating path points and when checking endpoint
// compatibility in Concat.
const PointTolerance = 1e-4

// LinePath is an immutable open polyline of at least two distinct points.
// All operations return new paths; a LinePath is never modified after
// construction, so it can be shared freely.
type LinePath struct {
	points    []Vec2
	distances []float32 // cumulative arc length up to each point
}

// NewLinePath builds a path from an ordered point sequence. Consecutive
// points closer than PointTolerance are merged. Returns false when fewer
// than two distinct points remain.
func NewLinePath(points []Vec2) (*LinePath, bool) {
	deduped := make([]Vec2, 0, len(points))
	for _, p := range points {
		if len(deduped) > 0 && deduped[len(deduped)-1].Distance(p) < PointTolerance {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) < 2 {
		return nil, false
	}

	distances := make([]float32, len(deduped))
	for i := 1; i < len(deduped); i++ {
		distances[i] = distances[i-1] + deduped[i-1].Distance(deduped[i])
	}
	return &LinePath{points: deduped, distances: distances}, true
}

// Points returns the path's point sequence. The slice is shared with the
// path and must not be modified.
func (p *LinePath) Points() []Vec2 {
	return p.points
}

// Length returns the total arc length.
func (p *LinePath) Length() float32 {
	return p.distances[len(p.distances)-1]
}

// Start returns the first point.
func (p *LinePath) Start() Vec2 {
	return p.points[0]
}

// End returns the last point.
func (p *LinePath) End() Vec2 {
	return p.points[len(p.points)-1]
}

// StartDirection returns the unit tangent of the first segment.
func (p *LinePath) StartDirection() Vec2 {
	return p.points[1].Sub(p.points[0]).Normalize()
}

// EndDirection returns the unit tangent of the last segment.
func (p *LinePath) EndDirection() Vec2 {
	n := len(p.points)
	return p.points[n-1].Sub(p.points[n-2]).Normalize()
}

// Along returns the point at the given arc length, clamped to the path ends.
func (p *LinePath) Along(l float32) Vec2 {
	if l <= 0 {
		return p.Start()
	}
	if l >= p.Length() {
		return p.End()
	}
	i := 1
	for p.distances[i] < l {
		i++
	}
	segLen := p.distances[i] - p.distances[i-1]
	t := (l - p.distances[i-1]) / segLen
	return p.points[i-1].Lerp(p.points[i], t)
}

// Reverse returns the path traversed in the opposite direction.
func (p *LinePath) Reverse() *LinePath {
	reversed := make([]Vec2, len(p.points))
	for i, pt := range p.points {
		reversed[len(p.points)-1-i] = pt
	}
	path, _ := NewLinePath(reversed)
	return path
}

// Concat joins another path onto the end of this one. The other path must
// start where this one ends (within PointTolerance); the shared point is
// stored once.
func (p *LinePath) Concat(other *LinePath) (*LinePath, error) {
	if p.End().Distance(other.Start()) > PointTolerance {
		return nil, fmt.Errorf("concat: end %v does not meet start %v", p.End(), other.Start())
	}
	joined := make([]Vec2, 0, len(p.points)+len(other.points)-1)
	joined = append(joined, p.points...)
	joined = append(joined, other.points[1:]...)
	path, ok := NewLinePath(joined)
	if !ok {
		return nil, fmt.Errorf("concat: joined path degenerate")
	}
	return path, nil
}

// Subsection returns the sub-path between two arc lengths, with interpolated
// endpoints. Returns false when the clamped range collapses to a point.
func (p *LinePath) Subsection(startLen, endLen float32) (*LinePath, bool) {
	startLen = clamp(startLen, 0, p.Length())
	endLen = clamp(endLen, 0, p.Length())
	if endLen-startLen < PointTolerance {
		return nil, false
	}

	section := []Vec2{p.Along(startLen)}
	for i, d := range p.distances {
		if d > startLen && d < endLen {
			section = append(section, p.points[i])
		}
	}
	section = append(section, p.Along(endLen))
	return NewLinePath(section)
}

// ShiftOrthogonally returns the path offset sideways by the given distance.
// Positive distances shift to the right of the direction of travel. Interior
// joins are mitered. Returns false when the offset is geometrically
// impossible: a join folds back on itself (turn close to 180 degrees) or the
// offset distance exceeds a local radius of curvature so that a segment
// would invert.
func (p *LinePath) ShiftOrthogonally(distance float32) (*LinePath, bool) {
	n := len(p.points)
	dirs := make([]Vec2, n-1)
	for i := 0; i < n-1; i++ {
		dirs[i] = p.points[i+1].Sub(p.points[i]).Normalize()
	}

	shifted := make([]Vec2, n)
	shifted[0] = p.points[0].Add(dirs[0].Perp().Scale(distance))
	shifted[n-1] = p.points[n-1].Add(dirs[n-2].Perp().Scale(distance))
	for i := 1; i < n-1; i++ {
		prev := dirs[i-1].Perp()
		next := dirs[i].Perp()
		denom := 1 + prev.Dot(next)
		if denom < PointTolerance {
			// Near-reversal; the miter direction is undefined.
			return nil, false
		}
		miter := prev.Add(next).Scale(1 / denom)
		shifted[i] = p.points[i].Add(miter.Scale(distance))
	}

	result, ok := NewLinePath(shifted)
	if !ok {
		return nil, false
	}
	// An inverted segment means the offset ate a whole segment of the path.
	resultPoints := result.Points()
	if len(resultPoints) == n {
		for i := 0; i < n-1; i++ {
			if resultPoints[i+1].Sub(resultPoints[i]).Dot(dirs[i]) <= 0 {
				return nil, false
			}
		}
	} else if math32.Abs(distance) > 0 {
		// Offsetting never merges points on valid input; a shorter result
		// means some segment collapsed.
		return nil, false
	}
	return result, true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
