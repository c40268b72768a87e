package mesh

import (
	"testing"

	"github.com/Faultbox/meshsculpt/pkg/geom"
)

func TestFillLoopSquare(t *testing.T) {
	square := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	m, err := FillLoop(square, 2.5)
	if err != nil {
		t.Fatalf("FillLoop() error: %v", err)
	}

	if m.TriangleCount() < 2 {
		t.Errorf("triangle count = %d, want at least 2", m.TriangleCount())
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if idx >= uint32(len(m.Vertices)) {
			t.Errorf("index %d out of range (%d vertices)", idx, len(m.Vertices))
		}
	}
	for i, v := range m.Vertices {
		if v.Position[2] != 2.5 {
			t.Errorf("vertex %d elevation = %v, want 2.5", i, v.Position[2])
		}
	}
}

func TestFillLoopDegenerate(t *testing.T) {
	m, err := FillLoop([]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0)
	if err != nil {
		t.Fatalf("FillLoop() error: %v", err)
	}
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Errorf("degenerate loop = %d vertices, %d indices, want empty mesh",
			len(m.Vertices), len(m.Indices))
	}
}

func TestFromArea(t *testing.T) {
	boundary, ok := geom.NewLinePath([]geom.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}})
	if !ok {
		t.Fatal("NewLinePath failed")
	}
	area := &geom.Area{Primitives: []geom.PrimitiveArea{{Boundary: boundary}}}

	m, err := FromArea(area)
	if err != nil {
		t.Fatalf("FromArea() error: %v", err)
	}
	if m.TriangleCount() < 2 {
		t.Errorf("triangle count = %d, want at least 2", m.TriangleCount())
	}
}

func TestFromAreaEmpty(t *testing.T) {
	m, err := FromArea(&geom.Area{})
	if err != nil {
		t.Fatalf("FromArea() error: %v", err)
	}
	if len(m.Vertices) != 0 {
		t.Errorf("empty area produced %d vertices, want 0", len(m.Vertices))
	}
}
