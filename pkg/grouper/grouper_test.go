package grouper

import (
	"testing"

	"github.com/Faultbox/meshsculpt/pkg/mesh"
)

// meshWithVertices builds a placeholder mesh of the given vertex count.
func meshWithVertices(n int) mesh.Mesh {
	vertices := make([]mesh.Vertex, n)
	indices := make([]uint32, 0, n*3)
	for i := 2; i < n; i++ {
		indices = append(indices, 0, uint32(i-1), uint32(i))
	}
	return mesh.New(vertices, indices)
}

func TestUpdateAddsToFirstGroup(t *testing.T) {
	g := New[string](100)

	changes, err := g.Update(nil, []Member[string]{
		{Key: "a", Mesh: meshWithVertices(10)},
		{Key: "b", Mesh: meshWithVertices(20)},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if g.GroupCount() != 1 {
		t.Errorf("group count = %d, want 1", g.GroupCount())
	}
	if len(changes) != 1 {
		t.Fatalf("change count = %d, want 1", len(changes))
	}
	if got := len(changes[0].Mesh.Vertices); got != 30 {
		t.Errorf("group mesh vertex count = %d, want 30", got)
	}
}

func TestUpdateOverflowsToNewGroup(t *testing.T) {
	g := New[string](25)

	_, err := g.Update(nil, []Member[string]{
		{Key: "a", Mesh: meshWithVertices(20)},
		{Key: "b", Mesh: meshWithVertices(20)},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	// "b" does not fit next to "a"; "a" is evicted and cascades onward.
	if g.GroupCount() != 2 {
		t.Errorf("group count = %d, want 2", g.GroupCount())
	}
}

func TestUpdateEvictionIsFIFO(t *testing.T) {
	g := New[string](30)

	_, err := g.Update(nil, []Member[string]{
		{Key: "old", Mesh: meshWithVertices(15)},
		{Key: "newer", Mesh: meshWithVertices(10)},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	changes, err := g.Update(nil, []Member[string]{
		{Key: "newest", Mesh: meshWithVertices(10)},
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	// "old" was evicted from group 0 into group 1, so both groups changed.
	if len(changes) != 2 {
		t.Fatalf("change count = %d, want 2", len(changes))
	}
	if got := len(changes[0].Mesh.Vertices); got != 20 {
		t.Errorf("group 0 vertex count = %d, want 20 (newer+newest)", got)
	}
	if got := len(changes[1].Mesh.Vertices); got != 15 {
		t.Errorf("group 1 vertex count = %d, want 15 (evicted old)", got)
	}
}

func TestUpdateRemove(t *testing.T) {
	g := New[string](100)

	if _, err := g.Update(nil, []Member[string]{
		{Key: "a", Mesh: meshWithVertices(10)},
		{Key: "b", Mesh: meshWithVertices(20)},
	}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	changes, err := g.Update([]string{"a"}, nil)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("change count = %d, want 1", len(changes))
	}
	if got := len(changes[0].Mesh.Vertices); got != 20 {
		t.Errorf("group vertex count after removal = %d, want 20", got)
	}
}

func TestUpdateRemoveUnknownKey(t *testing.T) {
	g := New[string](100)
	if _, err := g.Update([]string{"ghost"}, nil); err == nil {
		t.Error("expected error removing unknown key")
	}
}

func TestUpdateMemberLargerThanBudget(t *testing.T) {
	g := New[string](10)
	_, err := g.Update(nil, []Member[string]{
		{Key: "huge", Mesh: meshWithVertices(50)},
	})
	if err == nil {
		t.Error("expected error for member exceeding the group budget")
	}
}

func TestUpdateNoChangesWhenIdle(t *testing.T) {
	g := New[string](100)
	if _, err := g.Update(nil, []Member[string]{
		{Key: "a", Mesh: meshWithVertices(10)},
	}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	changes, err := g.Update(nil, nil)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("idle update reported %d changes, want 0", len(changes))
	}
}

func TestGroupMeshIndicesStayValid(t *testing.T) {
	g := New[int](40)

	var members []Member[int]
	for i := 0; i < 6; i++ {
		members = append(members, Member[int]{Key: i, Mesh: meshWithVertices(12)})
	}
	changes, err := g.Update(nil, members)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	for _, change := range changes {
		for i, idx := range change.Mesh.Indices {
			if idx >= uint32(len(change.Mesh.Vertices)) {
				t.Errorf("group %d index %d = %d, out of range (%d vertices)",
					change.GroupID, i, idx, len(change.Mesh.Vertices))
			}
		}
	}
}
