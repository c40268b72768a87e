// Package grouper batches many small meshes into few large, vertex-budgeted
// groups, so a renderer can draw thousands of individual meshes in a handful
// of draw calls. Members are keyed; replacing or removing a member
// regenerates only the groups it touched.
package grouper

import (
	"fmt"

	"github.com/Faultbox/meshsculpt/pkg/mesh"
)

// Member is a keyed mesh managed by a MeshGrouper.
type Member[K comparable] struct {
	Key  K
	Mesh mesh.Mesh
}

// meshQueue is one group: a FIFO of members under a shared vertex budget.
// Pushing past the budget evicts members from the front; evicted members
// cascade into the next group.
type meshQueue[K comparable] struct {
	members       []Member[K]
	totalVertices int
	maxVertices   int
	dirty         bool
}

func newMeshQueue[K comparable](maxVertices int) *meshQueue[K] {
	return &meshQueue[K]{maxVertices: maxVertices}
}

// push appends members, evicting from the front until the new total fits.
// totalNewVertices must not exceed the queue budget on its own.
func (q *meshQueue[K]) push(newMembers []Member[K], totalNewVertices int) (dropped []Member[K], droppedVertices int, err error) {
	if totalNewVertices > q.maxVertices {
		return nil, 0, fmt.Errorf("grouper: %d vertices exceed the group budget of %d",
			totalNewVertices, q.maxVertices)
	}

	for q.totalVertices+totalNewVertices > q.maxVertices {
		evicted := q.members[0]
		q.members = q.members[1:]
		q.totalVertices -= len(evicted.Mesh.Vertices)
		droppedVertices += len(evicted.Mesh.Vertices)
		dropped = append(dropped, evicted)
	}

	q.members = append(q.members, newMembers...)
	q.totalVertices += totalNewVertices
	q.dirty = true
	return dropped, droppedVertices, nil
}

func (q *meshQueue[K]) remove(key K) bool {
	for i, member := range q.members {
		if member.Key == key {
			q.totalVertices -= len(member.Mesh.Vertices)
			q.members = append(q.members[:i], q.members[i+1:]...)
			q.dirty = true
			return true
		}
	}
	return false
}

// meshIfChanged regenerates the combined group mesh when any member changed
// since the last call.
func (q *meshQueue[K]) meshIfChanged() (mesh.Mesh, bool) {
	if !q.dirty {
		return mesh.Mesh{}, false
	}
	q.dirty = false

	combined := mesh.Empty()
	for _, member := range q.members {
		combined.Append(member.Mesh)
	}
	return combined, true
}

// GroupChange reports a group whose combined mesh was regenerated by Update.
type GroupChange struct {
	GroupID int
	Mesh    mesh.Mesh
}

// MeshGrouper distributes keyed meshes over vertex-budgeted groups.
type MeshGrouper[K comparable] struct {
	groups              []*meshQueue[K]
	membership          map[K]int
	maxVerticesPerGroup int
}

// New creates a grouper whose groups hold at most maxVerticesPerGroup
// vertices each.
func New[K comparable](maxVerticesPerGroup int) *MeshGrouper[K] {
	return &MeshGrouper[K]{
		membership:          make(map[K]int),
		maxVerticesPerGroup: maxVerticesPerGroup,
	}
}

// GroupCount returns the number of groups currently allocated.
func (g *MeshGrouper[K]) GroupCount() int {
	return len(g.groups)
}

// Update removes the given keys, adds the given members, and returns the
// regenerated mesh of every group that changed. Members evicted from a full
// group cascade into later groups; a new group is appended when the existing
// ones are full. A single member larger than the group budget is an error.
func (g *MeshGrouper[K]) Update(toRemove []K, toAdd []Member[K]) ([]GroupChange, error) {
	for _, key := range toRemove {
		groupIdx, known := g.membership[key]
		if !known {
			return nil, fmt.Errorf("grouper: removing unknown key %v", key)
		}
		g.groups[groupIdx].remove(key)
		delete(g.membership, key)
	}

	for _, newMember := range toAdd {
		toPush := []Member[K]{newMember}
		pushVertices := len(newMember.Mesh.Vertices)
		currentGroup := 0

		for len(toPush) > 0 {
			// Everything still to push will fit into the current group.
			for _, member := range toPush {
				g.membership[member.Key] = currentGroup
			}

			if currentGroup == len(g.groups) {
				g.groups = append(g.groups, newMeshQueue[K](g.maxVerticesPerGroup))
			}
			var err error
			toPush, pushVertices, err = g.groups[currentGroup].push(toPush, pushVertices)
			if err != nil {
				return nil, err
			}
			currentGroup++
		}
	}

	var changes []GroupChange
	for i, group := range g.groups {
		if m, changed := group.meshIfChanged(); changed {
			changes = append(changes, GroupChange{GroupID: i, Mesh: m})
		}
	}
	return changes, nil
}
