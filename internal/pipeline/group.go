package pipeline

import (
	"fmt"

	"github.com/Faultbox/meshsculpt/pkg/grouper"
)

// GroupStats summarizes the result of batching built meshes.
type GroupStats struct {
	Groups        int
	Meshes        int
	TotalVertices int
}

// GroupMeshes batches the built meshes into vertex-budgeted draw groups and
// returns the combined mesh of every group. Scene names may repeat, so the
// grouper is keyed by position and name together.
func GroupMeshes(built []BuiltMesh, maxVerticesPerGroup int) ([]grouper.GroupChange, GroupStats, error) {
	g := grouper.New[string](maxVerticesPerGroup)

	members := make([]grouper.Member[string], 0, len(built))
	totalVertices := 0
	for i, entry := range built {
		members = append(members, grouper.Member[string]{
			Key:  fmt.Sprintf("%d:%s", i, entry.Name),
			Mesh: entry.Mesh,
		})
		totalVertices += len(entry.Mesh.Vertices)
	}

	changes, err := g.Update(nil, members)
	if err != nil {
		return nil, GroupStats{}, err
	}
	stats := GroupStats{
		Groups:        g.GroupCount(),
		Meshes:        len(built),
		TotalVertices: totalVertices,
	}
	return changes, stats, nil
}
