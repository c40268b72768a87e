// Package mesh provides the triangle mesh container produced by the sculpt
// core and consumed by the asset pipeline.
package mesh

// Vertex is a mesh vertex with a 3-component position. The first two
// components are the planar coordinates, the third is the elevation.
type Vertex struct {
	Position [3]float32
}

// Mesh holds a vertex buffer and a triangle index buffer ready for GPU
// upload. Indices come in triples, one per triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// New creates a mesh from existing buffers.
func New(vertices []Vertex, indices []uint32) Mesh {
	return Mesh{Vertices: vertices, Indices: indices}
}

// Empty creates a mesh with no geometry.
func Empty() Mesh {
	return Mesh{}
}

// Append adds another mesh's geometry to this one. The other mesh's indices
// are shifted by the receiver's current vertex count, so both index buffers
// stay valid in the combined mesh.
func (m *Mesh) Append(other Mesh) {
	offset := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// Sum combines a sequence of meshes into one, in order.
func Sum(meshes []Mesh) Mesh {
	var summed Mesh
	for _, m := range meshes {
		summed.Append(m)
	}
	return summed
}

// TriangleCount returns the number of triangles.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
