package scene

import "github.com/alucas2/raytracing-potato/types"

// A mesh vertex.
type Vertex struct {
	Position types.Vec3
	Normal   types.Vec3
	UV       types.Vec2
}

// An indexed triangle mesh. Every three consecutive indices form a triangle.
// All triangles of a mesh share one material.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Material MaterialId
}

// Fetch the three vertices of a triangle.
func (m *Mesh) Triangle(id TriangleId) (Vertex, Vertex, Vertex) {
	i := id.ToIndex()
	return m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
}

// Enumerate the triangle ids of the mesh.
func (m *Mesh) Triangles() []TriangleId {
	ids := make([]TriangleId, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ids = append(ids, TriangleId(i))
	}
	return ids
}
