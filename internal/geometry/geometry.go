// Package geometry holds vertex layouts and the built-in shapes of the scene.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// floats per interleaved vertex
const (
	Vertex3DSize = 8 // x,y,z + nx,ny,nz + u,v
	Vertex2DSize = 4 // x,y + u,v
)

// Vertex3D is the vertex of every lit mesh.
type Vertex3D struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Vertex2D is the vertex of the full-screen quad.
type Vertex2D struct {
	Position mgl32.Vec2
	TexCoord mgl32.Vec2
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex3D
	Indices  []uint32
}

// Interleave flattens the vertices to position, normal, texcoord per vertex.
func (m *Mesh) Interleave() []float32 {
	return Interleave3D(m.Vertices)
}

// TriangleCount returns the number of triangles drawn for the mesh.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// Append adds other to m, rebasing its indices.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

func Interleave3D(vertices []Vertex3D) []float32 {
	out := make([]float32, 0, len(vertices)*Vertex3DSize)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

func Interleave2D(vertices []Vertex2D) []float32 {
	out := make([]float32, 0, len(vertices)*Vertex2DSize)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}
