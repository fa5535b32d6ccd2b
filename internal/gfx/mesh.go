package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glscene/internal/geometry"
	"github.com/paperboard/glscene/internal/shader"
)

// Mesh is a vertex array object with its buffers.
type Mesh struct {
	vao uint32 // records the attribute layout and the bound ibo
	vbo uint32 // stores interleaved vertex data
	ibo uint32 // stores sets of indices to draw that make up triangles, 0 when not indexed

	count     int32  // indices (or vertices when not indexed) to draw
	indexType uint32 // gl.UNSIGNED_INT or gl.UNSIGNED_SHORT
}

// attribute of an interleaved float vertex
type attribute struct {
	location uint32
	size     int32 // float components
	offset   int   // floats from the start of the vertex
}

func newMesh(vertices []float32, stride int, attributes []attribute) *Mesh {
	m := &Mesh{count: int32(len(vertices) / stride)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// copy vertex data to VBO
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*bytesFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	// configure and enable vertex attributes
	for _, a := range attributes {
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribPointer(a.location, a.size, gl.FLOAT, false, int32(stride*bytesFloat32), gl.PtrOffset(a.offset*bytesFloat32))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

// the ibo binding is stored in the VAO, so it must stay bound until the VAO
// is unbound
func (m *Mesh) attachIndices(size int, data interface{}, count int, indexType uint32) {
	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, size, gl.Ptr(data), gl.STATIC_DRAW)
	m.count = int32(count)
	m.indexType = indexType
}

var attributes3D = []attribute{
	{shader.AttribPosition, 3, 0},
	{shader.AttribNormal, 3, 3},
	{shader.AttribTexCoord, 2, 6},
}

// NewMesh uploads an indexed mesh of Vertex3D.
func NewMesh(mesh *geometry.Mesh) *Mesh {
	m := newMesh(mesh.Interleave(), geometry.Vertex3DSize, attributes3D)
	if len(mesh.Indices) > 0 {
		m.attachIndices(len(mesh.Indices)*bytesUint32, mesh.Indices, len(mesh.Indices), gl.UNSIGNED_INT)
	}
	gl.BindVertexArray(0)
	return m
}

// NewPositionMesh uploads positions with 16-bit indices, for the skybox.
func NewPositionMesh(positions []mgl32.Vec3, indices []uint16) *Mesh {
	flat := make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		flat = append(flat, p[0], p[1], p[2])
	}
	m := newMesh(flat, 3, []attribute{{shader.AttribPosition, 3, 0}})
	m.attachIndices(len(indices)*bytesUint16, indices, len(indices), gl.UNSIGNED_SHORT)
	gl.BindVertexArray(0)
	return m
}

// NewScreenMesh uploads the non-indexed full-screen quad.
func NewScreenMesh(vertices []geometry.Vertex2D) *Mesh {
	m := newMesh(geometry.Interleave2D(vertices), geometry.Vertex2DSize, []attribute{
		{shader.AttribScreenPosition, 2, 0},
		{shader.AttribScreenTexCoord, 2, 2},
	})
	gl.BindVertexArray(0)
	return m
}

// Draw draws the mesh as triangles with the program in use.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ibo != 0 {
		gl.DrawElements(gl.TRIANGLES, m.count, m.indexType, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
