package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// textured cube of side 2, counter-clockwise front faces
// position x,y,z | normal x,y,z | texcoord u,v
var cubeVertices = []float32{
	// back
	-1, -1, -1, 0, 0, -1, 0, 0,
	1, 1, -1, 0, 0, -1, 1, 1,
	1, -1, -1, 0, 0, -1, 1, 0,
	1, 1, -1, 0, 0, -1, 1, 1,
	-1, -1, -1, 0, 0, -1, 0, 0,
	-1, 1, -1, 0, 0, -1, 0, 1,
	// front
	-1, -1, 1, 0, 0, 1, 0, 0,
	1, -1, 1, 0, 0, 1, 1, 0,
	1, 1, 1, 0, 0, 1, 1, 1,
	1, 1, 1, 0, 0, 1, 1, 1,
	-1, 1, 1, 0, 0, 1, 0, 1,
	-1, -1, 1, 0, 0, 1, 0, 0,
	// left
	-1, 1, 1, -1, 0, 0, 1, 0,
	-1, 1, -1, -1, 0, 0, 1, 1,
	-1, -1, -1, -1, 0, 0, 0, 1,
	-1, -1, -1, -1, 0, 0, 0, 1,
	-1, -1, 1, -1, 0, 0, 0, 0,
	-1, 1, 1, -1, 0, 0, 1, 0,
	// right
	1, 1, 1, 1, 0, 0, 1, 0,
	1, -1, -1, 1, 0, 0, 0, 1,
	1, 1, -1, 1, 0, 0, 1, 1,
	1, -1, -1, 1, 0, 0, 0, 1,
	1, 1, 1, 1, 0, 0, 1, 0,
	1, -1, 1, 1, 0, 0, 0, 0,
	// bottom
	-1, -1, -1, 0, -1, 0, 0, 1,
	1, -1, -1, 0, -1, 0, 1, 1,
	1, -1, 1, 0, -1, 0, 1, 0,
	1, -1, 1, 0, -1, 0, 1, 0,
	-1, -1, 1, 0, -1, 0, 0, 0,
	-1, -1, -1, 0, -1, 0, 0, 1,
	// top
	-1, 1, -1, 0, 1, 0, 0, 1,
	1, 1, 1, 0, 1, 0, 1, 0,
	1, 1, -1, 0, 1, 0, 1, 1,
	1, 1, 1, 0, 1, 0, 1, 0,
	-1, 1, -1, 0, 1, 0, 0, 1,
	-1, 1, 1, 0, 1, 0, 0, 0,
}

// Cube returns the 36 vertices of the textured cube, drawn without indices.
func Cube() []Vertex3D {
	n := len(cubeVertices) / Vertex3DSize
	out := make([]Vertex3D, n)
	for i := range out {
		v := cubeVertices[i*Vertex3DSize:]
		out[i] = Vertex3D{
			Position: mgl32.Vec3{v[0], v[1], v[2]},
			Normal:   mgl32.Vec3{v[3], v[4], v[5]},
			TexCoord: mgl32.Vec2{v[6], v[7]},
		}
	}
	return out
}

// CubeMesh is the textured cube as a Mesh without indices.
func CubeMesh() *Mesh {
	return &Mesh{Vertices: Cube()}
}

const skyboxSide = 1.0

// SkyboxVertices returns the positions of the skybox cube, four per face.
func SkyboxVertices() []mgl32.Vec3 {
	s := float32(skyboxSide)
	return []mgl32.Vec3{
		// front
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
		// right
		{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s},
		// back
		{-s, -s, -s}, {-s, s, -s}, {s, s, -s}, {s, -s, -s},
		// left
		{-s, -s, s}, {-s, s, s}, {-s, s, -s}, {-s, -s, -s},
		// bottom
		{-s, -s, s}, {-s, -s, -s}, {s, -s, -s}, {s, -s, s},
		// top
		{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s},
	}
}

// SkyboxIndices returns two inward facing triangles per skybox face.
func SkyboxIndices() []uint16 {
	indices := make([]uint16, 0, 36)
	for face := uint16(0); face < 6; face++ {
		i := face * 4
		indices = append(indices,
			i, i+2, i+1, // first triangle
			i, i+3, i+2, // second triangle
		)
	}
	return indices
}

// ScreenQuad returns two triangles covering the whole viewport in NDC.
//
// (0,1)    (1,1)
//  v0------v5
//  |       |
//  |       |
//  v1------v2
// (0,0)    (1,0)
func ScreenQuad() []Vertex2D {
	return []Vertex2D{
		{Position: mgl32.Vec2{-1, 1}, TexCoord: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec2{-1, -1}, TexCoord: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec2{1, -1}, TexCoord: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec2{-1, 1}, TexCoord: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec2{1, -1}, TexCoord: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec2{1, 1}, TexCoord: mgl32.Vec2{1, 1}},
	}
}
