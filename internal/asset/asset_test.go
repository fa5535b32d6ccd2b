package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOBJQuad(t *testing.T) {
	mesh, err := LoadModel(filepath.Join("testdata", "quad.obj"))
	require.NoError(t, err)

	// two fan triangles sharing the 4 unique corners
	assert.Len(t, mesh.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	for _, v := range mesh.Vertices {
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, v.Normal)
	}
	assert.Equal(t, mgl32.Vec2{1, 1}, mesh.Vertices[2].TexCoord)
}

func TestDecodeOBJFaceForms(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1 2 3
f 1/1 2/2 3/3
f 1//1 2//1 3//1
f -3/-3/-1 -2/-2/-1 -1/-1/-1
`
	mesh, err := DecodeOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, mesh.TriangleCount())

	// faces without normals get the counter-clockwise face normal
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, mesh.Vertices[mesh.Indices[0]].Normal)
	assert.Equal(t, mgl32.Vec2{1, 0}, mesh.Vertices[mesh.Indices[4]].TexCoord)

	// last face uses relative indices and resolves to the same corners as v/vt/vn
	last := mesh.Indices[9:]
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, mesh.Vertices[last[1]].Position)
	assert.Equal(t, mgl32.Vec2{0, 1}, mesh.Vertices[last[2]].TexCoord)
}

func TestDecodeOBJSharesCorners(t *testing.T) {
	// a flat quad without normals: the fan's two triangles share an edge
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	mesh, err := DecodeOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)

	// a corner shared by faces facing different ways is split
	src = "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 0 0 1\nf 1 2 3\nf 1 4 2\n"
	mesh, err = DecodeOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 6)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, mesh.Vertices[mesh.Indices[0]].Normal)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, mesh.Vertices[mesh.Indices[3]].Normal)
}

func TestDecodeOBJErrors(t *testing.T) {
	cases := map[string]string{
		"no faces":      "v 0 0 0\n",
		"short face":    "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"zero index":    "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"out of range":  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"bad float":     "v 0 zero 0\n",
		"short vertex":  "v 0 0\n",
		"missing uv":    "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n",
		"bad face text": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeOBJ(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func triangleDocument(t *testing.T) *gltf.Document {
	t.Helper()
	doc := gltf.NewDocument()
	position := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	normal := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	uv := modeler.WriteTextureCoord(doc, [][2]float32{{0, 1}, {1, 1}, {0, 0}})
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 2})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "triangle",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indices),
			Attributes: map[string]uint32{
				"POSITION":   position,
				"NORMAL":     normal,
				"TEXCOORD_0": uv,
			},
		}},
	})
	// two nodes referencing the same mesh load it once
	doc.Nodes = append(doc.Nodes,
		&gltf.Node{Mesh: gltf.Index(0), Children: []uint32{1}},
		&gltf.Node{Mesh: gltf.Index(0)},
	)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

func TestDecodeGLTF(t *testing.T) {
	mesh, err := DecodeGLTF(triangleDocument(t))
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, mesh.Vertices[1].Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, mesh.Vertices[1].Normal)
	// v is flipped into GL convention
	assert.Equal(t, mgl32.Vec2{0, 0}, mesh.Vertices[0].TexCoord)
	assert.Equal(t, mgl32.Vec2{0, 1}, mesh.Vertices[2].TexCoord)
}

func TestDecodeGLTFEmpty(t *testing.T) {
	doc := gltf.NewDocument()
	_, err := DecodeGLTF(doc)
	assert.Error(t, err)

	doc.Nodes = append(doc.Nodes, &gltf.Node{})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 3)
	_, err = DecodeGLTF(doc)
	assert.Error(t, err)
}

func TestDecodeGLTFBadAccessor(t *testing.T) {
	tests := map[string]func(p *gltf.Primitive){
		"position": func(p *gltf.Primitive) { p.Attributes["POSITION"] = 42 },
		"normal":   func(p *gltf.Primitive) { p.Attributes["NORMAL"] = 42 },
		"texcoord": func(p *gltf.Primitive) { p.Attributes["TEXCOORD_0"] = 42 },
		"indices":  func(p *gltf.Primitive) { p.Indices = gltf.Index(42) },
	}
	for name, breakIt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := triangleDocument(t)
			breakIt(doc.Meshes[0].Primitives[0])

			_, err := DecodeGLTF(doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "accessor 42 out of range")
		})
	}

	// no accessors at all
	doc := gltf.NewDocument()
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{{
		Attributes: map[string]uint32{"POSITION": 3},
	}}})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	_, err := DecodeGLTF(doc)
	assert.Error(t, err)

	doc = triangleDocument(t)
	doc.Accessors[0].BufferView = gltf.Index(42)
	_, err = DecodeGLTF(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer view 42 out of range")
}

func TestLoadModelUnsupported(t *testing.T) {
	_, err := LoadModel("teapot.fbx")
	assert.Error(t, err)

	_, err = LoadModel(filepath.Join("testdata", "missing.obj"))
	assert.Error(t, err)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	src.Set(1, 1, color.NRGBA{0, 0, 255, 255})

	img, err := DecodeImage(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0))

	flipped := FlipV(img)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, flipped.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, flipped.RGBAAt(1, 0))
}

func TestDecodeImageRejectsUnknown(t *testing.T) {
	_, err := DecodeImage([]byte("definitely not an image"))
	assert.Error(t, err)

	// a known type that is not a texture
	_, err = DecodeImage([]byte("%PDF-1.4\n"))
	assert.Error(t, err)
}

func TestLoadImageFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "white.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, SolidImage(color.White)), 0o644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestResizeAndSolid(t *testing.T) {
	img := Resize(Black(), 4, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(3, 1))

	same := SolidImage(color.White)
	assert.Same(t, same, Resize(same, 1, 1))
}

func TestToRGBARebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{1, 2, 3, 255})

	img := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, img.RGBAAt(0, 0))
}

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("/scene", "textures/box.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/scene", "textures/box.png"), p)

	p, err = ResolvePath("/scene", "/abs/box.png")
	require.NoError(t, err)
	assert.Equal(t, "/abs/box.png", p)

	home, err := homedir.Dir()
	require.NoError(t, err)
	p, err = ResolvePath("/scene", "~/box.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "box.png"), p)

	p, err = ResolvePath("/scene", "")
	require.NoError(t, err)
	assert.Empty(t, p)
}
