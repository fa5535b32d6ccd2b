package asset

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/paperboard/glscene/internal/geometry"
)

// LoadGLTF reads a .gltf or .glb model from disk.
func LoadGLTF(path string) (*geometry.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open model %q", path)
	}
	mesh, err := DecodeGLTF(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model %q", path)
	}
	return mesh, nil
}

// DecodeGLTF merges every triangle primitive of the meshes referenced by the
// default scene into one mesh. Node transforms are not applied.
func DecodeGLTF(doc *gltf.Document) (*geometry.Mesh, error) {
	if len(doc.Scenes) == 0 {
		return nil, errors.New("gltf has no scenes")
	}
	sceneIndex := uint32(0)
	if doc.Scene != nil {
		sceneIndex = *doc.Scene
	}
	if int(sceneIndex) >= len(doc.Scenes) {
		return nil, errors.Errorf("gltf default scene %d out of range", sceneIndex)
	}

	out := &geometry.Mesh{}
	visited := make(map[uint32]bool)

	var walk func(node uint32) error
	walk = func(node uint32) error {
		if int(node) >= len(doc.Nodes) {
			return errors.Errorf("gltf node %d out of range", node)
		}
		n := doc.Nodes[node]
		if n.Mesh != nil && !visited[*n.Mesh] {
			visited[*n.Mesh] = true
			if err := decodeGLTFMesh(doc, *n.Mesh, out); err != nil {
				return err
			}
		}
		for _, child := range n.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, node := range doc.Scenes[sceneIndex].Nodes {
		if err := walk(node); err != nil {
			return nil, err
		}
	}

	if len(out.Indices) == 0 {
		return nil, errors.New("gltf has no triangles")
	}
	return out, nil
}

func decodeGLTFMesh(doc *gltf.Document, index uint32, out *geometry.Mesh) error {
	if int(index) >= len(doc.Meshes) {
		return errors.Errorf("gltf mesh %d out of range", index)
	}
	mesh := doc.Meshes[index]
	for pi, primitive := range mesh.Primitives {
		if primitive.Mode != gltf.PrimitiveTriangles {
			continue
		}
		part, err := decodeGLTFPrimitive(doc, primitive)
		if err != nil {
			return errors.Wrapf(err, "mesh %q primitive %d", mesh.Name, pi)
		}
		out.Append(part)
	}
	return nil
}

func decodeGLTFPrimitive(doc *gltf.Document, primitive *gltf.Primitive) (*geometry.Mesh, error) {
	posIndex, ok := primitive.Attributes["POSITION"]
	if !ok {
		return nil, errors.New("primitive has no POSITION attribute")
	}
	acr, err := accessor(doc, posIndex)
	if err != nil {
		return nil, errors.Wrap(err, "POSITION")
	}
	positions, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read positions")
	}

	var normals [][3]float32
	if i, ok := primitive.Attributes["NORMAL"]; ok {
		if acr, err = accessor(doc, i); err != nil {
			return nil, errors.Wrap(err, "NORMAL")
		}
		if normals, err = modeler.ReadNormal(doc, acr, nil); err != nil {
			return nil, errors.Wrap(err, "failed to read normals")
		}
	}

	var uvs [][2]float32
	if i, ok := primitive.Attributes["TEXCOORD_0"]; ok {
		if acr, err = accessor(doc, i); err != nil {
			return nil, errors.Wrap(err, "TEXCOORD_0")
		}
		if uvs, err = modeler.ReadTextureCoord(doc, acr, nil); err != nil {
			return nil, errors.Wrap(err, "failed to read texture coordinates")
		}
	}

	part := &geometry.Mesh{Vertices: make([]geometry.Vertex3D, len(positions))}
	for i, p := range positions {
		v := geometry.Vertex3D{Position: mgl32.Vec3(p)}
		if i < len(normals) {
			v.Normal = mgl32.Vec3(normals[i])
		}
		if i < len(uvs) {
			// glTF puts the uv origin top-left, GL bottom-left
			v.TexCoord = mgl32.Vec2{uvs[i][0], 1 - uvs[i][1]}
		}
		part.Vertices[i] = v
	}

	if primitive.Indices != nil {
		if acr, err = accessor(doc, *primitive.Indices); err != nil {
			return nil, errors.Wrap(err, "indices")
		}
		indices, err := modeler.ReadIndices(doc, acr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read indices")
		}
		part.Indices = indices
	} else {
		part.Indices = make([]uint32, len(positions))
		for i := range part.Indices {
			part.Indices[i] = uint32(i)
		}
	}
	for _, i := range part.Indices {
		if int(i) >= len(part.Vertices) {
			return nil, errors.Errorf("index %d out of range (%d vertices)", i, len(part.Vertices))
		}
	}
	return part, nil
}

func accessor(doc *gltf.Document, index uint32) (*gltf.Accessor, error) {
	if int(index) >= len(doc.Accessors) {
		return nil, errors.Errorf("accessor %d out of range (%d accessors)", index, len(doc.Accessors))
	}
	acr := doc.Accessors[index]
	if acr.BufferView == nil {
		return acr, nil
	}
	if int(*acr.BufferView) >= len(doc.BufferViews) {
		return nil, errors.Errorf("accessor %d: buffer view %d out of range", index, *acr.BufferView)
	}
	if view := doc.BufferViews[*acr.BufferView]; int(view.Buffer) >= len(doc.Buffers) {
		return nil, errors.Errorf("accessor %d: buffer %d out of range", index, view.Buffer)
	}
	return acr, nil
}
