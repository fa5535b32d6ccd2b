package asset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/geometry"
)

// objIndex is one corner of a face: 0-based position, texcoord and normal
// indices, -1 when absent.
type objIndex struct {
	v, vt, vn int
}

// objVertex identifies a mesh vertex. flat is the face normal of corners
// without their own normal, zero otherwise.
type objVertex struct {
	objIndex
	flat mgl32.Vec3
}

type objDecoder struct {
	line      int
	positions []mgl32.Vec3
	texCoords []mgl32.Vec2
	normals   []mgl32.Vec3

	mesh   geometry.Mesh
	unique map[objVertex]uint32
}

// LoadOBJ reads a Wavefront OBJ model from disk.
func LoadOBJ(path string) (*geometry.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open model %q", path)
	}
	defer f.Close()

	mesh, err := DecodeOBJ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model %q", path)
	}
	return mesh, nil
}

// DecodeOBJ parses the geometry of an OBJ file into an indexed triangle mesh.
// Materials, groups and smoothing statements are ignored; polygons are split
// into triangle fans. Each unique v/vt/vn triple becomes one vertex; corners
// without a normal are shared only between faces with the same normal.
func DecodeOBJ(r io.Reader) (*geometry.Mesh, error) {
	dec := &objDecoder{unique: make(map[objVertex]uint32)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		dec.line++
		if err := dec.parseLine(scanner.Text()); err != nil {
			return nil, errors.Wrapf(err, "line %d", dec.line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read obj")
	}
	if len(dec.mesh.Indices) == 0 {
		return nil, errors.New("obj has no faces")
	}
	return &dec.mesh, nil
}

func (dec *objDecoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return errors.Wrap(err, "vertex (v)")
		}
		dec.positions = append(dec.positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(fields[1:], 2)
		if err != nil {
			return errors.Wrap(err, "texture coordinate (vt)")
		}
		dec.texCoords = append(dec.texCoords, mgl32.Vec2{v[0], v[1]})
	case "vn":
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return errors.Wrap(err, "normal (vn)")
		}
		dec.normals = append(dec.normals, mgl32.Vec3{v[0], v[1], v[2]})
	case "f":
		return dec.parseFace(fields[1:])
	}
	// o, g, s, mtllib, usemtl and anything else carry no geometry
	return nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, errors.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// resolve turns a 1-based (or negative, relative) OBJ index into a 0-based one.
func resolve(field string, count int) (int, error) {
	i, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, errors.New("index value equal to 0")
	}
	if i < 0 || i >= count {
		return 0, errors.Errorf("index %s out of range (%d elements)", field, count)
	}
	return i, nil
}

// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *objDecoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return errors.New("face (f) with less than 3 vertices")
	}
	corners := make([]objIndex, len(fields))
	for n, field := range fields {
		parts := strings.Split(field, "/")
		idx := objIndex{vt: -1, vn: -1}

		var err error
		if idx.v, err = resolve(parts[0], len(dec.positions)); err != nil {
			return errors.Wrap(err, "face vertex")
		}
		if len(parts) > 1 && parts[1] != "" {
			if idx.vt, err = resolve(parts[1], len(dec.texCoords)); err != nil {
				return errors.Wrap(err, "face texture coordinate")
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if idx.vn, err = resolve(parts[2], len(dec.normals)); err != nil {
				return errors.Wrap(err, "face normal")
			}
		}
		corners[n] = idx
	}

	// triangle fan around the first corner
	for i := 1; i+1 < len(corners); i++ {
		tri := [3]objIndex{corners[0], corners[i], corners[i+1]}
		flat := dec.flatNormal(tri)
		for _, c := range tri {
			dec.mesh.Indices = append(dec.mesh.Indices, dec.vertex(c, flat))
		}
	}
	return nil
}

func (dec *objDecoder) flatNormal(tri [3]objIndex) mgl32.Vec3 {
	a := dec.positions[tri[0].v]
	b := dec.positions[tri[1].v]
	c := dec.positions[tri[2].v]
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

// vertex returns the mesh index of corner c, adding the vertex when new.
// Corners without a normal get the face normal flat.
func (dec *objDecoder) vertex(c objIndex, flat mgl32.Vec3) uint32 {
	key := objVertex{objIndex: c}
	if c.vn < 0 {
		key.flat = flat
	}
	if i, ok := dec.unique[key]; ok {
		return i
	}

	v := geometry.Vertex3D{Position: dec.positions[c.v], Normal: flat}
	if c.vt >= 0 {
		v.TexCoord = dec.texCoords[c.vt]
	}
	if c.vn >= 0 {
		v.Normal = dec.normals[c.vn]
	}

	i := uint32(len(dec.mesh.Vertices))
	dec.mesh.Vertices = append(dec.mesh.Vertices, v)
	dec.unique[key] = i
	return i
}
