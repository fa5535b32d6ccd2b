package gfx

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/asset"
)

// Texture is a 2D texture or a cubemap.
type Texture struct {
	ID     uint32
	Target uint32
}

// NewTexture uploads img with mipmaps. sRGB textures (colour maps) are
// converted to linear when sampled; data maps should pass false.
// Rows are uploaded as they are: flip image files with asset.FlipV first.
func NewTexture(img *image.RGBA, srgb bool) (*Texture, error) {
	if img.Stride != img.Rect.Dx()*4 {
		return nil, errors.New("unsupported stride")
	}
	internalFormat := int32(gl.RGBA8)
	if srgb {
		internalFormat = gl.SRGB8_ALPHA8
	}

	t := &Texture{Target: gl.TEXTURE_2D}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Rect.Size().X),
		int32(img.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// cubemap face order: +X, -X, +Y, -Y, +Z, -Z
var cubeFaces = [6]uint32{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// NewCubemap uploads 6 sRGB faces. Faces are scaled to the size of the
// first one; cubemap faces are not flipped.
func NewCubemap(faces [6]*image.RGBA) (*Texture, error) {
	size := faces[0].Rect.Size()
	if size.X != size.Y {
		return nil, errors.Errorf("cubemap faces must be square, got %v", size)
	}

	t := &Texture{Target: gl.TEXTURE_CUBE_MAP}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.ID)

	for i, face := range faces {
		face = asset.Resize(face, size.X, size.Y)
		gl.TexImage2D(cubeFaces[i], 0, gl.SRGB8_ALPHA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return t, nil
}

// Bind binds the texture to a texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
