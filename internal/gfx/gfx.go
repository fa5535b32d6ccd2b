// Package gfx wraps the OpenGL 3.3 core objects the scene is drawn with:
// programs, meshes, textures and the offscreen framebuffer.
//
// Every function must be called on the thread owning the GL context.
package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const (
	bytesFloat32 = 4 // a float32 is 4 bytes
	bytesUint32  = 4 // a uint32 is 4 bytes
	bytesUint16  = 2 // a uint16 is 2 bytes
)

// Init loads the GL function pointers of the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return err
	}
	return nil
}

// Version is the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer is the GL renderer (GPU) name.
func Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

// GLSLVersion is the shading language version string.
func GLSLVersion() string {
	return gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

var GL_ERROR_LOOKUP = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

func panicGLError(errcode uint32) {
	if errstr, ok := GL_ERROR_LOOKUP[errcode]; ok {
		panic(fmt.Sprintf("GL_ERROR: %s\n", errstr))
	} else {
		panic(fmt.Sprintf("GL_ERROR UNKNOWN: %v\n", errcode))
	}
}

// CheckGLError panics on the first accumulated OpenGL error.
func CheckGLError() {
	for {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		panicGLError(glerr)
	}
}
