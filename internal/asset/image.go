// Package asset loads the static files the scene is built from: texture
// images and 3D models. Nothing in here touches the GL context.
package asset

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// supported texture formats by sniffed extension
var imageKinds = map[string]bool{
	"png":  true,
	"jpg":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

// LoadImage reads and decodes a texture image from disk.
func LoadImage(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read image %q", path)
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load image %q", path)
	}
	return img, nil
}

// DecodeImage detects the image format from its content, decodes it and
// converts it to RGBA.
func DecodeImage(data []byte) (*image.RGBA, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect image type")
	}
	if kind == filetype.Unknown || !imageKinds[kind.Extension] {
		return nil, errors.Errorf("unsupported image type %q", kind.MIME.Value)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s image", kind.Extension)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to an RGBA image with its origin at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipV mirrors the image rows. Image files store the top row first while GL
// expects the bottom row first for 2D textures.
func FlipV(img *image.RGBA) *image.RGBA {
	return transform.FlipV(img)
}

// Resize scales img to width x height with bilinear filtering.
func Resize(img *image.RGBA, width, height int) *image.RGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	return transform.Resize(img, width, height, transform.Linear)
}

// SolidImage returns a 1x1 image of colour c.
func SolidImage(c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}

// Black is the specular map of surfaces that should not shine.
func Black() *image.RGBA {
	return SolidImage(color.RGBA{0, 0, 0, 255})
}
