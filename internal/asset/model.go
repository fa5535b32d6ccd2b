package asset

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/geometry"
)

// LoadModel loads a model, choosing the format from the file extension.
func LoadModel(path string) (*geometry.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, errors.Errorf("unsupported model format %q (%s)", ext, path)
	}
}

// ResolvePath expands a leading ~ and makes p relative to base when it is
// not absolute. An empty p stays empty.
func ResolvePath(base, p string) (string, error) {
	if p == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand path %q", p)
	}
	if filepath.IsAbs(expanded) || base == "" {
		return expanded, nil
	}
	return filepath.Join(base, expanded), nil
}
