package assets

import (
	"fmt"
	"strings"
)

// Class identifies the kind of asset being resolved.
type Class int

const (
	// ClassModel is a 3D model (GLB).
	ClassModel Class = iota
	// ClassImage is a raster preview image.
	ClassImage
)

// Extensions and directories per class.
const (
	ModelExtension     = ".glb"
	CompanionExtension = ".usdz"
	ImageExtension     = ".jpg" // used when synthesizing a fallback image path

	DefaultModelsDir = "/models"
	DefaultImagesDir = "/images"
)

// imageExtensions is the order image files are probed in.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var modelExtensions = []string{ModelExtension}

// Classes lists every class in declaration order.
func Classes() []Class {
	return []Class{ClassModel, ClassImage}
}

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case ClassModel:
		return "model"
	case ClassImage:
		return "image"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Extensions returns the acceptable file extensions for the class, in
// probing order. The returned slice is a copy.
func (c Class) Extensions() []string {
	switch c {
	case ClassImage:
		return append([]string(nil), imageExtensions...)
	default:
		return append([]string(nil), modelExtensions...)
	}
}

// extensions returns the shared slice; callers must not modify it.
func (c Class) extensions() []string {
	if c == ClassImage {
		return imageExtensions
	}
	return modelExtensions
}

// ParseClass parses "model" or "image" (case-insensitive, plural accepted).
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "model", "models":
		return ClassModel, nil
	case "image", "images":
		return ClassImage, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}
