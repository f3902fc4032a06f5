// Package imageio provides image loading and the layer type used for display.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"pattern-compare/pkg/geometry"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Layer represents a single decoded image and its display settings.
type Layer struct {
	Path    string      // Original file path
	Image   image.Image // Decoded image data
	Visible bool        // Layer visibility
	Opacity float64     // Layer opacity (0.0 - 1.0)
}

// NewLayer creates a new Layer with default settings.
func NewLayer() *Layer {
	return &Layer{
		Visible: true,
		Opacity: 1.0,
	}
}

// Bounds returns the layer's image bounds as a geometry.Rect, or a zero
// rectangle when no image is loaded.
func (l *Layer) Bounds() geometry.Rect {
	if l.Image == nil {
		return geometry.Rect{}
	}
	b := l.Image.Bounds()
	return geometry.NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))
}

// Load loads an image from the specified path and returns a Layer.
func Load(path string) (*Layer, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	layer := NewLayer()
	layer.Path = path
	layer.Image = img
	return layer, nil
}

// LoadImage decodes an image file. PNG, JPEG, TIFF, WebP, and BMP are
// supported.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// SavePNG writes an image to the specified path as PNG.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Supported reports whether the file extension is a loadable image format.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".webp", ".bmp":
		return true
	}
	return false
}

// Extensions lists the supported file extensions, for dialog filters.
func Extensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".webp", ".bmp"}
}

// ToRGBA returns the image as *image.RGBA, converting if necessary.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return rgba
}
