package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, SavePNG(path, img))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, 5, 3)

	layer, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, layer.Path)
	require.True(t, layer.Visible)
	require.Equal(t, 1.0, layer.Opacity)

	b := layer.Image.Bounds()
	require.Equal(t, 5, b.Dx())
	require.Equal(t, 3, b.Dy())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestLoadRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLayerBounds(t *testing.T) {
	layer := NewLayer()
	require.Equal(t, 0.0, layer.Bounds().Width)

	layer.Image = image.NewRGBA(image.Rect(0, 0, 7, 9))
	b := layer.Bounds()
	require.Equal(t, 7.0, b.Width)
	require.Equal(t, 9.0, b.Height)
}

func TestSupported(t *testing.T) {
	for _, path := range []string{"a.png", "b.JPG", "c.jpeg", "d.tiff", "e.webp", "f.bmp"} {
		require.True(t, Supported(path), path)
	}
	for _, path := range []string{"a.txt", "b.gif", "c", "d.png.bak"} {
		require.False(t, Supported(path), path)
	}
}

func TestToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 2, 6, 5))
	src.SetNRGBA(3, 3, color.NRGBA{R: 200, A: 255})

	rgba := ToRGBA(src)
	require.Equal(t, image.Rect(0, 0, 4, 3), rgba.Bounds())
	require.Equal(t, uint8(200), rgba.RGBAAt(1, 1).R)

	// Already-RGBA images pass through untouched.
	direct := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.Same(t, direct, ToRGBA(direct))
}
