package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliderRenderer_Defaults(t *testing.T) {
	r := NewSliderRenderer()
	require.Equal(t, 50.0, r.Percent())
}

func TestSliderRenderer_SetPercentClamps(t *testing.T) {
	r := NewSliderRenderer()

	r.SetPercent(-10)
	require.Equal(t, 0.0, r.Percent())

	r.SetPercent(130)
	require.Equal(t, 100.0, r.Percent())

	r.SetPercent(42.5)
	require.Equal(t, 42.5, r.Percent())
}

func TestSliderRenderer_SetFromPointer(t *testing.T) {
	r := NewSliderRenderer()

	r.SetFromPointer(100, 400)
	require.InDelta(t, 25.0, r.Percent(), 1e-9)

	r.SetFromPointer(140, 400)
	require.InDelta(t, 35.0, r.Percent(), 1e-9)

	// Off-stage positions clamp to the extremes.
	r.SetFromPointer(-20, 400)
	require.Equal(t, 0.0, r.Percent())
	r.SetFromPointer(450, 400)
	require.Equal(t, 100.0, r.Percent())

	// Degenerate width leaves the percentage untouched.
	r.SetFromPointer(10, 0)
	require.Equal(t, 100.0, r.Percent())
}

func TestSliderRenderer_PointerSweepIsMonotonic(t *testing.T) {
	r := NewSliderRenderer()
	prev := -1.0
	for x := 0.0; x <= 400; x += 25 {
		r.SetFromPointer(x, 400)
		require.GreaterOrEqual(t, r.Percent(), prev)
		prev = r.Percent()
	}
}

func TestSliderRenderer_HitHandle(t *testing.T) {
	r := NewSliderRenderer()
	r.SetPercent(50)

	// Boundary at x=200 on a 400px stage; the hit target spans 32px.
	require.True(t, r.HitHandle(200, 400))
	require.True(t, r.HitHandle(185, 400))
	require.True(t, r.HitHandle(216, 400))
	require.False(t, r.HitHandle(230, 400))
	require.False(t, r.HitHandle(170, 400))
}

func TestSliderRenderer_DrawRevealsGeneratedLeftOfBoundary(t *testing.T) {
	sub := &Subject{
		Original:  uniformImage(80, 80, color.RGBA{R: 255, A: 255}),
		Generated: uniformImage(80, 80, color.RGBA{G: 255, A: 255}),
	}
	r := NewSliderRenderer()
	r.SetPercent(50)

	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	r.Draw(dst, sub, ViewState{Scale: 1})

	// Stage is square, so the fitted image covers it fully. Left of the
	// boundary shows the generated layer, right of it the original.
	left := dst.RGBAAt(50, 140)
	require.Equal(t, uint8(255), left.G)
	require.Equal(t, uint8(0), left.R)

	right := dst.RGBAAt(150, 140)
	require.Equal(t, uint8(255), right.R)
	require.Equal(t, uint8(0), right.G)
}

func uniformImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
