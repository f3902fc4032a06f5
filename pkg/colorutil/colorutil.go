// Package colorutil provides shared color utilities for the comparison viewer.
package colorutil

import (
	"image/color"
)

// Common colors used by the viewer chrome.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Backdrop is the stage background behind compared images.
	Backdrop = color.RGBA{R: 0x14, G: 0x14, B: 0x16, A: 255}

	// Accent marks the slider handle and pane divider.
	Accent = color.RGBA{R: 0x64, G: 0x95, B: 0xED, A: 255}
)

// Luminance returns the perceptual luminance of a color in the range [0, 255],
// using the Rec. 601 weights.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
}

// Lerp linearly interpolates between two 8-bit channel values.
func Lerp(a, b uint8, t float64) uint8 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
