package viewer

import (
	"image"

	"pattern-compare/pkg/geometry"
)

// Transform2D is the scale-then-translate mapping applied to compared images.
// All transform math lives here so mode renderers never build their own.
type Transform2D struct {
	Scale     float64
	Translate geometry.Point2D
}

// Apply maps a point from image space to stage space.
func (t Transform2D) Apply(p geometry.Point2D) geometry.Point2D {
	return p.Scale(t.Scale).Add(t.Translate)
}

// Invert maps a point from stage space back to image space.
func (t Transform2D) Invert(p geometry.Point2D) geometry.Point2D {
	return p.Sub(t.Translate).Scale(1 / t.Scale)
}

// paneTransform returns the transform mapping an image into a pane of the
// stage: the image is fit inside the pane at scale 1 and centered, then the
// view scale and pan offset are applied about the pane center. Every mode
// derives its layer placement from this one function so layers stay
// pixel-aligned across modes.
func paneTransform(img image.Image, pane image.Rectangle, st ViewState) Transform2D {
	b := img.Bounds()
	imgRect := geometry.NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))
	paneRect := geometry.NewRect(float64(pane.Min.X), float64(pane.Min.Y),
		float64(pane.Dx()), float64(pane.Dy()))

	fit := imgRect.FitInto(paneRect)
	if imgRect.Width == 0 {
		return Transform2D{Scale: 1}
	}
	scale := (fit.Width / imgRect.Width) * st.Scale

	center := paneRect.Center().Add(st.Pos)
	translate := center.Sub(imgRect.Center().Scale(scale))
	return Transform2D{Scale: scale, Translate: translate}
}
