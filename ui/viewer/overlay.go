package viewer

import (
	"image"

	"pattern-compare/pkg/geometry"
)

// OverlayRenderer alpha-blends the generated image over the original. Opacity
// is the blend weight of the generated layer, 0-100, adjusted from a
// screen-fixed slider outside the transformed stage. Both layers receive the
// transform independently so they stay pixel-aligned while blending.
type OverlayRenderer struct {
	opacity float64
}

// NewOverlayRenderer creates an overlay renderer at 50 percent opacity.
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{opacity: 50}
}

// Opacity returns the generated layer's blend weight in [0, 100].
func (r *OverlayRenderer) Opacity() float64 {
	return r.opacity
}

// SetOpacity sets the blend weight, clamped to [0, 100].
func (r *OverlayRenderer) SetOpacity(o float64) {
	r.opacity = geometry.Clamp(o, 0, 100)
}

func (r *OverlayRenderer) Draw(dst *image.RGBA, sub *Subject, st ViewState) {
	pane := dst.Bounds()
	drawImagePane(dst, sub.Original, pane, st)
	blendImagePane(dst, sub.Generated, pane, st, r.opacity/100)
}
