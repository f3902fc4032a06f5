package viewer

import (
	"image"
	"math"

	"pattern-compare/pkg/colorutil"
	"pattern-compare/pkg/geometry"
)

// handleHitWidth is the width of the slider handle's hit target, centered on
// the reveal boundary.
const handleHitWidth = 32.0

// SliderRenderer stacks the original under the generated image and reveals
// the generated layer left of a draggable boundary. Its only mode-local state
// is the reveal percentage, which survives drag release.
type SliderRenderer struct {
	percent float64
}

// NewSliderRenderer creates a slider renderer with the boundary centered.
func NewSliderRenderer() *SliderRenderer {
	return &SliderRenderer{percent: 50}
}

// Percent returns the current reveal percentage in [0, 100].
func (r *SliderRenderer) Percent() float64 {
	return r.percent
}

// SetPercent sets the reveal percentage, clamped to [0, 100].
func (r *SliderRenderer) SetPercent(p float64) {
	r.percent = geometry.Clamp(p, 0, 100)
}

// SetFromPointer derives the percentage from a pointer X position relative to
// the stage width. Positions outside the stage clamp to the extremes.
func (r *SliderRenderer) SetFromPointer(x, width float64) {
	if width <= 0 {
		return
	}
	r.SetPercent(100 * x / width)
}

// HitHandle reports whether a pointer X position lands on the handle's hit
// target, so the stage can route the drag to the boundary instead of panning.
func (r *SliderRenderer) HitHandle(x, width float64) bool {
	boundary := width * r.percent / 100
	return math.Abs(x-boundary) <= handleHitWidth/2
}

func (r *SliderRenderer) Draw(dst *image.RGBA, sub *Subject, st ViewState) {
	pane := dst.Bounds()

	drawImagePane(dst, sub.Original, pane, st)

	boundary := pane.Min.X + int(float64(pane.Dx())*r.percent/100)
	drawImagePaneClipped(dst, sub.Generated, pane, st, pane.Min.X, boundary)

	// Boundary line with a centered grip.
	fillRect(dst, image.Rect(boundary-1, pane.Min.Y, boundary+1, pane.Max.Y), colorutil.Accent)
	gripH := 28
	cy := pane.Min.Y + pane.Dy()/2
	fillRect(dst, image.Rect(boundary-4, cy-gripH/2, boundary+4, cy+gripH/2), colorutil.Accent)
	fillRect(dst, image.Rect(boundary-2, cy-gripH/2+4, boundary+2, cy+gripH/2-4), colorutil.White)
}
