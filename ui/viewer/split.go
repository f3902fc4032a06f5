package viewer

import (
	"image"

	"pattern-compare/pkg/colorutil"
)

// SplitRenderer shows the two images in adjacent panes: generated on the
// left, original on the right. Both panes are driven by the same view state
// so they pan and zoom in lockstep. It has no mode-local state.
type SplitRenderer struct{}

func (r *SplitRenderer) Draw(dst *image.RGBA, sub *Subject, st ViewState) {
	bounds := dst.Bounds()
	mid := bounds.Min.X + bounds.Dx()/2

	left := image.Rect(bounds.Min.X, bounds.Min.Y, mid, bounds.Max.Y)
	right := image.Rect(mid, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)

	drawImagePane(dst, sub.Generated, left, st)
	drawImagePane(dst, sub.Original, right, st)

	fillRect(dst, image.Rect(mid-1, bounds.Min.Y, mid+1, bounds.Max.Y), colorutil.Accent)

	drawBadge(dst, "GENERATED", left.Min.X+8, bounds.Min.Y+8, 2)
	drawBadge(dst, "ORIGINAL", right.Min.X+8, bounds.Min.Y+8, 2)
}
