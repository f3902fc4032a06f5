package viewer

import (
	"image"
	"image/color"

	"pattern-compare/pkg/geometry"
)

// drawImagePane draws an image into a pane of the stage under the shared
// transform, nearest-neighbor sampled. Pixels mapping outside the image keep
// the backdrop.
func drawImagePane(dst *image.RGBA, img image.Image, pane image.Rectangle, st ViewState) {
	drawImagePaneClipped(dst, img, pane, st, pane.Min.X, pane.Max.X)
}

// drawImagePaneClipped is drawImagePane restricted to dst columns
// [fromX, toX). Slider mode uses the clip to reveal its top layer.
func drawImagePaneClipped(dst *image.RGBA, img image.Image, pane image.Rectangle, st ViewState, fromX, toX int) {
	if img == nil {
		return
	}
	t := paneTransform(img, pane, st)
	if t.Scale <= 0 {
		return
	}
	b := img.Bounds()

	x0 := max(pane.Min.X, fromX)
	x1 := min(pane.Max.X, toX)
	for y := pane.Min.Y; y < pane.Max.Y; y++ {
		for x := x0; x < x1; x++ {
			src := t.Invert(geometry.NewPoint2D(float64(x)+0.5, float64(y)+0.5))
			sx := b.Min.X + int(src.X)
			sy := b.Min.Y + int(src.Y)
			if sx < b.Min.X || sx >= b.Max.X || sy < b.Min.Y || sy >= b.Max.Y {
				continue
			}
			dst.Set(x, y, img.At(sx, sy))
		}
	}
}

// blendImagePane draws an image into a pane blended over the existing dst
// content with the given alpha (0..1). The source's own alpha channel is
// combined with the blend weight.
func blendImagePane(dst *image.RGBA, img image.Image, pane image.Rectangle, st ViewState, alpha float64) {
	if img == nil {
		return
	}
	t := paneTransform(img, pane, st)
	if t.Scale <= 0 {
		return
	}
	b := img.Bounds()

	for y := pane.Min.Y; y < pane.Max.Y; y++ {
		for x := pane.Min.X; x < pane.Max.X; x++ {
			src := t.Invert(geometry.NewPoint2D(float64(x)+0.5, float64(y)+0.5))
			sx := b.Min.X + int(src.X)
			sy := b.Min.Y + int(src.Y)
			if sx < b.Min.X || sx >= b.Max.X || sy < b.Min.Y || sy >= b.Max.Y {
				continue
			}

			srcColor := img.At(sx, sy)
			sr, sg, sb, sa := srcColor.RGBA()
			effective := float64(sa) / 0xffff * alpha

			if effective >= 0.999 {
				dst.Set(x, y, srcColor)
			} else if effective > 0.001 {
				dr, dg, db, _ := dst.At(x, y).RGBA()
				inv := 1 - effective
				r := uint8(float64(sr>>8)*effective + float64(dr>>8)*inv)
				g := uint8(float64(sg>>8)*effective + float64(dg>>8)*inv)
				bb := uint8(float64(sb>>8)*effective + float64(db>>8)*inv)
				dst.Set(x, y, color.RGBA{r, g, bb, 255})
			}
		}
	}
}

// fillRect fills a rectangle clipped to dst bounds.
func fillRect(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, col)
		}
	}
}
