package viewer

import (
	"image"

	"pattern-compare/pkg/geometry"
)

// SeamlessRenderer repeats the pattern result across a 3x3 grid so the user
// can inspect edge-to-edge continuity. The shared transform applies to the
// grid as a whole, letting the user zoom onto a seam boundary. Cell
// assignment follows Subject.TilePlan.
type SeamlessRenderer struct{}

// NewSeamlessRenderer creates a seamless tiling renderer.
func NewSeamlessRenderer() *SeamlessRenderer {
	return &SeamlessRenderer{}
}

// tileFit caches the placement of one tile image within a grid cell.
type tileFit struct {
	img   image.Image
	rect  geometry.Rect // placement within the cell, cell-local coordinates
	scale float64       // cell pixels per image pixel
}

func (r *SeamlessRenderer) Draw(dst *image.RGBA, sub *Subject, st ViewState) {
	bounds := dst.Bounds()
	stageW := float64(bounds.Dx())
	stageH := float64(bounds.Dy())
	if stageW == 0 || stageH == 0 {
		return
	}

	// Each tile is capped at a third of the stage so the full grid fits at
	// scale 1.
	cellW := stageW / 3
	cellH := stageH / 3
	cell := geometry.NewRect(0, 0, cellW, cellH)

	plan := sub.TilePlan()

	fits := make(map[string]tileFit)
	for _, url := range plan {
		if url == "" {
			continue
		}
		if _, ok := fits[url]; ok {
			continue
		}
		img := sub.ImageFor(url)
		if img == nil {
			continue
		}
		b := img.Bounds()
		imgRect := geometry.NewRect(0, 0, float64(b.Dx()), float64(b.Dy()))
		placed := imgRect.FitInto(cell)
		scale := 0.0
		if imgRect.Width > 0 {
			scale = placed.Width / imgRect.Width
		}
		fits[url] = tileFit{img: img, rect: placed, scale: scale}
	}

	// Grid-level inverse transform: stage pixel -> grid space, where grid
	// space is the untransformed stage rectangle divided into nine cells.
	center := geometry.NewPoint2D(stageW/2, stageH/2)
	grid := Transform2D{
		Scale:     st.Scale,
		Translate: center.Add(st.Pos).Sub(center.Scale(st.Scale)),
	}
	if grid.Scale <= 0 {
		return
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := grid.Invert(geometry.NewPoint2D(
				float64(x-bounds.Min.X)+0.5, float64(y-bounds.Min.Y)+0.5))
			if p.X < 0 || p.X >= stageW || p.Y < 0 || p.Y >= stageH {
				continue
			}

			col := int(p.X / cellW)
			row := int(p.Y / cellH)
			if col > 2 {
				col = 2
			}
			if row > 2 {
				row = 2
			}
			url := plan[row*3+col]
			if url == "" {
				continue
			}
			fit, ok := fits[url]
			if !ok || fit.scale <= 0 {
				continue
			}

			local := geometry.NewPoint2D(p.X-float64(col)*cellW, p.Y-float64(row)*cellH)
			if !fit.rect.Contains(local) {
				continue
			}
			b := fit.img.Bounds()
			sx := b.Min.X + int((local.X-fit.rect.X)/fit.scale)
			sy := b.Min.Y + int((local.Y-fit.rect.Y)/fit.scale)
			if sx < b.Min.X || sx >= b.Max.X || sy < b.Min.Y || sy >= b.Max.Y {
				continue
			}
			dst.Set(x, y, fit.img.At(sx, sy))
		}
	}
}
