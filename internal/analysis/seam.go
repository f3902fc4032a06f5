// Package analysis provides numeric image analysis for comparison results:
// seam continuity scoring for tileable patterns and difference heatmaps.
package analysis

import (
	"image"

	"pattern-compare/pkg/colorutil"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeamReport summarizes how well a pattern tiles edge to edge.
type SeamReport struct {
	// HorizontalError is the mean luminance difference between the left and
	// right edge columns, in [0, 255].
	HorizontalError float64

	// VerticalError is the mean luminance difference between the top and
	// bottom edge rows, in [0, 255].
	VerticalError float64

	// Spread is the standard deviation of the combined edge differences.
	// A low mean with a high spread indicates a localized seam artifact.
	Spread float64

	// Score is an overall continuity score in [0, 100], where 100 means the
	// opposite edges match exactly.
	Score float64
}

// ScoreSeam measures edge-to-edge continuity of a pattern image by comparing
// the luminance of opposite edge rows and columns. A perfectly tileable
// pattern has identical opposite edges and scores 100.
func ScoreSeam(img image.Image) SeamReport {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return SeamReport{Score: 100}
	}

	horiz := make([]float64, h)
	for y := 0; y < h; y++ {
		left := colorutil.Luminance(img.At(b.Min.X, b.Min.Y+y))
		right := colorutil.Luminance(img.At(b.Max.X-1, b.Min.Y+y))
		horiz[y] = left - right
	}
	vert := make([]float64, w)
	for x := 0; x < w; x++ {
		top := colorutil.Luminance(img.At(b.Min.X+x, b.Min.Y))
		bottom := colorutil.Luminance(img.At(b.Min.X+x, b.Max.Y-1))
		vert[x] = top - bottom
	}

	abs := func(vals []float64) []float64 {
		out := make([]float64, len(vals))
		for i, v := range vals {
			if v < 0 {
				v = -v
			}
			out[i] = v
		}
		return out
	}

	absHoriz := abs(horiz)
	absVert := abs(vert)

	combined := make([]float64, 0, len(absHoriz)+len(absVert))
	combined = append(combined, absHoriz...)
	combined = append(combined, absVert...)

	report := SeamReport{
		HorizontalError: stat.Mean(absHoriz, nil),
		VerticalError:   stat.Mean(absVert, nil),
		Spread:          stat.StdDev(combined, nil),
	}

	// Map the worst of the two edge errors onto [0, 100]. floats.Max is safe
	// here: combined always has at least four samples.
	worst := floats.Max([]float64{report.HorizontalError, report.VerticalError})
	report.Score = 100 * (1 - worst/255)
	if report.Score < 0 {
		report.Score = 0
	}
	return report
}
