package analysis

import (
	"fmt"
	"image"

	"pattern-compare/internal/imageio"

	"gocv.io/x/gocv"
)

// DiffHeatmap renders a grayscale heatmap of the per-pixel difference between
// an original image and a generated result. The generated image is resampled
// to the original's dimensions first (Lanczos), then the absolute difference
// is blurred and normalized to the full 8-bit range so faint edits stay
// visible.
func DiffHeatmap(original, generated image.Image) (image.Image, error) {
	origMat, err := gocv.ImageToMatRGBA(imageio.ToRGBA(original))
	if err != nil {
		return nil, fmt.Errorf("convert original: %w", err)
	}
	defer origMat.Close()

	genMat, err := gocv.ImageToMatRGBA(imageio.ToRGBA(generated))
	if err != nil {
		return nil, fmt.Errorf("convert generated: %w", err)
	}
	defer genMat.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(genMat, &resized, image.Pt(origMat.Cols(), origMat.Rows()), 0, 0, gocv.InterpolationLanczos4)

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(origMat, resized, &diff)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(diff, &gray, gocv.ColorRGBAToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(5, 5), 0, 0, gocv.BorderDefault)

	normalized := gocv.NewMat()
	defer normalized.Close()
	gocv.Normalize(blurred, &normalized, 0, 255, gocv.NormMinMax)

	out, err := normalized.ToImage()
	if err != nil {
		return nil, fmt.Errorf("heatmap to image: %w", err)
	}
	return out, nil
}
