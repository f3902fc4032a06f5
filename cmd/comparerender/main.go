// Command comparerender renders a comparison mode to a PNG without a
// display. It reuses the viewer's mode renderers, which makes it handy for
// producing golden images and for inspecting pattern results headlessly.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"pattern-compare/internal/analysis"
	"pattern-compare/internal/imageio"
	"pattern-compare/ui/viewer"
)

func main() {
	log.SetFlags(0)

	var (
		mode      = flag.String("mode", "split", "comparison mode: split, slider, overlay, seamless")
		original  = flag.String("original", "", "path to the original image")
		generated = flag.String("generated", "", "comma-separated path(s) to generated image(s)")
		pattern   = flag.String("pattern", "", "pattern type: seamless or twoway")
		percent   = flag.Float64("percent", 50, "slider mode reveal percentage")
		opacity   = flag.Float64("opacity", 50, "overlay mode opacity")
		scale     = flag.Float64("scale", 1, "zoom scale")
		width     = flag.Int("width", 960, "output width")
		height    = flag.Int("height", 720, "output height")
		diff      = flag.Bool("diff", false, "replace the generated layer with a difference heatmap")
		seamScore = flag.Bool("seam", false, "print the seam continuity report and exit")
		out       = flag.String("o", "compare.png", "output PNG path")
	)
	flag.Parse()

	if *original == "" || *generated == "" {
		flag.Usage()
		os.Exit(2)
	}

	origImg, err := imageio.LoadImage(*original)
	if err != nil {
		log.Fatalf("original: %v", err)
	}

	genPaths := strings.Split(*generated, ",")
	sub := &viewer.Subject{
		OriginalURL:  *original,
		GeneratedURL: genPaths[0],
		PatternType:  *pattern,
		Seamless:     *pattern != "",
		Original:     origImg,
		Variants:     make(map[string]image.Image),
	}
	for i, path := range genPaths {
		img, err := imageio.LoadImage(path)
		if err != nil {
			log.Fatalf("generated: %v", err)
		}
		if i == 0 {
			sub.Generated = img
		}
		sub.Variants[path] = img
	}
	if len(genPaths) > 1 {
		sub.GeneratedURLs = genPaths
	}

	if *seamScore {
		report := analysis.ScoreSeam(sub.Generated)
		fmt.Printf("horizontal error: %.2f\nvertical error:   %.2f\nspread:           %.2f\nscore:            %.0f/100\n",
			report.HorizontalError, report.VerticalError, report.Spread, report.Score)
		return
	}

	if *diff {
		heatmap, err := analysis.DiffHeatmap(sub.Original, sub.Generated)
		if err != nil {
			log.Fatalf("diff heatmap: %v", err)
		}
		sub.Generated = heatmap
		sub.Variants[sub.GeneratedURL] = heatmap
	}

	opts := viewer.RenderOptions{
		Scale:   *scale,
		Percent: *percent,
		Opacity: *opacity,
	}
	img := viewer.Render(viewer.ParseMode(*mode), sub, opts, *width, *height)

	if err := imageio.SavePNG(*out, img); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("wrote %s (%s mode, %dx%d)", *out, *mode, *width, *height)
}
