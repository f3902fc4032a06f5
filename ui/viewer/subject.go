// Package viewer implements the multi-mode image comparison viewer: a
// full-screen overlay that compares an original and a generated image under a
// shared zoom/pan transform, using interchangeable presentation strategies.
package viewer

import (
	"image"
)

// Pattern types reported by the generation backend for tileable results.
const (
	PatternSeamless = "seamless"
	PatternTwoway   = "twoway"
)

// Subject holds the pair of images being compared, plus the metadata that
// selects which modes are available. URL resolution and image loading are the
// host's responsibility; the viewer never performs I/O.
type Subject struct {
	OriginalURL  string
	GeneratedURL string

	// GeneratedURLs, when non-empty, supersedes GeneratedURL for tiling.
	GeneratedURLs []string

	// PatternType selects the seamless tiling rule (PatternSeamless or
	// PatternTwoway). Empty means the subject is not a pattern result.
	PatternType string

	// Seamless gates visibility of the seamless tiling mode.
	Seamless bool

	// Fullscreen is a layout hint only; it does not affect the transform.
	Fullscreen bool

	// Decoded images, keyed to the URLs above. Variants maps each generated
	// URL to its image for multi-image pattern sets.
	Original  image.Image
	Generated image.Image
	Variants  map[string]image.Image
}

// Tileable reports whether seamless tiling mode may be offered.
func (s *Subject) Tileable() bool {
	return s.Seamless || s.PatternType != ""
}

// TileURLs returns the URL set used for tiling: GeneratedURLs when present,
// otherwise the single primary URL.
func (s *Subject) TileURLs() []string {
	if len(s.GeneratedURLs) > 0 {
		return s.GeneratedURLs
	}
	return []string{s.GeneratedURL}
}

// PrimaryURL returns the generated URL used when a single image is needed.
func (s *Subject) PrimaryURL() string {
	if len(s.GeneratedURLs) > 0 {
		return s.GeneratedURLs[0]
	}
	return s.GeneratedURL
}

// TilePlan returns the URL assigned to each cell of the 3x3 tiling grid,
// row-major. An empty string means the cell renders empty.
//
// Two-way patterns populate only the middle row, using up to three distinct
// URLs in order; missing slots repeat the first URL. All other pattern types
// repeat the primary URL across all nine cells.
func (s *Subject) TilePlan() [9]string {
	var plan [9]string
	if s.PatternType == PatternTwoway {
		urls := s.TileURLs()
		for i := 0; i < 3; i++ {
			if i < len(urls) {
				plan[3+i] = urls[i]
			} else {
				plan[3+i] = urls[0]
			}
		}
		return plan
	}
	primary := s.PrimaryURL()
	for i := range plan {
		plan[i] = primary
	}
	return plan
}

// ImageFor resolves a tile URL to its decoded image. URLs without a variant
// entry fall back to the primary generated image.
func (s *Subject) ImageFor(url string) image.Image {
	if img, ok := s.Variants[url]; ok && img != nil {
		return img
	}
	return s.Generated
}
