package viewer

import (
	"image"
	"image/draw"

	"pattern-compare/pkg/colorutil"
	"pattern-compare/pkg/geometry"
)

// Mode identifies a comparison strategy. The set is closed: exactly one
// renderer is bound to each tag, and mode dispatch happens only here.
type Mode int

const (
	ModeSplit Mode = iota
	ModeSlider
	ModeOverlay
	ModeSeamless
)

func (m Mode) String() string {
	switch m {
	case ModeSplit:
		return "split"
	case ModeSlider:
		return "slider"
	case ModeOverlay:
		return "overlay"
	case ModeSeamless:
		return "seamless"
	default:
		return "unknown"
	}
}

// Title returns the toolbar label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSplit:
		return "Split"
	case ModeSlider:
		return "Slider"
	case ModeOverlay:
		return "Overlay"
	case ModeSeamless:
		return "Tiling"
	default:
		return "?"
	}
}

// ParseMode maps a mode name to its tag. Unknown names fall back to split.
func ParseMode(name string) Mode {
	switch name {
	case "slider":
		return ModeSlider
	case "overlay":
		return ModeOverlay
	case "seamless":
		return ModeSeamless
	default:
		return ModeSplit
	}
}

// modeRenderer is a presentation strategy: a pure draw over the subject and
// the shared view state. Renderers hold only mode-local UI state (slider
// percentage, overlay opacity) and never mutate the view state.
type modeRenderer interface {
	Draw(dst *image.RGBA, sub *Subject, st ViewState)
}

// RenderOptions configures a one-shot headless render.
type RenderOptions struct {
	Scale   float64
	Pos     geometry.Point2D
	Percent float64 // slider mode reveal percentage
	Opacity float64 // overlay mode blend weight; 0 means fully original
}

// Render draws a comparison mode into a new image of the given size without
// any widget machinery. It backs the comparerender tool and golden tests.
func Render(m Mode, sub *Subject, opts RenderOptions, w, h int) *image.RGBA {
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	st := ViewState{
		Scale: geometry.Clamp(opts.Scale, MinScale, MaxScale),
		Pos:   opts.Pos,
	}

	var r modeRenderer
	switch m {
	case ModeSlider:
		sl := NewSliderRenderer()
		sl.SetPercent(opts.Percent)
		r = sl
	case ModeOverlay:
		ov := NewOverlayRenderer()
		ov.SetOpacity(opts.Opacity)
		r = ov
	case ModeSeamless:
		r = NewSeamlessRenderer()
	default:
		r = &SplitRenderer{}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colorutil.Backdrop), image.Point{}, draw.Src)
	r.Draw(dst, sub, st)
	return dst
}
