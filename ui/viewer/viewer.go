package viewer

import (
	"fmt"
	"image"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pattern-compare/internal/analysis"
	"pattern-compare/pkg/colorutil"
)

// Viewer is the composition root: it owns the current mode, wires the
// zoom/pan controller to the active renderer, and manages the open/closed
// lifecycle including Escape-to-close and cursor cleanup.
type Viewer struct {
	win fyne.Window

	subject *Subject
	mode    Mode
	zoom    *ZoomPan
	cursor  *cursorGuard

	split    *SplitRenderer
	slider   *SliderRenderer
	overlay  *OverlayRenderer
	seamless *SeamlessRenderer

	stage   *Stage
	toolbar *Toolbar
	frame   *Frame

	open    bool
	onClose func()
}

// New creates a viewer bound to a window. The viewer mounts itself as a
// canvas overlay while open.
func New(win fyne.Window) *Viewer {
	v := &Viewer{
		win:    win,
		mode:   ModeSplit,
		zoom:   NewZoomPan(),
		cursor: &cursorGuard{},
	}

	v.split = &SplitRenderer{}
	v.slider = NewSliderRenderer()
	v.overlay = NewOverlayRenderer()
	v.seamless = NewSeamlessRenderer()

	v.stage = newStage(v)
	v.toolbar = newToolbar(v)
	v.frame = newFrame(v.toolbar.Container(), v.stage)

	v.zoom.OnChange(v.onViewChange)
	return v
}

// OnClose sets the host's close callback. It fires exactly once per close,
// whether via the close button or the Escape key.
func (v *Viewer) OnClose(fn func()) {
	v.onClose = fn
}

// IsOpen reports whether the viewer is currently mounted.
func (v *Viewer) IsOpen() bool {
	return v.open
}

// Mode returns the active comparison mode.
func (v *Viewer) Mode() Mode {
	return v.mode
}

// Subject returns the comparison subject, or nil when closed.
func (v *Viewer) Subject() *Subject {
	return v.subject
}

// Open mounts the viewer over the given subject. Each open starts from a
// clean slate: split mode, scale 1, centered, slider and opacity at their
// defaults. Nothing is carried over from the previous session.
func (v *Viewer) Open(sub *Subject) {
	if sub == nil {
		return
	}
	// Reopening replaces the current session; close it first so the old
	// frame never lingers in the overlay stack.
	if v.open {
		v.Close()
	}
	v.subject = sub
	v.mode = ModeSplit

	v.zoom = NewZoomPan()
	v.zoom.OnChange(v.onViewChange)
	v.slider = NewSliderRenderer()
	v.overlay = NewOverlayRenderer()

	v.stage.SetSizingReference(sub.Generated)
	v.frame.SetFullscreen(sub.Fullscreen)
	v.frame.SetFixedContent(nil)
	v.toolbar.setActive(ModeSplit)
	v.toolbar.setZoomPercent(100)
	v.toolbar.showSeamless(sub.Tileable())

	v.open = true
	v.win.Canvas().Overlays().Add(v.frame.Root())
	v.win.Canvas().SetOnTypedKey(v.handleKey)
	v.stage.Refresh()
}

// Close unmounts the viewer. The cursor override is released unconditionally
// so a close racing a drag cannot leave a stuck cursor, and all viewer state
// is discarded.
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	v.open = false

	v.win.Canvas().SetOnTypedKey(nil)
	v.win.Canvas().Overlays().Remove(v.frame.Root())
	v.cursor.release()
	v.subject = nil

	if v.onClose != nil {
		v.onClose()
	}
}

// SetMode switches the comparison strategy. The transform is preserved
// across mode switches. Seamless mode is refused unless the subject is
// flagged tileable.
func (v *Viewer) SetMode(m Mode) {
	if v.subject == nil {
		return
	}
	if m == ModeSeamless && !v.subject.Tileable() {
		return
	}
	v.mode = m
	v.toolbar.setActive(m)
	v.frame.SetFixedContent(v.fixedContentFor(m))
	v.stage.Refresh()
}

// handleKey closes the viewer on Escape. The open guard keeps a late event
// from acting after close.
func (v *Viewer) handleKey(ev *fyne.KeyEvent) {
	if !v.open {
		return
	}
	if ev.Name == fyne.KeyEscape {
		v.Close()
	}
}

func (v *Viewer) zoomIn()    { v.zoom.ZoomIn() }
func (v *Viewer) zoomOut()   { v.zoom.ZoomOut() }
func (v *Viewer) resetZoom() { v.zoom.Reset() }

// onViewChange propagates controller changes to the stage and toolbar.
func (v *Viewer) onViewChange(st ViewState) {
	v.toolbar.setZoomPercent(st.Scale * 100)
	v.stage.Refresh()
}

// rendererFor returns the renderer bound to a mode tag.
func (v *Viewer) rendererFor(m Mode) modeRenderer {
	switch m {
	case ModeSlider:
		return v.slider
	case ModeOverlay:
		return v.overlay
	case ModeSeamless:
		return v.seamless
	default:
		return v.split
	}
}

// renderStage draws the active mode into a stage-sized image.
func (v *Viewer) renderStage(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colorutil.Backdrop), image.Point{}, draw.Src)
	if v.subject == nil || w == 0 || h == 0 {
		return dst
	}
	v.rendererFor(v.mode).Draw(dst, v.subject, v.zoom.State())
	return dst
}

// fixedContentFor builds the screen-fixed controls for a mode: the opacity
// slider for overlay mode and the continuity readout for seamless mode.
// These live outside the transformed stage so pan and zoom never move them.
func (v *Viewer) fixedContentFor(m Mode) fyne.CanvasObject {
	switch m {
	case ModeOverlay:
		slider := widget.NewSlider(0, 100)
		slider.SetValue(v.overlay.Opacity())
		slider.OnChanged = func(val float64) {
			v.overlay.SetOpacity(val)
			v.stage.Refresh()
		}
		box := container.NewVBox(
			widget.NewLabel("Opacity"),
			container.NewGridWrap(fyne.NewSize(220, 36), slider),
		)
		return widget.NewCard("", "", box)
	case ModeSeamless:
		primary := v.subject.ImageFor(v.subject.PrimaryURL())
		if primary == nil {
			return nil
		}
		report := analysis.ScoreSeam(primary)
		label := widget.NewLabel(fmt.Sprintf("Edge continuity: %.0f/100", report.Score))
		return widget.NewCard("", "", label)
	default:
		return nil
	}
}
