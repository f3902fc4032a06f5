package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Stage is the interactive comparison surface: a raster the active mode
// renderer draws into, with drag-to-pan, wheel-to-zoom, and slider handle
// routing. The wheel is intercepted here so it zooms instead of scrolling.
type Stage struct {
	widget.BaseWidget

	viewer  *Viewer
	raster  *fynecanvas.Raster
	minSize fyne.Size

	// sliderDrag latches once a drag starts on the slider handle so the
	// whole gesture resizes the reveal instead of panning.
	sliderDrag bool
}

func newStage(v *Viewer) *Stage {
	s := &Stage{
		viewer:  v,
		minSize: fyne.NewSize(480, 360),
	}
	s.raster = fynecanvas.NewRaster(s.draw)
	s.raster.ScaleMode = fynecanvas.ImageScalePixels
	s.ExtendBaseWidget(s)
	return s
}

// SetSizingReference derives the stage's natural box from the generated
// image's aspect ratio, so every mode lays out against the same stage shape.
func (s *Stage) SetSizingReference(img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	const base = 480.0
	aspect := float64(b.Dx()) / float64(b.Dy())
	if aspect >= 1 {
		s.minSize = fyne.NewSize(base, float32(base/aspect))
	} else {
		s.minSize = fyne.NewSize(float32(base*aspect), base)
	}
}

func (s *Stage) MinSize() fyne.Size {
	return s.minSize
}

func (s *Stage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

func (s *Stage) draw(w, h int) image.Image {
	return s.viewer.renderStage(w, h)
}

// Dragged routes the gesture either to the slider boundary or to the pan
// controller. DragEvent deltas give the gesture's previous position, so the
// first event seeds the controller's pointer-down coordinates.
func (s *Stage) Dragged(ev *fyne.DragEvent) {
	v := s.viewer
	if v.mode == ModeSlider {
		startX := float64(ev.Position.X - ev.Dragged.DX)
		if s.sliderDrag || v.slider.HitHandle(startX, float64(s.Size().Width)) {
			s.sliderDrag = true
			v.slider.SetFromPointer(float64(ev.Position.X), float64(s.Size().Width))
			s.raster.Refresh()
			return
		}
	}

	if !v.zoom.State().Dragging {
		v.cursor.acquire()
		v.zoom.PointerDown(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
	}
	v.zoom.PointerMove(ev.Position.X, ev.Position.Y)
}

func (s *Stage) DragEnd() {
	s.sliderDrag = false
	s.viewer.zoom.PointerUp()
	s.viewer.cursor.release()
}

// Scrolled zooms one step per wheel tick.
func (s *Stage) Scrolled(ev *fyne.ScrollEvent) {
	s.viewer.zoom.Wheel(ev.Scrolled.DY)
}

func (s *Stage) MouseIn(*desktop.MouseEvent) {}

func (s *Stage) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends any drag when the pointer leaves the stage, so a gesture that
// exits the widget mid-drag can never be left stuck open.
func (s *Stage) MouseOut() {
	s.sliderDrag = false
	s.viewer.zoom.PointerLeave()
	s.viewer.cursor.release()
}

// Cursor reflects the interaction state. Fyne has no grab cursor, so the
// crosshair stands in while a drag is active and the pointer cursor signals
// a zoomed, pannable stage.
func (s *Stage) Cursor() desktop.Cursor {
	st := s.viewer.zoom.State()
	switch {
	case s.viewer.cursor.active() || st.Dragging:
		return desktop.CrosshairCursor
	case st.Scale > 1:
		return desktop.PointerCursor
	default:
		return desktop.DefaultCursor
	}
}

// Refresh redraws the raster.
func (s *Stage) Refresh() {
	s.raster.Refresh()
	s.BaseWidget.Refresh()
}
