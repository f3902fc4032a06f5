package viewer

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"pattern-compare/pkg/colorutil"
)

// Frame is the common chrome every mode shares: a dimmed backdrop, the
// toolbar on top, the stage centered, and a slot for screen-fixed controls
// that must not pan or zoom. Fixed-slot widgets sit above the stage in the
// stacking order and consume their own pointer events, so interacting with
// them never starts a pan gesture.
type Frame struct {
	backdrop  *fynecanvas.Rectangle
	stageWrap *fyne.Container
	fixedSlot *fyne.Container
	root      fyne.CanvasObject

	stage      fyne.CanvasObject
	fullscreen bool
}

func newFrame(toolbar, stage fyne.CanvasObject) *Frame {
	f := &Frame{
		backdrop:  fynecanvas.NewRectangle(colorutil.Backdrop),
		fixedSlot: container.NewHBox(),
		stage:     stage,
	}

	f.stageWrap = container.NewCenter(stage)

	fixedRow := container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), f.fixedSlot, layout.NewSpacer()),
	)

	f.root = container.NewStack(
		f.backdrop,
		container.NewBorder(toolbar, nil, nil, nil, f.stageWrap),
		fixedRow,
	)
	return f
}

// Root returns the frame's top-level object for mounting as a canvas overlay.
func (f *Frame) Root() fyne.CanvasObject {
	return f.root
}

// SetFixedContent replaces the screen-fixed control slot. Nil clears it.
func (f *Frame) SetFixedContent(obj fyne.CanvasObject) {
	f.fixedSlot.Objects = nil
	if obj != nil {
		f.fixedSlot.Objects = []fyne.CanvasObject{obj}
	}
	f.fixedSlot.Refresh()
}

// SetFullscreen applies the layout hint: fullscreen fills the canvas, the
// dialog variant pads the stage into a centered box. Transform semantics are
// unaffected.
func (f *Frame) SetFullscreen(fullscreen bool) {
	if f.fullscreen == fullscreen {
		return
	}
	f.fullscreen = fullscreen
	f.stageWrap.Objects = nil
	if fullscreen {
		f.stageWrap.Objects = []fyne.CanvasObject{f.stage}
	} else {
		f.stageWrap.Objects = []fyne.CanvasObject{container.NewPadded(f.stage)}
	}
	f.stageWrap.Refresh()
}
