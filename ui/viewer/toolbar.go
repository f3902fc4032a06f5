package viewer

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar exposes mode switching and zoom control for the viewer.
type Toolbar struct {
	viewer *Viewer
	box    fyne.CanvasObject

	modeButtons map[Mode]*widget.Button
	zoomEntry   *zoomEntry
}

func newToolbar(v *Viewer) *Toolbar {
	tb := &Toolbar{
		viewer:      v,
		modeButtons: make(map[Mode]*widget.Button),
	}

	for _, m := range []Mode{ModeSplit, ModeSlider, ModeOverlay, ModeSeamless} {
		mode := m
		tb.modeButtons[mode] = widget.NewButton(mode.Title(), func() {
			v.SetMode(mode)
		})
	}

	tb.zoomEntry = newZoomEntry(tb.commitZoom)

	zoomOut := widget.NewButton("-", v.zoomOut)
	zoomIn := widget.NewButton("+", v.zoomIn)
	reset := widget.NewButton("1:1", v.resetZoom)
	closeBtn := widget.NewButton("Close", v.Close)

	tb.box = container.NewHBox(
		tb.modeButtons[ModeSplit],
		tb.modeButtons[ModeSlider],
		tb.modeButtons[ModeOverlay],
		tb.modeButtons[ModeSeamless],
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOut,
		tb.zoomEntry,
		zoomIn,
		reset,
		widget.NewSeparator(),
		closeBtn,
	)

	tb.setActive(ModeSplit)
	tb.setZoomPercent(100)
	return tb
}

// Container returns the toolbar's layout object.
func (tb *Toolbar) Container() fyne.CanvasObject {
	return tb.box
}

// commitZoom applies an edited zoom percentage. Non-numeric input silently
// reverts the field to the last valid value; valid input is clamped by the
// controller and echoed back.
func (tb *Toolbar) commitZoom(text string) {
	if !tb.viewer.zoom.SetScalePercent(text) {
		tb.setZoomPercent(tb.viewer.zoom.ScalePercent())
	}
}

// setZoomPercent mirrors the current scale into the zoom field.
func (tb *Toolbar) setZoomPercent(percent float64) {
	tb.zoomEntry.SetText(fmt.Sprintf("%.0f%%", percent))
}

// setActive highlights the current mode's button.
func (tb *Toolbar) setActive(mode Mode) {
	for m, btn := range tb.modeButtons {
		if m == mode {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// showSeamless toggles the seamless tiling button; it is only offered when
// the subject is flagged as a tileable pattern result.
func (tb *Toolbar) showSeamless(show bool) {
	btn := tb.modeButtons[ModeSeamless]
	if show {
		btn.Show()
	} else {
		btn.Hide()
	}
}

// zoomEntry is a numeric entry that commits on Enter and on focus loss.
type zoomEntry struct {
	widget.Entry
	commit func(text string)
}

func newZoomEntry(commit func(string)) *zoomEntry {
	e := &zoomEntry{commit: commit}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(text string) {
		commit(text)
	}
	return e
}

func (e *zoomEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.commit != nil {
		e.commit(e.Text)
	}
}

func (e *zoomEntry) MinSize() fyne.Size {
	min := e.Entry.MinSize()
	if min.Width < 72 {
		min.Width = 72
	}
	return min
}
