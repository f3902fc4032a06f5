package viewer

import (
	"strconv"
	"strings"

	"pattern-compare/pkg/geometry"
)

// Zoom limits and the step applied per button press or wheel tick.
const (
	MinScale = 0.1
	MaxScale = 5.0
	ZoomStep = 0.1

	MinScalePercent = 10
	MaxScalePercent = 500
)

// ViewState is the viewport transform shared by all comparison modes.
// Position is unconstrained; content is visually clipped by the stage.
type ViewState struct {
	Scale    float64
	Pos      geometry.Point2D
	Dragging bool
}

// ZoomPan is the sole owner of the view state. All mutation goes through its
// operations; mode renderers are read-only consumers. Every operation is
// synchronous and performs no I/O.
type ZoomPan struct {
	state    ViewState
	lastX    float32
	lastY    float32
	onChange func(ViewState)
}

// NewZoomPan creates a controller at scale 1 with no pan offset.
func NewZoomPan() *ZoomPan {
	return &ZoomPan{state: ViewState{Scale: 1}}
}

// OnChange sets a callback invoked after every state change.
func (z *ZoomPan) OnChange(fn func(ViewState)) {
	z.onChange = fn
}

// State returns the current view state.
func (z *ZoomPan) State() ViewState {
	return z.state
}

// ZoomIn increases the scale by one step, clamped to the zoom limits.
func (z *ZoomPan) ZoomIn() {
	z.SetScale(z.state.Scale + ZoomStep)
}

// ZoomOut decreases the scale by one step, clamped to the zoom limits.
func (z *ZoomPan) ZoomOut() {
	z.SetScale(z.state.Scale - ZoomStep)
}

// SetScale sets the scale directly, clamped to [MinScale, MaxScale].
func (z *ZoomPan) SetScale(scale float64) {
	z.state.Scale = geometry.Clamp(scale, MinScale, MaxScale)
	z.notify()
}

// SetScalePercent parses a user-entered zoom percentage such as "150" or
// "150%". Values are clamped to [MinScalePercent, MaxScalePercent]. Returns
// false for non-numeric input, leaving the state unchanged.
func (z *ZoomPan) SetScalePercent(text string) bool {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	percent, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false
	}
	percent = geometry.Clamp(percent, MinScalePercent, MaxScalePercent)
	z.SetScale(percent / 100)
	return true
}

// ScalePercent returns the current scale as a percentage.
func (z *ZoomPan) ScalePercent() float64 {
	return z.state.Scale * 100
}

// Reset restores scale 1 and a zero pan offset unconditionally.
func (z *ZoomPan) Reset() {
	z.state.Scale = 1
	z.state.Pos = geometry.Point2D{}
	z.notify()
}

// Wheel applies one zoom step per wheel tick: up zooms in, down zooms out.
func (z *ZoomPan) Wheel(dy float32) {
	if dy > 0 {
		z.ZoomIn()
	} else if dy < 0 {
		z.ZoomOut()
	}
}

// PointerDown starts a drag gesture at the given stage coordinates.
func (z *ZoomPan) PointerDown(x, y float32) {
	z.lastX = x
	z.lastY = y
	z.state.Dragging = true
	z.notify()
}

// PointerMove pans by the delta from the last pointer position. Ignored when
// no drag is active.
func (z *ZoomPan) PointerMove(x, y float32) {
	if !z.state.Dragging {
		return
	}
	z.state.Pos.X += float64(x - z.lastX)
	z.state.Pos.Y += float64(y - z.lastY)
	z.lastX = x
	z.lastY = y
	z.notify()
}

// PointerUp ends the drag gesture, keeping the pan offset.
func (z *ZoomPan) PointerUp() {
	if !z.state.Dragging {
		return
	}
	z.state.Dragging = false
	z.notify()
}

// PointerLeave ends the drag when the pointer leaves the stage mid-gesture,
// so a drag can never be left stuck open.
func (z *ZoomPan) PointerLeave() {
	z.PointerUp()
}

func (z *ZoomPan) notify() {
	if z.onChange != nil {
		z.onChange(z.state)
	}
}
