package viewer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZoomPan_ScaleAlwaysClamped(t *testing.T) {
	z := NewZoomPan()
	for _, v := range []float64{-10, 0, 0.05, 0.1, 1, 4.95, 5, 5.1, 100} {
		z.SetScale(v)
		st := z.State()
		require.GreaterOrEqual(t, st.Scale, MinScale)
		require.LessOrEqual(t, st.Scale, MaxScale)
	}
}

func TestZoomPan_InOutRoundTrip(t *testing.T) {
	z := NewZoomPan()
	z.SetScale(1.3)
	before := z.State().Scale

	z.ZoomIn()
	z.ZoomOut()
	require.InDelta(t, before, z.State().Scale, 1e-9)
}

func TestZoomPan_InOutClampedAtBoundary(t *testing.T) {
	z := NewZoomPan()
	z.SetScale(MaxScale)
	z.ZoomIn()
	require.Equal(t, MaxScale, z.State().Scale)

	z.SetScale(MinScale)
	z.ZoomOut()
	require.Equal(t, MinScale, z.State().Scale)
}

func TestZoomPan_Reset(t *testing.T) {
	z := NewZoomPan()
	z.SetScale(3.2)
	z.PointerDown(0, 0)
	z.PointerMove(40, -25)
	z.PointerUp()

	z.Reset()
	st := z.State()
	require.Equal(t, 1.0, st.Scale)
	require.Equal(t, 0.0, st.Pos.X)
	require.Equal(t, 0.0, st.Pos.Y)
}

func TestZoomPan_SetScalePercent(t *testing.T) {
	z := NewZoomPan()

	require.True(t, z.SetScalePercent("150"))
	require.InDelta(t, 1.5, z.State().Scale, 1e-9)

	require.True(t, z.SetScalePercent(" 250% "))
	require.InDelta(t, 2.5, z.State().Scale, 1e-9)

	// Out-of-range values clamp rather than fail.
	require.True(t, z.SetScalePercent("900"))
	require.InDelta(t, MaxScale, z.State().Scale, 1e-9)
	require.True(t, z.SetScalePercent("1"))
	require.InDelta(t, MinScale, z.State().Scale, 1e-9)
}

func TestZoomPan_RejectsNonNumericInput(t *testing.T) {
	z := NewZoomPan()
	z.SetScale(1.7)

	require.False(t, z.SetScalePercent("abc"))
	require.False(t, z.SetScalePercent(""))
	require.InDelta(t, 1.7, z.State().Scale, 1e-9)
}

func TestZoomPan_DragAccumulatesDeltas(t *testing.T) {
	z := NewZoomPan()

	z.PointerDown(100, 100)
	require.True(t, z.State().Dragging)

	z.PointerMove(110, 95)
	z.PointerMove(130, 95)
	st := z.State()
	require.InDelta(t, 30.0, st.Pos.X, 1e-6)
	require.InDelta(t, -5.0, st.Pos.Y, 1e-6)

	z.PointerUp()
	require.False(t, z.State().Dragging)

	// Moves after release are ignored.
	z.PointerMove(500, 500)
	require.InDelta(t, 30.0, z.State().Pos.X, 1e-6)
}

func TestZoomPan_PointerLeaveEndsDrag(t *testing.T) {
	z := NewZoomPan()
	z.PointerDown(10, 10)
	z.PointerLeave()
	require.False(t, z.State().Dragging)

	// Leaving without a drag is a no-op.
	z.PointerLeave()
	require.False(t, z.State().Dragging)
}

func TestZoomPan_WheelSteps(t *testing.T) {
	z := NewZoomPan()
	z.Wheel(1)
	require.InDelta(t, 1.1, z.State().Scale, 1e-9)
	z.Wheel(-1)
	z.Wheel(-1)
	require.InDelta(t, 0.9, z.State().Scale, 1e-9)
	z.Wheel(0)
	require.InDelta(t, 0.9, z.State().Scale, 1e-9)
}

func TestZoomPan_NotifiesOnChange(t *testing.T) {
	z := NewZoomPan()
	var calls int
	z.OnChange(func(ViewState) { calls++ })

	z.ZoomIn()
	z.Reset()
	z.PointerDown(0, 0)
	z.PointerMove(5, 5)
	z.PointerUp()
	require.Equal(t, 5, calls)
}
