package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(widget.NewLabel("host"))
	t.Cleanup(w.Close)
	return New(w)
}

func testSubject() *Subject {
	return &Subject{
		OriginalURL:  "orig.png",
		GeneratedURL: "gen.png",
		Original:     uniformImage(32, 32, color.RGBA{R: 255, A: 255}),
		Generated:    uniformImage(32, 32, color.RGBA{G: 255, A: 255}),
	}
}

func TestViewer_OpenStartsFromCleanSlate(t *testing.T) {
	v := newTestViewer(t)

	v.Open(testSubject())
	require.True(t, v.IsOpen())
	require.Equal(t, ModeSplit, v.Mode())
	require.Equal(t, 1.0, v.zoom.State().Scale)

	// Dirty the session, close, reopen: everything resets.
	v.SetMode(ModeOverlay)
	v.zoom.SetScale(3)
	v.slider.SetPercent(80)
	v.overlay.SetOpacity(10)
	v.Close()

	v.Open(testSubject())
	require.Equal(t, ModeSplit, v.Mode())
	require.Equal(t, 1.0, v.zoom.State().Scale)
	require.Equal(t, 50.0, v.slider.Percent())
	require.Equal(t, 50.0, v.overlay.Opacity())
}

func TestViewer_OpenNilSubjectIgnored(t *testing.T) {
	v := newTestViewer(t)
	v.Open(nil)
	require.False(t, v.IsOpen())
}

func TestViewer_EscapeClosesExactlyOnce(t *testing.T) {
	v := newTestViewer(t)
	var closes int
	v.OnClose(func() { closes++ })

	v.Open(testSubject())
	esc := &fyne.KeyEvent{Name: fyne.KeyEscape}

	v.handleKey(esc)
	require.False(t, v.IsOpen())
	require.Equal(t, 1, closes)
	require.Nil(t, v.Subject())

	// A late Escape after close must not fire the callback again.
	v.handleKey(esc)
	require.Equal(t, 1, closes)
}

func TestViewer_OtherKeysIgnored(t *testing.T) {
	v := newTestViewer(t)
	v.Open(testSubject())

	v.handleKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	v.handleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	require.True(t, v.IsOpen())
}

func TestViewer_CloseWhenClosedIsNoOp(t *testing.T) {
	v := newTestViewer(t)
	var closes int
	v.OnClose(func() { closes++ })

	v.Close()
	require.Equal(t, 0, closes)
}

func TestViewer_ModeSwitchPreservesTransform(t *testing.T) {
	v := newTestViewer(t)
	v.Open(testSubject())

	v.zoom.SetScale(2.5)
	v.zoom.PointerDown(0, 0)
	v.zoom.PointerMove(30, 40)
	v.zoom.PointerUp()

	for _, m := range []Mode{ModeSlider, ModeOverlay, ModeSplit} {
		v.SetMode(m)
		st := v.zoom.State()
		require.InDelta(t, 2.5, st.Scale, 1e-9)
		require.InDelta(t, 30.0, st.Pos.X, 1e-6)
		require.InDelta(t, 40.0, st.Pos.Y, 1e-6)
	}
}

func TestViewer_SeamlessRequiresTileableSubject(t *testing.T) {
	v := newTestViewer(t)
	v.Open(testSubject())

	v.SetMode(ModeSeamless)
	require.Equal(t, ModeSplit, v.Mode())

	sub := testSubject()
	sub.PatternType = PatternSeamless
	v.Open(sub)
	v.SetMode(ModeSeamless)
	require.Equal(t, ModeSeamless, v.Mode())
}

func TestViewer_SetModeWithoutSubjectIgnored(t *testing.T) {
	v := newTestViewer(t)
	v.SetMode(ModeOverlay)
	require.Equal(t, ModeSplit, v.Mode())
}

func TestViewer_OverlayMountsWhileOpen(t *testing.T) {
	v := newTestViewer(t)
	canvas := v.win.Canvas()

	v.Open(testSubject())
	require.Len(t, canvas.Overlays().List(), 1)

	v.Close()
	require.Empty(t, canvas.Overlays().List())
}

func TestViewer_ReopenReplacesSession(t *testing.T) {
	v := newTestViewer(t)
	var closes int
	v.OnClose(func() { closes++ })

	v.Open(testSubject())
	second := testSubject()
	second.GeneratedURL = "gen2.png"
	v.Open(second)

	require.True(t, v.IsOpen())
	require.Len(t, v.win.Canvas().Overlays().List(), 1)
	require.Equal(t, "gen2.png", v.Subject().GeneratedURL)
	require.Equal(t, 1, closes)
}

func TestViewer_CloseReleasesCursorGuard(t *testing.T) {
	v := newTestViewer(t)
	v.Open(testSubject())

	v.cursor.acquire()
	require.True(t, v.cursor.active())

	v.Close()
	require.False(t, v.cursor.active())
}

func TestViewer_RenderStageFillsBackdropWithoutSubject(t *testing.T) {
	v := newTestViewer(t)
	img := v.renderStage(10, 10)
	r, g, b, _ := img.At(5, 5).RGBA()
	require.Equal(t, uint32(0x14), r>>8)
	require.Equal(t, uint32(0x14), g>>8)
	require.Equal(t, uint32(0x16), b>>8)
}
