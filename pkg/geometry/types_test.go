package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint2DArithmetic(t *testing.T) {
	p := NewPoint2D(3, 4)

	require.Equal(t, NewPoint2D(5, 6), p.Add(NewPoint2D(2, 2)))
	require.Equal(t, NewPoint2D(1, 2), p.Sub(NewPoint2D(2, 2)))
	require.Equal(t, NewPoint2D(6, 8), p.Scale(2))
	require.InDelta(t, 5.0, NewPoint2D(0, 0).Distance(p), 1e-9)
}

func TestPointIntToFloat(t *testing.T) {
	require.Equal(t, NewPoint2D(7, -2), PointInt{X: 7, Y: -2}.ToFloat())
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	require.True(t, r.Contains(NewPoint2D(15, 15)))
	require.True(t, r.Contains(NewPoint2D(10, 10)))
	require.True(t, r.Contains(NewPoint2D(30, 30)))
	require.False(t, r.Contains(NewPoint2D(9.9, 15)))
	require.False(t, r.Contains(NewPoint2D(15, 30.1)))
}

func TestRectCenterAndAspect(t *testing.T) {
	r := NewRect(0, 0, 40, 20)
	require.Equal(t, NewPoint2D(20, 10), r.Center())
	require.InDelta(t, 2.0, r.AspectRatio(), 1e-9)
	require.Equal(t, 0.0, NewRect(0, 0, 10, 0).AspectRatio())
}

func TestRectFitInto(t *testing.T) {
	// Wide content into a square: width-bound, vertically centered.
	fit := NewRect(0, 0, 200, 100).FitInto(NewRect(0, 0, 100, 100))
	require.Equal(t, NewRect(0, 25, 100, 50), fit)

	// Tall content into a square: height-bound, horizontally centered.
	fit = NewRect(0, 0, 50, 100).FitInto(NewRect(0, 0, 100, 100))
	require.Equal(t, NewRect(25, 0, 50, 100), fit)

	// Bounds offset carries through.
	fit = NewRect(0, 0, 10, 10).FitInto(NewRect(100, 50, 20, 20))
	require.Equal(t, NewRect(100, 50, 20, 20), fit)
}

func TestRectFitIntoDegenerate(t *testing.T) {
	fit := NewRect(0, 0, 0, 10).FitInto(NewRect(5, 5, 100, 100))
	require.Equal(t, Rect{X: 5, Y: 5}, fit)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 5.0, Clamp(3, 5, 10))
	require.Equal(t, 10.0, Clamp(12, 5, 10))
	require.Equal(t, 7.5, Clamp(7.5, 5, 10))
}
