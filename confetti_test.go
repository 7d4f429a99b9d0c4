package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfettiCount(t *testing.T) {
	assert.Equal(t, ConfettiWide, ConfettiCount(Viewport{Width: 1280, Height: 720}))
	assert.Equal(t, ConfettiWide, ConfettiCount(Viewport{Width: 769, Height: 720}))
	assert.Equal(t, ConfettiNarrow, ConfettiCount(Viewport{Width: 768, Height: 1024}))
	assert.Equal(t, ConfettiNarrow, ConfettiCount(Viewport{Width: 375, Height: 812}))
	assert.Equal(t, 150, ConfettiWide)
	assert.Equal(t, 60, ConfettiNarrow)
}

func TestConfettiPiecesInRange(t *testing.T) {
	for _, vp := range []Viewport{
		{Width: 1280, Height: 720, PixelRatio: 1},
		{Width: 375, Height: 667, PixelRatio: 3},
	} {
		b := NewConfettiBurst(vp, newRand(42))
		require.Len(t, b.Pieces, ConfettiCount(vp))
		assert.Equal(t, len(b.Pieces), b.Alive())

		for _, p := range b.Pieces {
			assert.GreaterOrEqual(t, p.Left, 0.0)
			assert.Less(t, p.Left, float64(vp.Width))
			assert.GreaterOrEqual(t, p.Duration, 2.0)
			assert.Less(t, p.Duration, 5.0)
			assert.True(t, confettiSize.Contains(p.Size))
			assert.Less(t, p.Y, 0.0, "starts above the top edge")
		}
	}
}

func TestConfettiSeeded(t *testing.T) {
	a := NewConfettiBurst(testViewport, newRand(3))
	b := NewConfettiBurst(testViewport, newRand(3))
	assert.Equal(t, a.Pieces[0].Left, b.Pieces[0].Left)
	assert.Equal(t, a.Pieces[0].Color, b.Pieces[0].Color)
}

func TestConfettiFallsAndFinishes(t *testing.T) {
	vp := Viewport{Width: 400, Height: 300, PixelRatio: 1}
	b := NewConfettiBurst(vp, newRand(1))

	b.Update(1)
	assert.Greater(t, b.Pieces[0].Y, -b.Pieces[0].Size)
	assert.False(t, b.Done())

	// longest duration is under 5s
	for range 6 {
		b.Update(1)
	}
	assert.True(t, b.Done())
	assert.Equal(t, 0, b.Alive())
	for _, p := range b.Pieces {
		assert.InDelta(t, float64(vp.Height)+p.Size, p.Y, 1e-3)
	}
}

func TestConfettiDrawsWhileAlive(t *testing.T) {
	b := NewConfettiBurst(testViewport, newRand(1))
	dst := newTestImage(t, 160, 90)
	assert.NotPanics(t, func() { b.Draw(dst, 1) })
	assert.Len(t, b.batchInds, 6*len(b.Pieces))
}
