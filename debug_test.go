package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugStatsString(t *testing.T) {
	d := debugStats{fps: 59.9, frames: 12, texReady: 2, texFailed: 1, texTotal: 4, state: StateRunning}
	s := d.String()
	assert.Contains(t, s, "FPS: 59.9")
	assert.Contains(t, s, "state: running")
	assert.Contains(t, s, "frames: 12")
	assert.Contains(t, s, "textures: 2/4 (1 failed)")
}

func TestCollectStats(t *testing.T) {
	cfg := testConfig()
	cfg.Images = []string{"missing-1.jpg", "missing-2.jpg"}
	a := newTestApp(t, cfg, testViewport, nil)
	require.NoError(t, a.Update())
	a.Session().Loader.Wait()

	d := a.collectStats()
	assert.Equal(t, StateRunning, d.state)
	assert.Equal(t, uint64(1), d.frames)
	assert.Equal(t, 2, d.texTotal)
	assert.Equal(t, 2, d.texFailed)
	assert.InDelta(t, cfg.RotationStep, d.pivotAngle, 1e-12)
	assert.InDelta(t, cameraStart.Len(), d.cameraDist, 1e-6)
}

func TestDebugOverlayRefresh(t *testing.T) {
	cfg := testConfig()
	cfg.Debug = true
	a := newTestApp(t, cfg, testViewport, nil)
	require.NotNil(t, a.overlay)

	require.NoError(t, a.Update())
	first := a.overlay.text
	assert.NotEmpty(t, first)

	// text holds between refreshes
	require.NoError(t, a.Update())
	assert.Equal(t, first, a.overlay.text)

	dst := newTestImage(t, 160, 90)
	assert.NotPanics(t, func() { a.overlay.draw(dst) })
}
