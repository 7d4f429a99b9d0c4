package gallery

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testViewport is small enough to keep offscreen images cheap.
var testViewport = Viewport{Width: 160, Height: 90, PixelRatio: 1}

// testConfig returns a seeded classic config with no panel images.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Images = []string{}
	cfg.ImageDir = "testdata"
	cfg.Seed = 7
	return cfg
}

func newTestSession(t *testing.T, cfg Config, vp Viewport, in PointerInput) *Session {
	t.Helper()
	s := Compose(cfg, vp, in)
	t.Cleanup(func() {
		s.Loader.Wait()
		s.Close()
	})
	return s
}

func TestComposeBuildsScene(t *testing.T) {
	cfg := testConfig()
	cfg.Images = []string{"red.png", "missing.png", "blue.png"}
	s := newTestSession(t, cfg, testViewport, nil)

	require.Len(t, s.Panels, 3)
	assert.Same(t, s.Pivot, s.Scene.Root().ChildAt(0))
	assert.NotNil(t, s.Scene.Background)
	assert.Same(t, s.Floor, s.Scene.Floor)
	assert.Len(t, s.Scene.Lights(), 3)

	assert.Equal(t, cameraStart, s.Camera.Position)
	assert.Equal(t, mgl64.Vec3{}, s.Camera.Target)
	assert.InDelta(t, testViewport.Aspect(), s.Camera.Aspect, epsilon)

	assert.True(t, s.Controls.EnableDamping)
	assert.InDelta(t, 0.05, s.Controls.DampingFactor, epsilon)
	assert.True(t, s.Controls.EnableZoom)
	assert.False(t, s.Controls.EnablePan)

	w, h := s.Floor.BufferSize()
	assert.Equal(t, 160, w)
	assert.Equal(t, 90, h)
}

func TestComposeReflectionScale(t *testing.T) {
	s := newTestSession(t, GiftConfig(), Viewport{Width: 200, Height: 100, PixelRatio: 2}, nil)
	w, h := s.Floor.BufferSize()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
}

func TestComposeEmptyGallery(t *testing.T) {
	s := newTestSession(t, testConfig(), testViewport, nil)
	assert.Empty(t, s.Panels)
	assert.Equal(t, 0, s.Pivot.NumChildren())
	assert.NotPanics(t, s.Render)
}

func TestSessionAdvanceRotatesPivot(t *testing.T) {
	s := newTestSession(t, testConfig(), testViewport, nil)
	s.Advance(0.25)
	s.Advance(0.25)
	assert.InDelta(t, 0.5, s.Pivot.RotationY, 1e-12)
}

func TestSessionAdvanceAppliesWheel(t *testing.T) {
	in := &ScriptedInput{}
	s := newTestSession(t, testConfig(), testViewport, in)
	before := s.Camera.Distance()

	in.WheelY = 1
	s.Advance(0)
	assert.Less(t, s.Camera.Distance(), before)
}

func TestThreePanelsTurnAndResize(t *testing.T) {
	cfg := testConfig()
	cfg.Images = []string{"a.png", "b.png", "c.png"}
	s := newTestSession(t, cfg, testViewport, nil)

	require.Len(t, s.Panels, 3)
	for i, want := range []float64{0, 120, 240} {
		assert.InDelta(t, want, mgl64.RadToDeg(s.Panels[i].Angle), 1e-9)
	}

	var q FrameQueue
	l := NewLoop(s, &q, 0.005)
	l.Start()
	for range 200 {
		q.RunPending()
	}
	assert.InDelta(t, 1.0, s.Pivot.RotationY, 1e-9)

	r := ResizeResponder{Session: func() *Session { return s }}
	require.True(t, r.Resize(Viewport{Width: 1024, Height: 768, PixelRatio: 1}))
	assert.Equal(t, 1024.0/768.0, s.Camera.Aspect)
}
