package gallery

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneLightsSkipHidden(t *testing.T) {
	s := NewScene()
	shown := NewLight("shown", NewPointLight(1, 5))
	hiddenGroup := NewGroup("hidden")
	hiddenGroup.Visible = false
	hiddenGroup.AddChild(NewLight("inner", NewPointLight(1, 5)))
	s.Add(shown)
	s.Add(hiddenGroup)

	lights := s.Lights()
	require.Len(t, lights, 1)
	assert.Same(t, shown, lights[0])
}

func TestSceneCollectLightsWorldSpace(t *testing.T) {
	s := NewScene()
	g := NewGroup("g")
	g.SetPosition(1, 0, 0)
	l := NewLight("l", NewPointLight(1, 5))
	l.SetPosition(0, 2, 0)
	g.AddChild(l)
	s.Add(g)
	s.UpdateWorldTransforms()

	lit := s.collectLights(nil)
	require.Len(t, lit, 1)
	assert.InDelta(t, 1, lit[0].x, epsilon)
	assert.InDelta(t, 2, lit[0].y, epsilon)
}

func TestReflectiveFloor(t *testing.T) {
	vp := Viewport{Width: 300, Height: 200, PixelRatio: 2}
	opts := DefaultFloorOptions()
	f := NewReflectiveFloor(vp, opts)
	t.Cleanup(f.Dispose)

	assert.InDelta(t, -1.2, f.Y(), epsilon)
	w, h := f.BufferSize()
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)

	opts.Scale = 0.5
	half := NewReflectiveFloor(vp, opts)
	w, h = half.BufferSize()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)

	// the plane faces up once rotated
	updateWorldTransform(f.Node, mgl64.Ident4(), false)
	n := f.Node.WorldTransform().Mul4x1(f.Node.Geometry.Faces[0].Normal.Vec4(0)).Vec3()
	assertVec(t, mgl64.Vec3{0, 1, 0}, n, 1e-9)
	c := f.Node.LocalToWorld(f.Node.Geometry.Faces[0].Corners[0])
	assert.InDelta(t, 25, math.Abs(c[0]), 1e-9)
}

func TestReflectiveFloorVisibility(t *testing.T) {
	f := NewReflectiveFloor(testViewport, DefaultFloorOptions())
	cam := NewPerspectiveCamera(60, 1, 0.1, 100)
	cam.SetPosition(0, 2, 8)
	assert.True(t, f.visibleFrom(cam))
	cam.SetPosition(0, -2, 8)
	assert.False(t, f.visibleFrom(cam))
}

func TestReflectiveFloorColor(t *testing.T) {
	f := NewReflectiveFloor(testViewport, DefaultFloorOptions())
	r, g, b, a := f.color()
	assert.InDelta(t, 0.15, a, 1e-6)
	assert.InDelta(t, 2*0x22/255.0*0.15, r, 1e-6)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestPointLightAttenuate(t *testing.T) {
	l := NewPointLight(0.08, 5)
	assert.InDelta(t, 0.08, l.Attenuate(0), epsilon)
	assert.InDelta(t, 0.02, l.Attenuate(2.5), epsilon)
	assert.Zero(t, l.Attenuate(5))
	assert.Zero(t, l.Attenuate(7))

	flat := NewPointLight(0.5, 0)
	assert.Equal(t, 0.5, flat.Attenuate(100))
}

func TestBoxGeometryNormalsPointOut(t *testing.T) {
	geo := BoxGeometry(2, 4, 6)
	require.Len(t, geo.Faces, 6)
	for _, f := range geo.Faces {
		var center mgl64.Vec3
		for _, c := range f.Corners {
			center = center.Add(c)
		}
		assert.Positive(t, center.Mul(0.25).Dot(f.Normal))

		// corners wind clockwise when seen from outside
		e1 := f.Corners[1].Sub(f.Corners[0])
		e2 := f.Corners[3].Sub(f.Corners[0])
		assert.Positive(t, e2.Cross(e1).Dot(f.Normal))
	}
}

func TestMaterialAlpha(t *testing.T) {
	m := NewMaterial(nil)
	m.Opacity = 0.3
	assert.Equal(t, 1.0, m.alpha())
	m.Transparent = true
	assert.InDelta(t, 0.3, m.alpha(), epsilon)
}
