package gallery

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImage(t *testing.T, w, h int) *ebiten.Image {
	t.Helper()
	img := ebiten.NewImage(w, h)
	t.Cleanup(img.Deallocate)
	return img
}

// frontCamera looks at the origin from +Z.
func frontCamera(aspect float64) *Camera {
	cam := NewPerspectiveCamera(60, aspect, 0.1, 100)
	cam.SetPosition(0, 0, 5)
	cam.LookAt(mgl64.Vec3{})
	return cam
}

func TestCommandOrderFarToNear(t *testing.T) {
	r := NewRenderer(testViewport)
	r.commands = append(r.commands,
		RenderCommand{Depth: 1, treeOrder: 1},
		RenderCommand{Depth: 9, treeOrder: 2},
		RenderCommand{Depth: 5, treeOrder: 3},
		RenderCommand{Depth: 9, treeOrder: 4},
		RenderCommand{Depth: 2, treeOrder: 5},
	)
	r.mergeSort()

	var order []int
	for _, c := range r.commands {
		order = append(order, c.treeOrder)
	}
	assert.Equal(t, []int{2, 4, 3, 5, 1}, order)
}

func TestEmitPlaneFacingCamera(t *testing.T) {
	r := NewRenderer(testViewport)
	scene := NewScene()
	scene.Add(NewMesh("plane", PlaneGeometry(1, 1), &Material{Color: ColorWhite, Opacity: 1}))
	scene.UpdateWorldTransforms()

	p := newPass(frontCamera(1), 100, 100, nil)
	order := 0
	r.traverse(scene.Root(), &p, &order)
	require.Len(t, r.commands, 2*faceSubdivisions*faceSubdivisions)

	// unit plane at distance 5 with a 60 degree fov stays near the center
	for _, c := range r.commands {
		for _, v := range c.Vertices {
			assert.InDelta(t, 50, v.DstX, 10)
			assert.InDelta(t, 50, v.DstY, 10)
		}
		assert.InDelta(t, 5, c.Depth, 1e-9)
	}
}

func TestEmitCullsBackFaces(t *testing.T) {
	r := NewRenderer(testViewport)
	plane := NewMesh("plane", PlaneGeometry(1, 1), &Material{Color: ColorWhite, Opacity: 1})
	plane.SetRotationY(3.14159)
	updateWorldTransform(plane, mgl64.Ident4(), false)

	p := newPass(frontCamera(1), 100, 100, nil)
	order := 0
	r.traverse(plane, &p, &order)
	assert.Empty(t, r.commands)
}

func TestEmitBoxShowsFacingSides(t *testing.T) {
	r := NewRenderer(testViewport)
	box := NewMesh("box", BoxGeometry(1, 1, 1), &Material{Color: ColorWhite, Opacity: 1})
	updateWorldTransform(box, mgl64.Ident4(), false)

	cam := frontCamera(1)
	cam.SetPosition(3, 3, 5)
	p := newPass(cam, 100, 100, nil)
	order := 0
	r.traverse(box, &p, &order)

	// front, +X and +Y faces
	assert.Len(t, r.commands, 3*2*faceSubdivisions*faceSubdivisions)
}

func TestTraverseSkipsHiddenAndTransparent(t *testing.T) {
	r := NewRenderer(testViewport)
	root := NewGroup("root")
	hidden := NewMesh("hidden", PlaneGeometry(1, 1), &Material{Color: ColorWhite, Opacity: 1})
	hidden.Visible = false
	invisible := NewMesh("invisible", PlaneGeometry(1, 1), &Material{Color: ColorWhite, Opacity: 0, Transparent: true})
	root.AddChild(hidden)
	root.AddChild(invisible)
	updateWorldTransform(root, mgl64.Ident4(), false)

	p := newPass(frontCamera(1), 100, 100, nil)
	order := 0
	r.traverse(root, &p, &order)
	assert.Empty(t, r.commands)
}

func TestMirrorPassClipsBelowPlane(t *testing.T) {
	r := NewRenderer(testViewport)
	root := NewGroup("root")
	above := NewMesh("above", PlaneGeometry(1, 1), &Material{Color: ColorWhite, Opacity: 1})
	above.SetPosition(0, 1, 0)
	below := NewMesh("below", PlaneGeometry(1, 1), &Material{Color: ColorWhite, Opacity: 1})
	below.SetPosition(0, -3, 0)
	root.AddChild(above)
	root.AddChild(below)
	updateWorldTransform(root, mgl64.Ident4(), false)

	cam := frontCamera(1)
	cam.SetPosition(0, 2, 8)
	p := newPass(cam, 100, 100, nil)
	p.mirror = true
	p.planeY = -1.2
	p.clipY = -1.2 + 0.003
	order := 0
	r.traverse(root, &p, &order)
	require.Len(t, r.commands, 2*faceSubdivisions*faceSubdivisions)

	// the reflection of a panel above the floor lands lower on screen
	_, sy, ok := cam.Project(mgl64.Vec3{0, 1, 0}, 100, 100)
	require.True(t, ok)
	for _, c := range r.commands {
		for _, v := range c.Vertices {
			assert.Greater(t, float64(v.DstY), sy)
		}
	}
}

func TestShadeLights(t *testing.T) {
	r, g, b := shade(nil, 0, 0, 0)
	assert.Equal(t, ambientLevel, r)
	assert.Equal(t, ambientLevel, g)
	assert.Equal(t, ambientLevel, b)

	near := []litLight{{light: NewPointLight(0.08, 5), x: 0, y: 1, z: 0}}
	r, _, _ = shade(near, 0, 0, 0)
	assert.Greater(t, r, ambientLevel)
	assert.LessOrEqual(t, r, 1.0)

	r, _, _ = shade(near, 0, 10, 0)
	assert.Equal(t, ambientLevel, r)
}

func TestBatchesCoalesceByImage(t *testing.T) {
	r := NewRenderer(testViewport)
	target := newTestImage(t, 16, 16)
	a, b := newTestImage(t, 1, 1), newTestImage(t, 1, 1)
	r.commands = append(r.commands,
		RenderCommand{Image: a}, RenderCommand{Image: a},
		RenderCommand{Image: b},
		RenderCommand{Image: a},
	)
	r.submitBatches(target)
	assert.Equal(t, 3, r.batches)
}

func TestRenderFullScene(t *testing.T) {
	cfg := testConfig()
	cfg.Images = []string{"a.jpg", "b.jpg", "c.jpg"}
	s := newTestSession(t, cfg, testViewport, nil)
	s.Loader.Wait()

	s.Render()
	surface := s.Renderer.Surface()
	assert.Equal(t, 160, surface.Bounds().Dx())
	assert.Equal(t, 90, surface.Bounds().Dy())
	assert.Positive(t, s.Renderer.Batches())
	assert.NotNil(t, s.Floor.buffer, "reflection rendered")
}

func TestRenderSkipsFloorFromBelow(t *testing.T) {
	s := newTestSession(t, testConfig(), testViewport, nil)
	s.Camera.SetPosition(0, -5, 8)
	s.Render()
	assert.Nil(t, s.Floor.buffer)
}
