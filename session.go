package gallery

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera defaults for a composed session.
const (
	cameraFOV  = 60
	cameraNear = 0.1
	cameraFar  = 1000
)

var cameraStart = mgl64.Vec3{0, 2, 8}

// Session holds every handle of one composed gallery.
type Session struct {
	Renderer *Renderer
	Scene    *Scene
	Camera   *Camera
	Controls *OrbitControls
	Floor    *ReflectiveFloor
	Pivot    *Node
	Panels   []GalleryNode
	Loader   *TextureLoader

	input   PointerInput
	tracker *PointerTracker
}

// Compose builds a complete gallery for cfg sized to vp. Panel textures
// start loading immediately and appear as they decode. in may be nil, in
// which case the orbit controls only ease previously queued motion.
func Compose(cfg Config, vp Viewport, in PointerInput) *Session {
	cfg = cfg.Normalize()
	rng := newRand(cfg.Seed)

	scene := NewScene()
	scene.Background = DefaultBackground().Texture(rng)

	cam := NewPerspectiveCamera(cameraFOV, vp.Aspect(), cameraNear, cameraFar)
	cam.Position = cameraStart
	cam.LookAt(mgl64.Vec3{})

	controls := NewOrbitControls(cam)
	controls.EnableDamping = true
	controls.DampingFactor = 0.05
	controls.EnableZoom = true
	controls.EnablePan = false

	opts := DefaultFloorOptions()
	opts.Scale = cfg.ReflectionScale
	if tint, err := cfg.floorTint(); err == nil {
		opts.Tint = tint
	}
	floor := NewReflectiveFloor(vp, opts)
	scene.Floor = floor

	loader := NewTextureLoader(os.DirFS(cfg.ImageDir))
	pivot, panels := Layout(cfg.PanelSpecs(), loader)
	scene.Add(pivot)

	Logger().Debug("session composed",
		"variant", cfg.Variant,
		"panels", len(panels),
		"viewport", vp,
		"reflection_buffer", []int{floor.bufW, floor.bufH},
	)

	return &Session{
		Renderer: NewRenderer(vp),
		Scene:    scene,
		Camera:   cam,
		Controls: controls,
		Floor:    floor,
		Pivot:    pivot,
		Panels:   panels,
		Loader:   loader,
		input:    in,
		tracker:  NewPointerTracker(),
	}
}

// Advance turns the pivot by step radians and ticks the orbit controls with
// this tick's input.
func (s *Session) Advance(step float64) {
	s.Pivot.RotateY(step)
	if s.input != nil {
		_, h := s.Renderer.Size().DeviceSize()
		s.Controls.HandleInput(s.tracker.Poll(s.input), float64(h))
	}
	s.Controls.Update()
}

// Render draws one frame to the renderer's surface.
func (s *Session) Render() {
	s.Renderer.Render(s.Scene, s.Camera)
}

// Close releases GPU images owned by the session.
func (s *Session) Close() {
	s.Floor.Dispose()
	if s.Renderer.surface != nil {
		s.Renderer.surface.Deallocate()
		s.Renderer.surface = nil
	}
}
