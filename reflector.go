package gallery

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// FloorOptions configures a ReflectiveFloor.
type FloorOptions struct {
	// Size is the edge length of the square floor.
	Size float64
	// Y is the height of the floor plane.
	Y float64
	// Opacity of the reflection over whatever is behind the floor.
	Opacity float64
	// Tint is blended over the reflection.
	Tint Color
	// ClipBias lifts the clip plane so geometry touching the floor is not
	// reflected through it.
	ClipBias float64
	// Scale sizes the reflection buffer relative to the viewport's device
	// resolution.
	Scale float64
}

// DefaultFloorOptions returns the gallery floor: 50x50 at y = -1.2, 15%
// opaque, tinted #222222, full resolution.
func DefaultFloorOptions() FloorOptions {
	return FloorOptions{
		Size:     50,
		Y:        -1.2,
		Opacity:  0.15,
		Tint:     Color{R: 0x22 / 255.0, G: 0x22 / 255.0, B: 0x22 / 255.0, A: 1},
		ClipBias: 0.003,
		Scale:    1,
	}
}

// ReflectiveFloor is a horizontal mirror plane. The scene is rendered
// mirrored across the plane into an offscreen buffer whose size is fixed when
// the floor is created; later viewport changes stretch the buffer rather than
// reallocate it.
type ReflectiveFloor struct {
	// Node carries the floor's geometry and transform. It is not part of the
	// scene tree.
	Node *Node

	ClipBias float64

	bufW, bufH int
	buffer     *ebiten.Image
}

// NewReflectiveFloor creates a floor whose buffer matches vp's device size
// times opts.Scale.
func NewReflectiveFloor(vp Viewport, opts FloorOptions) *ReflectiveFloor {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := vp.DeviceSize()
	mat := &Material{Color: opts.Tint, Opacity: opts.Opacity, Transparent: true}
	node := NewMesh("floor", PlaneGeometry(opts.Size, opts.Size), mat)
	node.SetRotation(-math.Pi/2, 0, 0)
	node.SetPosition(0, opts.Y, 0)
	return &ReflectiveFloor{
		Node:     node,
		ClipBias: opts.ClipBias,
		bufW:     max(1, int(float64(w)*scale)),
		bufH:     max(1, int(float64(h)*scale)),
	}
}

// Y returns the height of the mirror plane.
func (f *ReflectiveFloor) Y() float64 {
	return f.Node.Position[1]
}

// BufferSize returns the reflection buffer size in pixels.
func (f *ReflectiveFloor) BufferSize() (int, int) {
	return f.bufW, f.bufH
}

// Buffer returns the reflection buffer, allocating it on first use.
func (f *ReflectiveFloor) Buffer() *ebiten.Image {
	if f.buffer == nil {
		f.buffer = ebiten.NewImage(f.bufW, f.bufH)
	}
	return f.buffer
}

// visibleFrom reports whether the camera is above the plane. The floor is
// one-sided.
func (f *ReflectiveFloor) visibleFrom(cam *Camera) bool {
	return cam.Position[1] > f.Y()
}

// color returns the premultiplied vertex color used to composite the
// reflection: an overlay of the tint, approximated as 2*tint, at the floor's
// opacity.
func (f *ReflectiveFloor) color() (r, g, b, a float32) {
	m := f.Node.Material
	op := m.alpha()
	return float32(clamp01(2*m.Color.R) * op),
		float32(clamp01(2*m.Color.G) * op),
		float32(clamp01(2*m.Color.B) * op),
		float32(op)
}

// Dispose releases the reflection buffer.
func (f *ReflectiveFloor) Dispose() {
	if f.buffer != nil {
		f.buffer.Deallocate()
		f.buffer = nil
	}
}
