package gallery

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const orbitEpsilon = 1e-6

// OrbitControls orbits a Camera around its Target in spherical coordinates.
// Input accumulates rotation and zoom deltas; Update applies them, easing
// them out over several ticks when damping is enabled.
type OrbitControls struct {
	Camera *Camera

	EnableDamping bool
	DampingFactor float64

	EnableRotate bool
	RotateSpeed  float64

	EnableZoom bool
	ZoomSpeed  float64

	EnablePan bool
	PanSpeed  float64

	// Distance and polar angle bounds. The polar angle is measured from +Y.
	MinDistance, MaxDistance     float64
	MinPolarAngle, MaxPolarAngle float64

	deltaTheta float64
	deltaPhi   float64
	scale      float64
	panOffset  mgl64.Vec3
}

// NewOrbitControls returns controls for cam with rotation and zoom enabled,
// panning disabled, and no damping.
func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		DampingFactor: 0.05,
		EnableRotate:  true,
		RotateSpeed:   1,
		EnableZoom:    true,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MaxDistance:   math.Inf(1),
		MaxPolarAngle: math.Pi,
		scale:         1,
	}
}

// Spherical returns the camera's current offset from the target as radius,
// azimuth (about +Y, zero along +Z) and polar angle (from +Y).
func (c *OrbitControls) Spherical() (radius, theta, phi float64) {
	off := c.Camera.Position.Sub(c.Camera.Target)
	radius = off.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math.Atan2(off[0], off[2])
	phi = math.Acos(math.Max(-1, math.Min(1, off[1]/radius)))
	return radius, theta, phi
}

// RotateLeft queues an azimuth change of -angle.
func (c *OrbitControls) RotateLeft(angle float64) {
	c.deltaTheta -= angle
}

// RotateUp queues a polar change of -angle.
func (c *OrbitControls) RotateUp(angle float64) {
	c.deltaPhi -= angle
}

// Dolly queues a distance multiplier. Values below 1 move closer.
func (c *OrbitControls) Dolly(scale float64) {
	if scale > 0 {
		c.scale *= scale
	}
}

// Pan queues a screen-space pan of (dx, dy) pixels on a surface height
// pixels tall. Ignored unless EnablePan is set.
func (c *OrbitControls) Pan(dx, dy, height float64) {
	if !c.EnablePan || height <= 0 {
		return
	}
	cam := c.Camera
	dist := cam.Distance() * math.Tan(mgl64.DegToRad(cam.FOV)/2)
	forward := cam.Target.Sub(cam.Position).Normalize()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward)
	c.panOffset = c.panOffset.
		Add(right.Mul(-2 * dx * dist / height * c.PanSpeed)).
		Add(up.Mul(2 * dy * dist / height * c.PanSpeed))
}

// zoomScale is the per-notch dolly factor.
func (c *OrbitControls) zoomScale() float64 {
	return math.Pow(0.95, c.ZoomSpeed)
}

// HandleInput applies one tick of gestures. height is the surface height in
// the same pixels as the gesture coordinates; a full-height drag orbits one
// full turn.
func (c *OrbitControls) HandleInput(f PointerFrame, height float64) {
	if c.EnableRotate && f.Dragging && height > 0 {
		c.RotateLeft(twoPi * f.DragX / height * c.RotateSpeed)
		c.RotateUp(twoPi * f.DragY / height * c.RotateSpeed)
	}
	if !c.EnableZoom {
		return
	}
	switch {
	case f.Wheel > 0:
		c.Dolly(c.zoomScale())
	case f.Wheel < 0:
		c.Dolly(1 / c.zoomScale())
	}
	if f.Pinch > 0 && f.Pinch != 1 {
		c.Dolly(1 / math.Pow(f.Pinch, c.ZoomSpeed))
	}
}

// Update applies queued deltas to the camera and reports whether it moved.
func (c *OrbitControls) Update() bool {
	cam := c.Camera
	radius, theta, phi := c.Spherical()
	if radius == 0 {
		return false
	}

	step := 1.0
	if c.EnableDamping {
		step = c.DampingFactor
	}
	theta += c.deltaTheta * step
	phi += c.deltaPhi * step
	phi = math.Max(c.MinPolarAngle, math.Min(c.MaxPolarAngle, phi))
	phi = math.Max(orbitEpsilon, math.Min(math.Pi-orbitEpsilon, phi))

	radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, radius*c.scale))
	target := cam.Target.Add(c.panOffset.Mul(step))

	sinPhi := math.Sin(phi)
	pos := target.Add(mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	})

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
		c.panOffset = mgl64.Vec3{}
	}
	c.scale = 1

	moved := pos.Sub(cam.Position).LenSqr() > orbitEpsilon*orbitEpsilon ||
		target.Sub(cam.Target).LenSqr() > orbitEpsilon*orbitEpsilon
	cam.Position = pos
	cam.Target = target
	return moved
}
