package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking from Position at Target.
//
// Like most retained-mode engines the projection matrix is cached: after
// changing FOV, Aspect, Near or Far call UpdateProjectionMatrix.
type Camera struct {
	// Position is the eye point in world space.
	Position mgl64.Vec3
	// Target is the point the camera looks at.
	Target mgl64.Vec3
	// Up is the world up direction.
	Up mgl64.Vec3

	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is width / height.
	Aspect float64
	// Near and Far bound the view volume.
	Near, Far float64

	projection mgl64.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetPosition moves the eye without changing the target.
func (c *Camera) SetPosition(x, y, z float64) {
	c.Position = mgl64.Vec3{x, y, z}
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
}

// SetAspect sets Aspect. The projection matrix keeps its previous value until
// UpdateProjectionMatrix is called.
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
}

// UpdateProjectionMatrix recomputes the projection from FOV, Aspect, Near, Far.
func (c *Camera) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the cached projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Distance returns the distance from Position to Target.
func (c *Camera) Distance() float64 {
	return c.Position.Sub(c.Target).Len()
}

// projectView maps a view-space point onto a w x h pixel surface. Points
// must lie in front of the near plane.
func (c *Camera) projectView(v mgl64.Vec3, w, h float64) (sx, sy float64) {
	clip := c.projection.Mul4x1(v.Vec4(1))
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return (ndcX + 1) * w / 2, (1 - ndcY) * h / 2
}

// Project projects a world point onto a w x h surface. ok is false when
// the point is behind the near plane.
func (c *Camera) Project(p mgl64.Vec3, w, h float64) (sx, sy float64, ok bool) {
	v := mgl64.TransformCoordinate(p, c.ViewMatrix())
	if -v[2] < c.Near {
		return 0, 0, false
	}
	sx, sy = c.projectView(v, w, h)
	return sx, sy, true
}
