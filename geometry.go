package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Face is one planar quad of a Geometry. Corners run top-left, top-right,
// bottom-right, bottom-left as seen from outside (the side Normal points to).
// UVs are normalized image coordinates with V increasing downward.
type Face struct {
	Corners [4]mgl64.Vec3
	UVs     [4][2]float64
	Normal  mgl64.Vec3
}

// Geometry is a list of quad faces in local space.
type Geometry struct {
	Faces []Face
}

// fullUVs maps a face onto the whole texture.
var fullUVs = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// BoxGeometry creates a box centered on the origin. Every face carries the
// full texture, laid out upright as seen from outside that face.
func BoxGeometry(width, height, depth float64) *Geometry {
	x, y, z := width/2, height/2, depth/2
	face := func(n mgl64.Vec3, tl, tr, br, bl mgl64.Vec3) Face {
		return Face{Corners: [4]mgl64.Vec3{tl, tr, br, bl}, UVs: fullUVs, Normal: n}
	}
	return &Geometry{Faces: []Face{
		// +Z (front)
		face(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{-x, y, z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{x, -y, z}, mgl64.Vec3{-x, -y, z}),
		// -Z (back)
		face(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{x, -y, -z}),
		// +X
		face(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{x, y, z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{x, -y, -z}, mgl64.Vec3{x, -y, z}),
		// -X
		face(mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{-x, y, z}, mgl64.Vec3{-x, -y, z}, mgl64.Vec3{-x, -y, -z}),
		// +Y
		face(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{-x, y, z}),
		// -Y
		face(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{-x, -y, z}, mgl64.Vec3{x, -y, z}, mgl64.Vec3{x, -y, -z}, mgl64.Vec3{-x, -y, -z}),
	}}
}

// PlaneGeometry creates a single face in the XY plane facing +Z.
func PlaneGeometry(width, height float64) *Geometry {
	x, y := width/2, height/2
	return &Geometry{Faces: []Face{{
		Corners: [4]mgl64.Vec3{{-x, y, 0}, {x, y, 0}, {x, -y, 0}, {-x, -y, 0}},
		UVs:     fullUVs,
		Normal:  mgl64.Vec3{0, 0, 1},
	}}}
}

// Material describes how a mesh is shaded.
type Material struct {
	// Texture is sampled across each face. nil draws a flat Color.
	Texture *Texture
	// Color multiplies the texture.
	Color Color
	// Opacity applies when Transparent is set.
	Opacity     float64
	Transparent bool
}

// NewMaterial returns an opaque white material showing tex.
func NewMaterial(tex *Texture) *Material {
	return &Material{Texture: tex, Color: ColorWhite, Opacity: 1}
}

// alpha returns the effective opacity.
func (m *Material) alpha() float64 {
	if !m.Transparent {
		return 1
	}
	return clamp01(m.Opacity)
}
