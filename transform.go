package gallery

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const twoPi = 2 * math.Pi

// computeLocalTransform composes the node's local matrix.
//
// Composition order:
//
//	Translate(Position) * RotateY * RotateX * RotateZ * Scale
func computeLocalTransform(n *Node) mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	if n.RotationY != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(n.RotationY))
	}
	if n.RotationX != 0 {
		m = m.Mul4(mgl64.HomogRotate3DX(n.RotationX))
	}
	if n.RotationZ != 0 {
		m = m.Mul4(mgl64.HomogRotate3DZ(n.RotationZ))
	}
	if n.Scale != (mgl64.Vec3{1, 1, 1}) {
		m = m.Mul4(mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
	}
	return m
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed forces recomputation even if the node itself is clean.
func updateWorldTransform(n *Node, parent mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parent.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = mgl64.Vec3{x, y, z}
	n.transformDirty = true
}

// SetRotation sets all three Euler angles (radians) and marks the node dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.RotationX, n.RotationY, n.RotationZ = x, y, z
	n.transformDirty = true
}

// SetRotationY sets the rotation about the vertical axis and marks it dirty.
func (n *Node) SetRotationY(r float64) {
	n.RotationY = r
	n.transformDirty = true
}

// RotateY adds delta to RotationY, keeping the result in [0, 2π).
func (n *Node) RotateY(delta float64) {
	n.SetRotationY(wrapAngle(n.RotationY + delta))
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = mgl64.Vec3{x, y, z}
	n.transformDirty = true
}

// MarkDirty forces recomputation on the next transform update. Useful after
// bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldTransform returns the node's world matrix as of the last update.
func (n *Node) WorldTransform() mgl64.Mat4 {
	return n.worldTransform
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.LocalToWorld(mgl64.Vec3{})
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, n.worldTransform)
}

// wrapAngle maps a to [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
