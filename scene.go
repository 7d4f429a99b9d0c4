package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Scene is the top-level object that owns the node tree, the backdrop and the
// reflective floor.
type Scene struct {
	// Background is stretched over the whole render surface before anything
	// else is drawn. nil leaves the surface cleared.
	Background *Texture
	// Floor, when set, is drawn under the node tree with a mirrored copy of
	// the scene.
	Floor *ReflectiveFloor

	root *Node
}

// NewScene creates a new scene with a pre-created root group.
func NewScene() *Scene {
	return &Scene{root: NewGroup("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches n to the root.
func (s *Scene) Add(n *Node) {
	s.root.AddChild(n)
}

// UpdateWorldTransforms refreshes every dirty world matrix, including the
// floor's.
func (s *Scene) UpdateWorldTransforms() {
	updateWorldTransform(s.root, mgl64.Ident4(), false)
	if s.Floor != nil {
		updateWorldTransform(s.Floor.Node, mgl64.Ident4(), false)
	}
}

// Lights returns every visible light node in depth-first order.
func (s *Scene) Lights() []*Node {
	var out []*Node
	s.root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Type == NodeTypeLight && n.Light != nil {
			out = append(out, n)
		}
		return true
	})
	return out
}

// collectLights resolves visible lights to world space. Transforms must be
// current.
func (s *Scene) collectLights(dst []litLight) []litLight {
	for _, n := range s.Lights() {
		p := n.WorldPosition()
		dst = append(dst, litLight{light: n.Light, x: p[0], y: p[1], z: p[2]})
	}
	return dst
}
