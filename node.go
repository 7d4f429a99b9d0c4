package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup NodeType = iota // transform-only node with no visual output
	NodeTypeMesh                  // renders Geometry with a Material
	NodeTypeLight                 // contributes a PointLight to mesh shading
)

// nodeIDCounter is a plain counter (no atomic: the scene graph is only touched
// from the game goroutine).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. A single flat struct is used for groups,
// meshes and lights.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotations are Euler angles in radians applied in
	// Y, X, Z order.
	Position  mgl64.Vec3
	RotationX float64
	RotationY float64
	RotationZ float64
	Scale     mgl64.Vec3

	Visible bool

	// Mesh fields (NodeTypeMesh)
	Geometry *Geometry
	Material *Material

	// Light fields (NodeTypeLight)
	Light *PointLight

	// Metadata
	UserData any

	worldTransform mgl64.Mat4
	transformDirty bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Visible = true
	n.worldTransform = mgl64.Ident4()
	n.transformDirty = true
}

// NewGroup creates a node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewMesh creates a node that renders geometry with the given material.
func NewMesh(name string, geo *Geometry, mat *Material) *Node {
	n := &Node{Name: name, Type: NodeTypeMesh, Geometry: geo, Material: mat}
	nodeDefaults(n)
	return n
}

// NewLight creates a node carrying a point light.
func NewLight(name string, light *PointLight) *Node {
	n := &Node{Name: name, Type: NodeTypeLight, Light: light}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("gallery: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("gallery: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("gallery: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Walk calls fn for n and every descendant in depth-first order.
// Returning false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
