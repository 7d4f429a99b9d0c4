package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeDefaults(t *testing.T) {
	n := NewGroup("g")
	assert.Equal(t, NodeTypeGroup, n.Type)
	assert.True(t, n.Visible)
	assert.Equal(t, 1.0, n.Scale[0])
	assert.NotZero(t, n.ID)
	assert.NotEqual(t, n.ID, NewGroup("h").ID)
}

func TestAddChildReparents(t *testing.T) {
	a, b := NewGroup("a"), NewGroup("b")
	c := NewGroup("c")
	a.AddChild(c)
	require.Equal(t, 1, a.NumChildren())

	b.AddChild(c)
	assert.Equal(t, 0, a.NumChildren())
	assert.Equal(t, 1, b.NumChildren())
	assert.Same(t, b, c.Parent)
}

func TestAddChildPanics(t *testing.T) {
	root := NewGroup("root")
	child := NewGroup("child")
	root.AddChild(child)

	assert.Panics(t, func() { root.AddChild(nil) })
	assert.Panics(t, func() { child.AddChild(root) })
	assert.Panics(t, func() { child.RemoveChild(root) })
}

func TestRemoveFromParent(t *testing.T) {
	root := NewGroup("root")
	a, b, c := NewGroup("a"), NewGroup("b"), NewGroup("c")
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	b.RemoveFromParent()
	require.Equal(t, 2, root.NumChildren())
	assert.Same(t, a, root.ChildAt(0))
	assert.Same(t, c, root.ChildAt(1))
	assert.Nil(t, b.Parent)

	// no-op without a parent
	b.RemoveFromParent()
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := NewGroup("root")
	hidden := NewGroup("hidden")
	hidden.AddChild(NewGroup("inner"))
	root.AddChild(hidden)
	root.AddChild(NewGroup("shown"))

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n != hidden
	})
	assert.Equal(t, []string{"root", "hidden", "shown"}, names)
}
