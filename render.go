package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand is a single projected triangle emitted during scene
// traversal.
type RenderCommand struct {
	Image    *ebiten.Image
	Vertices [3]ebiten.Vertex
	// Depth is the mean view-space distance of the triangle. Commands are
	// drawn far to near.
	Depth     float64
	treeOrder int // assigned during traversal for stable sort
}

// pass is the projection state for one traversal of the tree.
type pass struct {
	cam    *Camera
	view   mgl64.Mat4
	eye    mgl64.Vec3
	width  float64
	height float64
	lights []litLight

	// Mirror passes reflect geometry across y = planeY and drop faces lying
	// entirely below clipY.
	mirror bool
	planeY float64
	clipY  float64
}

func newPass(cam *Camera, w, h int, lights []litLight) pass {
	return pass{
		cam:    cam,
		view:   cam.ViewMatrix(),
		eye:    cam.Position,
		width:  float64(w),
		height: float64(h),
		lights: lights,
	}
}

// traverse walks the node tree depth-first, emitting commands for visible
// meshes. Hidden nodes hide their subtree.
func (r *Renderer) traverse(n *Node, p *pass, treeOrder *int) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeMesh && n.Geometry != nil && n.Material != nil {
		r.emitMesh(n, p, treeOrder)
	}
	for _, child := range n.children {
		r.traverse(child, p, treeOrder)
	}
}

// drawTree renders the subtree at root onto target in one pass.
func (r *Renderer) drawTree(target *ebiten.Image, root *Node, p *pass) {
	r.commands = r.commands[:0]
	treeOrder := 0
	r.traverse(root, p, &treeOrder)
	r.mergeSort()
	r.submitBatches(target)
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should draw before or at the same
// position as b. Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts r.commands in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *Renderer) mergeSort() {
	n := len(r.commands)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]RenderCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.commands
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.commands, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		dst[k] = src[i]
	}
	for ; j < hi; j, k = j+1, k+1 {
		dst[k] = src[j]
	}
}
