package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 1024

// Renderer projects a Scene through a Camera onto an offscreen surface sized
// to the viewport in device pixels. The host blits Surface to the screen.
type Renderer struct {
	vp      Viewport
	surface *ebiten.Image

	// per-frame scratch, reused across frames
	commands   []RenderCommand
	sortBuf    []RenderCommand
	batchVerts []ebiten.Vertex
	batchInds  []uint32
	clipBuf    []viewVertex
	litBuf     []litLight

	batches int // draw calls issued by the last Render
}

// NewRenderer creates a renderer for vp. The surface is allocated on first
// use.
func NewRenderer(vp Viewport) *Renderer {
	return &Renderer{
		vp:       vp,
		commands: make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:  make([]RenderCommand, 0, defaultCommandCap),
	}
}

// SetSize changes the output size. The surface is reallocated lazily when its
// device size changes.
func (r *Renderer) SetSize(vp Viewport) {
	r.vp = vp
	if r.surface == nil {
		return
	}
	w, h := vp.DeviceSize()
	if b := r.surface.Bounds(); b.Dx() != w || b.Dy() != h {
		r.surface.Deallocate()
		r.surface = nil
	}
}

// Size returns the viewport the renderer currently targets.
func (r *Renderer) Size() Viewport {
	return r.vp
}

// Surface returns the render surface, allocating it if needed.
func (r *Renderer) Surface() *ebiten.Image {
	if r.surface == nil {
		w, h := r.vp.DeviceSize()
		r.surface = ebiten.NewImage(w, h)
	}
	return r.surface
}

// Batches returns the number of draw calls issued by the last Render.
func (r *Renderer) Batches() int {
	return r.batches
}

// Render draws the backdrop, the floor with its reflection, and the node tree.
func (r *Renderer) Render(s *Scene, cam *Camera) {
	target := r.Surface()
	target.Clear()
	r.batches = 0

	s.UpdateWorldTransforms()
	r.litBuf = s.collectLights(r.litBuf[:0])

	drawBackground(target, s.Background)

	b := target.Bounds()
	p := newPass(cam, b.Dx(), b.Dy(), r.litBuf)
	if f := s.Floor; f != nil && f.visibleFrom(cam) {
		r.renderReflection(s, cam, f)
		r.drawFloor(target, f, &p)
	}
	r.drawTree(target, s.Root(), &p)
}

// renderReflection redraws the backdrop and the mirrored tree into the
// floor's buffer.
func (r *Renderer) renderReflection(s *Scene, cam *Camera, f *ReflectiveFloor) {
	buf := f.Buffer()
	buf.Clear()
	drawBackground(buf, s.Background)

	bw, bh := f.BufferSize()
	p := newPass(cam, bw, bh, r.litBuf)
	p.mirror = true
	p.planeY = f.Y()
	p.clipY = f.Y() + f.ClipBias
	r.drawTree(buf, s.Root(), &p)
}

// drawFloor composites the reflection buffer onto the floor quad. Texture
// coordinates are the quad's own screen position scaled to the buffer, so the
// mirror image lines up with the scene above it.
func (r *Renderer) drawFloor(target *ebiten.Image, f *ReflectiveFloor, p *pass) {
	face := &f.Node.Geometry.Faces[0]
	world := f.Node.WorldTransform()

	var quad [4]viewVertex
	for i, c := range face.Corners {
		w := mgl64.TransformCoordinate(c, world)
		quad[i] = viewVertex{view: mgl64.TransformCoordinate(w, p.view), world: w}
	}
	r.clipBuf = clipNear(quad[:], p.cam.Near, r.clipBuf[:0])
	if len(r.clipBuf) < 3 {
		return
	}

	bw, bh := f.BufferSize()
	sx, sy := float64(bw)/p.width, float64(bh)/p.height
	cr, cg, cb, ca := f.color()

	r.batchVerts = r.batchVerts[:0]
	r.batchInds = r.batchInds[:0]
	for _, v := range r.clipBuf {
		x, y := p.cam.projectView(v.view, p.width, p.height)
		r.batchVerts = append(r.batchVerts, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(x * sx),
			SrcY:   float32(y * sy),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for k := uint32(1); int(k)+1 < len(r.clipBuf); k++ {
		r.batchInds = append(r.batchInds, 0, k, k+1)
	}
	r.flushBatch(target, f.Buffer())
}

// drawBackground stretches the backdrop over dst.
func drawBackground(dst *ebiten.Image, bg *Texture) {
	if bg == nil {
		return
	}
	img := bg.Image()
	ib, db := img.Bounds(), dst.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(db.Dx())/float64(ib.Dx()), float64(db.Dy())/float64(ib.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}
