package gallery

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// submitBatches iterates sorted commands, coalescing consecutive triangles
// that sample the same image into a single DrawTriangles32 call.
func (r *Renderer) submitBatches(target *ebiten.Image) {
	if len(r.commands) == 0 {
		return
	}

	r.batchVerts = r.batchVerts[:0]
	r.batchInds = r.batchInds[:0]

	var current *ebiten.Image
	for i := range r.commands {
		cmd := &r.commands[i]
		if cmd.Image != current {
			r.flushBatch(target, current)
			current = cmd.Image
		}
		base := uint32(len(r.batchVerts))
		r.batchVerts = append(r.batchVerts, cmd.Vertices[:]...)
		r.batchInds = append(r.batchInds, base, base+1, base+2)
	}
	r.flushBatch(target, current)
}

// flushBatch submits accumulated vertices as a single DrawTriangles32 call.
func (r *Renderer) flushBatch(target, img *ebiten.Image) {
	if len(r.batchVerts) == 0 {
		return
	}
	if img != nil {
		var triOp ebiten.DrawTrianglesOptions
		triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		triOp.Filter = ebiten.FilterLinear
		target.DrawTriangles32(r.batchVerts, r.batchInds, img, &triOp)
		r.batches++
	}
	r.batchVerts = r.batchVerts[:0]
	r.batchInds = r.batchInds[:0]
}
