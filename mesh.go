package gallery

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// emitMesh projects every front-facing face of a mesh node and appends its
// triangles to r.commands.
func (r *Renderer) emitMesh(n *Node, p *pass, treeOrder *int) {
	mat := n.Material
	img := ensureWhitePixel()
	if mat.Texture != nil {
		img = mat.Texture.Image()
	}
	alpha := mat.alpha()
	if alpha == 0 {
		return
	}
	world := n.WorldTransform()

	for fi := range n.Geometry.Faces {
		f := &n.Geometry.Faces[fi]

		var lit, view [4]mgl64.Vec3
		var center mgl64.Vec3
		top := math.Inf(-1)
		for i, c := range f.Corners {
			lit[i] = mgl64.TransformCoordinate(c, world)
			top = max(top, lit[i][1])
			placed := lit[i]
			if p.mirror {
				placed[1] = 2*p.planeY - placed[1]
			}
			center = center.Add(placed)
			view[i] = mgl64.TransformCoordinate(placed, p.view)
		}
		if p.mirror && top < p.clipY {
			continue
		}

		normal := world.Mul4x1(f.Normal.Vec4(0)).Vec3()
		if p.mirror {
			normal[1] = -normal[1]
		}
		if normal.Dot(p.eye.Sub(center.Mul(0.25))) <= 0 {
			continue
		}

		for j := 0; j < faceSubdivisions; j++ {
			for i := 0; i < faceSubdivisions; i++ {
				c := faceCell(view, lit, f.UVs, i, j, faceSubdivisions)
				r.emitTriangle(p, img, mat.Color, alpha, [3]viewVertex{c[0], c[1], c[2]}, treeOrder)
				r.emitTriangle(p, img, mat.Color, alpha, [3]viewVertex{c[0], c[2], c[3]}, treeOrder)
			}
		}
	}
}

// emitTriangle clips one triangle against the near plane, projects and
// shades what remains, and appends it as one or two commands.
func (r *Renderer) emitTriangle(p *pass, img *ebiten.Image, tint Color, alpha float64, tri [3]viewVertex, treeOrder *int) {
	r.clipBuf = clipNear(tri[:], p.cam.Near, r.clipBuf[:0])
	if len(r.clipBuf) < 3 {
		return
	}

	b := img.Bounds()
	var verts [4]ebiten.Vertex
	depth := 0.0
	for i, v := range r.clipBuf {
		sx, sy := p.cam.projectView(v.view, p.width, p.height)
		sr, sg, sb := shade(p.lights, v.world[0], v.world[1], v.world[2])
		verts[i] = ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   float32(float64(b.Min.X) + v.u*float64(b.Dx())),
			SrcY:   float32(float64(b.Min.Y) + v.v*float64(b.Dy())),
			ColorR: float32(tint.R * sr * alpha),
			ColorG: float32(tint.G * sg * alpha),
			ColorB: float32(tint.B * sb * alpha),
			ColorA: float32(alpha),
		}
		depth -= v.view[2]
	}
	depth /= float64(len(r.clipBuf))

	for k := 1; k+1 < len(r.clipBuf); k++ {
		*treeOrder++
		r.commands = append(r.commands, RenderCommand{
			Image:     img,
			Vertices:  [3]ebiten.Vertex{verts[0], verts[k], verts[k+1]},
			Depth:     depth,
			treeOrder: *treeOrder,
		})
	}
}

// --- White pixel singleton (no sync.Once: rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by untextured materials.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
