package gallery

import (
	"github.com/go-gl/mathgl/mgl64"
)

// faceSubdivisions is the number of cells per face edge. Triangles are drawn
// with affine texture mapping, so large faces seen at an angle are split to
// keep the perspective error small.
const faceSubdivisions = 4

// viewVertex is a polygon vertex during projection.
type viewVertex struct {
	view  mgl64.Vec3 // view-space position
	world mgl64.Vec3 // world-space position used for lighting
	u, v  float64    // normalized texture coordinate
}

func lerpVertex(a, b viewVertex, t float64) viewVertex {
	return viewVertex{
		view:  a.view.Add(b.view.Sub(a.view).Mul(t)),
		world: a.world.Add(b.world.Sub(a.world).Mul(t)),
		u:     lerp(a.u, b.u, t),
		v:     lerp(a.v, b.v, t),
	}
}

// inFront reports whether a view-space point lies beyond the near plane.
// The camera looks down -Z.
func inFront(v mgl64.Vec3, near float64) bool {
	return -v[2] >= near
}

// clipNear clips a convex polygon against the near plane and appends the
// result to out. A triangle yields at most four vertices.
func clipNear(poly []viewVertex, near float64, out []viewVertex) []viewVertex {
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		next := poly[(i+1)%n]
		curIn := inFront(cur.view, near)
		nextIn := inFront(next.view, near)
		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			// distance from the plane along -Z
			dc := -cur.view[2] - near
			dn := -next.view[2] - near
			out = append(out, lerpVertex(cur, next, dc/(dc-dn)))
		}
	}
	return out
}

// bilinear interpolates a quad's corners (TL, TR, BR, BL) at (s, t), where s
// runs left to right and t top to bottom.
func bilinear(c [4]mgl64.Vec3, s, t float64) mgl64.Vec3 {
	top := c[0].Add(c[1].Sub(c[0]).Mul(s))
	bottom := c[3].Add(c[2].Sub(c[3]).Mul(s))
	return top.Add(bottom.Sub(top).Mul(t))
}

func bilinearUV(uv [4][2]float64, s, t float64) (float64, float64) {
	tu, tv := lerp(uv[0][0], uv[1][0], s), lerp(uv[0][1], uv[1][1], s)
	bu, bv := lerp(uv[3][0], uv[2][0], s), lerp(uv[3][1], uv[2][1], s)
	return lerp(tu, bu, t), lerp(tv, bv, t)
}

// faceCell returns the four corners of cell (i, j) of a face split into
// n x n cells, in TL, TR, BR, BL order. view holds the corners in view space,
// lit the world-space corners used for lighting.
func faceCell(view, lit [4]mgl64.Vec3, uvs [4][2]float64, i, j, n int) [4]viewVertex {
	fn := float64(n)
	s0, s1 := float64(i)/fn, float64(i+1)/fn
	t0, t1 := float64(j)/fn, float64(j+1)/fn
	at := func(s, t float64) viewVertex {
		u, v := bilinearUV(uvs, s, t)
		return viewVertex{view: bilinear(view, s, t), world: bilinear(lit, s, t), u: u, v: v}
	}
	return [4]viewVertex{at(s0, t0), at(s1, t0), at(s1, t1), at(s0, t1)}
}
