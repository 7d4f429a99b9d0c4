package gallery

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// Confetti counts for wide and narrow viewports.
const (
	ConfettiWide   = 150
	ConfettiNarrow = 60
)

var (
	confettiDuration = Range{2, 5}    // seconds
	confettiSize     = Range{6, 12}   // logical pixels
	confettiTurns    = Range{1, 4}    // full spins over the fall
	confettiDrift    = Range{-40, 40} // horizontal sway amplitude
)

// ConfettiCount returns the burst size for vp: 150 pieces on viewports wider
// than 768 logical pixels, 60 otherwise.
func ConfettiCount(vp Viewport) int {
	if vp.IsNarrow() {
		return ConfettiNarrow
	}
	return ConfettiWide
}

// ConfettiPiece is one falling strip. Left and Duration are fixed at birth;
// Y, Sway and Angle are animated.
type ConfettiPiece struct {
	// Left is the horizontal start offset in logical pixels, in [0, width).
	Left float64
	// Duration is the fall time in seconds, in [2, 5).
	Duration float64
	Size     float64
	Color    Color

	Y     float64
	Sway  float64
	Angle float64

	tween *TweenGroup
}

// ConfettiBurst is a one-shot shower of pieces falling from above the top
// edge to below the bottom edge. Nothing is emitted after construction.
type ConfettiBurst struct {
	Pieces []ConfettiPiece

	alive      int
	batchVerts []ebiten.Vertex
	batchInds  []uint32
}

// NewConfettiBurst creates ConfettiCount(vp) pieces across vp's width. A nil
// rng uses the global source.
func NewConfettiBurst(vp Viewport, rng *rand.Rand) *ConfettiBurst {
	n := ConfettiCount(vp)
	b := &ConfettiBurst{Pieces: make([]ConfettiPiece, n), alive: n}
	left := Range{0, float64(max(vp.Width, 1))}
	for i := range b.Pieces {
		p := &b.Pieces[i]
		p.Left = left.Random(rng)
		p.Duration = confettiDuration.Random(rng)
		p.Size = confettiSize.Random(rng)
		c := colorful.Hsv(Range{0, 360}.Random(rng), 0.75, 1)
		p.Color = Color{R: c.R, G: c.G, B: c.B, A: 1}
		p.Y = -p.Size

		turns := confettiTurns.Random(rng)
		p.tween = TweenPair(
			&p.Y, float64(vp.Height)+p.Size, ease.InQuad,
			&p.Angle, turns*twoPi, ease.Linear,
			float32(p.Duration),
		)
		p.Sway = confettiDrift.Random(rng)
	}
	Logger().Debug("confetti burst", "pieces", n)
	return b
}

// Update advances every piece by dt seconds.
func (b *ConfettiBurst) Update(dt float64) {
	if b.alive == 0 {
		return
	}
	alive := 0
	for i := range b.Pieces {
		p := &b.Pieces[i]
		if p.tween.Done {
			continue
		}
		p.tween.Update(float32(dt))
		if !p.tween.Done {
			alive++
		}
	}
	b.alive = alive
}

// Alive returns the number of pieces still falling.
func (b *ConfettiBurst) Alive() int {
	return b.alive
}

// Done reports whether every piece has landed.
func (b *ConfettiBurst) Done() bool {
	return b.alive == 0
}

// Draw renders the falling pieces in one batch. scale converts logical
// pixels to dst pixels.
func (b *ConfettiBurst) Draw(dst *ebiten.Image, scale float64) {
	if b.alive == 0 {
		return
	}
	b.batchVerts = b.batchVerts[:0]
	b.batchInds = b.batchInds[:0]

	for i := range b.Pieces {
		p := &b.Pieces[i]
		if p.tween.Done {
			continue
		}
		// Pieces sway sideways as they spin.
		cx := (p.Left + p.Sway*math.Sin(p.Angle/2)) * scale
		cy := p.Y * scale
		hw, hh := p.Size*scale/2, p.Size*scale/5
		sin, cos := math.Sincos(p.Angle)

		base := uint32(len(b.batchVerts))
		for _, c := range [4][2]float64{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}} {
			b.batchVerts = append(b.batchVerts, ebiten.Vertex{
				DstX:   float32(cx + c[0]*cos - c[1]*sin),
				DstY:   float32(cy + c[0]*sin + c[1]*cos),
				ColorR: float32(p.Color.R),
				ColorG: float32(p.Color.G),
				ColorB: float32(p.Color.B),
				ColorA: 1,
			})
		}
		b.batchInds = append(b.batchInds,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(b.batchVerts, b.batchInds, ensureWhitePixel(), &triOp)
}
