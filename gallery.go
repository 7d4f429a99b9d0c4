package gallery

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// narrowViewportWidth is the logical width at or below which a viewport
// counts as narrow (phones, split windows).
const narrowViewportWidth = 768

// Viewport is the host window size in logical pixels plus its device
// pixel density. It is mutated only by the host's resize notifications.
type Viewport struct {
	Width, Height int
	PixelRatio    float64
}

// Aspect returns Width/Height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// ratio returns PixelRatio, treating non-positive values as 1.
func (v Viewport) ratio() float64 {
	if v.PixelRatio <= 0 {
		return 1
	}
	return v.PixelRatio
}

// DeviceSize returns the viewport size in device pixels.
func (v Viewport) DeviceSize() (int, int) {
	r := v.ratio()
	return max(1, int(math.Round(float64(v.Width)*r))), max(1, int(math.Round(float64(v.Height)*r)))
}

// IsNarrow reports whether the viewport is 768 logical pixels wide or less.
func (v Viewport) IsNarrow() bool {
	return v.Width <= narrowViewportWidth
}

// Range is a general-purpose min/max range. Random samples the half-open
// interval [Min, Max).
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) using rng, or the global
// source when rng is nil.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	var f float64
	if rng != nil {
		f = rng.Float64()
	} else {
		f = rand.Float64()
	}
	return r.Min + f*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// newRand returns a seeded PCG source, or nil (global source) for seed 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
