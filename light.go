package gallery

import "math"

// PointLight emits light equally in all directions from its node's origin.
type PointLight struct {
	// Color of the emitted light.
	Color Color
	// Intensity scales the light's contribution.
	Intensity float64
	// Distance is the falloff radius; beyond it the light contributes nothing.
	// Zero means no falloff.
	Distance float64
}

// NewPointLight returns a white point light.
func NewPointLight(intensity, distance float64) *PointLight {
	return &PointLight{Color: ColorWhite, Intensity: intensity, Distance: distance}
}

// Attenuate returns the light's contribution factor in [0, Intensity] at
// distance d from the light.
func (l *PointLight) Attenuate(d float64) float64 {
	if l.Distance <= 0 {
		return l.Intensity
	}
	if d >= l.Distance {
		return 0
	}
	f := 1 - d/l.Distance
	return l.Intensity * f * f
}

// litLight is a light resolved to world space for one frame.
type litLight struct {
	light *PointLight
	x     float64
	y     float64
	z     float64
}

// ambientLevel is the brightness a mesh has before point lights are added.
const ambientLevel = 0.92

// shade returns the RGB multiplier for a point at (x, y, z).
func shade(lights []litLight, x, y, z float64) (r, g, b float64) {
	r, g, b = ambientLevel, ambientLevel, ambientLevel
	for _, l := range lights {
		dx, dy, dz := x-l.x, y-l.y, z-l.z
		f := l.light.Attenuate(math.Sqrt(dx*dx + dy*dy + dz*dz))
		if f == 0 {
			continue
		}
		r += f * l.light.Color.R
		g += f * l.light.Color.G
		b += f * l.light.Color.B
	}
	return min(r, 1), min(g, 1), min(b, 1)
}
