package gallery

import (
	"image"
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// Background describes the procedurally painted backdrop: a vertical
// three-stop gradient overlaid with small translucent dots of random hue.
type Background struct {
	// Size is the width and height of the square raster in pixels.
	Size int
	// Stops are the gradient colors at the top, middle and bottom.
	Stops [3]gg.RGBA
	// Sparkles is the number of dots painted over the gradient.
	Sparkles int
	// MaxRadius bounds the dot radius; radii are uniform in [0, MaxRadius].
	MaxRadius float64
	// SparkleAlpha is the opacity of every dot.
	SparkleAlpha float64
}

// DefaultBackground returns the pink festive backdrop: 512x512, 200 dots.
func DefaultBackground() Background {
	return Background{
		Size:         512,
		Stops:        [3]gg.RGBA{gg.Hex("#ff9a9e"), gg.Hex("#fad0c4"), gg.Hex("#fbc2eb")},
		Sparkles:     200,
		MaxRadius:    2,
		SparkleAlpha: 0.85,
	}
}

// gradientOffsets are the stop positions along the vertical axis.
var gradientOffsets = [3]float64{0, 0.5, 1}

// Paint rasterizes the backdrop. Dot placement, size and hue come from rng;
// a nil rng uses the unseeded global source so every run differs.
func (b Background) Paint(rng *rand.Rand) image.Image {
	size := float64(b.Size)
	dc := gg.NewContext(b.Size, b.Size)
	defer dc.Close()

	grad := gg.NewLinearGradientBrush(0, 0, 0, size)
	for i, stop := range b.Stops {
		grad.AddColorStop(gradientOffsets[i], stop)
	}
	dc.SetFillBrush(grad)
	dc.DrawRectangle(0, 0, size, size)
	if err := dc.Fill(); err != nil {
		Logger().Warn("background gradient fill failed", "error", err)
	}

	pos := Range{0, size}
	hue := Range{0, 360}
	radius := Range{0, b.MaxRadius}
	for i := 0; i < b.Sparkles; i++ {
		c := gg.HSL(hue.Random(rng), 0.8, 0.9)
		c.A = b.SparkleAlpha
		dc.SetFillBrush(gg.Solid(c))
		dc.DrawCircle(pos.Random(rng), pos.Random(rng), radius.Random(rng))
		if err := dc.Fill(); err != nil {
			Logger().Warn("background sparkle fill failed", "error", err)
			break
		}
	}
	return toRGBA(dc.Image())
}

// Texture paints the backdrop and wraps it in a ready texture.
func (b Background) Texture(rng *rand.Rand) *Texture {
	return NewTextureFromImage("background", b.Paint(rng))
}
