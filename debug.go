package gallery

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats is a snapshot of per-frame metrics shown by the debug overlay.
type debugStats struct {
	fps, tps    float64
	frames      uint64
	pivotAngle  float64
	batches     int
	texReady    int
	texFailed   int
	texTotal    int
	cameraDist  float64
	state       State
	confettiOut int
}

// String formats the stats as overlay lines.
func (d debugStats) String() string {
	return fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nstate: %s  frames: %d\npivot: %.3f rad  batches: %d\ntextures: %d/%d (%d failed)\ncamera: %.2f  confetti: %d",
		d.fps, d.tps, d.state, d.frames, d.pivotAngle, d.batches,
		d.texReady, d.texTotal, d.texFailed, d.cameraDist, d.confettiOut)
}

// collectStats gathers the current metrics from a.
func (a *App) collectStats() debugStats {
	d := debugStats{
		fps:   ebiten.ActualFPS(),
		tps:   ebiten.ActualTPS(),
		state: a.State(),
	}
	if a.loop != nil {
		d.frames = a.loop.Frames()
	}
	if s := a.session; s != nil {
		d.pivotAngle = s.Pivot.RotationY
		d.batches = s.Renderer.Batches()
		d.cameraDist = s.Camera.Distance()
		d.texTotal = len(s.Panels)
		for _, p := range s.Panels {
			switch p.Texture().State() {
			case TextureReady:
				d.texReady++
			case TextureFailed:
				d.texFailed++
			}
		}
	}
	if a.confetti != nil {
		d.confettiOut = a.confetti.Alive()
	}
	return d
}

// debugOverlay draws the stats in the top-left corner, refreshing the text
// about twice a second.
type debugOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func (o *debugOverlay) update(dt float64, a *App) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.text = a.collectStats().String()
}

func (o *debugOverlay) draw(dst *ebiten.Image) {
	if o.text == "" {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(260, 84)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	dst.DrawImage(o.img, nil)
}
