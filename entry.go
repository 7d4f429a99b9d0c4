package gallery

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Entry button geometry in logical pixels.
const (
	entryWidth    = 240
	entryHeight   = 60
	entryRadius   = 30
	entryFontSize = 22
	entryFadeTime = 0.4 // seconds
)

var (
	entryFill  = gg.Hex("#ffffff")
	entryLabel = Color{R: 0xd6 / 255.0, G: 0x33 / 255.0, B: 0x6c / 255.0, A: 1}
)

// EntryButton is the centered pill that gates the gift variant. Hide fades it
// out; once hidden it ignores hits.
type EntryButton struct {
	Label string

	alpha  float64
	hiding bool
	fade   *TweenGroup

	font      *TTFFont
	fontScale float64
	pill      *ebiten.Image
	pillScale float64
}

// NewEntryButton returns a visible button.
func NewEntryButton(label string) *EntryButton {
	return &EntryButton{Label: label, alpha: 1}
}

// Rect returns the button's bounds in logical pixels, centered in vp.
func (b *EntryButton) Rect(vp Viewport) (x, y, w, h float64) {
	w, h = entryWidth, entryHeight
	x = (float64(vp.Width) - w) / 2
	y = (float64(vp.Height) - h) / 2
	return x, y, w, h
}

// Contains reports whether the logical point (px, py) hits the button. A
// hiding button is never hit.
func (b *EntryButton) Contains(vp Viewport, px, py float64) bool {
	if b.hiding {
		return false
	}
	x, y, w, h := b.Rect(vp)
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// Hide starts the fade-out. Repeated calls do nothing.
func (b *EntryButton) Hide() {
	if b.hiding {
		return
	}
	b.hiding = true
	b.fade = TweenValue(&b.alpha, 0, entryFadeTime, ease.OutQuad)
}

// Hidden reports whether Hide has been called.
func (b *EntryButton) Hidden() bool {
	return b.hiding
}

// Visible reports whether any part of the button is still drawn.
func (b *EntryButton) Visible() bool {
	return b.alpha > 0
}

// Alpha returns the current opacity.
func (b *EntryButton) Alpha() float64 {
	return b.alpha
}

// Update advances the fade by dt seconds.
func (b *EntryButton) Update(dt float64) {
	if b.fade == nil || b.fade.Done {
		return
	}
	b.fade.Update(float32(dt))
	if b.fade.Done {
		b.alpha = 0
	}
}

// Draw renders the button onto dst. scale converts logical pixels to dst
// pixels.
func (b *EntryButton) Draw(dst *ebiten.Image, vp Viewport, scale float64) {
	if !b.Visible() {
		return
	}
	x, y, w, h := b.Rect(vp)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(math.Round(x*scale), math.Round(y*scale))
	op.ColorScale.ScaleAlpha(float32(b.alpha))
	dst.DrawImage(b.pillImage(scale), &op)

	if f := b.labelFont(scale); f != nil {
		c := entryLabel
		c.A = b.alpha
		f.DrawCentered(dst, b.Label, (x+w/2)*scale, (y+h/2)*scale, c)
	}
}

// pillImage paints the rounded background at scale, reusing the last one
// when the scale is unchanged.
func (b *EntryButton) pillImage(scale float64) *ebiten.Image {
	if b.pill != nil && b.pillScale == scale {
		return b.pill
	}
	if b.pill != nil {
		b.pill.Deallocate()
	}
	w := int(math.Ceil(entryWidth * scale))
	h := int(math.Ceil(entryHeight * scale))
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetFillBrush(gg.Solid(entryFill))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), entryRadius*scale)
	if err := dc.Fill(); err != nil {
		Logger().Warn("entry button fill failed", "error", err)
	}
	b.pill = ebiten.NewImageFromImage(dc.Image())
	b.pillScale = scale
	return b.pill
}

func (b *EntryButton) labelFont(scale float64) *TTFFont {
	if b.font != nil && b.fontScale == scale {
		return b.font
	}
	f, err := DefaultFont(entryFontSize * scale)
	if err != nil {
		Logger().Warn("entry button font", "error", err)
		return nil
	}
	b.font, b.fontScale = f, scale
	return f
}
