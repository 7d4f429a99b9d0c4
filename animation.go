package gallery

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenValue or TweenPair and call Update(dt) each frame; the group writes
// the current values into the fields.
//
// There is no global animation manager: owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue animates *field from its current value to `to`.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenPair animates two fields over the same duration. Each field may use
// its own easing.
func TweenPair(a *float64, toA float64, fnA ease.TweenFunc, b *float64, toB float64, fnB ease.TweenFunc, duration float32) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(*a), float32(toA), duration, fnA)
	g.tweens[1] = gween.New(float32(*b), float32(toB), duration, fnB)
	g.fields[0] = a
	g.fields[1] = b
	return g
}
