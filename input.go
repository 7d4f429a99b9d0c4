package gallery

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// TouchPoint is one active touch in screen pixels.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// PointerInput is a source of raw pointer and key state, polled once per
// tick. Positions are in screen pixels.
type PointerInput interface {
	// Mouse returns the cursor position and whether the primary button is held.
	Mouse() (x, y float64, pressed bool)
	// Touches appends the active touches to dst.
	Touches(dst []TouchPoint) []TouchPoint
	// Wheel returns this tick's vertical scroll; positive scrolls up.
	Wheel() float64
	// ActivateKey reports whether Enter or Space went down this tick.
	ActivateKey() bool
}

// --- Ebiten input ---

// EbitenInput reads the live mouse, touch and keyboard state.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
}

// Mouse implements PointerInput.
func (e *EbitenInput) Mouse() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Touches implements PointerInput.
func (e *EbitenInput) Touches(dst []TouchPoint) []TouchPoint {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	for _, id := range e.touchIDs {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return dst
}

// Wheel implements PointerInput.
func (e *EbitenInput) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// ActivateKey implements PointerInput.
func (e *EbitenInput) ActivateKey() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// --- Scripted input ---

// ScriptedInput is a PointerInput driven by assigning its fields between
// ticks. Wheel and Key are consumed when read.
type ScriptedInput struct {
	X, Y    float64
	Pressed bool
	Touch   []TouchPoint
	WheelY  float64
	Key     bool
}

// Mouse implements PointerInput.
func (s *ScriptedInput) Mouse() (float64, float64, bool) {
	return s.X, s.Y, s.Pressed
}

// Touches implements PointerInput.
func (s *ScriptedInput) Touches(dst []TouchPoint) []TouchPoint {
	return append(dst, s.Touch...)
}

// Wheel implements PointerInput.
func (s *ScriptedInput) Wheel() float64 {
	w := s.WheelY
	s.WheelY = 0
	return w
}

// ActivateKey implements PointerInput.
func (s *ScriptedInput) ActivateKey() bool {
	k := s.Key
	s.Key = false
	return k
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool // moved past the dead zone since going down
}

type pinchState struct {
	active   bool
	prevDist float64
}

// PointerFrame is the gesture summary for one tick.
type PointerFrame struct {
	// DragX and DragY are the primary pointer's movement while held.
	DragX, DragY float64
	Dragging     bool
	// Clicked is set on the tick a pointer is released without having left
	// the dead zone. ClickX and ClickY are the release position.
	Clicked        bool
	ClickX, ClickY float64
	// Pinch is the ratio of the two-finger spread to the previous tick's,
	// or 1 when no pinch is in progress.
	Pinch float64
	// Wheel is the vertical scroll this tick.
	Wheel float64
	// Activate is set when an activation key went down.
	Activate bool
}

// PointerTracker turns raw PointerInput state into per-tick gestures.
type PointerTracker struct {
	DragDeadZone float64

	pointers  [maxPointers]pointerState
	touchMap  [maxPointers]int
	touchUsed [maxPointers]bool
	pinch     pinchState
	touchBuf  []TouchPoint
}

// NewPointerTracker returns a tracker with the default dead zone.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{DragDeadZone: defaultDragDeadZone}
}

// Poll reads in once and returns this tick's gestures.
func (t *PointerTracker) Poll(in PointerInput) PointerFrame {
	f := PointerFrame{Pinch: 1}
	if in == nil {
		return f
	}

	mx, my, pressed := in.Mouse()
	t.processPointer(0, mx, my, pressed, &f)

	t.touchBuf = in.Touches(t.touchBuf[:0])
	var activeSlots [maxPointers]bool
	for _, tp := range t.touchBuf {
		slot := t.touchSlot(tp.ID)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		t.processPointer(slot, tp.X, tp.Y, true, &f)
	}
	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && !activeSlots[i] {
			ps := &t.pointers[i]
			if ps.down {
				t.processPointer(i, ps.lastX, ps.lastY, false, &f)
			}
			t.touchUsed[i] = false
		}
	}

	t.detectPinch(&f)
	f.Wheel = in.Wheel()
	f.Activate = in.ActivateKey()
	return f
}

// touchSlot maps a touch ID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (t *PointerTracker) touchSlot(id int) int {
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && t.touchMap[i] == id {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.touchUsed[i] {
			t.touchUsed[i] = true
			t.touchMap[i] = id
			return i
		}
	}
	return -1
}

// downTouches returns the number of held touch pointers.
func (t *PointerTracker) downTouches() int {
	n := 0
	for i := 1; i < maxPointers; i++ {
		if t.pointers[i].down {
			n++
		}
	}
	return n
}

// processPointer runs the pointer state machine for a single pointer.
func (t *PointerTracker) processPointer(id int, x, y float64, pressed bool, f *PointerFrame) {
	ps := &t.pointers[id]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false

	case !pressed && ps.down:
		if !ps.dragging {
			f.Clicked = true
			f.ClickX, f.ClickY = x, y
		}
		ps.down = false
		ps.dragging = false

	case pressed && ps.down:
		dx, dy := x-ps.lastX, y-ps.lastY
		if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > t.DragDeadZone {
			ps.dragging = true
		}
		// Only a lone pointer orbits; two fingers pinch.
		if (dx != 0 || dy != 0) && (id == 0 || t.downTouches() == 1) {
			f.DragX += dx
			f.DragY += dy
			f.Dragging = true
		}
		ps.lastX, ps.lastY = x, y
	}
}

// --- Pinch detection ---

func (t *PointerTracker) detectPinch(f *PointerFrame) {
	var p [2]*pointerState
	count := 0
	for i := 1; i < maxPointers; i++ {
		if t.pointers[i].down {
			if count < 2 {
				p[count] = &t.pointers[i]
			}
			count++
		}
	}

	if count != 2 {
		t.pinch.active = false
		return
	}

	dist := math.Hypot(p[1].lastX-p[0].lastX, p[1].lastY-p[0].lastY)
	if t.pinch.active && t.pinch.prevDist > 0 && dist > 0 {
		f.Pinch = dist / t.pinch.prevDist
	}
	t.pinch.active = true
	t.pinch.prevDist = dist

	// Pinch fingers never count as a click or an orbit drag.
	p[0].dragging = true
	p[1].dragging = true
	f.DragX, f.DragY, f.Dragging = 0, 0, false
}
