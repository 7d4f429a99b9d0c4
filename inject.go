package gallery

// syntheticPointerEvent represents a single injected mouse state. Screen
// coordinates are used, identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectInput wraps a PointerInput and lets callers queue synthetic mouse
// states, one per tick. While an injected event is current it replaces the
// wrapped mouse; touches, wheel and keys pass through, plus any injected
// wheel or key.
type InjectInput struct {
	Base PointerInput

	queue   []syntheticPointerEvent
	current *syntheticPointerEvent
	wheel   float64
	key     bool
}

// NewInjectInput wraps base, which may be nil.
func NewInjectInput(base PointerInput) *InjectInput {
	return &InjectInput{Base: base}
}

// Advance makes the next queued event current. Call once per tick before
// the input is polled.
func (in *InjectInput) Advance() {
	if len(in.queue) == 0 {
		in.current = nil
		return
	}
	evt := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	in.current = &evt
}

// Pending returns the number of queued events not yet current.
func (in *InjectInput) Pending() int {
	return len(in.queue)
}

// InjectPress queues a press at the given screen coordinates.
func (in *InjectInput) InjectPress(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (in *InjectInput) InjectMove(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (in *InjectInput) InjectRelease(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (in *InjectInput) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and
// release at (toX, toY). The total sequence consumes `frames` ticks.
// Minimum frames is 2 (press + release).
func (in *InjectInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	in.InjectRelease(toX, toY)
}

// InjectWheel adds dy to the next Wheel reading.
func (in *InjectInput) InjectWheel(dy float64) {
	in.wheel += dy
}

// InjectKey makes the next ActivateKey reading true.
func (in *InjectInput) InjectKey() {
	in.key = true
}

// Mouse implements PointerInput.
func (in *InjectInput) Mouse() (float64, float64, bool) {
	if in.current != nil {
		return in.current.screenX, in.current.screenY, in.current.pressed
	}
	if in.Base == nil {
		return 0, 0, false
	}
	return in.Base.Mouse()
}

// Touches implements PointerInput.
func (in *InjectInput) Touches(dst []TouchPoint) []TouchPoint {
	if in.Base == nil {
		return dst
	}
	return in.Base.Touches(dst)
}

// Wheel implements PointerInput.
func (in *InjectInput) Wheel() float64 {
	w := in.wheel
	in.wheel = 0
	if in.Base != nil {
		w += in.Base.Wheel()
	}
	return w
}

// ActivateKey implements PointerInput.
func (in *InjectInput) ActivateKey() bool {
	k := in.key
	in.key = false
	if in.Base != nil && in.Base.ActivateKey() {
		k = true
	}
	return k
}
