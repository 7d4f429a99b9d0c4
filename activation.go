package gallery

import "fmt"

// State is the gate state of a gated gallery.
type State uint8

const (
	StateNotStarted State = iota // entry shown, nothing composed
	StateRunning                 // scene composed and animating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ActivationHooks are the side effects of the one-time activation, run in
// field order. Any may be nil.
type ActivationHooks struct {
	// Hide dismisses the entry surface.
	Hide func()
	// Burst fires the confetti for vp.
	Burst func(vp Viewport)
	// Compose builds the gallery session for vp.
	Compose func(vp Viewport) *Session
	// Start begins animating the composed session.
	Start func(s *Session)
}

// Activator gates the gallery behind a single user action. The first
// Activate moves it from StateNotStarted to StateRunning; every later call is
// ignored. There is no way back.
type Activator struct {
	hooks   ActivationHooks
	state   State
	session *Session
}

// NewActivator returns a gate in StateNotStarted.
func NewActivator(hooks ActivationHooks) *Activator {
	return &Activator{hooks: hooks}
}

// State returns the current state.
func (a *Activator) State() State {
	return a.state
}

// Session returns the composed session, or nil before activation.
func (a *Activator) Session() *Session {
	return a.session
}

// Activate runs the activation sequence against vp if the gate has not
// opened yet: hide the entry, burst confetti, compose the scene, start the
// loop. It reports whether this call performed the transition.
func (a *Activator) Activate(vp Viewport) bool {
	if a.state == StateRunning {
		return false
	}
	a.state = StateRunning

	h := a.hooks
	if h.Hide != nil {
		h.Hide()
	}
	if h.Burst != nil {
		h.Burst(vp)
	}
	if h.Compose != nil {
		a.session = h.Compose(vp)
	}
	if h.Start != nil && a.session != nil {
		h.Start(a.session)
	}
	Logger().Debug("gallery activated", "viewport", vp)
	return true
}
