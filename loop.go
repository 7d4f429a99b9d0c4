package gallery

// Loop animates a session: every frame it schedules its successor, turns the
// pivot by Step radians, lets the orbit controls ease, and renders.
//
// Stopping is cooperative: a frame that finds the loop stopped returns
// without doing anything, and in particular without scheduling another.
type Loop struct {
	// Step is the pivot rotation per frame in radians.
	Step float64

	session   *Session
	scheduler FrameScheduler
	started   bool
	queued    bool
	frames    uint64
}

// NewLoop returns a stopped loop for s.
func NewLoop(s *Session, scheduler FrameScheduler, step float64) *Loop {
	return &Loop{Step: step, session: s, scheduler: scheduler}
}

// Start begins animating. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true
	l.request()
	Logger().Debug("animation loop started", "step", l.Step)
}

// Stop halts the loop at its next frame. A frame already queued still runs
// but does no work.
func (l *Loop) Stop() {
	if !l.started {
		return
	}
	l.started = false
	Logger().Debug("animation loop stopped", "frames", l.frames)
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	return l.started
}

// Frames returns how many frames have rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Session returns the animated session.
func (l *Loop) Session() *Session {
	return l.session
}

// request queues the next frame unless one is already waiting.
func (l *Loop) request() {
	if l.queued {
		return
	}
	l.queued = true
	l.scheduler.RequestFrame(l.frame)
}

func (l *Loop) frame() {
	l.queued = false
	if !l.started {
		return
	}
	l.request()
	l.session.Advance(l.Step)
	l.session.Render()
	l.frames++
}
