package gallery

// FrameScheduler runs a callback before the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a FrameScheduler driven by the host: each call to RunPending
// is one refresh. Callbacks requested while RunPending is running wait for
// the next refresh.
type FrameQueue struct {
	pending []func()
	running []func()
}

// RequestFrame implements FrameScheduler.
func (q *FrameQueue) RequestFrame(fn func()) {
	if fn != nil {
		q.pending = append(q.pending, fn)
	}
}

// Len returns the number of callbacks waiting for the next refresh.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// RunPending runs every callback queued before this call, once, in request
// order, and returns how many ran.
func (q *FrameQueue) RunPending() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running, q.pending = q.pending, q.running[:0]
	for i, fn := range q.running {
		fn()
		q.running[i] = nil
	}
	n := len(q.running)
	q.running = q.running[:0]
	return n
}
