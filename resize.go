package gallery

// ResizeResponder keeps a session's camera and renderer in step with the
// host viewport. Before a session exists resizes are ignored; the session is
// composed at the then-current size anyway.
type ResizeResponder struct {
	// Session returns the live session or nil.
	Session func() *Session
}

// Resize applies vp to the live session: camera aspect, projection and
// renderer size. The floor's reflection buffer keeps its construction size.
// It reports whether a session was updated.
func (r ResizeResponder) Resize(vp Viewport) bool {
	if r.Session == nil {
		return false
	}
	s := r.Session()
	if s == nil {
		return false
	}
	s.Camera.SetAspect(vp.Aspect())
	s.Camera.UpdateProjectionMatrix()
	s.Renderer.SetSize(vp)
	Logger().Debug("viewport resized", "width", vp.Width, "height", vp.Height, "pixel_ratio", vp.PixelRatio)
	return true
}
