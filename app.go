package gallery

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// entryText labels the gift variant's button.
const entryText = "Open your gift"

// pageColor fills the screen until the first frame renders.
var pageColor = color.RGBA{R: 0xfa, G: 0xd0, B: 0xc4, A: 0xff}

// App is the ebiten.Game hosting one gallery. The classic variant composes
// and starts on its first tick; the gift variant waits behind an entry
// button and a confetti burst.
//
// One display refresh is one Update: queued frame callbacks run there, so
// the animation loop, gestures and resizes all share the game goroutine.
type App struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cfg      Config
	vp       Viewport
	input    *InjectInput
	tracker  *PointerTracker
	frames   FrameQueue
	resize   ResizeResponder
	rng      *rand.Rand
	booted   bool
	composed int

	gate     *Activator
	entry    *EntryButton
	confetti *ConfettiBurst

	session *Session
	loop    *Loop

	runner          *TestRunner
	overlay         *debugOverlay
	screenshotQueue []string

	// deviceScale reports the monitor's device pixel ratio.
	deviceScale func() float64
}

// NewApp returns a host for cfg at the initial viewport vp, reading input
// from in (nil for none).
func NewApp(cfg Config, vp Viewport, in PointerInput) *App {
	cfg = cfg.Normalize()
	a := &App{
		ScreenshotDir: "screenshots",
		cfg:           cfg,
		vp:            vp,
		input:         NewInjectInput(in),
		tracker:       NewPointerTracker(),
		rng:           newRand(cfg.Seed),
		deviceScale:   monitorScale,
	}
	a.resize = ResizeResponder{Session: a.Session}
	if cfg.Debug {
		a.overlay = &debugOverlay{}
	}
	if cfg.Variant == VariantGift {
		a.entry = NewEntryButton(entryText)
		a.gate = NewActivator(ActivationHooks{
			Hide: a.entry.Hide,
			Burst: func(vp Viewport) {
				a.confetti = NewConfettiBurst(vp, a.rng)
			},
			Compose: a.compose,
			Start:   a.start,
		})
	}
	return a
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Config returns the normalized configuration.
func (a *App) Config() Config {
	return a.cfg
}

// Viewport returns the current viewport.
func (a *App) Viewport() Viewport {
	return a.vp
}

// Session returns the live session, or nil before composition.
func (a *App) Session() *Session {
	return a.session
}

// Loop returns the animation loop, or nil before it starts.
func (a *App) Loop() *Loop {
	return a.loop
}

// Confetti returns the running burst, or nil.
func (a *App) Confetti() *ConfettiBurst {
	return a.confetti
}

// Entry returns the entry button of the gift variant, or nil.
func (a *App) Entry() *EntryButton {
	return a.entry
}

// Input returns the input the app polls; synthetic events can be queued on
// it.
func (a *App) Input() *InjectInput {
	return a.input
}

// Composed returns how many times a session has been composed.
func (a *App) Composed() int {
	return a.composed
}

// State returns the gate state. The classic variant reports StateRunning once
// booted.
func (a *App) State() State {
	if a.gate != nil {
		return a.gate.State()
	}
	if a.booted {
		return StateRunning
	}
	return StateNotStarted
}

// SetTestRunner attaches a scripted input sequence.
func (a *App) SetTestRunner(r *TestRunner) {
	a.runner = r
}

// Activate opens the gift gate at the current viewport. It reports whether
// this call did so; the classic variant never needs it and returns false.
func (a *App) Activate() bool {
	if a.gate == nil {
		return false
	}
	return a.gate.Activate(a.vp)
}

// SetViewport records a host size change and forwards it to the live
// session.
func (a *App) SetViewport(vp Viewport) {
	if vp == a.vp {
		return
	}
	a.vp = vp
	a.resize.Resize(vp)
}

func (a *App) compose(vp Viewport) *Session {
	a.composed++
	a.session = Compose(a.cfg, vp, a.input)
	return a.session
}

func (a *App) start(s *Session) {
	a.loop = NewLoop(s, &a.frames, a.cfg.RotationStep)
	a.loop.Start()
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	dt := 1 / float64(a.cfg.TPS)

	if !a.booted {
		a.booted = true
		if a.gate == nil {
			a.start(a.compose(a.vp))
		}
		Logger().Info("gallery ready", "variant", a.cfg.Variant, "viewport", a.vp)
	}

	if a.runner != nil {
		a.runner.step(a)
	}
	a.input.Advance()

	if a.gate != nil && a.gate.State() == StateNotStarted {
		f := a.tracker.Poll(a.input)
		r := a.vp.ratio()
		if f.Activate || (f.Clicked && a.entry.Contains(a.vp, f.ClickX/r, f.ClickY/r)) {
			a.gate.Activate(a.vp)
		}
	}

	a.frames.RunPending()

	if a.confetti != nil {
		a.confetti.Update(dt)
		if a.confetti.Done() {
			a.confetti = nil
		}
	}
	if a.entry != nil {
		a.entry.Update(dt)
	}
	if a.overlay != nil {
		a.overlay.update(dt, a)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.Screenshot("manual")
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if s := a.session; s != nil && s.Renderer.surface != nil {
		src := s.Renderer.surface
		sb, db := src.Bounds(), screen.Bounds()
		var op ebiten.DrawImageOptions
		if sb.Dx() != db.Dx() || sb.Dy() != db.Dy() {
			op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
			op.Filter = ebiten.FilterLinear
		}
		screen.DrawImage(src, &op)
	} else {
		screen.Fill(pageColor)
	}

	r := a.vp.ratio()
	if a.confetti != nil {
		a.confetti.Draw(screen, r)
	}
	if a.entry != nil {
		a.entry.Draw(screen, a.vp, r)
	}
	if a.overlay != nil {
		a.overlay.draw(screen)
	}
	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The game renders at device resolution; the
// outside size is the viewport in logical pixels.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := Viewport{Width: outsideWidth, Height: outsideHeight, PixelRatio: a.deviceScale()}
	a.SetViewport(vp)
	return vp.DeviceSize()
}

// Close releases the session's GPU images.
func (a *App) Close() {
	if a.loop != nil {
		a.loop.Stop()
	}
	if a.session != nil {
		a.session.Close()
	}
}
