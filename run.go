package gallery

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunOptions adjusts Run beyond what the config covers.
type RunOptions struct {
	// Script, when set, drives scripted input and screenshots.
	Script *TestRunner
	// ScreenshotDir overrides where screenshots are written.
	ScreenshotDir string
}

// Run opens a resizable window and runs the gallery described by cfg until
// the window closes.
func Run(cfg Config, opts ...RunOptions) error {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	app := NewApp(cfg, Viewport{Width: cfg.Width, Height: cfg.Height, PixelRatio: 1}, &EbitenInput{})
	for _, o := range opts {
		if o.Script != nil {
			app.SetTestRunner(o.Script)
		}
		if o.ScreenshotDir != "" {
			app.ScreenshotDir = o.ScreenshotDir
		}
	}
	defer app.Close()

	Logger().Info("starting gallery", "title", cfg.Title, "variant", cfg.Variant, "panels", len(cfg.Images))
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}
