// Package gallery is a rotating 3D memory gallery for [Ebitengine].
//
// A ring of image panels turns slowly on a pivot above a reflective floor,
// in front of a procedurally painted gradient backdrop. The viewer can orbit
// and zoom with mouse, touch or wheel; the ring keeps turning.
//
// # Quick start
//
// The simplest way to show a gallery is [Run], which opens a window and
// drives everything:
//
//	cfg := gallery.DefaultConfig()
//	cfg.ImageDir = "photos"
//	cfg.Images = []string{"beach.jpg", "dinner.jpg", "sunset.jpg"}
//	if err := gallery.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// [GiftConfig] selects the gated variant: a centered "Open your gift" button
// that, when clicked or activated with Enter or Space, fires a confetti burst
// and only then builds the scene. Gated galleries use half-resolution
// reflections and a slower spin.
//
// # Building blocks
//
// [App] is the [ebiten.Game] behind Run and can be embedded in another host.
// Underneath it:
//
//   - [Compose] builds a [Session]: scene, camera, [OrbitControls],
//     [ReflectiveFloor] and the panel ring from [Layout].
//   - [Loop] advances a session once per display refresh through a
//     [FrameScheduler]. [FrameQueue] is the scheduler App drives from Update.
//   - [Activator] gates composition behind a one-time activation.
//   - [ResizeResponder] keeps the camera and renderer in step with the
//     viewport.
//   - [Renderer] is a small software 3D pipeline that projects mesh faces and
//     submits them as batched DrawTriangles32 calls.
//
// Panel images load asynchronously through [TextureLoader]. A panel shows a
// neutral placeholder until its image decodes; a source that fails to load
// leaves a checkered panel and a warning in the log.
//
// # Configuration
//
// [Config] is plain data with TOML tags. [LoadConfig] reads a file and fills
// anything unset from the variant defaults:
//
//	variant = "gift"
//	image_dir = "photos"
//	images = ["1.jpg", "2.jpg", "https://example.com/3.webp"]
//	seed = 2024
//
// # Logging
//
// Nothing is logged by default. Install a [log/slog] logger with [SetLogger].
//
// # Automated checks
//
// [InjectInput] queues synthetic pointer events and [TestRunner] replays a
// JSON script of clicks, drags, waits and screenshots against an App.
//
// [Ebitengine]: https://ebitengine.org
package gallery
