package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// TextureState is the load state of a Texture.
type TextureState uint32

const (
	TexturePending TextureState = iota // load issued, placeholder shown
	TextureReady                       // decoded image available
	TextureFailed                      // load failed, error appearance shown
)

// String returns the state name.
func (s TextureState) String() string {
	switch s {
	case TexturePending:
		return "pending"
	case TextureReady:
		return "ready"
	case TextureFailed:
		return "failed"
	}
	return fmt.Sprintf("TextureState(%d)", uint32(s))
}

// defaultMaxTextureSize caps decoded images; larger ones are downscaled.
const defaultMaxTextureSize = 2048

// errNotImage is returned for sources whose bytes are not a known image type.
var errNotImage = errors.New("not an image")

// Texture is an image that may still be loading. Materials hold a *Texture
// and keep drawing whatever Image returns; when the loader finishes the
// texture changes in place.
//
// The decoded image is published by the loader goroutine; the GPU upload
// happens lazily on the game goroutine the first time Image is called after
// the load completes.
type Texture struct {
	// Source is the URI the texture was loaded from.
	Source string

	state   atomic.Uint32
	decoded atomic.Pointer[image.RGBA]
	err     atomic.Pointer[error]
	done    chan struct{}

	// game goroutine only
	img *ebiten.Image
}

func newTexture(src string) *Texture {
	return &Texture{Source: src, done: make(chan struct{})}
}

// NewTextureFromImage returns a texture that is ready immediately.
func NewTextureFromImage(name string, img image.Image) *Texture {
	t := newTexture(name)
	t.resolve(toRGBA(img), nil)
	return t
}

// State returns the current load state.
func (t *Texture) State() TextureState {
	return TextureState(t.state.Load())
}

// Err returns the load error for a failed texture.
func (t *Texture) Err() error {
	if p := t.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Done is closed when the load completes, successfully or not.
func (t *Texture) Done() <-chan struct{} {
	return t.done
}

// Size returns the decoded image size, or the placeholder size while the
// texture is pending or failed.
func (t *Texture) Size() (int, int) {
	if img := t.decoded.Load(); img != nil {
		b := img.Bounds()
		return b.Dx(), b.Dy()
	}
	return placeholderSize, placeholderSize
}

// Image returns the image to draw right now: the decoded image once ready,
// the error appearance after a failure, a neutral placeholder otherwise.
// Must be called from the game goroutine.
func (t *Texture) Image() *ebiten.Image {
	switch t.State() {
	case TextureReady:
		if t.img == nil {
			t.img = ebiten.NewImageFromImage(t.decoded.Load())
		}
		return t.img
	case TextureFailed:
		return failedImage()
	default:
		return pendingImage()
	}
}

// resolve publishes the load result exactly once.
func (t *Texture) resolve(img *image.RGBA, err error) {
	if err != nil {
		t.err.Store(&err)
		t.state.Store(uint32(TextureFailed))
	} else {
		t.decoded.Store(img)
		t.state.Store(uint32(TextureReady))
	}
	close(t.done)
}

// --- placeholders ---

const placeholderSize = 2

var (
	pendingOnce, failedOnce sync.Once
	pendingImg, failedImg   *ebiten.Image
)

// pendingImage is a flat dark grey shown while a texture loads.
func pendingImage() *ebiten.Image {
	pendingOnce.Do(func() {
		pendingImg = ebiten.NewImage(placeholderSize, placeholderSize)
		pendingImg.Fill(color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff})
	})
	return pendingImg
}

// failedImage is a black/grey checker shown for sources that failed to load.
func failedImage() *ebiten.Image {
	failedOnce.Do(func() {
		failedImg = ebiten.NewImageFromImage(checker(placeholderSize))
	})
	return failedImg
}

func checker(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{A: 0xff}
			if (x+y)%2 == 0 {
				c = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// --- loader ---

// TextureLoader issues fire-and-forget image loads. Sources beginning with
// http:// or https:// are fetched with Client; anything else is read from FS
// (a leading "/" is treated as the FS root).
type TextureLoader struct {
	FS      fs.FS
	Client  *http.Client
	MaxSize int

	wg sync.WaitGroup
}

// NewTextureLoader returns a loader reading local sources from fsys.
func NewTextureLoader(fsys fs.FS) *TextureLoader {
	return &TextureLoader{
		FS:      fsys,
		Client:  &http.Client{Timeout: 30 * time.Second},
		MaxSize: defaultMaxTextureSize,
	}
}

// Load starts loading src and returns its texture immediately. Completion is
// not reported to the caller; a failure is logged and leaves the texture in
// the error appearance.
func (l *TextureLoader) Load(src string) *Texture {
	t := newTexture(src)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.load(src)
		if err != nil {
			Logger().Warn("texture load failed", "source", src, "error", err)
		} else {
			Logger().Debug("texture loaded", "source", src, "size", img.Bounds().Size())
		}
		t.resolve(img, err)
	}()
	return t
}

// Wait blocks until every load issued so far has completed.
func (l *TextureLoader) Wait() {
	l.wg.Wait()
}

func (l *TextureLoader) load(src string) (*image.RGBA, error) {
	data, err := l.fetch(src)
	if err != nil {
		return nil, err
	}
	return decodeImage(data, l.MaxSize)
}

func (l *TextureLoader) fetch(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Get(src)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: %s", src, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	if l.FS == nil {
		return nil, fmt.Errorf("read %s: no filesystem", src)
	}
	name := path.Clean(strings.TrimPrefix(src, "/"))
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

// decodeImage sniffs, decodes and, when either side exceeds maxSize,
// downscales the image preserving its aspect ratio.
func decodeImage(data []byte, maxSize int) (*image.RGBA, error) {
	if !filetype.IsImage(data) {
		return nil, errNotImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		scale := float64(maxSize) / float64(max(w, h))
		nw := max(1, int(float64(w)*scale))
		nh := max(1, int(float64(h)*scale))
		return transform.Resize(img, nw, nh, transform.Linear), nil
	}
	return toRGBA(img), nil
}

// toRGBA returns img as *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
