package gallery

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTextureLoaderLocal(t *testing.T) {
	fsys := fstest.MapFS{
		"photos/red.png": {Data: pngBytes(t, 8, 4, color.RGBA{R: 255, A: 255})},
		"notes.txt":      {Data: []byte("not an image at all")},
	}
	l := NewTextureLoader(fsys)

	red := l.Load("/photos/red.png")
	missing := l.Load("photos/missing.png")
	text := l.Load("notes.txt")
	l.Wait()

	assert.Equal(t, TextureReady, red.State())
	assert.NoError(t, red.Err())
	w, h := red.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)

	assert.Equal(t, TextureFailed, missing.State())
	assert.Error(t, missing.Err())
	assert.Equal(t, TextureFailed, text.State())
	assert.ErrorIs(t, text.Err(), errNotImage)

	w, h = missing.Size()
	assert.Equal(t, placeholderSize, w)
	assert.Equal(t, placeholderSize, h)
}

func TestTextureDoneCloses(t *testing.T) {
	l := NewTextureLoader(fstest.MapFS{})
	tex := l.Load("nothing.png")
	<-tex.Done()
	assert.Equal(t, TextureFailed, tex.State())
}

func TestTextureLoaderHTTP(t *testing.T) {
	data := pngBytes(t, 3, 3, color.RGBA{B: 255, A: 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l := NewTextureLoader(nil)
	l.Client = srv.Client()
	ok := l.Load(srv.URL + "/ok.png")
	gone := l.Load(srv.URL + "/gone.png")
	local := l.Load("local.png")
	l.Wait()

	assert.Equal(t, TextureReady, ok.State())
	assert.Equal(t, TextureFailed, gone.State())
	assert.Contains(t, gone.Err().Error(), "404")
	assert.Equal(t, TextureFailed, local.State(), "no filesystem configured")
}

func TestDecodeImageDownscales(t *testing.T) {
	img, err := decodeImage(pngBytes(t, 400, 100, color.RGBA{G: 255, A: 255}), 200)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	img, err = decodeImage(pngBytes(t, 40, 10, color.RGBA{G: 255, A: 255}), 200)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestTextureStateString(t *testing.T) {
	assert.Equal(t, "pending", TexturePending.String())
	assert.Equal(t, "ready", TextureReady.String())
	assert.Equal(t, "failed", TextureFailed.String())
}

func TestToRGBAReanchors(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 7))
	src.SetRGBA(5, 5, color.RGBA{R: 9, A: 255})
	out := toRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())
	assert.Equal(t, uint8(9), out.RGBAAt(0, 0).R)
}
