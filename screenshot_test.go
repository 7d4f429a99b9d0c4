package gallery

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after orbit", "after_orbit"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"v1.2-final", "v1.2-final"},
		{"a/b\\c:d", "a_b_c_d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "sanitizeLabel(%q)", tt.in)
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		128, 64, 0, 128, // half transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}
	img := unpremultiply(pix, 3, 1)
	assert.Equal(t, []byte{255, 127, 0, 128}, img.Pix[0:4])
	assert.Equal(t, []byte{10, 20, 30, 255}, img.Pix[4:8])
	assert.Equal(t, []byte{0, 0, 0, 0}, img.Pix[8:12])
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Pix[0], img.Pix[3] = 200, 255
	require.NoError(t, writePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), got.Bounds())
	r, _, _, _ := got.At(0, 0).RGBA()
	assert.Equal(t, uint32(200)*0x101, r)
}

func TestScreenshotQueues(t *testing.T) {
	a := newTestApp(t, testConfig(), testViewport, nil)
	a.Screenshot("one")
	a.Screenshot("two")
	assert.Equal(t, []string{"one", "two"}, a.screenshotQueue)
}
