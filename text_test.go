package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont(24)
	require.NoError(t, err)
	assert.Equal(t, 24.0, f.Size())
	assert.Positive(t, f.LineHeight())

	short, _ := f.MeasureString("Open")
	long, h := f.MeasureString("Open your gift")
	assert.Greater(t, long, short)
	assert.Positive(t, h)
}

func TestLoadTTFFontRejectsGarbage(t *testing.T) {
	_, err := LoadTTFFont([]byte("definitely not a font"), 12)
	assert.ErrorContains(t, err, "gallery:")
}

func TestDrawCentered(t *testing.T) {
	f, err := DefaultFont(12)
	require.NoError(t, err)
	dst := newTestImage(t, 64, 32)
	assert.NotPanics(t, func() { f.DrawCentered(dst, "hi", 32, 16, entryLabel) })
}
