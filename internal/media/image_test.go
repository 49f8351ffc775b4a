package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessDownsizesWideImages(t *testing.T) {
	out, err := Process(bytes.NewReader(pngOf(t, 2400, 600)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestProcessKeepsSmallImages(t *testing.T) {
	out, err := Process(bytes.NewReader(pngOf(t, 300, 200)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestProcessRejectsOversized(t *testing.T) {
	_, err := Process(bytes.NewReader(make([]byte, MaxUploadBytes+10)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestNewKey(t *testing.T) {
	key := NewKey(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(key, "images/2025/06/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
}
