package blobs

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestRender_RoundTrip(t *testing.T) {
	r, err := NewRenderer(filepath.Join(t.TempDir(), "blobs"))
	require.NoError(t, err)

	blob := []byte{0x89, 0x50, 0x4e, 0x47}
	h, err := r.Render(blob)
	require.NoError(t, err)

	got, err := os.ReadFile(h.Path)
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	require.NoError(t, h.Close())
	_, err = os.Stat(h.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestRender_EmptyBlob(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	_, err = r.Render(nil)
	assert.Error(t, err)
}

func TestClose_Twice(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	h, err := r.Render([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, h.Close())
	assert.NoError(t, h.Close())
}

func TestRender_UniquePaths(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	a, err := r.Render([]byte("a"))
	require.NoError(t, err)
	defer a.Close()
	b, err := r.Render([]byte("a"))
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.Path, b.Path)
}

func TestRenderThumbnail(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	h, err := r.RenderThumbnail(testImage(t, 800, 400))
	require.NoError(t, err)
	defer h.Close()

	f, err := os.Open(h.Path)
	require.NoError(t, err)
	defer f.Close()
	thumb, err := imaging.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, ThumbnailWidth, thumb.Bounds().Dx())
	assert.Equal(t, 100, thumb.Bounds().Dy())
}

func TestRenderThumbnail_NotAnImage(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	_, err = r.RenderThumbnail([]byte("not an image"))
	assert.Error(t, err)
}
