package loader

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadPagesSingleImage(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "card.png", 640, 400)

	pages, err := LoadPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1, "an image file wraps as a one-element page sequence")
	assert.Equal(t, 640, pages[0].Bounds().Dx())
	assert.Equal(t, 400, pages[0].Bounds().Dy())
}

func TestLoadPagesUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a document"), 0644))

	_, err := LoadPages(path)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".docx", unsupported.Format)
}

func TestLoadPagesUndecodableImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0644))

	_, err := LoadPages(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoadPagesMissingFile(t *testing.T) {
	_, err := LoadPages(filepath.Join(t.TempDir(), "nope.jpg"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadPagesBrokenPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 truncated garbage"), 0644))

	_, err := LoadPages(path)
	require.Error(t, err)
}

func TestTextLayerNonPDF(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "card.png", 100, 100)

	text, ok := TextLayer(path)
	assert.False(t, ok)
	assert.Empty(t, text)
}
