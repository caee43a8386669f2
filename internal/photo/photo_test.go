package photo

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProcessor(t *testing.T) *Processor {
	t.Helper()
	return &Processor{
		Dir:          t.TempDir(),
		MaxUploadMB:  5,
		MaxDimension: 300,
		JPEGQuality:  80,
	}
}

// writePNG writes a w x h test image and returns its path.
func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestProcessor_ScalesDownLandscape(t *testing.T) {
	p := testProcessor(t)

	res, err := p.Process(writePNG(t, 600, 400))
	require.NoError(t, err)

	assert.Equal(t, 300, res.Width, "long edge pinned to the bound")
	assert.Equal(t, 200, res.Height, "aspect ratio preserved")
	assert.FileExists(t, res.Path)

	// Output must decode as JPEG with the same dimensions.
	f, err := os.Open(res.Path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestProcessor_ScalesDownPortrait(t *testing.T) {
	p := testProcessor(t)

	res, err := p.Process(writePNG(t, 150, 600))
	require.NoError(t, err)

	assert.Equal(t, 75, res.Width)
	assert.Equal(t, 300, res.Height)
}

func TestProcessor_NeverUpscales(t *testing.T) {
	p := testProcessor(t)

	res, err := p.Process(writePNG(t, 120, 80))
	require.NoError(t, err)

	assert.Equal(t, 120, res.Width)
	assert.Equal(t, 80, res.Height)
}

func TestProcessor_RejectsOversizedBeforeDecode(t *testing.T) {
	p := testProcessor(t)
	p.MaxUploadMB = 5

	// 6MB of junk; must be rejected on size alone, decode never runs.
	path := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, os.WriteFile(path, make([]byte, 6<<20), 0644))

	_, err := p.Process(path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestProcessor_RejectsNonImage(t *testing.T) {
	p := testProcessor(t)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("definitely not pixels"), 0644))

	_, err := p.Process(path)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestProcessor_MissingFile(t *testing.T) {
	p := testProcessor(t)

	_, err := p.Process(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}
