package chip8

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrameRGBA(t *testing.T) {
	c := New(true)
	c.Frame.Flip(1, 0)

	pixels := c.FrameRGBA()
	assert.Equal(t, DisplayWidth*DisplayHeight*4, len(pixels))

	// Pixel (0,0) is black, pixel (1,0) white, both fully opaque.
	assert.Equal(t, byte(0x00), pixels[0])
	assert.Equal(t, byte(0xFF), pixels[3])
	assert.Equal(t, byte(0xFF), pixels[4])
	assert.Equal(t, byte(0xFF), pixels[5])
	assert.Equal(t, byte(0xFF), pixels[6])
	assert.Equal(t, byte(0xFF), pixels[7])
}

func TestSaveScreenshot(t *testing.T) {
	c := New(true)
	c.Frame.Flip(5, 5)

	path := filepath.Join(t.TempDir(), "frame.png")
	assert.NoError(t, c.SaveScreenshot(path))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	assert.NoError(t, err)
	assert.Equal(t, DisplayWidth, img.Bounds().Dx())
	assert.Equal(t, DisplayHeight, img.Bounds().Dy())
}
