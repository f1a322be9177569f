package chip8

import (
	"image"
	"image/png"
	"os"
)

// FrameRGBA renders the framebuffer into a 64x32 RGBA8888 byte slice
// (length 64*32*4). Lit pixels are white, unlit pixels black.
func (c *Interpreter) FrameRGBA() []byte {
	pixels := make([]byte, DisplayWidth*DisplayHeight*4)

	for i, on := range c.Frame.pixels {
		var v byte
		if on {
			v = 0xFF
		}
		pixels[i*4+0] = v
		pixels[i*4+1] = v
		pixels[i*4+2] = v
		pixels[i*4+3] = 0xFF
	}

	return pixels
}

// FrameImage returns the current framebuffer as an *image.RGBA.
func (c *Interpreter) FrameImage() *image.RGBA {
	return &image.RGBA{
		Pix:    c.FrameRGBA(),
		Stride: DisplayWidth * 4,
		Rect:   image.Rect(0, 0, DisplayWidth, DisplayHeight),
	}
}

// SaveScreenshot encodes the current framebuffer as a PNG and writes it to
// filename.
func (c *Interpreter) SaveScreenshot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, c.FrameImage())
}
