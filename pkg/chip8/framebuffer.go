package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// FrameBuffer is the 64x32 monochrome display. Coordinates wrap around both
// edges, so any x/y value is a valid input.
type FrameBuffer struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// index maps wrapped 2D coordinates to the row-major backing array.
func index(x, y byte) int {
	x %= DisplayWidth
	y %= DisplayHeight
	return int(y)*DisplayWidth + int(x)
}

// Get reports whether the pixel at (x, y) is lit.
func (f *FrameBuffer) Get(x, y byte) bool {
	return f.pixels[index(x, y)]
}

// Flip toggles the pixel at (x, y).
func (f *FrameBuffer) Flip(x, y byte) {
	f.pixels[index(x, y)] = !f.pixels[index(x, y)]
}

// Clear turns every pixel off.
func (f *FrameBuffer) Clear() {
	f.pixels = [DisplayWidth * DisplayHeight]bool{}
}
