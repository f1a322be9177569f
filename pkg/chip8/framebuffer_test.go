package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrameBufferWrap(t *testing.T) {
	var f FrameBuffer
	f.Flip(3, 4)

	assert.True(t, f.Get(3, 4))
	assert.True(t, f.Get(3+DisplayWidth, 4))
	assert.True(t, f.Get(3, 4+DisplayHeight))
	assert.True(t, f.Get(3+2*DisplayWidth, 4+3*DisplayHeight))

	f.Flip(DisplayWidth, DisplayHeight)
	assert.True(t, f.Get(0, 0))
}

func TestFrameBufferFlipTwiceIsIdentity(t *testing.T) {
	var f FrameBuffer

	f.Flip(10, 20)
	assert.True(t, f.Get(10, 20))

	f.Flip(10, 20)
	assert.False(t, f.Get(10, 20))
}

func TestFrameBufferClear(t *testing.T) {
	var f FrameBuffer
	f.Flip(0, 0)
	f.Flip(63, 31)

	f.Clear()
	assert.False(t, f.Get(0, 0))
	assert.False(t, f.Get(63, 31))

	// Clearing twice equals clearing once.
	f.Clear()
	assert.False(t, f.Get(0, 0))
}
