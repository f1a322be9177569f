package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	var k Keypad

	for key := byte(0); key < NumKeys; key++ {
		assert.False(t, k.IsPressed(key))
	}

	k.Set(0xC, true)
	assert.True(t, k.IsPressed(0xC))
	assert.False(t, k.IsPressed(0xB))

	k.Set(0xC, false)
	assert.False(t, k.IsPressed(0xC))
}
