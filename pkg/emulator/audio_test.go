package emulator

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWaveRead(t *testing.T) {
	s := newSquareWave(toneHz, toneVolume)

	buf := make([]byte, 4*100+2)
	n, err := s.Read(buf)
	assert.NoError(t, err)
	// Reads full sample frames only.
	assert.Equal(t, 4*100, n)

	volume := float64(toneVolume)
	want := int16(volume * 32767)

	sample := func(frame int) int16 {
		return int16(uint16(buf[frame*4]) | uint16(buf[frame*4+1])<<8)
	}

	// The first half period is high, the second half low. At 440 Hz and
	// 44.1 kHz the wave crosses after ~50 frames.
	assert.Equal(t, want, sample(0))
	assert.Equal(t, want, sample(49))
	assert.Equal(t, -want, sample(55))

	// Both stereo channels carry the same value.
	for frame := 0; frame < 100; frame++ {
		left := int16(uint16(buf[frame*4]) | uint16(buf[frame*4+1])<<8)
		right := int16(uint16(buf[frame*4+2]) | uint16(buf[frame*4+3])<<8)
		assert.Equal(t, left, right)
	}
}

func TestSquareWavePhaseWraps(t *testing.T) {
	s := newSquareWave(toneHz, toneVolume)

	buf := make([]byte, 4*sampleRate) // one full second
	_, err := s.Read(buf)
	assert.NoError(t, err)

	assert.True(t, s.phase >= 0)
	assert.True(t, s.phase < 1)
}

func TestDisabledBeeperIsNoOp(t *testing.T) {
	b, err := NewBeeper(false)
	assert.NoError(t, err)

	// No audio device is held, so all operations are safe no-ops.
	b.Play()
	b.Pause()
	assert.NoError(t, b.Close())
}
