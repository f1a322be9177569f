package emulator

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	toneHz     = 440
	toneVolume = 0.25
)

// squareWave streams an endless square wave as 16-bit little-endian stereo
// samples. It owns only its own phase accumulator, so the audio thread never
// touches interpreter state.
type squareWave struct {
	phase    float64
	phaseInc float64
	volume   float64
}

func newSquareWave(freq, volume float64) *squareWave {
	return &squareWave{
		phaseInc: freq / sampleRate,
		volume:   volume,
	}
}

func (s *squareWave) Read(buf []byte) (int, error) {
	n := len(buf) / 4 * 4

	for i := 0; i < n; i += 4 {
		sample := int16(-s.volume * 32767)
		if s.phase < 0.5 {
			sample = int16(s.volume * 32767)
		}

		lo := byte(sample)
		hi := byte(sample >> 8)
		buf[i] = lo
		buf[i+1] = hi
		buf[i+2] = lo
		buf[i+3] = hi

		s.phase += s.phaseInc
		if s.phase >= 1 {
			s.phase -= 1
		}
	}

	return n, nil
}

// Beeper owns the audio device behind the 440 Hz square-wave pulse. When
// sound is disabled no device is opened and every method is a no-op.
type Beeper struct {
	player *audio.Player
}

// NewBeeper opens the audio device and prepares a paused square-wave player.
func NewBeeper(enabled bool) (*Beeper, error) {
	if !enabled {
		return &Beeper{}, nil
	}

	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(newSquareWave(toneHz, toneVolume))
	if err != nil {
		return nil, err
	}
	// A small buffer keeps the pulse close to the frame that triggered it.
	player.SetBufferSize(time.Second / 20)

	return &Beeper{player: player}, nil
}

// Play starts the square wave if it is not already sounding.
func (b *Beeper) Play() {
	if b.player != nil && !b.player.IsPlaying() {
		b.player.Play()
	}
}

// Pause silences the square wave.
func (b *Beeper) Pause() {
	if b.player != nil {
		b.player.Pause()
	}
}

// Close releases the audio device.
func (b *Beeper) Close() error {
	if b.player != nil {
		return b.player.Close()
	}
	return nil
}
