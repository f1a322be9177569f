// Package emulator hosts a chip8.Interpreter in an ebiten window: it drains
// keyboard input, runs the configured number of instruction steps per 60 Hz
// tick, decrements the timers, pulses the beeper and presents the
// framebuffer when it changed.
package emulator

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"

	"calico8/pkg/chip8"
	"calico8/pkg/config"
)

const ticksPerSecond = 60

// keypadLayout maps host keys onto the classic COSMAC-VIP keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keypadLayout = map[ebiten.Key]byte{
	ebiten.KeyDigit1: 0x1,
	ebiten.KeyDigit2: 0x2,
	ebiten.KeyDigit3: 0x3,
	ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ:      0x4,
	ebiten.KeyW:      0x5,
	ebiten.KeyE:      0x6,
	ebiten.KeyR:      0xD,
	ebiten.KeyA:      0x7,
	ebiten.KeyS:      0x8,
	ebiten.KeyD:      0x9,
	ebiten.KeyF:      0xE,
	ebiten.KeyZ:      0xA,
	ebiten.KeyX:      0x0,
	ebiten.KeyC:      0xB,
	ebiten.KeyV:      0xF,
}

// Emulator implements ebiten.Game. It performs no emulation logic itself and
// holds no emulator state besides the interpreter.
type Emulator struct {
	vm     *chip8.Interpreter
	cfg    config.Settings
	logger *log.Logger

	beeper       *Beeper
	screen       *ebiten.Image // reused 64x32 frame texture
	stepsPerTick int
}

// New builds the host around an interpreter and acquires the audio device.
func New(vm *chip8.Interpreter, cfg config.Settings, logger *log.Logger) (*Emulator, error) {
	beeper, err := NewBeeper(cfg.SoundEnabled)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	return &Emulator{
		vm:           vm,
		cfg:          cfg,
		logger:       logger,
		beeper:       beeper,
		stepsPerTick: int(cfg.ClockSpeed / ticksPerSecond),
	}, nil
}

// Run opens the window and blocks until the user quits or the interpreter
// fails. The audio device is released on every exit path.
func (e *Emulator) Run() error {
	defer e.beeper.Close()

	ebiten.SetWindowSize(int(e.cfg.WindowWidth), int(e.cfg.WindowHeight))
	ebiten.SetWindowTitle("calico8 - " + filepath.Base(e.cfg.ROMPath))
	ebiten.SetTPS(ticksPerSecond)

	return ebiten.RunGame(e)
}

// Update runs one 60 Hz tick: input, instruction steps, timers, beeper.
func (e *Emulator) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		e.saveScreenshot()
	}

	for key, index := range keypadLayout {
		e.vm.HandleKey(index, ebiten.IsKeyPressed(key))
	}

	for i := 0; i < e.stepsPerTick; i++ {
		if err := e.vm.Step(); err != nil {
			return err
		}
	}

	// Timers tick after the instructions of this frame so that a freshly
	// written timer value survives the full frame.
	e.vm.TickTimers()

	if e.vm.ShouldBeep() {
		e.beeper.Play()
	} else {
		e.beeper.Pause()
	}

	return nil
}

// Draw uploads the framebuffer when it changed and presents it scaled to the
// window, nearest neighbor.
func (e *Emulator) Draw(screen *ebiten.Image) {
	if e.screen == nil {
		e.screen = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}

	if e.vm.DrawFlag {
		e.screen.WritePixels(e.vm.FrameRGBA())
		e.vm.DrawFlag = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(e.cfg.WindowWidth)/chip8.DisplayWidth,
		float64(e.cfg.WindowHeight)/chip8.DisplayHeight,
	)
	screen.DrawImage(e.screen, op)
}

// Layout fixes the logical screen to the configured window size.
func (e *Emulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(e.cfg.WindowWidth), int(e.cfg.WindowHeight)
}

func (e *Emulator) saveScreenshot() {
	name := fmt.Sprintf("calico8-%d.png", time.Now().Unix())
	if err := e.vm.SaveScreenshot(name); err != nil {
		e.logger.Error("Saving screenshot failed", log.Err(err))
		return
	}
	e.logger.Info("Saved screenshot " + name)
}
