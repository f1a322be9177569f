// Package chip8 implements a CHIP-8 virtual machine: 4K of memory, sixteen
// 8-bit registers, a call stack, two 60 Hz countdown timers, a 64x32
// monochrome framebuffer and a 16-key hex keypad.
package chip8

import (
	"fmt"
	"math/rand"
)

const (
	// MemorySize is the full addressable memory in bytes.
	MemorySize = 4096
	// ProgramStart is the address programs are loaded at and PC starts from.
	ProgramStart = 0x200
	// NumRegisters is the number of general registers V0-VF.
	NumRegisters = 16
	// StackDepth is the nesting limit a well-formed program stays within.
	StackDepth = 16
)

// MaxProgramSize is the largest program that fits between ProgramStart and
// the end of memory.
const MaxProgramSize = MemorySize - ProgramStart

// A ProgramTooLargeError is returned when a program does not fit in memory.
type ProgramTooLargeError struct {
	Size int
}

func (e *ProgramTooLargeError) Error() string {
	return fmt.Sprintf("program size %d exceeds the %d bytes of program memory", e.Size, MaxProgramSize)
}

// A StackUnderflowError is returned when a return instruction executes with
// an empty call stack.
type StackUnderflowError struct {
	PC uint16
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow at PC=0x%04X", e.PC)
}

// An InvalidOpcodeError is returned when the fetched instruction is not in
// the dispatch table. PC is the address the opcode was fetched from.
type InvalidOpcodeError struct {
	PC     uint16
	Opcode uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%04X at PC=0x%04X", e.Opcode, e.PC)
}

// Interpreter is a CHIP-8 virtual machine. The host drives it by calling
// Step at the configured clock rate, TickTimers once per 60 Hz frame, and
// HandleKey for keypad events; everything else is internal state.
type Interpreter struct {
	Frame FrameBuffer
	Keys  Keypad

	// DrawFlag is raised whenever an instruction modifies the framebuffer.
	// The host clears it after presenting a frame.
	DrawFlag bool

	Memory [MemorySize]byte
	V      [NumRegisters]byte
	I      uint16
	PC     uint16
	Stack  []uint16

	DelayTimer byte
	SoundTimer byte

	SoundEnabled bool

	// Rand supplies the uniform random byte consumed by CXNN. Tests replace
	// it with a deterministic source.
	Rand func() byte

	opcode uint16
}

// New creates a zeroed interpreter with the font table installed and PC set
// to the program start address.
func New(soundEnabled bool) *Interpreter {
	c := &Interpreter{
		PC:           ProgramStart,
		SoundEnabled: soundEnabled,
		Rand: func() byte {
			return byte(rand.Intn(256))
		},
	}
	copy(c.Memory[FontStart:], fontSet[:])
	return c
}

// LoadProgram copies a program image into memory starting at ProgramStart.
func (c *Interpreter) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return &ProgramTooLargeError{Size: len(program)}
	}
	copy(c.Memory[ProgramStart:], program)
	return nil
}

// HandleKey records a keypad press or release.
func (c *Interpreter) HandleKey(key byte, down bool) {
	c.Keys.Set(key, down)
}

// TickTimers decrements both timers if positive. Called once per 60 Hz
// frame, after the instruction steps of that frame.
func (c *Interpreter) TickTimers() {
	if c.DelayTimer > 0 {
		c.DelayTimer--
	}
	if c.SoundTimer > 0 {
		c.SoundTimer--
	}
}

// ShouldBeep reports whether the beeper should sound this frame.
func (c *Interpreter) ShouldBeep() bool {
	return c.SoundTimer != 0 && c.SoundEnabled
}

// Operand field extractors for the current opcode.

func (c *Interpreter) opX() byte {
	return byte(c.opcode>>8) & 0xF
}

func (c *Interpreter) opY() byte {
	return byte(c.opcode>>4) & 0xF
}

func (c *Interpreter) opN() byte {
	return byte(c.opcode) & 0xF
}

func (c *Interpreter) opNN() byte {
	return byte(c.opcode)
}

func (c *Interpreter) opNNN() uint16 {
	return c.opcode & 0x0FFF
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (c *Interpreter) call(addr uint16) {
	c.Stack = append(c.Stack, c.PC)
	c.PC = addr
}

func (c *Interpreter) ret(pc uint16) error {
	if len(c.Stack) == 0 {
		return &StackUnderflowError{PC: pc}
	}
	c.PC = c.Stack[len(c.Stack)-1]
	c.Stack = c.Stack[:len(c.Stack)-1]
	return nil
}

// draw XOR-blits an 8-wide, height-tall sprite read from memory at I to the
// framebuffer at (V[x], V[y]). VF is set iff a pixel went from on to off.
func (c *Interpreter) draw(x, y, height byte) {
	bx := c.V[x]
	by := c.V[y]

	collision := false
	for dy := byte(0); dy < height; dy++ {
		row := c.Memory[c.I+uint16(dy)]
		for dx := byte(0); dx < 8; dx++ {
			if row&(0x80>>dx) == 0 {
				continue
			}
			if c.Frame.Get(bx+dx, by+dy) {
				collision = true
			}
			c.Frame.Flip(bx+dx, by+dy)
		}
	}

	c.V[0xF] = flag(collision)
	c.DrawFlag = true
}

// Step fetches the big-endian opcode at PC, advances PC by 2 and executes
// the instruction. Errors are fatal to the run and leave the interpreter in
// the state the partial instruction produced.
func (c *Interpreter) Step() error {
	pc := c.PC
	c.opcode = uint16(c.Memory[pc])<<8 | uint16(c.Memory[pc+1])
	c.PC += 2

	switch c.opcode & 0xF000 {
	case 0x0000:
		switch c.opcode {
		case 0x00E0:
			c.Frame.Clear()
			c.DrawFlag = true

		case 0x00EE:
			return c.ret(pc)

		default:
			// 0NNN legacy machine-code call, treated as 2NNN.
			c.call(c.opNNN())
		}

	case 0x1000:
		c.PC = c.opNNN()

	case 0x2000:
		c.call(c.opNNN())

	case 0x3000:
		if c.V[c.opX()] == c.opNN() {
			c.PC += 2
		}

	case 0x4000:
		if c.V[c.opX()] != c.opNN() {
			c.PC += 2
		}

	case 0x5000:
		if c.opN() != 0 {
			return &InvalidOpcodeError{PC: pc, Opcode: c.opcode}
		}
		if c.V[c.opX()] == c.V[c.opY()] {
			c.PC += 2
		}

	case 0x6000:
		c.V[c.opX()] = c.opNN()

	case 0x7000:
		c.V[c.opX()] += c.opNN()

	case 0x8000:
		if err := c.stepALU(pc); err != nil {
			return err
		}

	case 0x9000:
		if c.opN() != 0 {
			return &InvalidOpcodeError{PC: pc, Opcode: c.opcode}
		}
		if c.V[c.opX()] != c.V[c.opY()] {
			c.PC += 2
		}

	case 0xA000:
		c.I = c.opNNN()

	case 0xB000:
		c.PC = c.opNNN() + uint16(c.V[0])

	case 0xC000:
		c.V[c.opX()] = c.Rand() & c.opNN()

	case 0xD000:
		c.draw(c.opX(), c.opY(), c.opN())

	case 0xE000:
		switch c.opNN() {
		case 0x9E:
			if c.Keys.IsPressed(c.V[c.opX()] & 0xF) {
				c.PC += 2
			}

		case 0xA1:
			if !c.Keys.IsPressed(c.V[c.opX()] & 0xF) {
				c.PC += 2
			}

		default:
			return &InvalidOpcodeError{PC: pc, Opcode: c.opcode}
		}

	case 0xF000:
		return c.stepMisc(pc)
	}

	return nil
}

// stepALU executes the 8XYn register-to-register group. The value write
// happens before the flag write, so when X is F the flag wins.
func (c *Interpreter) stepALU(pc uint16) error {
	x := c.opX()
	y := c.opY()

	switch c.opN() {
	case 0x0:
		c.V[x] = c.V[y]

	case 0x1:
		c.V[x] |= c.V[y]

	case 0x2:
		c.V[x] &= c.V[y]

	case 0x3:
		c.V[x] ^= c.V[y]

	case 0x4:
		sum := uint16(c.V[x]) + uint16(c.V[y])
		c.V[x] = byte(sum)
		c.V[0xF] = flag(sum > 0xFF)

	case 0x5:
		vx, vy := c.V[x], c.V[y]
		c.V[x] = vx - vy
		c.V[0xF] = flag(vx >= vy)

	case 0x6:
		vx := c.V[x]
		c.V[x] = vx >> 1
		c.V[0xF] = vx & 1

	case 0x7:
		vx, vy := c.V[x], c.V[y]
		c.V[x] = vy - vx
		c.V[0xF] = flag(vy >= vx)

	case 0xE:
		vx := c.V[x]
		c.V[x] = vx << 1
		c.V[0xF] = vx >> 7

	default:
		return &InvalidOpcodeError{PC: pc, Opcode: c.opcode}
	}

	return nil
}

// stepMisc executes the FXnn group: timers, keypad wait, index arithmetic,
// font lookup, BCD and register load/store.
func (c *Interpreter) stepMisc(pc uint16) error {
	x := c.opX()

	switch c.opNN() {
	case 0x07:
		c.V[x] = c.DelayTimer

	case 0x0A:
		// Wait for a key: rewind PC so the instruction re-executes until a
		// key is down. The scan has no early exit, so the highest pressed
		// index wins.
		pressed := false
		for key := byte(0); key < NumKeys; key++ {
			if c.Keys.IsPressed(key) {
				c.V[x] = key
				pressed = true
			}
		}
		if !pressed {
			c.PC -= 2
		}

	case 0x15:
		c.DelayTimer = c.V[x]

	case 0x18:
		c.SoundTimer = c.V[x]

	case 0x1E:
		c.I += uint16(c.V[x])

	case 0x29:
		c.I = FontStart + uint16(c.V[x])*5

	case 0x33:
		c.Memory[c.I] = c.V[x] / 100
		c.Memory[c.I+1] = (c.V[x] / 10) % 10
		c.Memory[c.I+2] = c.V[x] % 10

	case 0x55:
		for i := byte(0); i <= x; i++ {
			c.Memory[c.I+uint16(i)] = c.V[i]
		}

	case 0x65:
		for i := byte(0); i <= x; i++ {
			c.V[i] = c.Memory[c.I+uint16(i)]
		}

	default:
		return &InvalidOpcodeError{PC: pc, Opcode: c.opcode}
	}

	return nil
}
