package chip8

// NumKeys is the size of the hexadecimal keypad.
const NumKeys = 16

// Keypad holds the pressed state of the 16 hex keys, indexed 0x0-0xF.
type Keypad struct {
	keys [NumKeys]bool
}

// Set records a key press or release.
func (k *Keypad) Set(key byte, pressed bool) {
	k.keys[key&0xF] = pressed
}

// IsPressed reports whether the key is currently held down.
func (k *Keypad) IsPressed(key byte) bool {
	return k.keys[key&0xF]
}
